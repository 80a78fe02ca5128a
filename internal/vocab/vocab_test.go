package vocab_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/grue/internal/vocab"
	"github.com/ashgrove/grue/internal/world"
)

func TestBuild_DirectionWords(t *testing.T) {
	w := world.NewState(1)
	v := vocab.Build(w, nil, nil)

	roles := v.Lookup("n")
	want := vocab.RoleSet{{POS: vocab.Direction, Value: world.DirNorth.String()}}
	if diff := cmp.Diff(want, roles); diff != "" {
		t.Errorf("Lookup(\"n\") mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_VerbAndPrepWords(t *testing.T) {
	w := world.NewState(1)
	verbs := []vocab.VerbDef{{ID: "take", Words: []string{"take", "get"}}}
	preps := []vocab.PrepDef{{ID: "in", Words: []string{"in", "inside"}}}
	v := vocab.Build(w, verbs, preps)

	assert.True(t, v.Lookup("take").HasPOS(vocab.Verb))
	assert.True(t, v.Lookup("get").HasPOS(vocab.Verb))
	val, ok := v.Lookup("get").ValueFor(vocab.Verb)
	require.True(t, ok)
	assert.Equal(t, "take", val)

	assert.True(t, v.Lookup("inside").HasPOS(vocab.Preposition))
}

func TestBuild_ObjectSynonymsAndAdjectives(t *testing.T) {
	w := world.NewState(1)
	id := world.NewThingID()
	w.AddThing(&world.Thing{
		ID: id, Label: "BRASS-LANTERN", Name: "brass lantern",
		Synonyms:   []string{"lantern", "lamp"},
		Adjectives: []string{"brass"},
	}, "")

	v := vocab.Build(w, nil, nil)

	lampRoles := v.Lookup("lamp")
	require.True(t, lampRoles.HasPOS(vocab.Object))
	val, ok := lampRoles.ValueFor(vocab.Object)
	require.True(t, ok)
	assert.Equal(t, string(id), val)

	assert.True(t, v.Lookup("brass").HasPOS(vocab.Adjective))
	assert.False(t, v.Lookup("lamp").HasPOS(vocab.Adjective))
}

// A lexeme shared by two things' synonyms collapses into a single RoleSet
// entry per distinct (pos, value) pair, plus one entry per owning thing —
// add() only dedupes byte-identical roles, so two distinct object IDs
// sharing a synonym both survive as separate Object roles.
func TestBuild_SharedSynonymKeepsBothObjects(t *testing.T) {
	w := world.NewState(1)
	door1 := world.NewThingID()
	door2 := world.NewThingID()
	w.AddThing(&world.Thing{ID: door1, Label: "FRONT-DOOR", Name: "front door", Synonyms: []string{"door"}}, "")
	w.AddThing(&world.Thing{ID: door2, Label: "TRAP-DOOR", Name: "trap door", Synonyms: []string{"door"}}, "")

	v := vocab.Build(w, nil, nil)

	roles := v.Lookup("door")
	want := vocab.RoleSet{
		{POS: vocab.Object, Value: string(door1)},
		{POS: vocab.Object, Value: string(door2)},
	}
	if diff := cmp.Diff(want, roles, cmpopts.SortSlices(func(a, b vocab.Role) bool { return a.Value < b.Value })); diff != "" {
		t.Errorf("Lookup(\"door\") mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_DeterministicAcrossRuns(t *testing.T) {
	build := func() *vocab.Vocabulary {
		w := world.NewState(1)
		for i := 0; i < 5; i++ {
			w.AddThing(&world.Thing{
				ID: world.ThingID(string(rune('A' + i))), Label: "X", Name: "x",
				Synonyms:   []string{"widget"},
				Adjectives: []string{"shiny"},
			}, "")
		}
		verbs := []vocab.VerbDef{{ID: "take", Words: []string{"take", "get"}}}
		return vocab.Build(w, verbs, nil)
	}

	a, b := build(), build()
	if diff := cmp.Diff(a.Lexemes(), b.Lexemes()); diff != "" {
		t.Errorf("Lexemes() differ across identical builds (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Lookup("widget"), b.Lookup("widget")); diff != "" {
		t.Errorf("Lookup(\"widget\") differs across identical builds (-a +b):\n%s", diff)
	}
}

func TestLexemes_SortedAndDeduped(t *testing.T) {
	w := world.NewState(1)
	w.AddThing(&world.Thing{ID: world.NewThingID(), Label: "X", Name: "x", Synonyms: []string{"zebra", "apple"}}, "")
	v := vocab.Build(w, nil, nil)

	lex := v.Lexemes()
	require.Contains(t, lex, "zebra")
	require.Contains(t, lex, "apple")

	sorted := append([]string(nil), lex...)
	sort.Strings(sorted)
	if diff := cmp.Diff(sorted, lex); diff != "" {
		t.Errorf("Lexemes() not sorted (-want +got):\n%s", diff)
	}
}

func TestIsArticle(t *testing.T) {
	assert.True(t, vocab.IsArticle("the"))
	assert.True(t, vocab.IsArticle("a"))
	assert.True(t, vocab.IsArticle("an"))
	assert.False(t, vocab.IsArticle("lamp"))
}
