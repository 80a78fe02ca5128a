// Package vocab implements the command pipeline's vocabulary lookup (C2): a
// table mapping a lowercased lexeme to the set of grammatical roles it can
// play. Lookup never fails; an unknown lexeme simply returns an empty
// RoleSet and the caller (C3) is the one that turns that into an
// unknown-word error.
package vocab

import (
	"sort"

	"github.com/ashgrove/grue/internal/world"
)

// PartOfSpeech classifies one role a lexeme can play.
type PartOfSpeech int

const (
	Direction PartOfSpeech = iota
	Verb
	Preposition
	Adjective
	Object
	BuzzWord
)

// Role is one (part-of-speech, semantic value) pairing a lexeme can carry.
// SemanticValue is interpreted per PartOfSpeech: a verb id, a preposition
// id, a world.Direction, an adjective id (the lexeme itself, normalized),
// or a world.ThingID.
type Role struct {
	POS   PartOfSpeech
	Value string
}

// RoleSet is every role attached to one lexeme. A lexeme may carry several,
// e.g. "light" as verb, adjective, and object simultaneously.
type RoleSet []Role

// HasPOS reports whether rs contains a role of the given part of speech.
func (rs RoleSet) HasPOS(pos PartOfSpeech) bool {
	for _, r := range rs {
		if r.POS == pos {
			return true
		}
	}
	return false
}

// ValueFor returns the semantic value of the first role matching pos, and
// whether one was found.
func (rs RoleSet) ValueFor(pos PartOfSpeech) (string, bool) {
	for _, r := range rs {
		if r.POS == pos {
			return r.Value, true
		}
	}
	return "", false
}

// Special names identified by lexeme rather than part of speech, per
// spec.md §3.1.
const (
	WordThe       = "the"
	WordA         = "a"
	WordAn        = "an"
	WordAll       = "all"
	WordOne       = "one"
	WordAnd       = "and"
	WordBut       = "but"
	WordExcept    = "except"
	WordOf        = "of"
	WordThen      = "then"
	WordIt        = "it"
	WordMe        = "me"
	WordOops      = "oops"
	WordAgain     = "again"
	WordAgainAbbr = "g"
)

var articles = map[string]bool{WordThe: true, WordA: true, WordAn: true}

// IsArticle reports whether word is one of "the"/"a"/"an".
func IsArticle(word string) bool { return articles[word] }

// IsSpecial reports whether word is the named special word.
func IsSpecial(word, name string) bool { return word == name }

var directionWords = map[string]world.Direction{
	"north": world.DirNorth, "n": world.DirNorth,
	"south": world.DirSouth, "s": world.DirSouth,
	"east": world.DirEast, "e": world.DirEast,
	"west": world.DirWest, "w": world.DirWest,
	"northeast": world.DirNortheast, "ne": world.DirNortheast,
	"northwest": world.DirNorthwest, "nw": world.DirNorthwest,
	"southeast": world.DirSoutheast, "se": world.DirSoutheast,
	"southwest": world.DirSouthwest, "sw": world.DirSouthwest,
	"up": world.DirUp, "u": world.DirUp,
	"down": world.DirDown, "d": world.DirDown,
	"in":  world.DirIn,
	"out": world.DirOut,
}

// Vocabulary is the built lexeme -> RoleSet table. Zero value is usable
// (empty, every lookup misses).
type Vocabulary struct {
	entries map[string]RoleSet
}

// New builds an empty Vocabulary.
func New() *Vocabulary {
	return &Vocabulary{entries: make(map[string]RoleSet)}
}

// add appends a role to lexeme's RoleSet, skipping exact duplicates so
// re-registration (e.g. two things sharing a synonym) is idempotent.
func (v *Vocabulary) add(lexeme string, role Role) {
	for _, r := range v.entries[lexeme] {
		if r == role {
			return
		}
	}
	v.entries[lexeme] = append(v.entries[lexeme], role)
}

// Lookup returns the roles attached to lexeme, or nil if unknown. Never
// fails.
func (v *Vocabulary) Lookup(lexeme string) RoleSet {
	return v.entries[lexeme]
}

// Lexemes returns every registered lexeme in sorted order, for deterministic
// iteration (debug listings, tests).
func (v *Vocabulary) Lexemes() []string {
	out := make([]string, 0, len(v.entries))
	for k := range v.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// VerbDef supplies a verb's registered surface words to Build.
type VerbDef struct {
	ID     string
	Words  []string
}

// PrepDef supplies a preposition's registered surface words to Build.
type PrepDef struct {
	ID    string
	Words []string
}

// Build constructs a Vocabulary deterministically from a world's registered
// things (synonyms, adjectives) plus the verb/preposition tables from the
// verb registry, and the fixed direction words. Building is a one-time,
// world-init-time operation per spec.md §3.1's invariant; roles are added
// direction words first, then the (already-ordered) verb and preposition
// lists, then the world's things in definition order, so two builds from the
// same inputs always produce the same table.
func Build(w world.World, verbs []VerbDef, preps []PrepDef) *Vocabulary {
	v := New()

	for word, dir := range directionWords {
		v.add(word, Role{POS: Direction, Value: dir.String()})
	}

	for _, vd := range verbs {
		for _, word := range vd.Words {
			v.add(word, Role{POS: Verb, Value: vd.ID})
		}
	}
	for _, pd := range preps {
		for _, word := range pd.Words {
			v.add(word, Role{POS: Preposition, Value: pd.ID})
		}
	}

	for _, id := range w.AllThingIDs() {
		t, ok := w.GetThing(id)
		if !ok {
			continue
		}
		for _, syn := range t.Synonyms {
			v.add(syn, Role{POS: Object, Value: string(id)})
		}
		for _, adj := range t.Adjectives {
			v.add(adj, Role{POS: Adjective, Value: adj})
		}
	}

	return v
}
