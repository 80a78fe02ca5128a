package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/grue/internal/parse"
	"github.com/ashgrove/grue/internal/verb"
	"github.com/ashgrove/grue/internal/vocab"
	"github.com/ashgrove/grue/internal/world"
)

// newFixturePipeline builds a Pipeline wired to the reference verb set and a
// freshly-built ZorkOpening world, mirroring how engine.go wires New().
func newFixturePipeline(t *testing.T, z *world.ZorkOpening) *parse.Pipeline {
	t.Helper()
	reg := verb.NewReference()

	var vdefs []vocab.VerbDef
	for id, words := range reg.VerbWords() {
		vdefs = append(vdefs, vocab.VerbDef{ID: id, Words: words})
	}
	var pdefs []vocab.PrepDef
	for id, words := range reg.PrepWords() {
		pdefs = append(pdefs, vocab.PrepDef{ID: id, Words: words})
	}

	return &parse.Pipeline{
		Vocab:    vocab.Build(z.State, vdefs, pdefs),
		Registry: reg,
		Handlers: reg,
	}
}

// Scenario 1: take the brass lantern from the living room.
func TestScenario_TakeLantern(t *testing.T) {
	z := world.NewZorkOpening(1)
	p := newFixturePipeline(t, z)
	z.State.Move(z.Player, z.LivingRoom)
	z.State.SetHere(z.LivingRoom)
	cross := &parse.CrossTurn{}

	res := p.ProcessTurn("take the brass lantern", z.State, cross)

	assert.Contains(t, res.Output, "Taken.")
	assert.True(t, res.Moved)
	loc, ok := z.State.LocationOf(z.Lamp)
	require.True(t, ok)
	assert.Equal(t, z.Player, loc)
}

// Scenario 2: take all from a room with a non-takeable container and a
// takeable object inside it.
func TestScenario_TakeAll(t *testing.T) {
	z := world.NewZorkOpening(2)
	p := newFixturePipeline(t, z)
	cross := &parse.CrossTurn{}

	res := p.ProcessTurn("take all", z.State, cross)

	assert.Contains(t, res.Output, "small mailbox: It is securely anchored.")
	assert.Contains(t, res.Output, "leaflet: Taken.")
	assert.True(t, res.Moved)

	leafletLoc, ok := z.State.LocationOf(z.Leaflet)
	require.True(t, ok)
	assert.Equal(t, z.Player, leafletLoc)

	mailboxLoc, ok := z.State.LocationOf(z.Mailbox)
	require.True(t, ok)
	assert.Equal(t, z.WestOfHouse, mailboxLoc)
}

// Scenario 3: PUT fails against a closed container, succeeds once opened.
func TestScenario_PutInClosedThenOpenedCase(t *testing.T) {
	z := world.NewZorkOpening(3)
	p := newFixturePipeline(t, z)
	z.State.Move(z.Player, z.LivingRoom)
	z.State.SetHere(z.LivingRoom)
	cross := &parse.CrossTurn{}

	require.NoError(t, z.State.Move(z.Lamp, z.Player))

	res := p.ProcessTurn("put lamp in case", z.State, cross)
	assert.Contains(t, res.Output, "closed")
	loc, _ := z.State.LocationOf(z.Lamp)
	assert.Equal(t, z.Player, loc, "lamp must not have moved into the still-closed case")

	res = p.ProcessTurn("open case", z.State, cross)
	assert.Contains(t, res.Output, "Opened.")

	res = p.ProcessTurn("put sword in case", z.State, cross)
	assert.Contains(t, res.Output, "Done.")
	loc, ok := z.State.LocationOf(z.Sword)
	require.True(t, ok)
	assert.Equal(t, z.Case, loc)
}

// Scenario 4: an orphaned direct object is filled in by the next line.
func TestScenario_OrphanDirectObject(t *testing.T) {
	z := world.NewZorkOpening(4)
	p := newFixturePipeline(t, z)
	z.State.Move(z.Player, z.LivingRoom)
	z.State.SetHere(z.LivingRoom)
	cross := &parse.CrossTurn{}

	res := p.ProcessTurn("take", z.State, cross)
	assert.Contains(t, res.Output, "What do you want to take")
	assert.False(t, res.Moved)
	require.NotNil(t, cross.Orphan)

	res = p.ProcessTurn("the sword", z.State, cross)
	assert.Contains(t, res.Output, "Taken.")
	assert.True(t, res.Moved)
	loc, ok := z.State.LocationOf(z.Sword)
	require.True(t, ok)
	assert.Equal(t, z.Player, loc)
}

// Scenario 5: an orphaned indirect object is filled in by the next line, and
// that merge turn does not itself count as a second move.
func TestScenario_OrphanIndirectObject(t *testing.T) {
	z := world.NewZorkOpening(5)
	p := newFixturePipeline(t, z)
	z.State.Move(z.Player, z.LivingRoom)
	z.State.SetHere(z.LivingRoom)
	z.State.SetFlag(z.Case, world.FlagOpen, true)
	require.NoError(t, z.State.Move(z.Lamp, z.Player))
	// A second container in the room keeps the GWIM "container" hint from
	// resolving uniquely, so the turn falls through to an orphan prompt
	// instead of silently guessing the case.
	require.NoError(t, z.State.Move(z.Mailbox, z.LivingRoom))
	cross := &parse.CrossTurn{}

	res := p.ProcessTurn("put lamp in", z.State, cross)
	assert.Contains(t, res.Output, "What do you want to put the brass lantern in")
	assert.False(t, res.Moved)
	require.NotNil(t, cross.Orphan)

	res = p.ProcessTurn("case", z.State, cross)
	assert.Contains(t, res.Output, "Done.")
	assert.True(t, res.Moved)
	loc, ok := z.State.LocationOf(z.Lamp)
	require.True(t, ok)
	assert.Equal(t, z.Case, loc)
}

// Scenario 6: an unknown word followed by OOPS re-parses with the
// replacement, and only the corrected turn counts as a move.
func TestScenario_OopsCorrectsUnknownWord(t *testing.T) {
	z := world.NewZorkOpening(6)
	p := newFixturePipeline(t, z)
	z.State.Move(z.Player, z.LivingRoom)
	z.State.SetHere(z.LivingRoom)
	cross := &parse.CrossTurn{}

	res := p.ProcessTurn("xyzzy", z.State, cross)
	assert.Contains(t, res.Output, "I don't know the word")
	assert.False(t, res.Moved)
	assert.True(t, cross.HadUnknownWordError)

	res = p.ProcessTurn("oops look", z.State, cross)
	assert.True(t, res.Moved)
}

// Scenario 7: two successive movement commands each count as a move and
// each produce a room description.
func TestScenario_NorthThenEast(t *testing.T) {
	z := world.NewZorkOpening(7)
	p := newFixturePipeline(t, z)
	cross := &parse.CrossTurn{}

	res := p.ProcessTurn("north", z.State, cross)
	assert.True(t, res.Moved)
	assert.Contains(t, res.Output, "North of House")
	assert.Equal(t, z.NorthOfHouse, z.State.Here())

	res = p.ProcessTurn("east", z.State, cross)
	assert.True(t, res.Moved)
	assert.Contains(t, res.Output, "Forest Path")
	assert.Equal(t, z.ForestPath, z.State.Here())
}

// Scenario 8: "it" resolves to the object named by the previous turn's
// singular direct object.
func TestScenario_ItReferent(t *testing.T) {
	z := world.NewZorkOpening(8)
	p := newFixturePipeline(t, z)
	cross := &parse.CrossTurn{}

	res := p.ProcessTurn("examine the leaflet", z.State, cross)
	require.NotEmpty(t, res.Output)
	assert.Equal(t, z.Leaflet, z.State.ItReferent())

	res = p.ProcessTurn("take it", z.State, cross)
	assert.Contains(t, res.Output, "Taken.")
	loc, ok := z.State.LocationOf(z.Leaflet)
	require.True(t, ok)
	assert.Equal(t, z.Player, loc)
}

// READ's template carries the Take LocMask bit, so reading an unheld,
// takeable object drives §4.6.3's auto-take path: the leaflet starts
// inside the (open) mailbox, never picked up by hand.
func TestScenario_ReadAutoTake(t *testing.T) {
	z := world.NewZorkOpening(9)
	p := newFixturePipeline(t, z)
	cross := &parse.CrossTurn{}

	loc, ok := z.State.LocationOf(z.Leaflet)
	require.True(t, ok)
	require.Equal(t, z.Mailbox, loc, "leaflet must start unheld, inside the mailbox")

	res := p.ProcessTurn("read leaflet", z.State, cross)

	assert.Contains(t, res.Output, "(Taken)")
	assert.Contains(t, res.Output, "WELCOME TO ZORK")

	loc, ok = z.State.LocationOf(z.Leaflet)
	require.True(t, ok)
	assert.Equal(t, z.Player, loc, "auto-take must have moved the leaflet to the player")
	assert.True(t, z.State.HasFlag(z.Leaflet, world.FlagTouch))
}

// A line that leaves a quote unterminated carries that state into the next
// turn; OOPS against it must be refused rather than silently correcting a
// word it can't actually see.
func TestScenario_OopsRefusedInsideQuote(t *testing.T) {
	z := world.NewZorkOpening(10)
	p := newFixturePipeline(t, z)
	cross := &parse.CrossTurn{}

	p.ProcessTurn(`examine "unfinished`, z.State, cross)
	assert.True(t, cross.InQuote)

	res := p.ProcessTurn("oops teapot", z.State, cross)
	assert.Contains(t, res.Output, "quoted string")
}
