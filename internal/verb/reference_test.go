package verb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/grue/internal/parse"
	"github.com/ashgrove/grue/internal/verb"
	"github.com/ashgrove/grue/internal/world"
)

func newHandlerFixture(t *testing.T) (*world.ZorkOpening, *verb.Registry) {
	t.Helper()
	z := world.NewZorkOpening(42)
	return z, verb.NewReference()
}

func handle(t *testing.T, reg *verb.Registry, action string, w *world.State, intent parse.Intent) parse.Result {
	t.Helper()
	h, ok := reg.Handler(action)
	require.True(t, ok, "no handler registered for %q", action)
	return h(w, intent)
}

func TestTake_PerObjectMessaging(t *testing.T) {
	z, reg := newHandlerFixture(t)

	res := handle(t, reg, "take", z.State, parse.Intent{
		Action: "take",
		Prso:   parse.Slot{IDs: []world.ThingID{z.Mailbox, z.Leaflet}},
	})

	assert.Equal(t, "small mailbox: It is securely anchored. leaflet: Taken.\n", res.Output)
}

func TestTake_AlreadyHeld(t *testing.T) {
	z, reg := newHandlerFixture(t)
	require.NoError(t, z.State.Move(z.Sword, z.Player))
	z.State.SetWinner(z.Player)

	res := handle(t, reg, "take", z.State, parse.Intent{
		Action: "take",
		Prso:   parse.Slot{IDs: []world.ThingID{z.Sword}},
	})

	assert.Equal(t, "You already have that.\n", res.Output)
}

func TestPutIn_RefusesClosedContainer(t *testing.T) {
	z, reg := newHandlerFixture(t)

	res := handle(t, reg, "put_in", z.State, parse.Intent{
		Action: "put_in",
		Prso:   parse.Slot{IDs: []world.ThingID{z.Lamp}},
		Prsi:   parse.Slot{IDs: []world.ThingID{z.Case}},
	})

	assert.Equal(t, "The trophy case is closed.\n", res.Output)
	loc, ok := z.State.LocationOf(z.Lamp)
	require.True(t, ok)
	assert.Equal(t, z.LivingRoom, loc)
}

func TestPutIn_SucceedsWhenOpen(t *testing.T) {
	z, reg := newHandlerFixture(t)
	z.State.SetFlag(z.Case, world.FlagOpen, true)

	res := handle(t, reg, "put_in", z.State, parse.Intent{
		Action: "put_in",
		Prso:   parse.Slot{IDs: []world.ThingID{z.Lamp}},
		Prsi:   parse.Slot{IDs: []world.ThingID{z.Case}},
	})

	assert.Equal(t, "Done.\n", res.Output)
	loc, ok := z.State.LocationOf(z.Lamp)
	require.True(t, ok)
	assert.Equal(t, z.Case, loc)
}

func TestPutIn_RefusesNonContainer(t *testing.T) {
	z, reg := newHandlerFixture(t)

	res := handle(t, reg, "put_in", z.State, parse.Intent{
		Action: "put_in",
		Prso:   parse.Slot{IDs: []world.ThingID{z.Lamp}},
		Prsi:   parse.Slot{IDs: []world.ThingID{z.Sword}},
	})

	assert.Equal(t, "You can't put anything in the sword.\n", res.Output)
}

func TestOpenClose_Toggle(t *testing.T) {
	z, reg := newHandlerFixture(t)

	res := handle(t, reg, "open", z.State, parse.Intent{Action: "open", Prso: parse.Slot{IDs: []world.ThingID{z.Case}}})
	assert.Equal(t, "Opened.\n", res.Output)
	assert.True(t, z.State.HasFlag(z.Case, world.FlagOpen))

	res = handle(t, reg, "open", z.State, parse.Intent{Action: "open", Prso: parse.Slot{IDs: []world.ThingID{z.Case}}})
	assert.Equal(t, "The trophy case is already open.\n", res.Output)

	res = handle(t, reg, "close", z.State, parse.Intent{Action: "close", Prso: parse.Slot{IDs: []world.ThingID{z.Case}}})
	assert.Equal(t, "Closed.\n", res.Output)
	assert.False(t, z.State.HasFlag(z.Case, world.FlagOpen))
}

func TestInventory_EmptyAndCarrying(t *testing.T) {
	z, reg := newHandlerFixture(t)

	res := handle(t, reg, "inventory", z.State, parse.Intent{Action: "inventory"})
	assert.Equal(t, "You are carrying nothing.\n", res.Output)

	require.NoError(t, z.State.Move(z.Lamp, z.Player))
	res = handle(t, reg, "inventory", z.State, parse.Intent{Action: "inventory"})
	assert.Equal(t, "You are carrying brass lantern.\n", res.Output)
}

func TestDrop_MultiObject(t *testing.T) {
	z, reg := newHandlerFixture(t)
	z.State.SetHere(z.LivingRoom)
	require.NoError(t, z.State.Move(z.Lamp, z.Player))
	require.NoError(t, z.State.Move(z.Sword, z.Player))

	res := handle(t, reg, "drop", z.State, parse.Intent{
		Action: "drop",
		Prso:   parse.Slot{IDs: []world.ThingID{z.Lamp, z.Sword}},
	})

	assert.Equal(t, "brass lantern: Dropped. sword: Dropped.\n", res.Output)
	loc, ok := z.State.LocationOf(z.Lamp)
	require.True(t, ok)
	assert.Equal(t, z.LivingRoom, loc)
}
