package daemon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/grue/internal/daemon"
	"github.com/ashgrove/grue/internal/world"
)

// recordingDaemon notes each Fire call so tests can assert ordering.
type recordingDaemon struct {
	id      string
	fires   *[]string
	out     string
	disable bool
}

func (d *recordingDaemon) ID() string { return d.id }
func (d *recordingDaemon) Fire(w *world.State) (string, bool) {
	*d.fires = append(*d.fires, d.id)
	return d.out, d.disable
}

func TestScheduler_FiresInRegistrationOrder(t *testing.T) {
	w := world.NewState(1)
	s := daemon.NewScheduler(nil)
	var fires []string

	s.Register(&recordingDaemon{id: "first", fires: &fires})
	s.Register(&recordingDaemon{id: "second", fires: &fires})
	s.Register(&recordingDaemon{id: "third", fires: &fires})

	s.Tick(w)

	assert.Equal(t, []string{"first", "second", "third"}, fires)
}

func TestScheduler_DisableStopsFutureFires(t *testing.T) {
	w := world.NewState(1)
	s := daemon.NewScheduler(nil)
	var fires []string

	s.Register(&recordingDaemon{id: "once", fires: &fires, disable: true})
	require.True(t, s.Enabled("once"))

	s.Tick(w)
	assert.True(t, fires != nil)
	assert.False(t, s.Enabled("once"))

	fires = nil
	s.Tick(w)
	assert.Empty(t, fires, "a disabled daemon must not fire again")
}

func TestScheduler_ConcatenatesOutput(t *testing.T) {
	w := world.NewState(1)
	s := daemon.NewScheduler(nil)
	var fires []string

	s.Register(&recordingDaemon{id: "a", fires: &fires, out: "one "})
	s.Register(&recordingDaemon{id: "b", fires: &fires, out: "two"})

	assert.Equal(t, "one two", s.Tick(w))
}

func TestScheduler_EnabledUnknownID(t *testing.T) {
	s := daemon.NewScheduler(nil)
	assert.False(t, s.Enabled("nonexistent"))
}

func TestLightFuse_SilentWhenUnlit(t *testing.T) {
	w := world.NewState(1)
	lamp := world.NewThingID()
	w.AddThing(&world.Thing{ID: lamp, Label: "LAMP", Name: "lamp", StaticFlags: world.NewFlagSet(world.FlagLight)}, "")

	f := daemon.NewLightFuse("lamp-fuse", lamp, 5)
	out, disable := f.Fire(w)
	assert.Empty(t, out)
	assert.False(t, disable)
}

func TestLightFuse_WarnsThenBurnsOut(t *testing.T) {
	w := world.NewState(1)
	lamp := world.NewThingID()
	w.AddThing(&world.Thing{ID: lamp, Label: "LAMP", Name: "lamp", StaticFlags: world.NewFlagSet(world.FlagLight)}, "")
	w.SetFlag(lamp, world.FlagOn, true)

	f := daemon.NewLightFuse("lamp-fuse", lamp, 20)

	// Fires 1-9 (19 down to 11 turns left): silent.
	for i := 0; i < 9; i++ {
		out, disable := f.Fire(w)
		require.Empty(t, out)
		require.False(t, disable)
	}

	// Fire 10 (10 left): crosses the <=10 threshold, warns once.
	out, disable := f.Fire(w)
	assert.Equal(t, "Your light is getting dim.\n", out)
	assert.False(t, disable)

	// Fire 11 (9 left): no repeat warning.
	out, disable = f.Fire(w)
	assert.Empty(t, out)
	assert.False(t, disable)

	// Fires 12-19 (8 down to 1 left): still silent.
	for i := 0; i < 8; i++ {
		out, disable = f.Fire(w)
		require.Empty(t, out)
		require.False(t, disable)
	}

	// Fire 20 (0 left): burns out.
	out, disable = f.Fire(w)
	assert.Equal(t, "Your light has gone out.\n", out)
	assert.True(t, disable)
	assert.False(t, w.HasFlag(lamp, world.FlagOn))
	assert.False(t, w.HasFlag(lamp, world.FlagLit))
}

func TestWander_DeterministicUnderFixedSeed(t *testing.T) {
	build := func(seed int64) (*world.State, world.ThingID, world.ThingID, world.ThingID) {
		w := world.NewState(seed)
		a := world.NewThingID()
		b := world.NewThingID()
		c := world.NewThingID()
		w.AddThing(&world.Thing{ID: a, Label: "A", Name: "room a", IsRoom: true, Exits: map[world.Direction]world.Exit{
			world.DirNorth: {Dest: b},
			world.DirEast:  {Dest: c},
		}}, "")
		w.AddThing(&world.Thing{ID: b, Label: "B", Name: "room b", IsRoom: true, Exits: map[world.Direction]world.Exit{
			world.DirSouth: {Dest: a},
		}}, "")
		w.AddThing(&world.Thing{ID: c, Label: "C", Name: "room c", IsRoom: true, Exits: map[world.Direction]world.Exit{
			world.DirWest: {Dest: a},
		}}, "")
		actor := world.NewThingID()
		w.AddThing(&world.Thing{ID: actor, Label: "TROLL", Name: "troll", StaticFlags: world.NewFlagSet(world.FlagActor)}, a)
		return w, a, b, c
	}

	run := func(seed int64) []world.ThingID {
		w, a, _, _ := build(seed)
		actor, ok := firstContentOf(w, a)
		require.True(t, ok)
		wd := daemon.NewWander("troll-wander", actor, nil)
		var path []world.ThingID
		for i := 0; i < 5; i++ {
			wd.Fire(w)
			loc, ok := w.LocationOf(actor)
			require.True(t, ok)
			path = append(path, loc)
		}
		return path
	}

	first := run(7)
	second := run(7)
	assert.Equal(t, first, second, "same seed must produce the same wander path")
}

func TestWander_RestrictsToAllowedRooms(t *testing.T) {
	w := world.NewState(3)
	a := world.NewThingID()
	b := world.NewThingID()
	c := world.NewThingID()
	w.AddThing(&world.Thing{ID: a, Label: "A", Name: "room a", IsRoom: true, Exits: map[world.Direction]world.Exit{
		world.DirNorth: {Dest: b},
		world.DirEast:  {Dest: c},
	}}, "")
	w.AddThing(&world.Thing{ID: b, Label: "B", Name: "room b", IsRoom: true}, "")
	w.AddThing(&world.Thing{ID: c, Label: "C", Name: "room c", IsRoom: true}, "")
	actor := world.NewThingID()
	w.AddThing(&world.Thing{ID: actor, Label: "TROLL", Name: "troll"}, a)

	wd := daemon.NewWander("troll-wander", actor, []world.ThingID{b})

	for i := 0; i < 10; i++ {
		wd.Fire(w)
		loc, ok := w.LocationOf(actor)
		require.True(t, ok)
		assert.True(t, loc == a || loc == b, "wander must never enter a disallowed room")
		if loc == b {
			break
		}
	}
}

func firstContentOf(w *world.State, room world.ThingID) (world.ThingID, bool) {
	c := w.ContentsOf(room)
	if len(c) == 0 {
		return "", false
	}
	return c[0], true
}
