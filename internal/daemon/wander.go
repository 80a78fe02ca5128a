package daemon

import "github.com/ashgrove/grue/internal/world"

// Wander moves an NPC randomly between its allowed rooms each turn,
// generalizing the teacher's RouteWander room-label restriction (route.go)
// to this engine's ThingID-keyed rooms. All randomness is drawn from the
// world's single seeded generator so a fixed seed reproduces the NPC's path
// byte-for-byte.
type Wander struct {
	id      string
	Actor   world.ThingID
	Allowed map[world.ThingID]bool // nil/empty means anywhere
}

// NewWander builds a daemon that wanders actor among the given allowed
// rooms (nil or empty allows any room reachable by an exit).
func NewWander(id string, actor world.ThingID, allowed []world.ThingID) *Wander {
	w := &Wander{id: id, Actor: actor}
	if len(allowed) > 0 {
		w.Allowed = make(map[world.ThingID]bool, len(allowed))
		for _, r := range allowed {
			w.Allowed[r] = true
		}
	}
	return w
}

func (d *Wander) ID() string { return d.id }

// Fire picks one reachable exit from the actor's current room uniformly at
// random (restricted to Allowed, if set) and moves the actor there. If no
// exit qualifies, the actor stays put and Fire is a no-op.
func (d *Wander) Fire(w *world.State) (string, bool) {
	room, ok := w.RoomOf(d.Actor)
	if !ok {
		return "", false
	}
	t, ok := w.GetThing(room)
	if !ok {
		return "", false
	}

	var candidates []world.ThingID
	for _, dir := range sortedDirs(t.Exits) {
		ex := t.Exits[dir]
		if d.Allowed != nil && !d.Allowed[ex.Dest] {
			continue
		}
		if dest, ok := w.Exit(room, dir); ok {
			candidates = append(candidates, dest)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	dest := candidates[w.Rand().Intn(len(candidates))]
	w.Move(d.Actor, dest)
	return "", false
}

// sortedDirs returns exits' keys in a fixed order so the random pick below
// is deterministic given the same *rand.Rand state regardless of Go's
// randomized map iteration order.
func sortedDirs(exits map[world.Direction]world.Exit) []world.Direction {
	dirs := make([]world.Direction, 0, len(exits))
	for d := range exits {
		dirs = append(dirs, d)
	}
	for i := 1; i < len(dirs); i++ {
		for j := i; j > 0 && dirs[j] < dirs[j-1]; j-- {
			dirs[j], dirs[j-1] = dirs[j-1], dirs[j]
		}
	}
	return dirs
}
