package world

import (
	"fmt"
	"math/rand"
	"sort"
)

// World is the contract the command pipeline consumes. It never constructs
// or authors content itself; spec.md §6.2 defines this as "consumed, not
// defined here". *State is the in-memory reference implementation used by
// this repo's reference verb set and tests.
type World interface {
	GetThing(id ThingID) (*Thing, bool)
	LocationOf(id ThingID) (ThingID, bool)
	ContentsOf(id ThingID) []ThingID
	HasFlag(id ThingID, f Flag) bool
	SetFlag(id ThingID, f Flag, v bool)
	Move(id, dest ThingID) error
	RoomOf(id ThingID) (ThingID, bool)
	Exit(room ThingID, dir Direction) (ThingID, bool)

	Player() ThingID
	Here() ThingID
	SetHere(ThingID)
	Winner() ThingID
	SetWinner(ThingID)

	ItReferent() ThingID
	SetItReferent(ThingID)

	// GlobalObjects returns things reachable from anywhere regardless of
	// room (world-wide globals), in definition order.
	GlobalObjects() []ThingID

	// RoomLocals returns the room-scoped pseudo-objects available from the
	// given room (e.g. "sky", "wall") without being true contents, in
	// definition order.
	RoomLocals(room ThingID) []ThingID

	// Rand is the single seeded random source all pipeline randomness (the
	// ONE picker) must be routed through, so a fixed seed plus a fixed
	// input script reproduces a transcript byte-for-byte.
	Rand() *rand.Rand

	// AllThingIDs returns every thing id in deterministic definition order,
	// used to build the vocabulary once at world-init time.
	AllThingIDs() []ThingID
}

// State is the in-memory reference World implementation.
type State struct {
	things   map[ThingID]*Thing
	order    []ThingID
	contents map[ThingID][]ThingID
	parent   map[ThingID]ThingID
	runtime  map[ThingID]map[Flag]bool

	globals     []ThingID
	roomLocals  map[ThingID][]ThingID

	player     ThingID
	here       ThingID
	winner     ThingID
	itReferent ThingID

	rnd *rand.Rand
}

// NewState creates an empty State seeded for deterministic randomness.
func NewState(seed int64) *State {
	return &State{
		things:     make(map[ThingID]*Thing),
		contents:   make(map[ThingID][]ThingID),
		parent:     make(map[ThingID]ThingID),
		runtime:    make(map[ThingID]map[Flag]bool),
		roomLocals: make(map[ThingID][]ThingID),
		rnd:        rand.New(rand.NewSource(seed)),
	}
}

// AddThing registers a newly-constructed Thing with the world, optionally
// placing it inside container (use "" for no container, e.g. a room).
// Things must be added in the order the fixture/loader defines them: this
// order is what makes container walks and vocabulary construction
// deterministic.
func (s *State) AddThing(t *Thing, container ThingID) {
	s.things[t.ID] = t
	s.order = append(s.order, t.ID)
	if container != "" {
		s.contents[container] = append(s.contents[container], t.ID)
		s.parent[t.ID] = container
	}
}

// AddGlobal registers a world-wide pseudo-object (visible from every room).
func (s *State) AddGlobal(id ThingID) {
	s.globals = append(s.globals, id)
}

// AddRoomLocal registers a room-scoped pseudo-object, reachable from room
// without being a true content of it.
func (s *State) AddRoomLocal(room, id ThingID) {
	s.roomLocals[room] = append(s.roomLocals[room], id)
}

func (s *State) GetThing(id ThingID) (*Thing, bool) {
	t, ok := s.things[id]
	return t, ok
}

func (s *State) LocationOf(id ThingID) (ThingID, bool) {
	p, ok := s.parent[id]
	return p, ok
}

func (s *State) ContentsOf(id ThingID) []ThingID {
	return s.contents[id]
}

// HasFlag composes the static flag layer with the runtime override layer:
// a runtime entry, if present, always wins over the static bit. The core
// never inspects StaticFlags directly for this reason.
func (s *State) HasFlag(id ThingID, f Flag) bool {
	if overrides, ok := s.runtime[id]; ok {
		if v, ok := overrides[f]; ok {
			return v
		}
	}
	t, ok := s.things[id]
	if !ok {
		return false
	}
	return t.StaticFlags.has(f)
}

// SetFlag writes only the runtime override layer; it never mutates a
// Thing's StaticFlags.
func (s *State) SetFlag(id ThingID, f Flag, v bool) {
	if s.runtime[id] == nil {
		s.runtime[id] = make(map[Flag]bool)
	}
	s.runtime[id][f] = v
}

// Move reparents id under dest, removing it from its previous container's
// contents list, and sets its touch flag.
func (s *State) Move(id, dest ThingID) error {
	if _, ok := s.things[id]; !ok {
		return fmt.Errorf("move: unknown thing %q", id)
	}
	if dest != "" {
		if _, ok := s.things[dest]; !ok {
			return fmt.Errorf("move: unknown destination %q", dest)
		}
	}

	if oldParent, ok := s.parent[id]; ok {
		siblings := s.contents[oldParent]
		for i, sib := range siblings {
			if sib == id {
				s.contents[oldParent] = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}

	if dest == "" {
		delete(s.parent, id)
	} else {
		s.parent[id] = dest
		s.contents[dest] = append(s.contents[dest], id)
	}

	s.SetFlag(id, FlagTouch, true)
	return nil
}

// RoomOf follows containment upward from id until it reaches a room (or the
// global bucket, reported as !ok).
func (s *State) RoomOf(id ThingID) (ThingID, bool) {
	cur := id
	for {
		t, ok := s.things[cur]
		if !ok {
			return "", false
		}
		if t.IsRoom {
			return cur, true
		}
		parent, ok := s.parent[cur]
		if !ok {
			return "", false
		}
		cur = parent
	}
}

// Exit resolves a possibly-conditional exit from room in direction dir.
func (s *State) Exit(room ThingID, dir Direction) (ThingID, bool) {
	t, ok := s.things[room]
	if !ok || !t.IsRoom {
		return "", false
	}
	eg, ok := t.Exits[dir]
	if !ok {
		return "", false
	}
	if eg.Door != "" && !s.HasFlag(eg.Door, FlagOpen) {
		return "", false
	}
	if eg.Gated && s.HasFlag(room, eg.Gate) != eg.GateWhenSet {
		return "", false
	}
	return eg.Dest, true
}

func (s *State) Player() ThingID          { return s.player }
func (s *State) SetPlayer(id ThingID)     { s.player = id }
func (s *State) Here() ThingID            { return s.here }
func (s *State) SetHere(id ThingID)       { s.here = id }
func (s *State) Winner() ThingID          { return s.winner }
func (s *State) SetWinner(id ThingID)     { s.winner = id }
func (s *State) ItReferent() ThingID      { return s.itReferent }
func (s *State) SetItReferent(id ThingID) { s.itReferent = id }

func (s *State) GlobalObjects() []ThingID { return s.globals }

func (s *State) RoomLocals(room ThingID) []ThingID { return s.roomLocals[room] }

func (s *State) Rand() *rand.Rand { return s.rnd }

func (s *State) AllThingIDs() []ThingID {
	return s.order
}

// Copy returns a deep-enough copy of s: the thing records themselves are not
// duplicated (they're treated as immutable content once built), but every
// mutable layer is. Validation does not use it; it works on the live state.
func (s *State) Copy() *State {
	cp := &State{
		things:     s.things,
		order:      s.order,
		contents:   make(map[ThingID][]ThingID, len(s.contents)),
		parent:     make(map[ThingID]ThingID, len(s.parent)),
		runtime:    make(map[ThingID]map[Flag]bool, len(s.runtime)),
		globals:    s.globals,
		roomLocals: s.roomLocals,
		player:     s.player,
		here:       s.here,
		winner:     s.winner,
		itReferent: s.itReferent,
		rnd:        s.rnd,
	}
	for k, v := range s.contents {
		cp.contents[k] = append([]ThingID(nil), v...)
	}
	for k, v := range s.parent {
		cp.parent[k] = v
	}
	for k, v := range s.runtime {
		m := make(map[Flag]bool, len(v))
		for f, b := range v {
			m[f] = b
		}
		cp.runtime[k] = m
	}
	return cp
}

// SortedLabels returns every registered Thing's Label, sorted — used by
// debug tooling and tests that need a stable listing.
func (s *State) SortedLabels() []string {
	labels := make([]string, 0, len(s.things))
	for _, id := range s.order {
		labels = append(labels, s.things[id].Label)
	}
	sort.Strings(labels)
	return labels
}
