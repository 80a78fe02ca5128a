// Package world implements the world model that the command pipeline
// consumes but does not define the content of: rooms and objects ("things")
// addressed by a stable identifier, a two-layer flag composition (static
// plus runtime override), containment, and conditional room exits.
package world

import "github.com/google/uuid"

// ThingID stably identifies a room or object for the lifetime of a World.
// Cross-references between things (containment, exits) are always IDs,
// never pointers, so the world graph can never form an unintended alias or
// reference cycle at the language level.
type ThingID string

// NewThingID mints a fresh stable identifier, backed by a UUID so that ids
// minted across independent world-construction runs never collide.
func NewThingID() ThingID {
	return ThingID(uuid.New().String())
}

// Exit describes one way out of a room.
type Exit struct {
	// Dest is the room this exit leads to.
	Dest ThingID

	// Door, if non-empty, names a Thing whose FlagOpen must be set for this
	// exit to be usable.
	Door ThingID

	// When Gated is true, the exit is additionally usable only while the
	// room's Gate flag equals GateWhenSet. An exit with no gating condition,
	// the common case, leaves Gated false and Gate/GateWhenSet at their zero
	// values.
	Gated   bool
	Gate    Flag
	GateWhenSet bool
}

// Thing is a room or an object: the single addressable unit of the world
// model. Rooms set IsRoom and populate Exits; objects leave Exits empty.
type Thing struct {
	ID    ThingID
	Label string // stable human-readable name, unique, e.g. "BRASS-LANTERN"
	Name  string // short name used in prose, e.g. "brass lantern"

	// Description is shown on LOOK/EXAMINE.
	Description string

	// Synonyms and Adjectives are the vocabulary this Thing registers:
	// tokens that can appear as the noun or the adjective of a clause that
	// resolves to it. A Thing with no synonyms can still be GWIMed or
	// referenced via "it", but never typed directly.
	Synonyms   []string
	Adjectives []string

	// StaticFlags is the flag layer fixed at world construction.
	StaticFlags FlagSet

	IsRoom bool
	Exits  map[Direction]Exit

	// ActionHook, when non-nil, is consulted by the dispatcher before and
	// after the default verb handler runs and may preempt both.
	ActionHook Hook
}

// Hook is a room- or object-level interception point. rarg is "before" or
// "after". Handled reports whether the hook fully handled the command
// (preempting further default processing).
type Hook func(w World, rarg string, action string, prso, prsi []ThingID) (output string, handled bool)

// HasSynonym reports whether word is one of t's noun synonyms.
func (t *Thing) HasSynonym(word string) bool {
	for _, s := range t.Synonyms {
		if s == word {
			return true
		}
	}
	return false
}

// HasAdjective reports whether word is one of t's adjectives.
func (t *Thing) HasAdjective(word string) bool {
	for _, a := range t.Adjectives {
		if a == word {
			return true
		}
	}
	return false
}
