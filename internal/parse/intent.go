package parse

import "github.com/ashgrove/grue/internal/world"

// Slot is a resolved object slot: zero, one, or many world things. Modeling
// it as a tagged count rather than a bare slice makes the "exactly one" vs
// "many allowed" distinction explicit at every call site instead of an
// implicit len() check. See spec.md §9's "tagged unions, not sparse
// records" note.
type Slot struct {
	IDs []world.ThingID
}

// Single returns the slot's sole id and true if it holds exactly one thing.
func (s Slot) Single() (world.ThingID, bool) {
	if len(s.IDs) == 1 {
		return s.IDs[0], true
	}
	return "", false
}

// Empty reports whether the slot holds nothing.
func (s Slot) Empty() bool { return len(s.IDs) == 0 }

// Intent is the finished (action, prso, prsi) triple handed to the
// dispatcher, spec.md §9.
type Intent struct {
	Action string
	Prso   Slot
	Prsi   Slot
	Prep1  string
	Prep2  string

	// Direction carries a scanned direction value for movement verbs; empty
	// for everything else.
	Direction string

	// Meta marks verbs (SCORE, VERBOSE, BRIEF, SUPERBRIEF, VERSION) that
	// skip post-hooks, it-referent update, and clock advance (§4.8).
	Meta bool

	// ObjectConsuming marks verbs whose prso, if a singleton, updates the
	// it-referent at the end of dispatch (§4.5.4).
	ObjectConsuming bool
}
