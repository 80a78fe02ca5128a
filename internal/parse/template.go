package parse

import "github.com/ashgrove/grue/internal/world"

// LocMask is a bitmask over the positions C5's container walk searches, plus
// policy bits consulted by C6 validation. Spec.md §4.4/§4.6.
type LocMask uint

const (
	Held     LocMask = 1 << iota // player's direct holdings, level TOP
	Carried                      // player's holdings, nested only, level BOTTOM
	InRoom                       // current room, level TOP
	OnGround                     // current room, nested only, level BOTTOM

	Many    // slot accepts more than one object
	Have    // slot requires the object already be held
	Take    // auto-take is permitted
	TryTake // treat a non-takeable object as held regardless of location
)

// Has reports whether m carries bit.
func (m LocMask) Has(bit LocMask) bool { return m&bit != 0 }

// Template is one valid grammar for a verb, spec.md §4.4.
type Template struct {
	NumObjects int // 0, 1, or 2

	Prep1 string // preposition required before noun clause 1, "" if none
	Prep2 string // preposition required before noun clause 2, "" if none

	// GWIM1/GWIM2 name the world flag a missing slot's inferred object must
	// carry. Empty means this slot cannot be GWIMed.
	GWIM1, GWIM2 string

	// Loc1/Loc2 are the search positions and policy bits for each slot.
	Loc1, Loc2 LocMask

	Action string

	// Meta and ObjectConsuming propagate to the built Intent; see Intent's
	// doc comments.
	Meta            bool
	ObjectConsuming bool
}

// matches reports whether t is structurally consistent with a scanned
// skeleton carrying ncn noun clauses and the given prepositions, per the
// match predicate of spec.md §4.4 step 3.
func (t Template) matches(ncn int, prep1, prep2 string) bool {
	if ncn > t.NumObjects {
		return false
	}
	if ncn >= 1 && prep1 != t.Prep1 {
		return false
	}
	if ncn >= 2 && prep2 != t.Prep2 {
		return false
	}
	return true
}

func (t Template) exact(ncn int) bool { return t.NumObjects == ncn }

// Registry supplies the verb/preposition/direction surface vocabulary and
// this verb's syntax templates to the pipeline. internal/verb implements
// this so internal/parse never has to import it (it would be a cycle: verb
// needs parse.Intent/parse.Handler).
type Registry interface {
	Templates(verb string) []Template
	VerbWords() map[string][]string
	PrepWords() map[string][]string
}

// Result is what a verb handler returns: prose output and whether it
// preempted the dispatcher's default post-processing.
type Result struct {
	Output  string
	Handled bool
}

// Handled builds a Result that preempts further default processing.
func Handled(output string) Result {
	return Result{Output: output, Handled: true}
}

// Handler is the verb handler contract, spec.md §6.3: reads Intent.Action,
// .Prso, .Prsi only, mutates world state in place, and returns its output.
type Handler func(s *world.State, intent Intent) Result
