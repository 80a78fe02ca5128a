package parse

import (
	"github.com/ashgrove/grue/internal/token"
	"github.com/ashgrove/grue/internal/world"
)

// Orphan is the suspended state left behind by C4/C7 when a template
// matched structurally but a slot has neither a parsed object nor a
// successful GWIM, spec.md §4.7.1.
type Orphan struct {
	Skeleton Skeleton
	Template Template

	// MissingSlot is 1 or 2, identifying which noun clause is absent.
	MissingSlot int

	// ExpectedPrep is the preposition the merged input's prep1 must equal
	// (or be absent), §4.7.2.
	ExpectedPrep string

	// KnownDirectObject, if non-empty, is already-resolved prso used only
	// to render the "what do you want to <verb> the X ...?" prompt variant.
	KnownDirectObject world.ThingID

	Prso *Slot
	Prsi *Slot
}

// CrossTurn is the cross-turn parse memory of spec.md §9: previous raw
// input, a pending orphan, a pending continuation, and the raw line AGAIN
// should replay. It is carried alongside the world, never as global state.
// The it-referent itself lives on world.State (set at the end of Dispatch
// for object-consuming verbs) since it must survive even a fresh CrossTurn;
// clause resolution reads it straight off the world.
type CrossTurn struct {
	PreviousRaw   string
	PreviousError bool // true if PreviousRaw's turn ended in a parse error

	// LastUnknownWordPos/LastUnknownWord record the previous turn's
	// unknown-word error for OOPS, §4.7.4.
	LastUnknownWordPos  int
	LastUnknownWord     string
	HadUnknownWordError bool

	Orphan       *Orphan
	Continuation []token.Token

	// InQuote is the scanner's QuoteFlag carried past the end of the last
	// scanned line: true when that line left a quoted string unterminated,
	// §4.7.4. OOPS is refused while this holds, since there is no word
	// outside the quote left to replace.
	InQuote bool
}
