// Package parse implements the command pipeline's core: the clause scanner
// (C3), syntax matcher with GWIM (C4), object resolver (C5), validation
// (C6), cross-turn memory for orphan/continuation/OOPS/AGAIN (C7), the
// dispatcher (C8), and the output/error printer (C9).
package parse

// Skeleton is the fixed-shape structural parse result of C3, spec.md §3.2
// (the "ITBL"/"OTBL" record). Only the first Ncn (nc_begin, nc_end) pairs
// are meaningful; the rest are left zero.
type Skeleton struct {
	Verb    string
	VerbPos int

	Prep1    string
	Prep1Pos int
	Prep2    string
	Prep2Pos int

	NC1Begin, NC1End int
	NC2Begin, NC2End int

	// Direction carries a scanned direction word's canonical name (e.g.
	// "north") when the verb is a movement verb. Directions are resolved
	// outside the normal object/noun-clause machinery since they name a
	// compass value, not a world thing.
	Direction string

	// Ncn is how many noun clauses were scanned, 0-2.
	Ncn int

	// AndFlag, Merged and Oflag name the "inside an and/, object list",
	// "consumed a pending orphan" and "left an orphan behind" states of the
	// record. Scan and the pipeline never set them: object lists are
	// handled inside ResolveClause, and a pending orphan is carried by
	// CrossTurn.Orphan.
	AndFlag bool
	Merged  bool
	Oflag   bool

	// QuoteFlag is true while inside a SAY string (a quoted payload).
	QuoteFlag bool
}

// clauseRange reports the (begin, end) token range of noun clause n (1 or
// 2), or (0, 0, false) if that clause was never scanned.
func (s Skeleton) clauseRange(n int) (begin, end int, ok bool) {
	switch n {
	case 1:
		if s.Ncn >= 1 {
			return s.NC1Begin, s.NC1End, true
		}
	case 2:
		if s.Ncn >= 2 {
			return s.NC2Begin, s.NC2End, true
		}
	}
	return 0, 0, false
}
