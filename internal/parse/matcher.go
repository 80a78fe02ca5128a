package parse

import (
	"github.com/ashgrove/grue/internal/perr"
	"github.com/ashgrove/grue/internal/token"
	"github.com/ashgrove/grue/internal/util"
	"github.com/ashgrove/grue/internal/vocab"
	"github.com/ashgrove/grue/internal/world"
)

// idsOf flattens set into ThingIDs in insertion order, dropping anything
// present in buts — the accumulator "but"/"except" switches to per
// spec.md §4.5, e.g. "take all but the lamp" resolves prso to everything
// matched by ALL, then subtracts the lamp named after "but".
func idsOf(set, buts *util.ObjectSet) []world.ThingID {
	els := set.Elements()
	out := make([]world.ThingID, 0, len(els))
	for _, e := range els {
		if buts != nil && buts.Has(e) {
			continue
		}
		out = append(out, world.ThingID(e))
	}
	return out
}

// gwimCandidates searches loc for objects carrying the given flag hint,
// per §4.4.1. hint=="room" short-circuits to the current room.
func gwimCandidates(hint string, loc LocMask, w world.World) []world.ThingID {
	if hint == "room" {
		return []world.ThingID{w.Here()}
	}
	if loc == 0 {
		loc = Held | Carried | InRoom | OnGround
	}
	var found []world.ThingID
	pred := func(id world.ThingID) bool { return thisIt(w, id, "", "", hint) }
	for _, rl := range rootsFor(loc, w) {
		searchList(w, rl.root, rl.level, pred, &found)
	}
	return found
}

// resolveSlot resolves slot n (1 or 2) of template t against the scanned
// skeleton: from its parsed noun clause if present, or nil/"not present" if
// n is beyond sk.Ncn (the caller is then responsible for GWIM/orphan).
func resolveSlot(t Template, n int, sk Skeleton, toks []token.Token, v *vocab.Vocabulary, w world.World) (slot Slot, present bool, err *perr.ParseError) {
	begin, end, ok := sk.clauseRange(n)
	if !ok {
		return Slot{}, false, nil
	}
	loc, hint := t.Loc1, t.GWIM1
	if n == 2 {
		loc, hint = t.Loc2, t.GWIM2
	}
	prso, buts, rerr := ResolveClause(toks, begin, end, v, w, loc, hint, w.ItReferent())
	if rerr != nil {
		return Slot{}, true, rerr
	}
	return Slot{IDs: idsOf(prso, buts)}, true, nil
}

// Select implements C4: it picks a syntax template consistent with the
// scanned skeleton, resolving present noun clauses and invoking GWIM for
// missing ones, per spec.md §4.4.
func Select(sk Skeleton, toks []token.Token, reg Registry, w world.World, v *vocab.Vocabulary) (tmpl Template, prso, prsi Slot, orphan *Orphan, gwimNote string, err *perr.ParseError) {
	if sk.Verb == "" {
		return Template{}, Slot{}, Slot{}, nil, "", perr.NoVerb()
	}

	all := reg.Templates(sk.Verb)
	var exact, higher []Template
	for _, t := range all {
		if !t.matches(sk.Ncn, sk.Prep1, sk.Prep2) {
			continue
		}
		if t.exact(sk.Ncn) {
			exact = append(exact, t)
		} else {
			higher = append(higher, t)
		}
	}

	if len(exact) > 0 {
		t := exact[0]
		s1, _, e1 := resolveSlot(t, 1, sk, toks, v, w)
		if e1 != nil {
			return Template{}, Slot{}, Slot{}, nil, "", e1
		}
		s2, _, e2 := resolveSlot(t, 2, sk, toks, v, w)
		if e2 != nil {
			return Template{}, Slot{}, Slot{}, nil, "", e2
		}
		return t, s1, s2, nil, "", nil
	}

	for _, t := range higher {
		s1, present1, e1 := resolveSlot(t, 1, sk, toks, v, w)
		if e1 != nil {
			return Template{}, Slot{}, Slot{}, nil, "", e1
		}
		s2, present2, e2 := resolveSlot(t, 2, sk, toks, v, w)
		if e2 != nil {
			return Template{}, Slot{}, Slot{}, nil, "", e2
		}

		note := ""
		ok := true
		if t.NumObjects >= 1 && !present1 {
			if t.GWIM1 == "" {
				ok = false
			} else {
				cands := gwimCandidates(t.GWIM1, t.Loc1, w)
				if len(cands) != 1 {
					ok = false
				} else {
					s1 = Slot{IDs: cands}
					note = formatGWIMNote(w, cands[0], t.Prep1, sk.Prep2 != "" || (sk.Ncn == 1 && sk.Prep1 != ""))
				}
			}
		}
		if ok && t.NumObjects >= 2 && !present2 {
			if t.GWIM2 == "" {
				ok = false
			} else {
				cands := gwimCandidates(t.GWIM2, t.Loc2, w)
				if len(cands) != 1 {
					ok = false
				} else {
					s2 = Slot{IDs: cands}
					if note == "" {
						note = formatGWIMNote(w, cands[0], t.Prep2, false)
					}
				}
			}
		}

		if ok {
			return t, s1, s2, nil, note, nil
		}
	}

	if len(higher) > 0 {
		t := higher[0]
		o, prompt := buildOrphan(t, sk, toks, v, w)
		return Template{}, Slot{}, Slot{}, o, "", perr.Orphan(prompt)
	}

	return Template{}, Slot{}, Slot{}, nil, "", perr.BadSyntax()
}

func buildOrphan(t Template, sk Skeleton, toks []token.Token, v *vocab.Vocabulary, w world.World) (*Orphan, string) {
	missing := sk.Ncn + 1
	if missing > t.NumObjects {
		missing = t.NumObjects
	}
	o := &Orphan{Skeleton: sk, Template: t, MissingSlot: missing}

	var known string
	if missing == 2 {
		o.ExpectedPrep = t.Prep2
		if s, present, err := resolveSlot(t, 1, sk, toks, v, w); present && err == nil {
			o.Prso = &s
			if id, ok := s.Single(); ok {
				o.KnownDirectObject = id
				if th, ok2 := w.GetThing(id); ok2 {
					known = th.Name
				}
			}
		}
	} else {
		o.ExpectedPrep = t.Prep1
	}

	return o, formatOrphanPrompt(sk.Verb, o.ExpectedPrep, known)
}
