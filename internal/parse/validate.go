package parse

import (
	"github.com/ashgrove/grue/internal/perr"
	"github.com/ashgrove/grue/internal/world"
)

// ValidateResult carries the slots as accepted by validation (after
// auto-take has possibly moved objects) plus any "(Taken)" notices to
// append to this turn's output, §4.6.3.
type ValidateResult struct {
	Prso, Prsi  Slot
	AutoTakeMsg []string
}

// Validate implements C6: multiplicity, accessibility, and holding policy,
// operating on w directly: an auto-take moves the object in the live state,
// so the handler that runs next already sees it held.
func Validate(w *world.State, t Template, prso, prsi Slot) (ValidateResult, *perr.ParseError) {
	var res ValidateResult

	if !t.Loc1.Has(Many) && len(prso.IDs) > 1 {
		return res, perr.TooManyNouns()
	}
	if !t.Loc2.Has(Many) && len(prsi.IDs) > 1 {
		return res, perr.TooManyNouns()
	}

	for _, id := range prso.IDs {
		if !accessible(w, id) {
			return res, perr.NotHere()
		}
	}
	for _, id := range prsi.IDs {
		if !accessible(w, id) {
			return res, perr.NotHere()
		}
	}

	s1, msgs1, err := applyHoldingPolicy(w, t.Loc1, prso)
	if err != nil {
		return res, err
	}
	s2, msgs2, err := applyHoldingPolicy(w, t.Loc2, prsi)
	if err != nil {
		return res, err
	}

	res.Prso, res.Prsi = s1, s2
	res.AutoTakeMsg = append(res.AutoTakeMsg, msgs1...)
	res.AutoTakeMsg = append(res.AutoTakeMsg, msgs2...)
	return res, nil
}

// isPseudoHeld reports whether id is an always-held pseudo-object, §4.6.3.
// Only the player ("me") counts; there is no separate "hands" object.
func isPseudoHeld(w *world.State, id world.ThingID) bool {
	return id == w.Player()
}

func heldByWinner(w *world.State, id world.ThingID) bool {
	if isPseudoHeld(w, id) {
		return true
	}
	loc, ok := w.LocationOf(id)
	return ok && loc == w.Winner()
}

// accessible implements §4.6.2: directly carried, in the current room or
// the winner's carrier, a global/room-local, or inside an accessible open
// container.
func accessible(w *world.State, id world.ThingID) bool {
	if isPseudoHeld(w, id) {
		return true
	}
	for _, g := range w.GlobalObjects() {
		if g == id {
			return true
		}
	}
	here := w.Here()
	for _, rl := range w.RoomLocals(here) {
		if rl == id {
			return true
		}
	}

	carrier, hasCarrier := w.LocationOf(w.Winner())
	if ct, ok := w.GetThing(carrier); hasCarrier && ok && ct.IsRoom {
		hasCarrier = false
	}

	loc, ok := w.LocationOf(id)
	if !ok {
		return false
	}
	if loc == w.Winner() || loc == here || (hasCarrier && loc == carrier) {
		return true
	}
	// inside a container: the chain up to the room/winner must stay open
	// (or transparent) the whole way.
	cur := id
	for {
		parentID, ok := w.LocationOf(cur)
		if !ok {
			return false
		}
		if parentID == w.Winner() || parentID == here || (hasCarrier && parentID == carrier) {
			return true
		}
		if !w.HasFlag(parentID, world.FlagOpen) && !w.HasFlag(parentID, world.FlagTransparent) {
			return false
		}
		cur = parentID
	}
}

func applyHoldingPolicy(w *world.State, loc LocMask, slot Slot) (Slot, []string, *perr.ParseError) {
	var notes []string
	ids := make([]world.ThingID, len(slot.IDs))
	copy(ids, slot.IDs)

	for i, id := range ids {
		if loc.Has(TryTake) {
			continue
		}
		if loc.Has(Have) {
			if !heldByWinner(w, id) {
				t, _ := w.GetThing(id)
				name := string(id)
				if t != nil {
					name = t.Name
				}
				return Slot{}, nil, perr.DontHave(name)
			}
			continue
		}
		if loc.Has(Take) && !heldByWinner(w, id) && w.HasFlag(id, world.FlagTake) {
			if err := w.Move(id, w.Winner()); err == nil {
				w.SetFlag(id, world.FlagTouch, true)
				notes = append(notes, "(Taken)\n\n")
				ids[i] = id
			}
		}
	}

	return Slot{IDs: ids}, notes, nil
}
