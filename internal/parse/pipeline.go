package parse

import (
	"strings"

	"github.com/ashgrove/grue/internal/perr"
	"github.com/ashgrove/grue/internal/token"
	"github.com/ashgrove/grue/internal/vocab"
	"github.com/ashgrove/grue/internal/world"
)

// Pipeline wires the immutable, world-init-time pieces (vocabulary, syntax
// templates, verb handlers, the daemon scheduler) together into the
// per-turn entry point a driver calls once per line of input.
type Pipeline struct {
	Vocab     *vocab.Vocabulary
	Registry  Registry
	Handlers  HandlerLookup
	Scheduler Scheduler

	// RoomHook resolves the current room's action hook, if any, fresh each
	// turn (the current room can change between turns).
	RoomHook func(w world.World) world.Hook
}

// TurnResult is what a driver loop renders: this turn's full prose output
// and whether it counted as a move.
type TurnResult struct {
	Output string
	Moved  bool
}

// ProcessTurn runs one line of raw input through C1 and then C3-C9,
// consulting and updating cross as needed for orphan merge, continuation,
// OOPS, and AGAIN.
func (p *Pipeline) ProcessTurn(raw string, w *world.State, cross *CrossTurn) TurnResult {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	if len(cross.Continuation) == 0 {
		switch {
		case lower == vocab.WordAgain || lower == vocab.WordAgainAbbr:
			return p.again(w, cross)
		case lower == vocab.WordOops || strings.HasPrefix(lower, vocab.WordOops+" "):
			return p.oops(trimmed, w, cross)
		}
	}
	cross.HadUnknownWordError = false

	var toks []token.Token
	usingContinuation := false
	if len(cross.Continuation) > 0 {
		toks = cross.Continuation
		cross.Continuation = nil
		usingContinuation = true
	} else {
		toks = token.Tokenize(raw)
	}

	if cross.Orphan != nil {
		o := cross.Orphan
		cross.Orphan = nil
		if res, ok := p.tryMergeOrphan(o, toks, w, cross); ok {
			if !usingContinuation {
				cross.PreviousRaw = raw
			}
			return res
		}
		// abandoned: fall through and parse toks as a fresh command
	}

	if !usingContinuation {
		cross.PreviousRaw = raw
	}

	return p.runScanned(toks, w, cross)
}

// runScanned drives C3 through C9 over an already-tokenized command.
func (p *Pipeline) runScanned(toks []token.Token, w *world.State, cross *CrossTurn) TurnResult {
	sk, rest, serr := Scan(toks, p.Vocab)
	cross.InQuote = sk.QuoteFlag
	if serr != nil {
		cross.PreviousError = true
		cross.HadUnknownWordError = serr.Kind() == perr.KindUnknownWord
		if cross.HadUnknownWordError {
			cross.LastUnknownWordPos = serr.Pos()
			for _, t := range toks {
				if t.ByteStart == serr.Pos() {
					cross.LastUnknownWord = t.Lexeme
					break
				}
			}
		}
		return TurnResult{Output: Render(serr)}
	}
	if len(rest) > 0 {
		cross.Continuation = rest
	}

	tmpl, prso, prsi, orphan, gwimNote, merr := Select(sk, toks, p.Registry, w, p.Vocab)
	if merr != nil {
		cross.PreviousError = true
		if orphan != nil {
			cross.Orphan = orphan
		}
		return TurnResult{Output: Render(merr)}
	}

	vres, verr := Validate(w, tmpl, prso, prsi)
	if verr != nil {
		cross.PreviousError = true
		return TurnResult{Output: Render(verr)}
	}

	intent := Intent{
		Action:          tmpl.Action,
		Prso:            vres.Prso,
		Prsi:            vres.Prsi,
		Prep1:           sk.Prep1,
		Prep2:           sk.Prep2,
		Direction:       sk.Direction,
		Meta:            tmpl.Meta,
		ObjectConsuming: tmpl.ObjectConsuming,
	}

	var hook world.Hook
	if p.RoomHook != nil {
		hook = p.RoomHook(w)
	}
	dres := Dispatch(w, intent, p.Handlers, p.Scheduler, hook)

	var out strings.Builder
	for _, m := range vres.AutoTakeMsg {
		out.WriteString(m)
	}
	if gwimNote != "" {
		out.WriteString(gwimNote)
		out.WriteString("\n")
	}
	out.WriteString(dres.Output)

	cross.PreviousError = false
	return TurnResult{Output: out.String(), Moved: dres.Moved}
}

// tryMergeOrphan implements §4.7.2. ok is false when the orphan should be
// abandoned and the caller should parse toks as a fresh command instead.
func (p *Pipeline) tryMergeOrphan(o *Orphan, toks []token.Token, w *world.State, cross *CrossTurn) (TurnResult, bool) {
	if len(toks) == 0 {
		return TurnResult{}, false
	}
	i := 0

	if verbVal, ok := p.Vocab.Lookup(toks[0].Lexeme).ValueFor(vocab.Verb); ok {
		if verbVal != o.Skeleton.Verb {
			return TurnResult{}, false
		}
		i = 1
	}

	if i < len(toks) {
		if prepVal, ok := p.Vocab.Lookup(toks[i].Lexeme).ValueFor(vocab.Preposition); ok {
			if prepVal != o.ExpectedPrep {
				return TurnResult{}, false
			}
			i++
		}
	}

	if i >= len(toks) {
		return TurnResult{}, false
	}
	if !startsNounClause(toks[i].Lexeme, p.Vocab.Lookup(toks[i].Lexeme)) {
		return TurnResult{}, false
	}

	loc, hint := o.Template.Loc1, o.Template.GWIM1
	if o.MissingSlot == 2 {
		loc, hint = o.Template.Loc2, o.Template.GWIM2
	}

	prsoSet, buts, rerr := ResolveClause(toks, i, len(toks), p.Vocab, w, loc, hint, w.ItReferent())
	if rerr != nil {
		cross.PreviousError = true
		return TurnResult{Output: Render(rerr)}, true
	}
	filled := Slot{IDs: idsOf(prsoSet, buts)}
	if filled.Empty() && hint != "" {
		if cands := gwimCandidates(hint, loc, w); len(cands) == 1 {
			filled = Slot{IDs: cands}
		}
	}
	if filled.Empty() {
		cross.PreviousError = true
		return TurnResult{Output: Render(perr.NotHere())}, true
	}

	var prso, prsi Slot
	if o.MissingSlot == 1 {
		prso = filled
		if o.Prsi != nil {
			prsi = *o.Prsi
		}
	} else {
		if o.Prso != nil {
			prso = *o.Prso
		}
		prsi = filled
	}

	vres, verr := Validate(w, o.Template, prso, prsi)
	if verr != nil {
		cross.PreviousError = true
		return TurnResult{Output: Render(verr)}, true
	}

	intent := Intent{
		Action:          o.Template.Action,
		Prso:            vres.Prso,
		Prsi:            vres.Prsi,
		Prep1:           o.Skeleton.Prep1,
		Prep2:           o.Skeleton.Prep2,
		Meta:            o.Template.Meta,
		ObjectConsuming: o.Template.ObjectConsuming,
	}
	var hook world.Hook
	if p.RoomHook != nil {
		hook = p.RoomHook(w)
	}
	dres := Dispatch(w, intent, p.Handlers, p.Scheduler, hook)

	var out strings.Builder
	for _, m := range vres.AutoTakeMsg {
		out.WriteString(m)
	}
	out.WriteString(dres.Output)

	cross.PreviousError = false
	return TurnResult{Output: out.String(), Moved: dres.Moved}, true
}

// oops implements §4.7.4.
func (p *Pipeline) oops(trimmed string, w *world.State, cross *CrossTurn) TurnResult {
	if cross.InQuote {
		return TurnResult{Output: Render(perr.OopsQuoted())}
	}
	fields := strings.SplitN(trimmed, " ", 2)
	var replacement string
	if len(fields) == 2 {
		replacement = strings.TrimSpace(fields[1])
	}
	if replacement == "" {
		return TurnResult{Output: Render(perr.OopsNothingToReplace())}
	}
	if !cross.HadUnknownWordError || cross.PreviousRaw == "" {
		return TurnResult{Output: Render(perr.OopsNoError())}
	}

	prevToks := token.Tokenize(cross.PreviousRaw)
	badLen := -1
	for _, t := range prevToks {
		if t.ByteStart == cross.LastUnknownWordPos {
			badLen = t.ByteLen
			break
		}
	}
	if badLen < 0 {
		return TurnResult{Output: Render(perr.OopsNoError())}
	}

	corrected := cross.PreviousRaw[:cross.LastUnknownWordPos] + replacement + cross.PreviousRaw[cross.LastUnknownWordPos+badLen:]
	cross.HadUnknownWordError = false
	return p.ProcessTurn(corrected, w, cross)
}

// again implements §4.7.5.
func (p *Pipeline) again(w *world.State, cross *CrossTurn) TurnResult {
	if cross.PreviousRaw == "" {
		return TurnResult{Output: Render(perr.AgainNoCmd())}
	}
	if cross.PreviousError {
		return TurnResult{Output: Render(perr.AgainMistake())}
	}
	return p.ProcessTurn(cross.PreviousRaw, w, cross)
}
