package parse

import (
	"github.com/ashgrove/grue/internal/perr"
	"github.com/ashgrove/grue/internal/token"
	"github.com/ashgrove/grue/internal/util"
	"github.com/ashgrove/grue/internal/vocab"
	"github.com/ashgrove/grue/internal/world"
)

// level is how deep a container walk recurses into one root, §4.5.2.
type level int

const (
	levelTop level = iota
	levelBottom
	levelAll
)

// getFlags are the cardinality modifiers collected while scanning a noun
// clause, §4.5.
type getFlags struct {
	All bool
	One bool
}

// rootsFor resolves a LocMask into the (root, level) pairs searchList walks,
// per the table in spec.md §4.5.2. If both bits of a HELD/CARRIED or
// IN_ROOM/ON_GROUND pair are set, the level widens to levelAll.
func rootsFor(loc LocMask, w world.World) []struct {
	root  world.ThingID
	level level
} {
	var out []struct {
		root  world.ThingID
		level level
	}
	player := w.Player()
	room := w.Here()

	if loc.Has(Held) && loc.Has(Carried) {
		out = append(out, struct {
			root  world.ThingID
			level level
		}{player, levelAll})
	} else if loc.Has(Held) {
		out = append(out, struct {
			root  world.ThingID
			level level
		}{player, levelTop})
	} else if loc.Has(Carried) {
		out = append(out, struct {
			root  world.ThingID
			level level
		}{player, levelBottom})
	}

	if loc.Has(InRoom) && loc.Has(OnGround) {
		out = append(out, struct {
			root  world.ThingID
			level level
		}{room, levelAll})
	} else if loc.Has(InRoom) {
		out = append(out, struct {
			root  world.ThingID
			level level
		}{room, levelTop})
	} else if loc.Has(OnGround) {
		out = append(out, struct {
			root  world.ThingID
			level level
		}{room, levelBottom})
	}

	return out
}

// recursable reports whether a container's contents should be walked into
// at all, and at which level, per §4.5.2's "open/transparent/surface/search"
// rule.
func recursable(w world.World, id world.ThingID) (bool, level) {
	if w.HasFlag(id, world.FlagSurface) || w.HasFlag(id, world.FlagSearch) {
		return true, levelAll
	}
	if w.HasFlag(id, world.FlagOpen) || w.HasFlag(id, world.FlagTransparent) {
		return true, levelTop
	}
	return false, levelTop
}

// searchList enumerates candidates reachable from root at the given level,
// definition order, recursing per §4.5.2.
func searchList(w world.World, root world.ThingID, lvl level, pred func(world.ThingID) bool, out *[]world.ThingID) {
	for _, child := range w.ContentsOf(root) {
		if lvl != levelBottom && pred(child) {
			*out = append(*out, child)
		}
		if lvl == levelTop {
			continue
		}
		if len(w.ContentsOf(child)) == 0 {
			continue
		}
		ok, childLvl := recursable(w, child)
		if !ok {
			continue
		}
		searchList(w, child, childLvl, pred, out)
	}
}

// thisIt implements §4.5.3: a candidate matches when not invisible, and
// every supplied axis (noun, adjective, gwim flag hint) that is non-empty
// also matches. A missing axis never filters.
func thisIt(w world.World, id world.ThingID, noun, adj, gwimHint string) bool {
	if w.HasFlag(id, world.FlagInvisible) {
		return false
	}
	t, ok := w.GetThing(id)
	if !ok {
		return false
	}
	if noun != "" && !t.HasSynonym(noun) {
		return false
	}
	if adj != "" && !t.HasAdjective(adj) {
		return false
	}
	if gwimHint != "" {
		f, ok := flagByHint(gwimHint)
		if ok && !w.HasFlag(id, f) {
			return false
		}
	}
	return true
}

var hintFlags = map[string]world.Flag{
	"take":        world.FlagTake,
	"container":   world.FlagContainer,
	"open":        world.FlagOpen,
	"transparent": world.FlagTransparent,
	"surface":     world.FlagSurface,
	"search":      world.FlagSearch,
	"invisible":   world.FlagInvisible,
	"light":       world.FlagLight,
	"on":          world.FlagOn,
	"lit":         world.FlagLit,
	"actor":       world.FlagActor,
	"touch":       world.FlagTouch,
	"door":        world.FlagDoor,
}

func flagByHint(hint string) (world.Flag, bool) {
	f, ok := hintFlags[hint]
	return f, ok
}

// getObject implements §4.5.1. gwimHint=="room" short-circuits to the
// current room per §4.4.1's special case.
func getObject(noun, adj, gwimHint string, loc LocMask, flags getFlags, w world.World, v *vocab.Vocabulary) ([]world.ThingID, *perr.ParseError) {
	if gwimHint == "room" {
		return []world.ThingID{w.Here()}, nil
	}

	if adj != "" && noun == "" {
		if roles := v.Lookup(adj); roles.HasPOS(vocab.Object) {
			noun = adj
			adj = ""
		}
	}

	if noun == "" && adj == "" && gwimHint == "" && !flags.All {
		return nil, perr.MissingNoun()
	}

	if loc == 0 {
		loc = Held | Carried | InRoom | OnGround
	}

	var found []world.ThingID
	pred := func(id world.ThingID) bool { return thisIt(w, id, noun, adj, gwimHint) }
	for _, rl := range rootsFor(loc, w) {
		searchList(w, rl.root, rl.level, pred, &found)
	}

	switch {
	case flags.All:
		return found, nil
	case flags.One:
		if len(found) == 0 {
			return nil, nil
		}
		return []world.ThingID{found[w.Rand().Intn(len(found))]}, nil
	case len(found) == 1:
		return found, nil
	case len(found) == 0:
		if g := globalCheck(w, noun, adj, gwimHint); len(g) == 1 {
			return g, nil
		} else if len(g) > 1 {
			labels := labelsOf(w, g)
			return nil, perr.Ambiguous(formatDisambiguation(displayNoun(noun, adj), labels), labels)
		}
		return nil, perr.NotHere()
	default:
		labels := labelsOf(w, found)
		return nil, perr.Ambiguous(formatDisambiguation(displayNoun(noun, adj), labels), labels)
	}
}

// globalCheck searches room-scoped pseudo-objects and world-wide globals
// when a normal container walk finds nothing, §4.5.1 step 6.
func globalCheck(w world.World, noun, adj, gwimHint string) []world.ThingID {
	var found []world.ThingID
	here := w.Here()
	for _, id := range w.RoomLocals(here) {
		if thisIt(w, id, noun, adj, gwimHint) {
			found = append(found, id)
		}
	}
	for _, id := range w.GlobalObjects() {
		if thisIt(w, id, noun, adj, gwimHint) {
			found = append(found, id)
		}
	}
	return found
}

// displayNoun picks the word to show in a disambiguation prompt: the typed
// noun if there was one, else the adjective, else a generic placeholder.
func displayNoun(noun, adj string) string {
	if noun != "" {
		return noun
	}
	if adj != "" {
		return adj
	}
	return "thing"
}

func labelsOf(w world.World, ids []world.ThingID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if t, ok := w.GetThing(id); ok {
			out = append(out, t.Name)
		}
	}
	return out
}

// ResolveClause implements the per-token table of §4.5 for one noun clause,
// firing getObject at each boundary (and/,/but/except) and at clause end.
// The "it" and "me" pseudo-tokens are handled here directly since spec.md
// identifies them by name rather than part of speech.
func ResolveClause(toks []token.Token, begin, end int, v *vocab.Vocabulary, w world.World, loc LocMask, gwimHint string, itReferent world.ThingID) (prso *util.ObjectSet, buts *util.ObjectSet, err *perr.ParseError) {
	prso = util.NewObjectSet()
	buts = util.NewObjectSet()
	target := prso

	var curAdj, curNoun string
	var flags getFlags

	finalize := func() *perr.ParseError {
		if curAdj == "" && curNoun == "" && !flags.All && !flags.One {
			return nil
		}
		ids, gerr := getObject(curNoun, curAdj, gwimHint, loc, flags, w, v)
		if gerr != nil {
			return gerr
		}
		for _, id := range ids {
			target.Add(string(id))
		}
		curAdj, curNoun = "", ""
		flags = getFlags{}
		return nil
	}

	i := begin
	for i < end {
		tok := toks[i]
		lex := tok.Lexeme
		roles := v.Lookup(lex)

		switch {
		case vocab.IsArticle(lex):
		case lex == vocab.WordAll:
			flags.All = true
			if i+1 < end && toks[i+1].Lexeme == vocab.WordOf {
				i++
			}
		case lex == vocab.WordOne:
			flags.One = true
			if i+1 < end && toks[i+1].Lexeme == vocab.WordOf {
				i++
			}
		case lex == vocab.WordBut, lex == vocab.WordExcept:
			if ferr := finalize(); ferr != nil {
				return nil, nil, ferr
			}
			target = buts
		case lex == vocab.WordAnd, lex == ",":
			if ferr := finalize(); ferr != nil {
				return nil, nil, ferr
			}
		case lex == vocab.WordOf:
			// silently absorbed
		case lex == vocab.WordIt:
			if itReferent == "" {
				return nil, nil, perr.NoItReferent()
			}
			target.Add(string(itReferent))
		case lex == vocab.WordMe:
			target.Add(string(w.Player()))
		case roles.HasPOS(vocab.Adjective) && curAdj == "":
			curAdj = lex
		case roles.HasPOS(vocab.Object) && curNoun == "":
			curNoun = lex
		default:
			// buzz-words and numerics are ignored here; they were already
			// validated as legal clause content by the scanner.
		}
		i++
	}

	if ferr := finalize(); ferr != nil {
		return nil, nil, ferr
	}
	return prso, buts, nil
}
