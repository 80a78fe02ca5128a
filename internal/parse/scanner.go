package parse

import (
	"github.com/ashgrove/grue/internal/perr"
	"github.com/ashgrove/grue/internal/token"
	"github.com/ashgrove/grue/internal/vocab"
)

// Scan performs C3: one left-to-right pass over tokens producing a
// Skeleton. rest is the continuation token slice stashed after a "."/"then"
// terminator (nil if none was seen before the tokens ran out).
//
// This implements the state machine of spec.md §4.3 as two cooperating
// passes rather than one flat loop with a state enum: the outer pass tracks
// EXPECT_VERB/BETWEEN_CLAUSES, delegating IN_NC1/IN_NC2 to
// scanNounClauseExtent, which is the natural split since a noun clause's
// internal grammar (articles, adjectives, and/but lists) is unrelated to
// verb/preposition recognition.
func Scan(toks []token.Token, v *vocab.Vocabulary) (sk Skeleton, rest []token.Token, err *perr.ParseError) {
	if len(toks) == 0 {
		return sk, nil, perr.Empty()
	}

	i := 0
	for i < len(toks) {
		tok := toks[i]
		lex := tok.Lexeme

		if lex == `"` {
			sk.QuoteFlag = !sk.QuoteFlag
			i++
			continue
		}
		if sk.QuoteFlag {
			i++
			continue
		}
		if lex == "." || lex == vocab.WordThen {
			return sk, toks[i+1:], nil
		}

		roles := v.Lookup(lex)

		if sk.Verb == "" {
			if dirVal, ok := roles.ValueFor(vocab.Direction); ok && !roles.HasPOS(vocab.Verb) {
				sk.Verb = "go"
				sk.VerbPos = tok.ByteStart
				sk.Direction = dirVal
				i++
				continue
			}
			if verbVal, ok := roles.ValueFor(vocab.Verb); ok {
				sk.Verb = verbVal
				sk.VerbPos = tok.ByteStart
				i++
				continue
			}
			if len(roles) == 0 {
				return sk, nil, perr.UnknownWord(tok.ByteStart, tok.Lexeme)
			}
			return sk, nil, perr.CantUse(tok.ByteStart, tok.Lexeme)
		}

		if dirVal, ok := roles.ValueFor(vocab.Direction); ok && sk.Direction == "" && (sk.Verb == "go" || !roles.HasPOS(vocab.Preposition)) {
			sk.Direction = dirVal
			i++
			continue
		}

		if prepVal, ok := roles.ValueFor(vocab.Preposition); ok {
			if sk.Prep1 == "" && sk.Ncn == 0 {
				sk.Prep1 = prepVal
				sk.Prep1Pos = tok.ByteStart
				i++
				continue
			}
			if sk.Prep2 == "" && sk.Ncn == 1 {
				sk.Prep2 = prepVal
				sk.Prep2Pos = tok.ByteStart
				i++
				continue
			}
			return sk, toks[i:], nil
		}

		if startsNounClause(lex, roles) {
			if sk.Ncn >= 2 {
				return sk, nil, perr.BadSyntax()
			}
			begin := i
			end, cerr := scanNounClauseExtent(toks, i, v)
			if cerr != nil {
				return sk, nil, cerr
			}
			sk.Ncn++
			if sk.Ncn == 1 {
				sk.NC1Begin, sk.NC1End = begin, end
			} else {
				sk.NC2Begin, sk.NC2End = begin, end
			}
			i = end
			continue
		}

		if len(roles) == 0 {
			return sk, nil, perr.UnknownWord(tok.ByteStart, tok.Lexeme)
		}
		return sk, nil, perr.CantUse(tok.ByteStart, tok.Lexeme)
	}

	if sk.Verb == "" {
		return sk, nil, perr.NoVerb()
	}
	return sk, nil, nil
}

func startsNounClause(lex string, roles vocab.RoleSet) bool {
	if vocab.IsArticle(lex) {
		return true
	}
	if lex == vocab.WordAll || lex == vocab.WordOne || lex == vocab.WordIt || lex == vocab.WordMe {
		return true
	}
	return roles.HasPOS(vocab.Adjective) || roles.HasPOS(vocab.Object)
}

// scanNounClauseExtent consumes the body of one noun clause starting at
// index start (which satisfied startsNounClause), implementing the
// per-token table of spec.md §4.3's "inside a noun clause" section plus the
// "X of Y" absorption and adjective/object ambiguity-breaker rules.
func scanNounClauseExtent(toks []token.Token, start int, v *vocab.Vocabulary) (int, *perr.ParseError) {
	i := start
	for i < len(toks) {
		tok := toks[i]
		lex := tok.Lexeme

		if lex == "." || lex == vocab.WordThen {
			break
		}
		roles := v.Lookup(lex)
		if roles.HasPOS(vocab.Preposition) {
			break
		}

		switch {
		case vocab.IsArticle(lex):
		case lex == vocab.WordAll, lex == vocab.WordOne:
			if i+1 < len(toks) && toks[i+1].Lexeme == vocab.WordOf {
				i++
			}
		case lex == vocab.WordOf:
			// absorbed silently; only ever reached here when not already
			// skipped by the all/one branch above (e.g. "piece of glass").
		case lex == vocab.WordIt, lex == vocab.WordMe:
		case lex == vocab.WordAnd, lex == ",":
		case lex == vocab.WordBut, lex == vocab.WordExcept:
		case roles.HasPOS(vocab.Adjective) && i+1 < len(toks) && v.Lookup(toks[i+1].Lexeme).HasPOS(vocab.Object):
			// ambiguity breaker: adjective followed by a further object
			// role stays an adjective; the clause continues.
		case roles.HasPOS(vocab.Adjective):
		case roles.HasPOS(vocab.Object):
		case tok.HasNum:
		case roles.HasPOS(vocab.BuzzWord):
		default:
			if len(roles) == 0 {
				return i, perr.UnknownWord(tok.ByteStart, tok.Lexeme)
			}
			return i, perr.CantUse(tok.ByteStart, tok.Lexeme)
		}
		i++
	}
	return i, nil
}
