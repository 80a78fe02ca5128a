// Package token implements the command pipeline's lexer (C1): turning one
// line of raw player input into a finite, random-access sequence of tokens.
package token

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.AmericanEnglish)

// Token is a lowercased lexeme together with its position in the original
// input. Punctuation (".", ",", "\"") is its own token. A token recognized
// as a number carries its parsed value in Num and HasNum set.
type Token struct {
	// Lexeme is the lowercased text of the token.
	Lexeme string

	// ByteStart is the byte offset of the token in the original,
	// unlowercased input line.
	ByteStart int

	// ByteLen is the byte length of the token in the original input line.
	ByteLen int

	// HasNum reports whether this token was recognized as numeric.
	HasNum bool

	// Num is the parsed numeric value, meaningful only when HasNum is true.
	Num int
}

// IsPunct reports whether tok is one of the single-character punctuation
// tokens: ".", ",", or "\"".
func (tok Token) IsPunct() bool {
	return tok.Lexeme == "." || tok.Lexeme == "," || tok.Lexeme == `"`
}

const punctChars = `.,"`

// Tokenize splits line into a sequence of Tokens per the lexer rules:
// lowercase, split on whitespace, split punctuation (".", ",", "\"") off
// into their own tokens, and recognize numeric literals. Tokenize never
// fails: an empty or whitespace-only line yields an empty slice.
func Tokenize(line string) []Token {
	var toks []Token

	runes := []rune(line)
	n := len(runes)
	i := 0
	byteOffset := 0

	// byteOffset tracking must walk the same runes we're slicing, since
	// multi-byte runes make byte offsets diverge from rune indices.
	runeByteStart := make([]int, n+1)
	for idx, r := range runes {
		runeByteStart[idx] = byteOffset
		byteOffset += len(string(r))
	}
	runeByteStart[n] = byteOffset

	for i < n {
		if isSpace(runes[i]) {
			i++
			continue
		}

		if strings.ContainsRune(punctChars, runes[i]) {
			lex := string(runes[i])
			toks = append(toks, makeToken(lex, runeByteStart[i], runeByteStart[i+1]-runeByteStart[i]))
			i++
			continue
		}

		start := i
		for i < n && !isSpace(runes[i]) && !strings.ContainsRune(punctChars, runes[i]) {
			i++
		}
		lex := string(runes[start:i])
		toks = append(toks, makeToken(lex, runeByteStart[start], runeByteStart[i]-runeByteStart[start]))
	}

	return toks
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

func makeToken(raw string, start, byteLen int) Token {
	lower := lowerCaser.String(raw)
	tok := Token{Lexeme: lower, ByteStart: start, ByteLen: byteLen}

	if raw == "." || raw == "," || raw == `"` {
		return tok
	}

	if val, ok := parseInteger(lower); ok {
		tok.HasNum = true
		tok.Num = val
		return tok
	}

	if val, ok := parseClockTime(lower); ok {
		tok.HasNum = true
		tok.Num = val
		return tok
	}

	return tok
}

// parseInteger recognizes a plain decimal integer in [0, 10000].
func parseInteger(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	val, err := strconv.Atoi(s)
	if err != nil || val < 0 || val > 10000 {
		return 0, false
	}
	return val, true
}

// parseClockTime recognizes "H:MM" with 0<=H<=23, 0<=MM<=59 and applies the
// Infocom-style p.m. fixup: hours below 8 are promoted by 12 before being
// converted to minutes-since-midnight. This mapping is intentionally not
// invertible; see SPEC_FULL.md open question 3.
func parseClockTime(s string) (int, bool) {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return 0, false
	}
	hPart, mPart := s[:colon], s[colon+1:]
	if len(hPart) == 0 || len(mPart) != 2 {
		return 0, false
	}
	h, ok := parseDigits(hPart)
	if !ok || h < 0 || h > 23 {
		return 0, false
	}
	m, ok := parseDigits(mPart)
	if !ok || m < 0 || m > 59 {
		return 0, false
	}
	if h < 8 {
		h += 12
	}
	return h*60 + m, true
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
