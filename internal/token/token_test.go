package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_EmptyLine(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t  "))
}

func TestTokenize_Lowercases(t *testing.T) {
	toks := Tokenize("Take BRASS Lantern")
	var lexemes []string
	for _, tok := range toks {
		lexemes = append(lexemes, tok.Lexeme)
	}
	assert.Equal(t, []string{"take", "brass", "lantern"}, lexemes)
}

func TestTokenize_SplitsPunctuation(t *testing.T) {
	toks := Tokenize(`take lamp, then open "door"`)
	var lexemes []string
	for _, tok := range toks {
		lexemes = append(lexemes, tok.Lexeme)
	}
	assert.Equal(t, []string{"take", "lamp", ",", "then", "open", `"`, "door", `"`}, lexemes)
}

func TestTokenize_PositionsTrackOriginalInput(t *testing.T) {
	toks := Tokenize("go north")
	assert.Equal(t, 0, toks[0].ByteStart)
	assert.Equal(t, 2, toks[0].ByteLen)
	assert.Equal(t, 3, toks[1].ByteStart)
	assert.Equal(t, 5, toks[1].ByteLen)
}

func TestTokenize_Integer(t *testing.T) {
	toks := Tokenize("wait 10000")
	assert.True(t, toks[1].HasNum)
	assert.Equal(t, 10000, toks[1].Num)
}

func TestTokenize_IntegerOutOfRangeIsLexical(t *testing.T) {
	toks := Tokenize("wait 10001")
	assert.False(t, toks[1].HasNum)
	assert.Equal(t, "10001", toks[1].Lexeme)
}

func TestTokenize_ClockTimeFixup(t *testing.T) {
	// hours < 8 are promoted by 12 (treated as p.m.)
	toks := Tokenize("set clock to 7:30")
	assert.True(t, toks[len(toks)-1].HasNum)
	assert.Equal(t, (7+12)*60+30, toks[len(toks)-1].Num)
}

func TestTokenize_ClockTimeNoFixupAfter8(t *testing.T) {
	toks := Tokenize("set clock to 14:15")
	assert.True(t, toks[len(toks)-1].HasNum)
	assert.Equal(t, 14*60+15, toks[len(toks)-1].Num)
}

func TestTokenize_ClockTimeInvalidFallsBackToLexeme(t *testing.T) {
	toks := Tokenize("set clock to 99:99")
	assert.False(t, toks[len(toks)-1].HasNum)
	assert.Equal(t, "99:99", toks[len(toks)-1].Lexeme)
}
