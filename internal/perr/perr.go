// Package perr defines the closed taxonomy of errors that the command
// pipeline can raise. Every kind resolves to a specific user-facing string
// and carries enough structure for callers to recover the offending token
// position or ambiguous candidate list without parsing the message text.
package perr

import "fmt"

// Kind identifies one member of the closed error taxonomy.
type Kind int

const (
	KindEmpty Kind = iota
	KindUnknownWord
	KindCantUse
	KindNoVerb
	KindMissingNoun
	KindTooManyNouns
	KindBadSyntax
	KindAmbiguous
	KindNotHere
	KindDontHave
	KindNoItReferent
	KindOrphan
	KindAgainNoCmd
	KindAgainMistake
	KindOopsNoError
	KindOopsQuoted
	KindOopsNothingToReplace
)

// ParseError is a pipeline-stage error with both a technical message (for
// logs) and a player-facing GameMessage.
type ParseError struct {
	kind  Kind
	msg   string
	human string
	pos   int
	wrap  error

	// Candidates holds the ambiguous candidate set for KindAmbiguous errors.
	Candidates []string
}

func (e *ParseError) Error() string { return e.msg }

// GameMessage is the string that should be shown to the player.
func (e *ParseError) GameMessage() string { return e.human }

// Kind reports which member of the taxonomy this error is.
func (e *ParseError) Kind() Kind { return e.kind }

// Pos reports the byte offset, in the raw input line, of the token the error
// is anchored to, or -1 if the error is not anchored to a specific token.
func (e *ParseError) Pos() int { return e.pos }

func (e *ParseError) Unwrap() error { return e.wrap }

func new(kind Kind, pos int, human string) *ParseError {
	return &ParseError{kind: kind, pos: pos, human: human, msg: fmt.Sprintf("%s: %s", kindNames[kind], human)}
}

var kindNames = map[Kind]string{
	KindEmpty:               "empty",
	KindUnknownWord:         "unknown-word",
	KindCantUse:             "cant-use",
	KindNoVerb:              "no-verb",
	KindMissingNoun:         "missing-noun",
	KindTooManyNouns:        "too-many-nouns",
	KindBadSyntax:           "bad-syntax",
	KindAmbiguous:           "ambiguous",
	KindNotHere:             "not-here",
	KindDontHave:            "dont-have",
	KindNoItReferent:        "no-it-referent",
	KindOrphan:              "orphan",
	KindAgainNoCmd:          "again-no-cmd",
	KindAgainMistake:        "again-mistake",
	KindOopsNoError:         "oops-no-error",
	KindOopsQuoted:          "oops-quoted",
	KindOopsNothingToReplace: "oops-nothing-to-replace",
}

// Empty is returned for a line with no tokens.
func Empty() *ParseError {
	return new(KindEmpty, -1, "I beg your pardon?")
}

// UnknownWord is returned when a token carries no vocabulary roles at all.
func UnknownWord(pos int, word string) *ParseError {
	return new(KindUnknownWord, pos, fmt.Sprintf("I don't know the word %q.", word))
}

// CantUse is returned when a token is known but used in a position its part
// of speech doesn't support.
func CantUse(pos int, word string) *ParseError {
	return new(KindCantUse, pos, fmt.Sprintf("You used the word %q in a way that I don't understand.", word))
}

// NoVerb is returned when the scanned skeleton never acquired a verb.
func NoVerb() *ParseError {
	return new(KindNoVerb, -1, "There was no verb in that sentence!")
}

// MissingNoun is returned when a slot needed a noun and got neither a noun,
// an adjective, nor a successful GWIM.
func MissingNoun() *ParseError {
	return new(KindMissingNoun, -1, "There seems to be a noun missing in that sentence!")
}

// TooManyNouns is returned when a slot resolved to more objects than its
// template's multiplicity allows.
func TooManyNouns() *ParseError {
	return new(KindTooManyNouns, -1, "There were too many nouns in that sentence.")
}

// BadSyntax is returned when no template of the parsed verb matches the
// scanned clause shape.
func BadSyntax() *ParseError {
	return new(KindBadSyntax, -1, "That sentence isn't one I recognize.")
}

// Ambiguous is returned when a noun clause resolved to more than one
// candidate and needs to be disambiguated. prompt is the rendered
// "Which ... do you mean" text.
func Ambiguous(prompt string, candidates []string) *ParseError {
	e := new(KindAmbiguous, -1, prompt)
	e.Candidates = candidates
	return e
}

// NotHere is returned when a resolved object isn't accessible from the
// current room.
func NotHere() *ParseError {
	return new(KindNotHere, -1, "You can't see any such thing.")
}

// DontHave is returned when a slot requires holding and the object isn't
// held.
func DontHave(obj string) *ParseError {
	return new(KindDontHave, -1, fmt.Sprintf("You don't have the %s.", obj))
}

// NoItReferent is returned when "it" has nothing to resolve against.
func NoItReferent() *ParseError {
	return new(KindNoItReferent, -1, "I don't see what you're referring to.")
}

// Orphan is returned when a command parsed a verb but is missing an object;
// prompt is the formed "What do you want to ..." text.
func Orphan(prompt string) *ParseError {
	return new(KindOrphan, -1, prompt)
}

// AgainNoCmd is returned when AGAIN is used with no previous input.
func AgainNoCmd() *ParseError {
	return new(KindAgainNoCmd, -1, "Beg pardon?")
}

// AgainMistake is returned when AGAIN would replay a turn that errored.
func AgainMistake() *ParseError {
	return new(KindAgainMistake, -1, "That would just repeat a mistake.")
}

// OopsNoError is returned when OOPS is used but the previous turn didn't
// produce an unknown-word error.
func OopsNoError() *ParseError {
	return new(KindOopsNoError, -1, "There was no word to replace!")
}

// OopsQuoted is returned when OOPS is attempted while inside a quoted SAY
// string.
func OopsQuoted() *ParseError {
	return new(KindOopsQuoted, -1, "You can't OOPS inside of a quoted string.")
}

// OopsNothingToReplace is returned when OOPS is given with no replacement
// word.
func OopsNothingToReplace() *ParseError {
	return new(KindOopsNothingToReplace, -1, "There was no word to replace!")
}

// GameMessage returns the player-facing text for err. If err is not a
// *ParseError, err.Error() is returned instead.
func GameMessage(err error) string {
	if pe, ok := err.(*ParseError); ok {
		return pe.GameMessage()
	}
	return err.Error()
}
