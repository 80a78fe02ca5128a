package parse

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/ashgrove/grue/internal/perr"
	"github.com/ashgrove/grue/internal/world"
)

// OutputWidth is the console width C9 wraps prose to, matching the
// teacher's own console width constant.
const OutputWidth = 80

// Wrap word-wraps s to OutputWidth using the same library the teacher's
// engine used for its console output.
func Wrap(s string) string {
	return rosed.Edit(s).Wrap(OutputWidth).String()
}

// formatDisambiguation renders the "Which X do you mean..." prompt of
// spec.md §4.9, using the ordered candidate list.
func formatDisambiguation(noun string, candidates []string) string {
	if len(candidates) == 0 {
		return fmt.Sprintf("Which %s do you mean?", noun)
	}
	if len(candidates) == 1 {
		return fmt.Sprintf("Which %s do you mean, the %s?", noun, candidates[0])
	}
	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = "the " + c
	}
	head := strings.Join(parts[:len(parts)-1], ", ")
	return fmt.Sprintf("Which %s do you mean, %s, or %s?", noun, head, parts[len(parts)-1])
}

// formatOrphanPrompt renders spec.md §4.7.1's "What do you want to <verb>
// [the <direct-object>][ <prep>]?" prompt.
func formatOrphanPrompt(verb string, prep string, knownDirectObject string) string {
	var b strings.Builder
	b.WriteString("What do you want to ")
	b.WriteString(verb)
	if knownDirectObject != "" {
		b.WriteString(" the ")
		b.WriteString(knownDirectObject)
	}
	if prep != "" {
		b.WriteString(" ")
		b.WriteString(prep)
	}
	b.WriteString("?")
	return b.String()
}

// formatGWIMNote renders §4.4.1's "(the <object>)" disclosure, prefixing
// the preposition when the command didn't already end on one.
func formatGWIMNote(w world.World, id world.ThingID, prep string, commandEndsOnPrep bool) string {
	t, ok := w.GetThing(id)
	name := string(id)
	if ok {
		name = t.Name
	}
	if prep != "" && !commandEndsOnPrep {
		return fmt.Sprintf("(%s the %s)", prep, name)
	}
	return fmt.Sprintf("(the %s)", name)
}

// Render turns a *perr.ParseError into the exact player-facing string of
// spec.md §7, wrapped to console width.
func Render(err *perr.ParseError) string {
	return Wrap(perr.GameMessage(err))
}
