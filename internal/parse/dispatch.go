package parse

import (
	"strings"

	"github.com/ashgrove/grue/internal/world"
)

// HandlerLookup resolves an action id to its verb handler. internal/verb's
// registry implements this.
type HandlerLookup interface {
	Handler(action string) (Handler, bool)
}

// Scheduler advances the turn clock: daemons/fuses run in registration
// order and any of their own prose is appended to this turn's output.
// internal/daemon's scheduler implements this.
type Scheduler interface {
	Tick(w *world.State) string
}

// DispatchResult is C8's product: the turn's full rendered output and
// whether it counted as a move (advanced the clock).
type DispatchResult struct {
	Output string
	Moved  bool
}

func runHook(hook world.Hook, w world.World, rarg string, intent Intent) (string, bool) {
	if hook == nil {
		return "", false
	}
	return hook(w, rarg, intent.Action, intent.Prso.IDs, intent.Prsi.IDs)
}

// Dispatch implements C8: pre-hook, handler, post-hook, it-referent update,
// clock advance, trailing blank line. Meta verbs skip the post-hook, the
// it-referent update and the clock advance, and do not count as a move,
// spec.md §4.8.
func Dispatch(w *world.State, intent Intent, handlers HandlerLookup, sched Scheduler, roomHook world.Hook) DispatchResult {
	var out strings.Builder
	preempted := false

	if text, handled := runHook(roomHook, w, "before", intent); text != "" || handled {
		out.WriteString(text)
		preempted = preempted || handled
	}

	if !preempted {
		if h, ok := handlers.Handler(intent.Action); ok {
			res := h(w, intent)
			out.WriteString(res.Output)
			preempted = preempted || res.Handled
		}
	}

	if !preempted && !intent.Meta {
		if text, handled := runHook(roomHook, w, "after", intent); text != "" || handled {
			out.WriteString(text)
		}
	}

	if !intent.Meta {
		if intent.ObjectConsuming {
			if id, ok := intent.Prso.Single(); ok {
				w.SetItReferent(id)
			}
		}

		if sched != nil {
			out.WriteString(sched.Tick(w))
		}
	}
	out.WriteString("\n")

	return DispatchResult{Output: out.String(), Moved: !intent.Meta}
}
