// Package daemon implements the turn clock: background behaviors (fuses and
// daemons) that run once per move, in registration order, after a command
// dispatches. It implements parse.Scheduler.
package daemon

import (
	"go.uber.org/zap"

	"github.com/ashgrove/grue/internal/world"
)

// Daemon is a background behavior fired every turn it is enabled. Fire
// returns this turn's prose (possibly empty) and whether the daemon should
// be disabled going forward.
type Daemon interface {
	ID() string
	Fire(w *world.State) (output string, disable bool)
}

// Scheduler runs a fixed set of Daemons in registration order every turn,
// matching spec.md §4.8 step 5's "daemons/fuses run in registration order".
type Scheduler struct {
	entries []entry
	log     *zap.Logger
}

type entry struct {
	d       Daemon
	enabled bool
}

// NewScheduler builds an empty Scheduler. A nil logger disables diagnostic
// logging (fires are silent but still run).
func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{log: log}
}

// Register adds d to the schedule, enabled, in call order.
func (s *Scheduler) Register(d Daemon) {
	s.entries = append(s.entries, entry{d: d, enabled: true})
}

// Tick fires every enabled daemon in registration order and concatenates
// their output. Implements parse.Scheduler.
func (s *Scheduler) Tick(w *world.State) string {
	var out string
	for i := range s.entries {
		if !s.entries[i].enabled {
			continue
		}
		text, disable := s.entries[i].d.Fire(w)
		s.log.Debug("daemon fired", zap.String("id", s.entries[i].d.ID()), zap.Bool("disabled", disable))
		out += text
		if disable {
			s.entries[i].enabled = false
		}
	}
	return out
}

// Enabled reports whether the named daemon is still scheduled to fire.
func (s *Scheduler) Enabled(id string) bool {
	for _, e := range s.entries {
		if e.d.ID() == id {
			return e.enabled
		}
	}
	return false
}
