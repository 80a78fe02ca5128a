package grue

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the engine's startup configuration, loaded from a small TOML
// settings file rather than a world manifest (the teacher's tqw.LoadResourceBundle
// loads the world; this loads only engine behavior knobs, since SPEC_FULL.md
// treats room/object content as fixture-supplied, not author-loaded).
type Config struct {
	// Seed feeds the world's single deterministic random source. Zero means
	// "use a time-based seed" at the call site; this struct never picks one
	// itself, keeping loading side-effect free.
	Seed int64 `toml:"seed"`

	// ScriptMode reads one command per line from a script instead of an
	// interactive terminal: blank lines are skipped, "#"/";" prefix a
	// comment line, and "$quit" ends the session early.
	ScriptMode bool `toml:"script_mode"`

	// StrictParse makes any unknown-word parser error fatal (nonzero exit)
	// instead of just printing the message and continuing.
	StrictParse bool `toml:"strict_parse"`

	// TurnCap stops the session after this many moves (0 means unlimited).
	TurnCap int `toml:"turn_cap"`
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() Config {
	return Config{Seed: 0, ScriptMode: false, StrictParse: false, TurnCap: 0}
}

// LoadConfig reads and validates a Config from a TOML file at path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.TurnCap < 0 {
		return Config{}, fmt.Errorf("load config: turn_cap must not be negative")
	}
	return cfg, nil
}
