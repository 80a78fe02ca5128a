// Package grue contains a CLI-driven engine for getting commands and
// advancing the game state continuously until the user quits.
package grue

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dekarrin/rosed"
	"go.uber.org/zap"

	"github.com/ashgrove/grue/internal/daemon"
	"github.com/ashgrove/grue/internal/input"
	"github.com/ashgrove/grue/internal/parse"
	"github.com/ashgrove/grue/internal/verb"
	"github.com/ashgrove/grue/internal/vocab"
	"github.com/ashgrove/grue/internal/world"
)

const consoleOutputWidth = 80

// ExitStatus is the outcome of a RunUntilQuit session, mirroring
// SPEC_FULL.md §8.4's exit code table.
type ExitStatus int

const (
	ExitSuccess ExitStatus = iota
	ExitDeath
	ExitParserError
	ExitUncaughtException
	ExitTurnCapReached
)

// Engine contains the things needed to run a game from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	world    *world.State
	cross    *parse.CrossTurn
	pipeline *parse.Pipeline
	sched    *daemon.Scheduler

	cfg Config

	in          input.CommandReader
	out         *bufio.Writer
	forceDirect bool
	running     bool
	moves       int
}

// New creates a new engine ready to operate on the given input and output
// streams using the fixture Zork-opening world and the reference verb set.
//
// If nil is given for the input stream, a bufio.Reader is opened on stdin.
// If nil is given for the output stream, a bufio.Writer is opened on stdout.
func New(inputStream io.Reader, outputStream io.Writer, cfg Config, forceDirectInput bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	z := world.NewZorkOpening(seed)

	reg := verb.NewReference()
	vo := vocab.Build(z.State, referenceVerbDefs(), referencePrepDefs())

	log, err := newEngineLogger()
	if err != nil {
		return nil, fmt.Errorf("initializing diagnostic logger: %w", err)
	}

	sched := daemon.NewScheduler(log)
	sched.Register(daemon.NewLightFuse("lamp-battery", z.Lamp, 300))

	pipeline := &parse.Pipeline{
		Vocab:     vo,
		Registry:  reg,
		Handlers:  reg,
		Scheduler: sched,
	}

	eng := &Engine{
		world:       z.State,
		cross:       &parse.CrossTurn{},
		pipeline:    pipeline,
		sched:       sched,
		cfg:         cfg,
		out:         bufio.NewWriter(outputStream),
		running:     false,
		forceDirect: forceDirectInput,
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		eng.in, err = input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// newEngineLogger builds the zap logger handed to the daemon scheduler for
// its diagnostics. It never writes to stdout, since that stream is reserved for
// game prose.
func newEngineLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// referenceVerbDefs and referencePrepDefs mirror the word lists registered
// in internal/verb.NewReference, so the vocabulary and the registry always
// agree on which lexemes exist. Kept here (rather than having vocab import
// verb) to preserve internal/vocab's independence from internal/verb.
func referenceVerbDefs() []vocab.VerbDef {
	return []vocab.VerbDef{
		{ID: "go", Words: []string{"go", "walk", "move"}},
		{ID: "look", Words: []string{"look", "l"}},
		{ID: "examine", Words: []string{"examine", "x", "inspect"}},
		{ID: "take", Words: []string{"take", "get", "grab"}},
		{ID: "read", Words: []string{"read"}},
		{ID: "drop", Words: []string{"drop", "discard"}},
		{ID: "put", Words: []string{"put", "place", "insert"}},
		{ID: "open", Words: []string{"open"}},
		{ID: "close", Words: []string{"close", "shut"}},
		{ID: "inventory", Words: []string{"inventory", "i"}},
		{ID: "talk", Words: []string{"talk", "speak"}},
		{ID: "help", Words: []string{"help"}},
		{ID: "score", Words: []string{"score"}},
		{ID: "verbose", Words: []string{"verbose"}},
		{ID: "brief", Words: []string{"brief"}},
		{ID: "superbrief", Words: []string{"superbrief"}},
		{ID: "version", Words: []string{"version"}},
	}
}

func referencePrepDefs() []vocab.PrepDef {
	return []vocab.PrepDef{
		{ID: "in", Words: []string{"in", "inside", "into"}},
		{ID: "on", Words: []string{"on", "onto", "upon"}},
		{ID: "to", Words: []string{"to"}},
	}
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}
	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}
	return nil
}

// RunUntilQuit begins reading commands from the streams and applying them to
// the game until the QUIT command is received, the turn cap is reached, or
// the player dies.
func (eng *Engine) RunUntilQuit() (status ExitStatus, err error) {
	defer func() {
		if r := recover(); r != nil {
			status, err = ExitUncaughtException, fmt.Errorf("uncaught exception: %v", r)
		}
	}()

	introMsg := "Welcome to the grue engine\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "==========================\n\n"
	introMsg += eng.describeHere()

	if err := eng.write(introMsg); err != nil {
		return ExitUncaughtException, err
	}

	eng.running = true
	defer func() { eng.running = false }()

	for eng.running {
		raw, rerr := eng.readLine()
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return ExitUncaughtException, fmt.Errorf("get user command: %w", rerr)
		}

		if eng.cfg.ScriptMode && len(eng.cross.Continuation) == 0 {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
				continue
			}
			if trimmed == "$quit" {
				break
			}
		}

		if strings.EqualFold(strings.TrimSpace(raw), "quit") {
			break
		}

		res := eng.pipeline.ProcessTurn(raw, eng.world, eng.cross)
		if err := eng.write(rosed.Edit(res.Output).Wrap(consoleOutputWidth).String() + "\n"); err != nil {
			return ExitUncaughtException, err
		}

		if eng.cfg.StrictParse && eng.cross.HadUnknownWordError {
			return ExitParserError, fmt.Errorf("strict parse mode: turn %q failed to parse: %s", raw, res.Output)
		}

		if res.Moved {
			eng.moves++
		}
		if eng.world.HasFlag(eng.world.Player(), world.FlagDead) {
			eng.write("\nYou have died.\n")
			return ExitDeath, nil
		}
		if eng.cfg.TurnCap > 0 && eng.moves >= eng.cfg.TurnCap {
			eng.write(fmt.Sprintf("\nTurn cap of %d moves reached.\n", eng.cfg.TurnCap))
			return ExitTurnCapReached, nil
		}
	}

	eng.write("Goodbye\n")
	return ExitSuccess, nil
}

func (eng *Engine) describeHere() string {
	t, ok := eng.world.GetThing(eng.world.Here())
	if !ok {
		return ""
	}
	return "You are in " + t.Name + "\n"
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return eng.out.Flush()
}

func (eng *Engine) readLine() (string, error) {
	if len(eng.cross.Continuation) > 0 {
		return "", nil
	}
	eng.in.AllowBlank(true)
	line, err := eng.in.ReadCommand()
	eng.in.AllowBlank(false)
	return line, err
}
