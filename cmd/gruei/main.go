/*
Gruei starts an interactive grue engine session.

It starts the game in the fixture world's starting room and prints what is
happening to stdout, reading user input from stdin until the game ends or
the "QUIT" command is given.

Usage:

	gruei [flags]

The flags are:

	-v, --version
		Give the current version of grue and then exit.

	-c, --config FILE
		Load engine settings (seed, script mode, strict-parse mode, turn cap)
		from the given TOML file. Defaults to built-in defaults if omitted.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched in
		a tty with stdin and stdout.

Once a session has started, user input is parsed for grue commands. To exit
the interpreter, type "QUIT".
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ashgrove/grue"
	"github.com/ashgrove/grue/internal/version"
)

const (
	ExitSuccess = iota
	ExitDeath
	ExitParserError
	ExitUncaughtException
	ExitTurnCapReached
	ExitConfigError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	configFile  *string = pflag.StringP("config", "c", "", "TOML file of engine settings (seed, script_mode, strict_parse, turn_cap)")
	forceDirect *bool   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg := grue.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = grue.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitConfigError
			return
		}
	}

	gameEng, initErr := grue.New(os.Stdin, os.Stdout, cfg, *forceDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitUncaughtException
		return
	}
	defer gameEng.Close()

	status, err := gameEng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
	}

	switch status {
	case grue.ExitSuccess:
		returnCode = ExitSuccess
	case grue.ExitDeath:
		returnCode = ExitDeath
	case grue.ExitParserError:
		returnCode = ExitParserError
	case grue.ExitUncaughtException:
		returnCode = ExitUncaughtException
	case grue.ExitTurnCapReached:
		returnCode = ExitTurnCapReached
	}
}
