// Command myst is the command-line front end for the interpreter: it
// wires internal/lexer, internal/parser, and internal/interp behind
// the lex/parse/run/version subcommands.
package main

import (
	"os"

	"github.com/stockerssld/myst/cmd/myst/cmd"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns a process exit code,
// factored out of main so testscript can drive the CLI in-process
// (see main_test.go) instead of shelling out to a built binary.
func run() int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
