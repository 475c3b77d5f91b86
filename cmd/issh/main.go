// Package main is the entry point for the issh binary.
//
// issh is an interactive terminal picker over the host aliases in the
// user's SSH config. Invoked without arguments it launches the full-screen
// picker; subcommands (list, connect, edit, doctor) run one-shot CLI
// operations and exit.
package main

import (
	"fmt"
	"os"

	"github.com/smk762/issh/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()

	// RunE errors (missing config, no usable hosts) are printed to stderr
	// and the process exits non-zero; a normal quit exits 0.
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
