// Package main is the entry point for the dkpkg CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/dkpkg/cmd/dkpkg/commands"
	"github.com/thoreinstein/dkpkg/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if s := errors.SuggestionFor(err); s != "" {
			fmt.Fprintln(os.Stderr, s)
		}
		os.Exit(errors.ExitCode(err))
	}
}
