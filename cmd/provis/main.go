package main

import (
	"os"

	"github.com/provislabs/provis/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands print their own errors; all that is left is the exit code.
		os.Exit(cli.GetExitCode(err))
	}
}
