package main

import (
	"fmt"
)

// set at build time with -ldflags
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "sensecor version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
