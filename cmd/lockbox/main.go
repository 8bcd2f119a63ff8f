// Package main provides the entry point for the lockbox CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/lockbox/internal/cli"
)

// Build information set at build time via ldflags.
var (
	version string //nolint:gochecknoglobals // Set via ldflags
	commit  string //nolint:gochecknoglobals // Set via ldflags
	date    string //nolint:gochecknoglobals // Set via ldflags
)

func main() {
	ctx := context.Background()
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(ctx, info); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
