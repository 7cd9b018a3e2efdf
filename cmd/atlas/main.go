// Package main builds the atlas model from a game directory.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/anbennar-atlas/internal/platform/config"
	apperrors "github.com/louisbranch/anbennar-atlas/internal/platform/errors"
	"github.com/louisbranch/anbennar-atlas/internal/tools/atlas"
)

func main() {
	cfg, err := atlas.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := atlas.Run(ctx, cfg, os.Stdout); err != nil {
		config.ExitCodef(apperrors.CodeOf(err).ExitCode(), "Error: %v", err)
	}
}
