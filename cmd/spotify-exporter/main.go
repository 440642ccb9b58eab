package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/spotify-exporter/internal/logging"
	"github.com/handiism/spotify-exporter/internal/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, false)
	app := newApp(os.Stdout, os.Stderr)

	if err := app.Run(ctx, os.Args); err != nil {
		logger.Error("Aborting.", "err", err)
		stop()
		os.Exit(pipeline.ExitCode(err))
	}
}
