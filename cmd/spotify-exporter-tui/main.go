package main

import (
	"context"
	"fmt"
	"os"

	"github.com/handiism/spotify-exporter/internal/config"
	"github.com/handiism/spotify-exporter/internal/tui"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "spotify-exporter-tui",
		Usage: "Interactive playlist export",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings := config.DefaultSettings()
			if path := cmd.String("config"); path != "" {
				var err error
				settings, err = config.Load(path)
				if err != nil {
					return fmt.Errorf("error loading config: %w", err)
				}
			}
			return tui.Run(settings)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
