package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/handiism/spotify-exporter/internal/config"
	"github.com/handiism/spotify-exporter/internal/export"
	"github.com/handiism/spotify-exporter/internal/logging"
	"github.com/handiism/spotify-exporter/internal/model"
	"github.com/handiism/spotify-exporter/internal/pipeline"
	"github.com/urfave/cli/v3"
)

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#1DB954")).
	Padding(0, 2)

// newApp builds the command. out receives the summary, logs go to errOut.
func newApp(out, errOut io.Writer, exportOpts ...export.Option) *cli.Command {
	return &cli.Command{
		Name:    "spotify-exporter",
		Usage:   "Export a public Spotify playlist to an HTML table",
		Version: "0.3.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "Public playlist URL",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (overrides config)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: html or csv",
			},
			&cli.StringFlag{
				Name:  "selection",
				Usage: "Entity selection for indexed payloads: auto, discriminated or last",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Show verbose output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, runID := logging.WithRun(logging.New(errOut, cmd.Bool("verbose")))

			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			opts := append([]export.Option{export.WithLogger(logger)}, exportOpts...)
			exporter, err := pipeline.NewExporter(settings, progressLogger(logger), pipeline.WithExportOptions(opts...))
			if err != nil {
				return err
			}

			playlist, err := exporter.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, summary(playlist, runID))
			return nil
		},
	}
}

// loadSettings reads the config file, if any, and applies the flags on top.
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if path := cmd.String("config"); path != "" {
		var err error
		settings, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	if cmd.IsSet("url") {
		settings.URL = cmd.String("url")
	}
	if cmd.IsSet("output") {
		settings.Output.Path = cmd.String("output")
	}
	if cmd.IsSet("format") {
		settings.Output.Format = cmd.String("format")
	}
	if cmd.IsSet("selection") {
		settings.Extract.Selection = cmd.String("selection")
	}

	return settings, nil
}

// progressLogger forwards pipeline events to logger.
func progressLogger(logger *log.Logger) func(pipeline.ProgressEvent) {
	return func(event pipeline.ProgressEvent) {
		switch event.Level {
		case pipeline.LevelError:
			logger.Error(event.Message)
		case pipeline.LevelWarning:
			logger.Warn(event.Message)
		case pipeline.LevelVerbose:
			logger.Debug(event.Message)
		default:
			logger.Info(event.Message)
		}
	}
}

// summary renders the result box. The run id matches the "run" field of
// every log entry of the run.
func summary(p *model.Playlist, runID string) string {
	return summaryStyle.Render(fmt.Sprintf(
		"Playlist %q\n\nTracks: %d\nSkipped: %d\nFile: %s\nRun: %s",
		p.Name,
		len(p.Tracks),
		p.Skipped,
		p.OutputPath,
		runID,
	))
}
