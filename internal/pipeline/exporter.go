package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/spotify-exporter/internal/config"
	"github.com/handiism/spotify-exporter/internal/export"
	"github.com/handiism/spotify-exporter/internal/http"
	"github.com/handiism/spotify-exporter/internal/model"
	"github.com/handiism/spotify-exporter/internal/spotify"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Exit statuses of a run. Each fatal stage has its own.
const (
	ExitOK           = 0
	ExitOther        = 1
	ExitFetch        = 2
	ExitNoPayload    = 3
	ExitDecode       = 4
	ExitNoProjection = 5
)

// ExitCode maps the error returned by Run to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, http.ErrFetch):
		return ExitFetch
	case errors.Is(err, spotify.ErrPayloadNotFound):
		return ExitNoPayload
	case errors.Is(err, spotify.ErrDecode):
		return ExitDecode
	case errors.Is(err, spotify.ErrProjection):
		return ExitNoProjection
	default:
		return ExitOther
	}
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithHTTPClient replaces the page client.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Exporter) { e.client = c }
}

// WithExportOptions passes options to every document the Exporter creates.
func WithExportOptions(opts ...export.Option) Option {
	return func(e *Exporter) { e.exportOpts = append(e.exportOpts, opts...) }
}

// Exporter runs the fetch, extract and render pipeline for one playlist.
type Exporter struct {
	settings   *config.Settings
	client     *http.Client
	locator    *spotify.Locator
	projector  *spotify.Projector
	format     export.Format
	exportOpts []export.Option

	onProgress func(ProgressEvent)
}

// NewExporter creates a new Exporter. It fails if settings name an unknown
// format, selection or pattern.
func NewExporter(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) (*Exporter, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	// Validate has already checked these.
	format, _ := settings.ToFormat()
	selection, _ := settings.ToSelection()
	patterns, _ := settings.ToPatterns()

	e := &Exporter{
		settings:   settings,
		client:     http.NewClient(settings.UserAgent, settings.Timeout),
		locator:    spotify.NewLocator(patterns...),
		projector:  spotify.NewProjector(selection),
		format:     format,
		exportOpts: []export.Option{export.WithSourceURL(settings.Output.SourceURL)},
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run exports the configured playlist.
//
// The stages run in order: fetch, locate, decode, project, then map and
// write each track. Any stage but mapping aborts the run with an error;
// malformed tracks are reported with LevelWarning and skipped.
//
// The output file is only created once the playlist record has been found,
// so a failing run leaves an existing document untouched. Once created, the
// document is closed on every return path.
func (e *Exporter) Run(ctx context.Context) (*model.Playlist, error) {
	url := e.settings.URL
	e.progress(ProgressEvent{Message: fmt.Sprintf("Downloading playlist page: %s", url), Level: LevelVerbose})

	page, err := e.client.GetString(ctx, url)
	if err != nil {
		e.progress(ProgressEvent{Message: "Error while downloading the playlist page. Is the URL correct?", Level: LevelError})
		return nil, err
	}

	payload, err := e.locator.Locate(page)
	if err != nil {
		e.progress(ProgressEvent{Message: "Cannot find the JSON string in the page. Did the page format change again?", Level: LevelError})
		return nil, err
	}
	e.progress(ProgressEvent{Message: fmt.Sprintf("Found payload using pattern %s", payload.Pattern), Level: LevelVerbose})

	tree, err := spotify.Decode(payload)
	if err != nil {
		e.progress(ProgressEvent{Message: "Error while decoding JSON string.", Level: LevelError})
		return nil, err
	}

	record, err := e.projector.Project(tree)
	if err != nil {
		e.progress(ProgressEvent{Message: "No tracks found in JSON data. Is this a playlist?", Level: LevelError})
		return nil, err
	}
	if record.Shape == spotify.ShapeIndexed {
		e.progress(ProgressEvent{Message: fmt.Sprintf("Using entity %q (%s selection)", record.Key, e.projector.Selection()), Level: LevelVerbose})
	}
	if !record.HasName {
		e.progress(ProgressEvent{Message: "Error while getting playlist name.", Level: LevelWarning})
	}

	playlist := model.NewPlaylist(record.Name, url)
	playlist.OutputPath = e.settings.Output.Path

	sink := export.New(e.format, e.settings.Output.Path, e.exportOpts...)
	sink.Open(record.Name)
	defer sink.Close()

	for i, item := range record.Items {
		if err := ctx.Err(); err != nil {
			return playlist, err
		}

		track, err := spotify.MapTrack(item)
		if err != nil {
			playlist.Skipped++
			e.progress(ProgressEvent{Message: fmt.Sprintf("Error while getting data for song %d: %v", i+1, err), Level: LevelWarning})
			continue
		}

		sink.AddRow(track)
		playlist.Add(track)
	}

	e.progress(ProgressEvent{
		Message: fmt.Sprintf("Exported playlist %q: %d tracks, %d skipped", playlist.Name, len(playlist.Tracks), playlist.Skipped),
		Level:   LevelSuccess,
	})
	return playlist, nil
}

func (e *Exporter) progress(event ProgressEvent) {
	if e.onProgress != nil {
		e.onProgress(event)
	}
}
