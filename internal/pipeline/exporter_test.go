package pipeline

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/handiism/spotify-exporter/internal/config"
	"github.com/handiism/spotify-exporter/internal/export"
	exporthttp "github.com/handiism/spotify-exporter/internal/http"
	"github.com/handiism/spotify-exporter/internal/spotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackJSON(name, album, artist string) string {
	return fmt.Sprintf(`{"track":{"name":%q,"album":{"name":%q,"images":[{"url":"https://i.scdn.co/image/640"},{"url":"https://i.scdn.co/image/300"}]},"artists":[{"name":%q}]}}`,
		name, album, artist)
}

// playlistPage serves a base64-embedded playlist with one malformed track
// between two valid ones.
func playlistPage() string {
	payload := `{"name":"My Mix","tracks":{"items":[` +
		trackJSON("First Song", "First Album", "Alice") + `,` +
		`{"track":{"album":{"name":"No Name","images":[{"url":"a"},{"url":"b"}]},"artists":[{"name":"Nobody"}]}},` +
		trackJSON("Third Song", "Third Album", "Bob") +
		`]}}`
	return `<html><body><script id="initial-state" type="text/plain">` +
		base64.StdEncoding.EncodeToString([]byte(payload)) +
		`</script></body></html>`
}

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testSettings(t *testing.T, url string) *config.Settings {
	t.Helper()
	settings := config.DefaultSettings()
	settings.URL = url
	settings.Output.Path = filepath.Join(t.TempDir(), "index.html")
	return settings
}

func quietDocuments() Option {
	return WithExportOptions(
		export.WithLogger(log.New(io.Discard)),
		export.WithHost("test-host"),
		export.WithClock(func() time.Time { return time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC) }),
	)
}

func run(t *testing.T, settings *config.Settings) ([]ProgressEvent, error) {
	t.Helper()
	var events []ProgressEvent
	exporter, err := NewExporter(settings, func(e ProgressEvent) { events = append(events, e) }, quietDocuments())
	require.NoError(t, err)

	_, err = exporter.Run(context.Background())
	return events, err
}

func TestExporter_Run(t *testing.T) {
	srv := newServer(t, http.StatusOK, playlistPage())
	settings := testSettings(t, srv.URL)

	var events []ProgressEvent
	exporter, err := NewExporter(settings, func(e ProgressEvent) { events = append(events, e) }, quietDocuments())
	require.NoError(t, err)

	playlist, err := exporter.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "My Mix", playlist.Name)
	assert.Equal(t, srv.URL, playlist.URL)
	assert.Len(t, playlist.Tracks, 2)
	assert.Equal(t, 1, playlist.Skipped)
	assert.Equal(t, 3, playlist.Total())
	assert.Equal(t, settings.Output.Path, playlist.OutputPath)

	data, err := os.ReadFile(settings.Output.Path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, `<th scope="row">1</th>`)
	assert.Contains(t, content, `<th scope="row">2</th>`)
	assert.NotContains(t, content, `<th scope="row">3</th>`)
	assert.Contains(t, content, "<td>Third Song</td><td>Bob</td><td>Third Album</td>")
	assert.NotContains(t, content, "No Name")
	assert.Contains(t, content, "Updated on 02/01/2022 by test-host")

	var warnings, successes int
	for _, e := range events {
		switch e.Level {
		case LevelWarning:
			warnings++
			assert.Contains(t, e.Message, "song 2")
		case LevelSuccess:
			successes++
		}
	}
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 1, successes)
}

func TestExporter_RunCSV(t *testing.T) {
	srv := newServer(t, http.StatusOK, playlistPage())
	settings := testSettings(t, srv.URL)
	settings.Output.Format = "csv"
	settings.Output.Path = filepath.Join(t.TempDir(), "playlist.csv")

	_, err := run(t, settings)
	require.NoError(t, err)

	data, err := os.ReadFile(settings.Output.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "2,Third Song,Bob,Third Album,https://i.scdn.co/image/300", lines[2])
}

func TestExporter_MissingName(t *testing.T) {
	payload := `{"tracks":{"items":[` + trackJSON("Song", "Album", "Alice") + `]}}`
	srv := newServer(t, http.StatusOK, `<script id="resource" type="application/json">`+payload+`</script>`)
	settings := testSettings(t, srv.URL)

	events, err := run(t, settings)
	require.NoError(t, err)

	data, err := os.ReadFile(settings.Output.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<title>Playlist ""</title>`)

	var warned bool
	for _, e := range events {
		if e.Level == LevelWarning && strings.Contains(e.Message, "playlist name") {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestExporter_FatalStages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  error
		wantCode int
	}{
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     "Page not found",
			wantErr:  exporthttp.ErrFetch,
			wantCode: ExitFetch,
		},
		{
			name:     "no payload",
			status:   http.StatusOK,
			body:     `<html><body>Nothing here</body></html>`,
			wantErr:  spotify.ErrPayloadNotFound,
			wantCode: ExitNoPayload,
		},
		{
			name:     "invalid json",
			status:   http.StatusOK,
			body:     `<script id="resource" type="application/json">{"name": "x",</script>`,
			wantErr:  spotify.ErrDecode,
			wantCode: ExitDecode,
		},
		{
			name:     "not a playlist",
			status:   http.StatusOK,
			body:     `<script id="resource" type="application/json">{"name": "An Artist"}</script>`,
			wantErr:  spotify.ErrProjection,
			wantCode: ExitNoProjection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)
			settings := testSettings(t, srv.URL)
			require.NoError(t, os.WriteFile(settings.Output.Path, []byte("previous export"), 0o644))

			events, err := run(t, settings)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, ExitCode(err))

			data, readErr := os.ReadFile(settings.Output.Path)
			require.NoError(t, readErr)
			assert.Equal(t, "previous export", string(data))

			require.NotEmpty(t, events)
			assert.Equal(t, LevelError, events[len(events)-1].Level)
		})
	}
}

func TestExporter_StatusErrorDetail(t *testing.T) {
	srv := newServer(t, http.StatusServiceUnavailable, "")
	_, err := run(t, testSettings(t, srv.URL))

	var statusErr *exporthttp.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestExporter_CanceledContext(t *testing.T) {
	srv := newServer(t, http.StatusOK, playlistPage())
	exporter, err := NewExporter(testSettings(t, srv.URL), nil, quietDocuments())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = exporter.Run(ctx)
	assert.Error(t, err)
	assert.Equal(t, ExitFetch, ExitCode(err))
}

func TestNewExporter_InvalidSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Output.Format = "pdf"

	_, err := NewExporter(settings, nil)
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("boom"), ExitOther},
		{fmt.Errorf("wrapped: %w", exporthttp.ErrFetch), ExitFetch},
		{fmt.Errorf("wrapped: %w", spotify.ErrPayloadNotFound), ExitNoPayload},
		{fmt.Errorf("wrapped: %w", spotify.ErrDecode), ExitDecode},
		{fmt.Errorf("wrapped: %w", spotify.ErrProjection), ExitNoProjection},
		{context.Canceled, ExitOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "ExitCode(%v)", tt.err)
	}
}
