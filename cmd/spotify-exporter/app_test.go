package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/handiism/spotify-exporter/internal/config"
	"github.com/handiism/spotify-exporter/internal/export"
	"github.com/handiism/spotify-exporter/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><script id="resource" type="application/json">` +
	`{"name":"My Mix","tracks":{"items":[` +
	`{"track":{"name":"Song","album":{"name":"Album","images":[{"url":"a"},{"url":"b"}]},"artists":[{"name":"Alice"},{"name":"Bob"}]}},` +
	`{"track":{"album":{"name":"Album","images":[{"url":"a"},{"url":"b"}]},"artists":[{"name":"Alice"}]}}` +
	`]}}</script></html>`

func serve(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestApp_Export(t *testing.T) {
	url := serve(t, http.StatusOK, page)
	path := filepath.Join(t.TempDir(), "out.html")

	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut, export.WithHost("test-host"))

	err := app.Run(context.Background(), []string{"spotify-exporter", "--url", url, "--output", path})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `Playlist "My Mix"`)
	assert.Contains(t, out.String(), "Tracks: 1")
	assert.Contains(t, out.String(), "Skipped: 1")
	assert.Contains(t, errOut.String(), "song 2")
	assert.Contains(t, errOut.String(), "created.")

	runID := regexp.MustCompile(`Run: ([0-9a-f-]{36})`).FindStringSubmatch(out.String())
	require.Len(t, runID, 2, "summary must show the run id")
	assert.Contains(t, errOut.String(), runID[1], "log entries must carry the same run id")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<td>Song</td><td>Alice, Bob</td><td>Album</td>")
	assert.Contains(t, string(data), "by test-host")
}

func TestApp_ConfigFileWithOverrides(t *testing.T) {
	url := serve(t, http.StatusOK, page)
	dir := t.TempDir()

	settings := config.DefaultSettings()
	settings.URL = url
	settings.Output.Path = filepath.Join(dir, "from-config.html")
	settings.Output.Format = "html"
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, settings.Save(configPath))

	csvPath := filepath.Join(dir, "override.csv")

	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(context.Background(), []string{
		"spotify-exporter", "--config", configPath, "--output", csvPath, "--format", "csv",
	})
	require.NoError(t, err)

	_, err = os.Stat(settings.Output.Path)
	assert.True(t, os.IsNotExist(err), "config path must be overridden")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `1,Song,"Alice, Bob",Album,b`)
}

func TestApp_FetchFailure(t *testing.T) {
	url := serve(t, http.StatusNotFound, "")

	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(context.Background(), []string{
		"spotify-exporter", "--url", url, "--output", filepath.Join(t.TempDir(), "out.html"),
	})

	assert.Error(t, err)
	assert.Equal(t, pipeline.ExitFetch, pipeline.ExitCode(err))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Is the URL correct?")
}

func TestApp_InvalidSelection(t *testing.T) {
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(context.Background(), []string{
		"spotify-exporter", "--selection", "first",
	})

	assert.Error(t, err)
	assert.Equal(t, pipeline.ExitOther, pipeline.ExitCode(err))
}

func TestLoadSettings_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("url = ["), 0o644))

	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(context.Background(), []string{"spotify-exporter", "--config", path})
	assert.ErrorContains(t, err, "error loading config")
}
