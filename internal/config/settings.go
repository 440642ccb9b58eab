package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/handiism/spotify-exporter/internal/export"
	"github.com/handiism/spotify-exporter/internal/http"
	"github.com/handiism/spotify-exporter/internal/spotify"
)

// DefaultURL is the playlist exported when none is configured.
const DefaultURL = "https://open.spotify.com/playlist/37i9dQZF1EpyzGli8mJhi9"

// Settings holds all configuration options.
type Settings struct {
	// Fetch settings
	URL       string        `toml:"url"`
	UserAgent string        `toml:"user_agent"`
	Timeout   time.Duration `toml:"timeout"`

	Output  OutputSettings  `toml:"output"`
	Extract ExtractSettings `toml:"extract"`
}

// OutputSettings configures the written document.
type OutputSettings struct {
	Path      string `toml:"path"`
	Format    string `toml:"format"` // html, csv
	SourceURL string `toml:"source_url"`
}

// ExtractSettings configures payload extraction.
type ExtractSettings struct {
	// Selection picks the entities.items entry: auto, discriminated, last.
	Selection string `toml:"selection"`

	// Patterns restricts and orders the page formats tried. Empty means all.
	Patterns []string `toml:"patterns"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		URL:       DefaultURL,
		UserAgent: http.DefaultUserAgent,
		Timeout:   0,

		Output: OutputSettings{
			Path:      "index.html",
			Format:    "html",
			SourceURL: export.DefaultSourceURL,
		},

		Extract: ExtractSettings{
			Selection: "auto",
		},
	}
}

// Load reads settings from a TOML file. Keys absent from the file keep
// their default values; a missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return settings, nil
}

// Save writes settings to a TOML file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

// Validate checks that every enumerated option names a known value.
func (s *Settings) Validate() error {
	if s.URL == "" {
		return fmt.Errorf("url must not be empty")
	}
	if s.Output.Path == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	if _, err := s.ToFormat(); err != nil {
		return err
	}
	if _, err := s.ToSelection(); err != nil {
		return err
	}
	if _, err := s.ToPatterns(); err != nil {
		return err
	}
	return nil
}

// ToFormat converts the output format name.
func (s *Settings) ToFormat() (export.Format, error) {
	return export.ParseFormat(s.Output.Format)
}

// ToSelection converts the entity selection name.
func (s *Settings) ToSelection() (spotify.Selection, error) {
	return spotify.ParseSelection(s.Extract.Selection)
}

// ToPatterns converts the pattern names. An empty list yields
// spotify.DefaultPatterns.
func (s *Settings) ToPatterns() ([]spotify.PatternKind, error) {
	if len(s.Extract.Patterns) == 0 {
		return spotify.DefaultPatterns, nil
	}

	kinds := make([]spotify.PatternKind, 0, len(s.Extract.Patterns))
	for _, name := range s.Extract.Patterns {
		kind, err := spotify.ParsePatternKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
