// Package config provides configuration management for spotify-exporter.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - Conversion of option names to the spotify and export enums
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Exports DefaultURL to index.html as an HTML table
//
// # Loading from File
//
//	settings, err := config.Load("spotify-exporter.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// A complete file:
//
//	url = "https://open.spotify.com/playlist/37i9dQZF1EpyzGli8mJhi9"
//	user_agent = "Mozilla/5.0"
//	timeout = "30s"
//
//	[output]
//	path = "index.html"
//	format = "html"
//	source_url = "https://github.com/0x07cc/spotify-exporter"
//
//	[extract]
//	selection = "auto"
//	patterns = ["base64-script", "json-script"]
package config
