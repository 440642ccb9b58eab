// Package model defines the core data structures used throughout
// spotify-exporter.
//
// # Track
//
// Track is one normalized song, the unit written as a table row:
//
//	track := model.NewTrack("Song Title", "Alice, Bob", "Album", coverURL)
//
// # Playlist
//
// Playlist collects the tracks of one export run together with the number
// of records that were skipped:
//
//	playlist := model.NewPlaylist("My Mix", url)
//	playlist.Add(track)
//	fmt.Printf("%d/%d exported\n", len(playlist.Tracks), playlist.Total())
package model
