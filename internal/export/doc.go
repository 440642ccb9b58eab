// Package export writes exported playlists to disk.
//
// # HTML Document
//
// Document renders the playlist as a static Bootstrap table. Rows are
// streamed as tracks arrive and numbered from 1:
//
//	doc := export.NewDocument("index.html")
//	doc.Open(playlist.Name)
//	defer doc.Close()
//	for _, track := range playlist.Tracks {
//	    doc.AddRow(track)
//	}
//
// The footer carries the generation date (DD/MM/YYYY), the host name and a
// link to the project source.
//
// # CSV Document
//
// CSVDocument writes the same rows as CSV, plus the cover URL.
//
// Both implement Sink; use New to pick one by Format.
package export
