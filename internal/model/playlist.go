package model

// Playlist is the result of one export run.
//
// Tracks holds only the tracks that mapped successfully, in playlist order.
// Skipped counts the track records that were malformed and left out; it
// never affects the numbering of the written rows.
type Playlist struct {
	// Name is the playlist name. Empty when the payload had none.
	Name string

	// URL is the page the playlist was read from.
	URL string

	// Tracks contains all exported tracks.
	Tracks []*Track

	// Skipped is the number of track records that could not be mapped.
	Skipped int

	// OutputPath is where the document was written.
	OutputPath string
}

// NewPlaylist creates an empty Playlist.
func NewPlaylist(name, url string) *Playlist {
	return &Playlist{Name: name, URL: url}
}

// Add appends a track.
func (p *Playlist) Add(t *Track) {
	p.Tracks = append(p.Tracks, t)
}

// Total returns the number of track records seen, exported or skipped.
func (p *Playlist) Total() int {
	return len(p.Tracks) + p.Skipped
}
