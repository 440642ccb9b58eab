package model

// Track is one normalized song of a playlist.
//
// Track is built by spotify.MapTrack from a raw track record and is not
// modified afterwards. It contains:
//   - Name, the track title
//   - Artist, every artist name joined with ", " in credit order
//   - Album, the album title
//   - CoverURL, the second image of the album (300x300 on Spotify)
//
// Example:
//
//	track := NewTrack("Come Together", "The Beatles", "Abbey Road", coverURL)
//	fmt.Println(track.Artist) // "The Beatles"
type Track struct {
	// Name is the track title.
	Name string

	// Artist holds the artist names, comma-separated when there are several.
	Artist string

	// Album is the album title.
	Album string

	// CoverURL is the URL of the album cover art.
	CoverURL string
}

// NewTrack creates a new Track.
func NewTrack(name, artist, album, coverURL string) *Track {
	return &Track{
		Name:     name,
		Artist:   artist,
		Album:    album,
		CoverURL: coverURL,
	}
}
