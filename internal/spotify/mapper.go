package spotify

import (
	"fmt"
	"strings"

	"github.com/handiism/spotify-exporter/internal/model"
	"github.com/handiism/spotify-exporter/internal/spotify/dto"
)

// coverImageIndex selects the second cover art resolution (300x300).
const coverImageIndex = 1

// MapTrack converts one raw entry of tracks.items into a model.Track.
//
// The entry is expected to look like:
//
//	{"track": {
//	    "name": "Song",
//	    "album": {"name": "Album", "images": [{"url": "..."}, {"url": "..."}]},
//	    "artists": [{"name": "Alice"}, {"name": "Bob"}]
//	}}
//
// Artist names are joined with ", " in credit order; an empty artist list
// gives an empty Artist. Returns an error wrapping ErrTrackMapping naming
// the first field that is absent or has the wrong type, including a missing
// second image. Such an error only costs this one track.
func MapTrack(item dto.Value) (*model.Track, error) {
	track := item.Get("track")
	if !track.IsObject() {
		return nil, fieldError("track")
	}

	album := track.Get("album")
	albumName, ok := album.Get("name").AsString()
	if !ok {
		return nil, fieldError("track.album.name")
	}

	coverURL, ok := album.Get("images").Index(coverImageIndex).Get("url").AsString()
	if !ok {
		return nil, fieldError(fmt.Sprintf("track.album.images[%d].url", coverImageIndex))
	}

	artist, err := joinArtists(track.Get("artists"))
	if err != nil {
		return nil, err
	}

	name, ok := track.Get("name").AsString()
	if !ok {
		return nil, fieldError("track.name")
	}

	return model.NewTrack(name, artist, albumName, coverURL), nil
}

func joinArtists(artists dto.Value) (string, error) {
	if !artists.IsArray() {
		return "", fieldError("track.artists")
	}

	names := make([]string, 0, artists.Len())
	for i, a := range artists.Elements() {
		name, ok := a.Get("name").AsString()
		if !ok {
			return "", fieldError(fmt.Sprintf("track.artists[%d].name", i))
		}
		names = append(names, name)
	}
	return strings.Join(names, ", "), nil
}

func fieldError(field string) error {
	return fmt.Errorf("%w: %s missing or malformed", ErrTrackMapping, field)
}
