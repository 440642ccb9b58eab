package spotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTrack(t *testing.T) {
	tests := []struct {
		name       string
		item       string
		wantName   string
		wantArtist string
		wantAlbum  string
	}{
		{
			name:       "single artist",
			item:       trackJSON("Song", "Album", "Alice"),
			wantName:   "Song",
			wantArtist: "Alice",
			wantAlbum:  "Album",
		},
		{
			name:       "artists joined in order",
			item:       trackJSON("Song", "Album", "Alice", "Bob", "Carol"),
			wantName:   "Song",
			wantArtist: "Alice, Bob, Carol",
			wantAlbum:  "Album",
		},
		{
			name:       "no artists credited",
			item:       `{"track":{"name":"S","album":{"name":"Al","images":[{"url":"a"},{"url":"https://i.scdn.co/image/300"}]},"artists":[]}}`,
			wantName:   "S",
			wantArtist: "",
			wantAlbum:  "Al",
		},
		{
			name:       "markup kept verbatim",
			item:       trackJSON("Rock & <Roll>", "A/B", "X"),
			wantName:   "Rock & <Roll>",
			wantArtist: "X",
			wantAlbum:  "A/B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, err := MapTrack(mustParse(t, tt.item))
			require.NoError(t, err)

			assert.Equal(t, tt.wantName, track.Name)
			assert.Equal(t, tt.wantArtist, track.Artist)
			assert.Equal(t, tt.wantAlbum, track.Album)
			assert.Equal(t, "https://i.scdn.co/image/300", track.CoverURL)
		})
	}
}

func TestMapTrack_Malformed(t *testing.T) {
	tests := []struct {
		name string
		item string
	}{
		{"no track", `{"added_at":"2022-02-01T00:00:00Z"}`},
		{"null track", `{"track":null}`},
		{"no album name", `{"track":{"name":"S","album":{"images":[{"url":"a"},{"url":"b"}]},"artists":[{"name":"A"}]}}`},
		{"single image", `{"track":{"name":"S","album":{"name":"Al","images":[{"url":"a"}]},"artists":[{"name":"A"}]}}`},
		{"no artists", `{"track":{"name":"S","album":{"name":"Al","images":[{"url":"a"},{"url":"b"}]}}}`},
		{"artists not a list", `{"track":{"name":"S","album":{"name":"Al","images":[{"url":"a"},{"url":"b"}]},"artists":{"name":"A"}}}`},
		{"artist without name", `{"track":{"name":"S","album":{"name":"Al","images":[{"url":"a"},{"url":"b"}]},"artists":[{"name":"A"},{}]}}`},
		{"no name", `{"track":{"album":{"name":"Al","images":[{"url":"a"},{"url":"b"}]},"artists":[{"name":"A"}]}}`},
		{"numeric name", `{"track":{"name":7,"album":{"name":"Al","images":[{"url":"a"},{"url":"b"}]},"artists":[{"name":"A"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, err := MapTrack(mustParse(t, tt.item))
			assert.ErrorIs(t, err, ErrTrackMapping)
			assert.Nil(t, track)
		})
	}
}
