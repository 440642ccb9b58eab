package spotify

import "errors"

// Errors returned by the extraction stages. Each is wrapped with context,
// so compare with errors.Is.
var (
	// ErrPayloadNotFound is returned when none of the locator patterns
	// matches the page.
	//
	// This typically occurs when:
	//   - The URL is not a public Spotify playlist page
	//   - Spotify changed its page markup again
	ErrPayloadNotFound = errors.New("playlist payload not found in page")

	// ErrDecode is returned when the located payload is not valid base64
	// or not valid JSON after repair.
	ErrDecode = errors.New("cannot decode playlist payload")

	// ErrProjection is returned when the decoded payload has neither the
	// direct nor the indexed shape.
	ErrProjection = errors.New("no playlist record in payload")

	// ErrTrackMapping is returned by MapTrack for a malformed track record.
	// It only ever costs the one track.
	ErrTrackMapping = errors.New("malformed track record")
)
