package spotify

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/handiism/spotify-exporter/internal/spotify/dto"
)

// Decode normalizes a located payload and parses it.
//
// Normalization depends on the pattern that produced the payload:
//   - PatternBase64Script: the data is base64-decoded first
//   - PatternInlineAssignment: text before the first "{" is dropped and the
//     closing "}" the match stopped short of is appended
//   - PatternMarkerFragment: the opening {" the match began after is prepended
//   - PatternJSONScript: the data is used as is
//
// Returns an error wrapping ErrDecode if the base64 is invalid or the
// normalized text is not a single valid JSON document.
func Decode(p *Payload) (dto.Value, error) {
	data, err := normalize(p)
	if err != nil {
		return dto.Missing, fmt.Errorf("%w: %s payload: %v", ErrDecode, p.Pattern, err)
	}

	tree, err := dto.Parse([]byte(data))
	if err != nil {
		return dto.Missing, fmt.Errorf("%w: %s payload: %v", ErrDecode, p.Pattern, err)
	}
	return tree, nil
}

func normalize(p *Payload) (string, error) {
	switch p.Pattern {
	case PatternBase64Script:
		return decodeBase64(p.Data)
	case PatternInlineAssignment:
		return repairTruncatedObject(p.Data), nil
	case PatternMarkerFragment:
		return `{"` + p.Data, nil
	}
	return p.Data, nil
}

// decodeBase64 accepts standard base64, padded or not.
func decodeBase64(s string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil && !strings.Contains(s, "=") {
		decoded, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// repairTruncatedObject turns `Spotify.Entity = {"a":{"b":1}` into `{"a":{"b":1}}`.
func repairTruncatedObject(s string) string {
	if i := strings.Index(s, "{"); i > 0 {
		s = s[i:]
	}
	return s + "}"
}
