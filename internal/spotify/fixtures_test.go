package spotify

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// trackJSON returns a raw tracks.items entry with two cover images.
func trackJSON(name, album string, artists ...string) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = fmt.Sprintf(`{"name":%q,"type":"artist"}`, a)
	}
	return fmt.Sprintf(`{"added_at":"2022-02-01T00:00:00Z","track":{"name":%q,"album":{"name":%q,"images":[`+
		`{"height":640,"url":"https://i.scdn.co/image/640"},`+
		`{"height":300,"url":"https://i.scdn.co/image/300"},`+
		`{"height":64,"url":"https://i.scdn.co/image/64"}]},"artists":[%s]}}`,
		name, album, strings.Join(names, ","))
}

// directPayload is a direct-shape payload with two tracks.
var directPayload = `{"name":"My Mix","type":"playlist","tracks":{"items":[` +
	trackJSON("First Song", "First Album", "Alice") + `,` +
	trackJSON("Second Song", "Second Album", "Alice", "Bob") +
	`]}}`

func base64Page(payload string) string {
	return `<!doctype html><html><head><title>Spotify</title></head><body>` +
		`<script id="initial-state" type="text/plain">` + base64.StdEncoding.EncodeToString([]byte(payload)) + `</script>` +
		`</body></html>`
}

func jsonScriptPage(id, payload string) string {
	return `<!doctype html><html><head>` +
		`<script id="` + id + `" type="application/json">` + payload + `</script>` +
		`</head><body></body></html>`
}

func inlineAssignmentPage(payload string) string {
	return `<html><body><script>Spotify = {};
Spotify.Entity = ` + payload + `;
</script></body></html>`
}

// markerPage embeds an object whose first key is "session".
func markerPage(rest string) string {
	return `<html><body><script type="text/javascript">{"session":{"accessToken":"t","isAnonymous":true},` + rest + `}</script></body></html>`
}
