// Package http provides the HTTP client used to download playlist pages.
//
// The Client in this package handles:
//   - User-Agent headers
//   - An optional timeout (none by default)
//   - Status checking: anything but 200 OK is an error
//
// # Basic Usage
//
//	client := http.NewClient("", 0)
//
//	html, err := client.GetString(ctx, playlistURL)
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) {
//	    fmt.Println("server answered", statusErr.StatusCode)
//	}
package http
