// Package spotify extracts playlist data from Spotify's public playlist
// pages.
//
// Spotify embeds the state of a playlist page as JSON inside the HTML.
// Where and how it is embedded has changed several times, and so has the
// layout of the JSON itself. Extraction runs in four steps:
//
//  1. Locator finds the payload with an ordered list of matchers, one per
//     known page format
//  2. Decode repairs the payload for the format it came from and parses it
//     into a dto.Value tree
//  3. Projector finds the playlist record in the tree, in either the direct
//     or the indexed shape
//  4. MapTrack turns each raw track entry into a model.Track
//
// Example:
//
//	payload, err := spotify.NewLocator().Locate(html)
//	if err != nil {
//	    return err
//	}
//	tree, err := spotify.Decode(payload)
//	if err != nil {
//	    return err
//	}
//	record, err := spotify.NewProjector(spotify.SelectAuto).Project(tree)
//	if err != nil {
//	    return err
//	}
//	for _, item := range record.Items {
//	    track, err := spotify.MapTrack(item)
//	    if err != nil {
//	        continue // malformed record, skip it
//	    }
//	    fmt.Println(track.Name)
//	}
//
// # Page Formats
//
// The formats are tried newest first:
//   - base64-script: base64 JSON in <script id="initial-state" type="text/plain">
//   - json-script: raw JSON in <script id="resource" type="application/json">
//   - inline-assignment: Spotify.Entity = {...};
//   - marker-fragment: an inline {"session...} object ending with the script
package spotify
