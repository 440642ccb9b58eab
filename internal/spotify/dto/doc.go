// Package dto holds the generic parsed form of the JSON payload that
// Spotify embeds in its playlist pages.
//
// Spotify's page markup and payload schema change without notice, so the
// payload is not decoded into fixed structs. It is parsed into a Value
// tree instead, and the spotify package reads from it with accessors that
// return Missing rather than failing:
//
//	tree, err := dto.Parse(data)
//	if err != nil {
//	    return err
//	}
//	items := tree.Path("tracks", "items")
//	if !items.IsArray() {
//	    // not the direct shape, try entities.items
//	}
package dto
