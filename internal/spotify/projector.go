package spotify

import (
	"fmt"
	"strings"

	"github.com/handiism/spotify-exporter/internal/spotify/dto"
)

// Shape is the top-level layout of a decoded payload.
type Shape int

const (
	// ShapeDirect has name and tracks.items at the top level.
	ShapeDirect Shape = iota

	// ShapeIndexed keeps the playlist under entities.items, a mapping from
	// opaque keys (e.g. "spotify:playlist:37i9dQZF1EpyzGli8mJhi9") to entities.
	ShapeIndexed
)

func (s Shape) String() string {
	if s == ShapeIndexed {
		return "indexed"
	}
	return "direct"
}

// Selection decides which entry of entities.items is the playlist.
type Selection int

const (
	// SelectAuto takes the last playlist-typed entry when any entry carries
	// a playlist discriminator, and the last entry otherwise.
	SelectAuto Selection = iota

	// SelectDiscriminated takes the last playlist-typed entry and fails
	// when there is none.
	SelectDiscriminated

	// SelectLast takes the last entry, whatever it is.
	SelectLast
)

var selectionNames = map[Selection]string{
	SelectAuto:          "auto",
	SelectDiscriminated: "discriminated",
	SelectLast:          "last",
}

func (s Selection) String() string {
	if name, ok := selectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("selection(%d)", int(s))
}

// ParseSelection returns the selection with the given configuration name.
// The empty string selects SelectAuto.
func ParseSelection(name string) (Selection, error) {
	if name == "" {
		return SelectAuto, nil
	}
	for sel, n := range selectionNames {
		if n == name {
			return sel, nil
		}
	}
	return 0, fmt.Errorf("unknown entity selection %q", name)
}

// PlaylistRecord is the playlist found in a payload.
type PlaylistRecord struct {
	// Name is the playlist name, or "" when the record has none.
	Name string

	// HasName reports whether the record carried a string name.
	HasName bool

	// Items are the raw entries of tracks.items, in playlist order.
	Items []dto.Value

	// Shape is the layout the record was found in.
	Shape Shape

	// Key is the entities.items key of the record for ShapeIndexed.
	Key string
}

// Projector finds the playlist record in a decoded payload.
type Projector struct {
	selection Selection
}

// NewProjector creates a Projector using sel for indexed payloads.
func NewProjector(sel Selection) *Projector {
	return &Projector{selection: sel}
}

// Selection returns the configured entity selection.
func (p *Projector) Selection() Selection {
	return p.selection
}

// Project returns the playlist record of tree.
//
// The direct shape is tried first, then the indexed shape. A missing name
// is not an error. Returns an error wrapping ErrProjection if neither shape
// yields a tracks.items array.
func (p *Projector) Project(tree dto.Value) (*PlaylistRecord, error) {
	if rec, ok := readRecord(tree); ok {
		rec.Shape = ShapeDirect
		return rec, nil
	}

	entities := tree.Path("entities", "items")
	if !entities.IsObject() {
		return nil, fmt.Errorf("%w: neither tracks.items nor entities.items present", ErrProjection)
	}

	entry, ok := p.selectEntry(entities.Members())
	if !ok {
		return nil, fmt.Errorf("%w: no %s entry among %d entities", ErrProjection, p.selection, entities.Len())
	}

	rec, ok := readRecord(entry.Value)
	if !ok {
		return nil, fmt.Errorf("%w: entity %q has no tracks.items", ErrProjection, entry.Key)
	}
	rec.Shape = ShapeIndexed
	rec.Key = entry.Key
	return rec, nil
}

func (p *Projector) selectEntry(entries []dto.Member) (dto.Member, bool) {
	if len(entries) == 0 {
		return dto.Member{}, false
	}
	last := entries[len(entries)-1]

	if p.selection == SelectLast {
		return last, true
	}

	var found dto.Member
	ok := false
	for _, e := range entries {
		if isPlaylistEntry(e) {
			found, ok = e, true
		}
	}
	if ok {
		return found, true
	}

	if p.selection == SelectAuto {
		return last, true
	}
	return dto.Member{}, false
}

// isPlaylistEntry reports whether the key or the type field marks the
// entity as a playlist.
func isPlaylistEntry(e dto.Member) bool {
	if strings.Contains(e.Key, "playlist") {
		return true
	}
	typ, _ := e.Value.Get("type").AsString()
	return typ == "playlist"
}

func readRecord(v dto.Value) (*PlaylistRecord, bool) {
	items := v.Path("tracks", "items")
	if !items.IsArray() {
		return nil, false
	}
	name, hasName := v.Get("name").AsString()
	return &PlaylistRecord{
		Name:    name,
		HasName: hasName,
		Items:   items.Elements(),
	}, true
}
