package export

import "fmt"

// Format is an output document format.
type Format int

const (
	// FormatHTML writes a Bootstrap table page (the default).
	FormatHTML Format = iota

	// FormatCSV writes comma-separated records, cover URL included.
	FormatCSV
)

// String returns the configuration name of the format.
func (f Format) String() string {
	if f == FormatCSV {
		return "csv"
	}
	return "html"
}

// ParseFormat returns the format with the given configuration name.
// The empty string selects FormatHTML.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "html":
		return FormatHTML, nil
	case "csv":
		return FormatCSV, nil
	}
	return 0, fmt.Errorf("unknown output format %q", name)
}

// New creates a sink of the given format writing to path.
func New(format Format, path string, opts ...Option) Sink {
	if format == FormatCSV {
		return NewCSVDocument(path, opts...)
	}
	return NewDocument(path, opts...)
}
