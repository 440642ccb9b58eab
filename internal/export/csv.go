package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/handiism/spotify-exporter/internal/model"
)

// CSVDocument writes a playlist as CSV with columns: #, Title, Artist, Album, Cover.
//
// It follows the same lifecycle as Document, including the silent no-op
// behaviour when the file cannot be created. The playlist name is not part
// of the output.
type CSVDocument struct {
	path   string
	opts   options
	file   *os.File
	writer *csv.Writer
	state  State
	rows   int
	err    error
}

// NewCSVDocument creates a CSV document that will be written to path.
func NewCSVDocument(path string, opts ...Option) *CSVDocument {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &CSVDocument{path: path, opts: o}
}

// Path returns the output file path.
func (d *CSVDocument) Path() string { return d.path }

// State returns the lifecycle state.
func (d *CSVDocument) State() State { return d.state }

// Rows returns the number of rows added so far.
func (d *CSVDocument) Rows() int { return d.rows }

// Err returns the first open or write error, if any.
func (d *CSVDocument) Err() error { return d.err }

// Open creates the output file and writes the header record.
func (d *CSVDocument) Open(_ string) {
	if d.state != StateCreated {
		return
	}

	file, err := os.Create(d.path)
	if err != nil {
		d.err = err
		d.state = StateClosed
		d.opts.logger.Error("Error while opening output file", "path", d.path, "err", err)
		return
	}

	d.file = file
	d.writer = csv.NewWriter(file)
	d.state = StateOpen
	d.write([]string{"#", "Title", "Artist", "Album", "Cover"})
}

// AddRow writes the record for track.
func (d *CSVDocument) AddRow(track *model.Track) {
	if d.state != StateOpen {
		return
	}

	d.rows++
	d.write([]string{strconv.Itoa(d.rows), track.Name, track.Artist, track.Album, track.CoverURL})
}

// Close flushes and closes the file.
func (d *CSVDocument) Close() {
	if d.state != StateOpen {
		d.state = StateClosed
		return
	}

	d.writer.Flush()
	if err := d.writer.Error(); err != nil && d.err == nil {
		d.err = err
	}
	if err := d.file.Close(); err != nil && d.err == nil {
		d.err = err
	}
	d.file = nil
	d.state = StateClosed

	if d.err == nil {
		d.opts.logger.Info("File "+d.path+" created.", "rows", d.rows)
	}
}

func (d *CSVDocument) write(record []string) {
	if d.err != nil {
		return
	}
	if err := d.writer.Write(record); err != nil {
		d.err = err
		d.opts.logger.Error("Error while writing output file", "path", d.path, "err", err)
	}
}
