package export

import (
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/handiism/spotify-exporter/internal/model"
)

// DefaultSourceURL is linked from the footer of every document.
const DefaultSourceURL = "https://github.com/0x07cc/spotify-exporter"

// State is the lifecycle state of a document.
type State int

const (
	// StateCreated is a document that has not been opened yet.
	StateCreated State = iota

	// StateOpen is a document accepting rows.
	StateOpen

	// StateClosed is terminal. It is also where a document whose file
	// could not be created ends up on Open.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// Sink receives the exported tracks of a playlist.
//
// A Sink is opened once with the playlist name, receives one AddRow per
// successfully mapped track and is closed once. None of the methods return
// errors: a sink that cannot write degrades to a no-op and reports the
// cause through Err.
type Sink interface {
	Open(playlistName string)
	AddRow(track *model.Track)
	Close()
	Rows() int
	Err() error
}

// Option configures a document.
type Option func(*options)

type options struct {
	now       func() time.Time
	host      func() string
	sourceURL string
	logger    *log.Logger
}

func defaultOptions() options {
	return options{
		now:       time.Now,
		host:      hostname,
		sourceURL: DefaultSourceURL,
		logger:    log.Default(),
	}
}

// WithClock sets the clock used for the footer date.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithHost sets the host identifier written in the footer.
func WithHost(host string) Option {
	return func(o *options) { o.host = func() string { return host } }
}

// WithSourceURL sets the attribution link of the footer.
func WithSourceURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.sourceURL = url
		}
	}
}

// WithLogger sets the logger used to report open and write failures.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return qualify(name, net.LookupHost, net.LookupAddr)
}

// qualify returns the first dotted name the addresses of host resolve back
// to, or host itself when there is none.
func qualify(host string, lookupHost, lookupAddr func(string) ([]string, error)) string {
	if strings.Contains(host, ".") {
		return host
	}

	addrs, err := lookupHost(host)
	if err != nil {
		return host
	}
	for _, addr := range addrs {
		names, err := lookupAddr(addr)
		if err != nil {
			continue
		}
		for _, n := range names {
			n = strings.TrimSuffix(n, ".")
			if strings.Contains(n, ".") {
				return n
			}
		}
	}
	return host
}

// Document writes a playlist as a Bootstrap-styled HTML table.
//
// The page needs an Internet connection to load the stylesheet and scripts
// from their CDNs.
//
// Document goes through three states:
//   - Created: NewDocument has not touched the file system
//   - Open: Open created (or truncated) the file and wrote the header
//   - Closed: Close wrote the footer and released the file
//
// If the file cannot be created, Open logs the error and the document goes
// straight to Closed, so every later call is a silent no-op. Callers are
// not expected to check for this.
//
// Example usage:
//
//	doc := NewDocument("index.html")
//	doc.Open("My Mix")
//	defer doc.Close()
//
//	for _, track := range tracks {
//	    doc.AddRow(track) // rows are numbered 1, 2, 3...
//	}
type Document struct {
	path  string
	opts  options
	file  *os.File
	state State
	rows  int
	err   error
}

// NewDocument creates a document that will be written to path.
func NewDocument(path string, opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Document{path: path, opts: o}
}

// Path returns the output file path.
func (d *Document) Path() string { return d.path }

// State returns the lifecycle state.
func (d *Document) State() State { return d.state }

// Rows returns the number of rows added so far.
func (d *Document) Rows() int { return d.rows }

// Err returns the first open or write error, if any.
func (d *Document) Err() error { return d.err }

// Open creates the output file, destroying any previous content, and writes
// the header. The playlist name is embedded verbatim, without escaping.
func (d *Document) Open(playlistName string) {
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
	d.state = StateOpen
	d.write(header(playlistName))
}

// AddRow writes the row for track, numbered one past the previous row.
func (d *Document) AddRow(track *model.Track) {
	if d.state != StateOpen {
		return
	}

	d.rows++
	d.write(row(d.rows, track))
}

// Close writes the footer and closes the file. Calling Close more than
// once, or on a document that never opened, does nothing.
func (d *Document) Close() {
	if d.state != StateOpen {
		d.state = StateClosed
		return
	}

	d.write(footer(d.opts.now(), d.opts.host(), d.opts.sourceURL))
	if err := d.file.Close(); err != nil && d.err == nil {
		d.err = err
	}
	d.file = nil
	d.state = StateClosed

	if d.err == nil {
		d.opts.logger.Info(fmt.Sprintf("File %s created.", d.path), "rows", d.rows)
	}
}

func (d *Document) write(s string) {
	if d.err != nil {
		return
	}
	if _, err := io.WriteString(d.file, s); err != nil {
		d.err = err
		d.opts.logger.Error("Error while writing output file", "path", d.path, "err", err)
	}
}
