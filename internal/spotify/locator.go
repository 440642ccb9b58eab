package spotify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PatternKind identifies one of the markup conventions Spotify has used to
// embed the playlist payload in its pages. The decoding rules differ per
// pattern, so a Payload always carries the pattern that produced it.
type PatternKind int

const (
	// PatternBase64Script is a base64-encoded JSON document in
	// <script id="initial-state" type="text/plain">.
	PatternBase64Script PatternKind = iota

	// PatternJSONScript is a raw JSON document in a script tag of type
	// application/json (id "resource" on older pages, "initial-state" later).
	PatternJSONScript

	// PatternInlineAssignment is an object literal assigned inline,
	// "Spotify.Entity = {...};" at the end of a line or of the script. The
	// match stops before the closing brace.
	PatternInlineAssignment

	// PatternMarkerFragment is an inline object whose match begins at the
	// "session" marker, past the opening {", and runs to the end of the script.
	PatternMarkerFragment
)

// DefaultPatterns is the order in which patterns are tried, newest first.
var DefaultPatterns = []PatternKind{
	PatternBase64Script,
	PatternJSONScript,
	PatternInlineAssignment,
	PatternMarkerFragment,
}

var patternNames = map[PatternKind]string{
	PatternBase64Script:     "base64-script",
	PatternJSONScript:       "json-script",
	PatternInlineAssignment: "inline-assignment",
	PatternMarkerFragment:   "marker-fragment",
}

// String returns the configuration name of the pattern.
func (k PatternKind) String() string {
	if name, ok := patternNames[k]; ok {
		return name
	}
	return fmt.Sprintf("pattern(%d)", int(k))
}

// ParsePatternKind returns the pattern with the given configuration name.
func ParsePatternKind(name string) (PatternKind, error) {
	for kind, n := range patternNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown payload pattern %q", name)
}

// Payload is the candidate data string found in a page.
type Payload struct {
	Data    string
	Pattern PatternKind
}

// Page is a fetched playlist page. The HTML is parsed at most once, on the
// first matcher that needs the document tree.
type Page struct {
	Raw string

	doc    *goquery.Document
	parsed bool
}

// NewPage wraps raw page text.
func NewPage(raw string) *Page {
	return &Page{Raw: raw}
}

// Document returns the parsed HTML, or nil if the page cannot be parsed.
func (p *Page) Document() *goquery.Document {
	if !p.parsed {
		p.parsed = true
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.Raw))
		if err == nil {
			p.doc = doc
		}
	}
	return p.doc
}

// Matcher finds the payload of one pattern in a page.
type Matcher interface {
	Kind() PatternKind
	Match(page *Page) (string, bool)
}

// scriptMatcher selects a script element and returns its text.
type scriptMatcher struct {
	kind      PatternKind
	selectors []string
	valid     *regexp.Regexp
}

func (m *scriptMatcher) Kind() PatternKind { return m.kind }

func (m *scriptMatcher) Match(page *Page) (string, bool) {
	doc := page.Document()
	if doc == nil {
		return "", false
	}

	for _, sel := range m.selectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(node.Text())
		if text == "" {
			continue
		}
		if m.valid != nil && !m.valid.MatchString(text) {
			continue
		}
		return text, true
	}
	return "", false
}

// regexMatcher returns the first capture group of a pattern over the raw page.
type regexMatcher struct {
	kind PatternKind
	re   *regexp.Regexp
}

func (m *regexMatcher) Kind() PatternKind { return m.kind }

func (m *regexMatcher) Match(page *Page) (string, bool) {
	match := m.re.FindStringSubmatch(page.Raw)
	if len(match) < 2 || match[1] == "" {
		return "", false
	}
	return match[1], true
}

var base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// newMatcher builds the matcher for a pattern.
func newMatcher(kind PatternKind) Matcher {
	switch kind {
	case PatternBase64Script:
		return &scriptMatcher{
			kind:      kind,
			selectors: []string{`script#initial-state[type="text/plain"]`},
			valid:     base64Alphabet,
		}
	case PatternJSONScript:
		return &scriptMatcher{
			kind: kind,
			selectors: []string{
				`script#resource[type="application/json"]`,
				`script#initial-state[type="application/json"]`,
			},
		}
	case PatternInlineAssignment:
		// Stops before the "}" of the "};" that ends the statement line or
		// the script, so "};" inside a string value does not cut it short.
		return &regexMatcher{
			kind: kind,
			re:   regexp.MustCompile(`(?s)Spotify\.Entity\s*=\s*(.*?)\};[ \t]*(?:\r?\n|</script>)`),
		}
	case PatternMarkerFragment:
		return &regexMatcher{
			kind: kind,
			re:   regexp.MustCompile(`(?s)<script[^>]*>\s*\{"(session.*?)\s*</script>`),
		}
	}
	return nil
}

// Locator finds the embedded playlist payload in a page by trying a fixed,
// ordered list of matchers until one succeeds.
//
// Spotify changes its page markup periodically. Each matcher targets one
// past scheme, so pages in any of the known formats still export:
//
//	locator := NewLocator()
//	payload, err := locator.Locate(html)
//	if errors.Is(err, ErrPayloadNotFound) {
//	    fmt.Println("Did the page format change again?")
//	}
type Locator struct {
	matchers []Matcher
}

// NewLocator creates a Locator trying the given patterns in order. With no
// patterns, DefaultPatterns is used.
func NewLocator(kinds ...PatternKind) *Locator {
	if len(kinds) == 0 {
		kinds = DefaultPatterns
	}

	l := &Locator{}
	for _, kind := range kinds {
		if m := newMatcher(kind); m != nil {
			l.matchers = append(l.matchers, m)
		}
	}
	return l
}

// Patterns returns the patterns the Locator tries, in order.
func (l *Locator) Patterns() []PatternKind {
	kinds := make([]PatternKind, len(l.matchers))
	for i, m := range l.matchers {
		kinds[i] = m.Kind()
	}
	return kinds
}

// Locate returns the payload of the first matching pattern.
//
// Returns ErrPayloadNotFound if no pattern matches.
func (l *Locator) Locate(html string) (*Payload, error) {
	page := NewPage(html)
	for _, m := range l.matchers {
		if data, ok := m.Match(page); ok {
			return &Payload{Data: data, Pattern: m.Kind()}, nil
		}
	}
	return nil, fmt.Errorf("%w (tried %d patterns)", ErrPayloadNotFound, len(l.matchers))
}
