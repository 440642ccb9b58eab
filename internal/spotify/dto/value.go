package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindMissing marks the absence of a value. It is what accessors
	// return when a key, index or type does not match.
	KindMissing Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "missing"
	}
}

// Member is one key/value pair of an object, kept in document order.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value.
//
// Unlike map[string]any, objects keep their members in the order they
// appear in the document. Spotify's indexed payloads rely on that order:
// the last playlist entry in entities.items is the authoritative one.
//
// Accessors never fail. A lookup that does not match yields Missing, and
// every accessor called on Missing yields Missing again, so a deep path
// can be read in one expression and checked once:
//
//	url, ok := item.Path("track", "album").Get("images").Index(1).Get("url").AsString()
//	if !ok {
//	    // some part of the path is absent or has the wrong type
//	}
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or the literal of a number
	items   []Value
	members []Member
}

// Missing is the absent value.
var Missing = Value{}

// Null returns a JSON null.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number returns a JSON number from its literal text, e.g. "42" or "1.5e3".
func Number(literal string) Value { return Value{kind: KindNumber, text: literal} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array returns a JSON array holding items in order.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Object returns a JSON object holding members in order.
func Object(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{kind: KindObject, members: members}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Exists reports whether v is anything other than Missing. A JSON null exists.
func (v Value) Exists() bool { return v.kind != KindMissing }

// IsObject reports whether v is an object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// IsArray reports whether v is an array.
func (v Value) IsArray() bool { return v.kind == KindArray }

// Get returns the member named key. When an object repeats a key the last
// occurrence wins, matching encoding/json.
func (v Value) Get(key string) Value {
	if v.kind != KindObject {
		return Missing
	}
	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Key == key {
			return v.members[i].Value
		}
	}
	return Missing
}

// Path follows keys through nested objects.
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, k := range keys {
		cur = cur.Get(k)
	}
	return cur
}

// Index returns the i-th element of an array. Out-of-range indices,
// including negative ones, yield Missing.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Missing
	}
	return v.items[i]
}

// Len returns the number of elements of an array or members of an object,
// and 0 for anything else.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	}
	return 0
}

// Elements returns the elements of an array, or nil.
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Members returns the members of an object in document order, or nil.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.members
}

// AsString returns the contents of a string value.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// AsBool returns the contents of a boolean value.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

// AsNumber returns the literal text of a number value.
func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return json.Number(v.text), true
}

// errTrailingData is returned when a document holds more than one value.
var errTrailingData = errors.New("unexpected data after top-level value")

// Parse decodes a single JSON document into a Value.
//
// The whole input must be consumed: trailing values or garbage after the
// top-level value are a syntax error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Missing, err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return Missing, err
	}

	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Missing, io.ErrUnexpectedEOF
		}
		return Missing, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return Missing, fmt.Errorf("unexpected delimiter %q", rune(t))
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}

	return Missing, fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (Value, error) {
	members := []Member{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Missing, err
		}
		key, ok := tok.(string)
		if !ok {
			return Missing, fmt.Errorf("object key is %v, not a string", tok)
		}

		val, err := parseValue(dec)
		if err != nil {
			return Missing, err
		}
		members = append(members, Member{Key: key, Value: val})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return Missing, err
	}
	return Object(members...), nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return Missing, err
		}
		items = append(items, val)
	}

	if _, err := dec.Token(); err != nil {
		return Missing, err
	}
	return Array(items...), nil
}
