package openbankctl

import (
	"bytes"
	"encoding/json"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var (
	// Width 0 keeps every array element on its own line.
	prettyOpts = &pretty.Options{
		Width:    0,
		Prefix:   "",
		Indent:   "  ",
		SortKeys: false,
	}
)

// Document is one JSON file held in memory. Reads and writes address fields by
// gjson/sjson paths (e.g. "accounts.0.balance") and leave everything else,
// key order included, as it was in the file.
type Document struct {
	Kind DocumentKind
	Path string
	raw  []byte
}

// NewDocument validates raw as JSON and wraps it.
func NewDocument(kind DocumentKind, path string, raw []byte) (*Document, error) {
	var probe json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, ErrParse{Path: path, Err: err}
	}
	return &Document{
		Kind: kind,
		Path: path,
		raw:  raw,
	}, nil
}

// Get returns the value at path. Callers check Exists() before relying on it.
func (d *Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.raw, path)
}

func (d *Document) Root() gjson.Result {
	return gjson.ParseBytes(d.raw)
}

// Set stores a Go value at path, creating intermediate objects as needed.
func (d *Document) Set(path string, value interface{}) error {
	raw, err := sjson.SetBytes(d.raw, path, value)
	if err != nil {
		return err
	}
	d.raw = raw
	return nil
}

// SetRaw stores an already encoded JSON value at path.
func (d *Document) SetRaw(path string, value string) error {
	raw, err := sjson.SetRawBytes(d.raw, path, []byte(value))
	if err != nil {
		return err
	}
	d.raw = raw
	return nil
}

// Bytes renders the document with two-space indentation. Non-ASCII text is
// written literally, including text the file held as \uXXXX escapes.
func (d *Document) Bytes() []byte {
	return pretty.PrettyOptions(literalUnicode(d.raw), prettyOpts)
}

// literalUnicode rewrites \uXXXX escapes of non-ASCII code points inside
// string tokens as UTF-8. Escapes of ASCII characters and lone surrogates
// are kept as they are.
func literalUnicode(raw []byte) []byte {
	if !bytes.Contains(raw, []byte(`\u`)) {
		return raw
	}
	out := make([]byte, 0, len(raw))
	inStr := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !inStr {
			if c == '"' {
				inStr = true
			}
			out = append(out, c)
			continue
		}
		switch c {
		case '"':
			inStr = false
			out = append(out, c)
		case '\\':
			if r, n := decodeEscape(raw[i:]); n > 0 {
				out = utf8.AppendRune(out, r)
				i += n - 1
				continue
			}
			out = append(out, c)
			if i+1 < len(raw) {
				i++
				out = append(out, raw[i])
			}
		default:
			out = append(out, c)
		}
	}
	return out
}

// decodeEscape reads a \uXXXX escape, or a surrogate pair of them, at the
// start of b. n is 0 unless it decodes to a valid non-ASCII rune.
func decodeEscape(b []byte) (r rune, n int) {
	r1, ok := hexEscape(b)
	if !ok {
		return 0, 0
	}
	if utf16.IsSurrogate(r1) {
		r2, ok := hexEscape(b[6:])
		if !ok {
			return 0, 0
		}
		if r = utf16.DecodeRune(r1, r2); r == utf8.RuneError {
			return 0, 0
		}
		return r, 12
	}
	if r1 < utf8.RuneSelf {
		return 0, 0
	}
	return r1, 6
}

func hexEscape(b []byte) (rune, bool) {
	if len(b) < 6 || b[0] != '\\' || b[1] != 'u' {
		return 0, false
	}
	v, err := strconv.ParseUint(string(b[2:6]), 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
