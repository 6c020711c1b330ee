package httphead

import (
	"iter"

	"github.com/indigo-web/httphead/config"
	"github.com/indigo-web/httphead/internal/split"
	"github.com/indigo-web/httphead/internal/strutil"
	"github.com/indigo-web/httphead/lexeme"
	"github.com/indigo-web/httphead/status"
	"github.com/indigo-web/utils/strcomp"
)

var (
	term  = []byte("\r\n\r\n")
	crlf  = []byte("\r\n")
	space = []byte(" ")
	colon = []byte(":")
	colsp = []byte(": ")
)

// Header is the parsed, yet mostly uninterpreted shape of a header block:
// the three status line tokens, stored positionally, and the field map.
// Every member aliases the buffer the header was parsed from, so the
// buffer must stay alive and untouched for as long as the header is in
// use, unless config.Memory.Copy is enabled.
type Header struct {
	line   [3][]byte
	fields map[lexeme.FieldKey]lexeme.Text
}

// parse cuts buf into the header block and the unconsumed body tail.
// The status line tokens stay raw and are interpreted by view accessors;
// field keys and values are put through their lexical classes right away.
func parse(buf []byte, cfg *config.Config) (h Header, body []byte, err error) {
	head, body, found := split.Once(buf, term)
	if !found {
		return h, nil, status.ErrTruncated
	}

	if cfg.Memory.Copy {
		head = append(make([]byte, 0, len(head)), head...)
	}

	h.fields = make(map[lexeme.FieldKey]lexeme.Text, cfg.Fields.Prealloc)
	first := true

	for line := range split.Iter(head, crlf) {
		if first {
			toks := split.All(strutil.TrimWS(line), space)
			if !split.Exact(toks, 3) {
				return h, nil, status.ErrBadStatusLine
			}

			h.line = [3][]byte{toks[0], toks[1], toks[2]}
			first = false
			continue
		}

		key, value, found := split.Once(line, colon)
		if !found {
			return h, nil, status.ErrNoColon
		}

		k, err := lexeme.NewFieldKey(key)
		if err != nil {
			return h, nil, err
		}

		v, err := lexeme.NewText(strutil.TrimWS(value))
		if err != nil {
			return h, nil, err
		}

		// a repeated name silently shadows the previous one
		h.fields[k] = v
	}

	return h, body, nil
}

// Field looks the key up byte-exactly.
func (h *Header) Field(key lexeme.FieldKey) (value lexeme.Text, found bool) {
	value, found = h.fields[key]
	return value, found
}

// FieldFold looks the name up case-insensitively by scanning the whole
// map. Prefer Field whenever the wire-exact name is known.
func (h *Header) FieldFold(name string) (value lexeme.Text, found bool) {
	for key, value := range h.fields {
		if strcomp.EqualFold(string(key), name) {
			return value, true
		}
	}

	return "", false
}

// Fields exposes the whole field map. The map must not be modified.
func (h *Header) Fields() map[lexeme.FieldKey]lexeme.Text {
	return h.fields
}

// Pairs iterates the fields as plain strings. The order is unspecified.
func (h *Header) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for key, value := range h.fields {
			if !yield(string(key), string(value)) {
				break
			}
		}
	}
}

// Len returns the number of distinct fields.
func (h *Header) Len() int {
	return len(h.fields)
}
