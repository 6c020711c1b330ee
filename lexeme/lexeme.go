// Package lexeme holds byte data that is proven to satisfy one of the
// lexical classes the header grammar is built upon. A value of any of the
// types below exists only if the corresponding constructor accepted the
// bytes, so holding one is the proof of validity.
//
// All constructors view the passed slice via an unsafe string conversion
// instead of copying it, so a lexeme aliases the buffer it was made from
// and must not outlive it.
package lexeme

import (
	"github.com/indigo-web/httphead/status"
	"github.com/indigo-web/utils/uf"
)

type (
	// Text is printable ascii data, charset 0x20-0x7e.
	Text string
	// URI is a request target in its raw, still percent-encoded form.
	URI string
	// Integer is an unsigned decimal number of arbitrary width.
	Integer string
	// FieldKey is a header field name, limited to the token charset.
	FieldKey string
)

func NewText(b []byte) (Text, error) {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return "", status.ErrNonPrintable
		}
	}

	return Text(uf.B2S(b)), nil
}

func NewURI(b []byte) (URI, error) {
	if len(b) == 0 {
		return "", status.ErrBadURI
	}

	for _, c := range b {
		if !uriChars[c] {
			return "", status.ErrBadURI
		}
	}

	return URI(uf.B2S(b)), nil
}

func NewInteger(b []byte) (Integer, error) {
	if len(b) == 0 {
		return "", status.ErrBadInteger
	}

	for _, c := range b {
		if c < '0' || c > '9' {
			return "", status.ErrBadInteger
		}
	}

	return Integer(uf.B2S(b)), nil
}

func NewFieldKey(b []byte) (FieldKey, error) {
	if len(b) == 0 {
		return "", status.ErrBadFieldKey
	}

	for _, c := range b {
		if !tokenChars[c] {
			return "", status.ErrBadFieldKey
		}
	}

	return FieldKey(uf.B2S(b)), nil
}

// Key validates name as a header field name. Mainly a shorthand for
// lookups by a constant name.
func Key(name string) (FieldKey, error) {
	return NewFieldKey(uf.S2B(name))
}

func (t Text) String() string { return string(t) }

func (t Text) Bytes() []byte { return uf.S2B(string(t)) }

func (u URI) String() string { return string(u) }

func (u URI) Bytes() []byte { return uf.S2B(string(u)) }

func (i Integer) String() string { return string(i) }

func (k FieldKey) String() string { return string(k) }

func (k FieldKey) Bytes() []byte { return uf.S2B(string(k)) }

// tokenChars is the tchar set: alphanumerics plus !#$%&'*+-.^_`|~
var tokenChars = charset("!#$%&'*+-.^_`|~")

// uriChars covers unreserved and reserved characters of a URI, plus the
// percent sign, as targets stay percent-encoded here.
var uriChars = charset("-._~:/?#[]@!$&'()*+,;=%")

func charset(extra string) (set [256]bool) {
	for c := 'a'; c <= 'z'; c++ {
		set[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		set[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		set[c] = true
	}
	for _, c := range extra {
		set[c] = true
	}

	return set
}
