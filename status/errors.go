package status

import "errors"

// Kind classifies failures produced by this module. I/O errors coming from
// an underlying source or sink are never wrapped into Error and are always
// propagated as-is.
type Kind uint8

const (
	// Truncated means the header terminator was never met in the supplied
	// data. The caller should retry with more bytes, re-parsing from scratch.
	Truncated Kind = iota + 1
	// ProtocolViolation means the data is complete but breaks the header
	// grammar or one of the lexical classes.
	ProtocolViolation
)

type Error struct {
	Message string
	Kind    Kind
}

func NewError(kind Kind, message string) error {
	return Error{
		Kind:    kind,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

var (
	ErrTruncated = NewError(Truncated, "no header terminator in the supplied data")

	ErrBadStatusLine = NewError(ProtocolViolation, "malformed status line")
	ErrNoColon       = NewError(ProtocolViolation, "header field line lacks a colon")
	ErrNonPrintable  = NewError(ProtocolViolation, "non-printable ascii character")
	ErrBadFieldKey   = NewError(ProtocolViolation, "illegal header field name")
	ErrBadURI        = NewError(ProtocolViolation, "malformed URI")
	ErrBadInteger    = NewError(ProtocolViolation, "malformed decimal integer")
	ErrStatusRange   = NewError(ProtocolViolation, "status code out of range")
)

// KindOf returns the Kind of err, or zero if err wasn't produced by
// this package.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
