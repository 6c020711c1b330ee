package httphead

import (
	"strconv"

	"github.com/indigo-web/httphead/lexeme"
	"github.com/indigo-web/httphead/status"
)

// Response is a typed view over a parsed response header block. Accessors
// validate on every call, just like in Request.
type Response struct {
	Header
}

// Proto returns the protocol version token.
func (r Response) Proto() (lexeme.Text, error) {
	return lexeme.NewText(r.line[0])
}

// Status returns the status code. A lexically valid number that doesn't
// fit 16 bits is as much of a violation as a non-numeric one.
func (r Response) Status() (uint16, error) {
	integer, err := lexeme.NewInteger(r.line[1])
	if err != nil {
		return 0, err
	}

	code, err := strconv.ParseUint(string(integer), 10, 16)
	if err != nil {
		return 0, status.ErrStatusRange
	}

	return uint16(code), nil
}

// Reason returns the status reason phrase.
func (r Response) Reason() (lexeme.Text, error) {
	return lexeme.NewText(r.line[2])
}
