package httphead

import "github.com/indigo-web/httphead/lexeme"

// Request is a typed view over a parsed request header block. Accessors
// run their lexical class on every call instead of caching: the tokens
// are tiny, and fields nobody reads never get validated at all.
type Request struct {
	Header
}

// Method returns the request method token.
func (r Request) Method() (lexeme.Text, error) {
	return lexeme.NewText(r.line[0])
}

// URI returns the request target.
func (r Request) URI() (lexeme.URI, error) {
	return lexeme.NewURI(r.line[1])
}

// Proto returns the protocol version token.
func (r Request) Proto() (lexeme.Text, error) {
	return lexeme.NewText(r.line[2])
}
