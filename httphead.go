// Package httphead parses HTTP/1.x header blocks into typed, borrowed
// views and serializes such views back into wire bytes. Parsed values are
// subslices of the input buffer: nothing is copied, so a parsed header is
// only good for as long as its buffer is, unless config.Memory.Copy says
// otherwise.
//
// The package handles the header block alone. Reading the stream up to
// the block boundary is covered by Read and Reader, everything past the
// boundary (body framing, chunked coding, connection management) belongs
// to the caller.
package httphead

import "github.com/indigo-web/httphead/config"

// Parser carries parse settings. The zero value isn't usable, construct
// it via New.
type Parser struct {
	cfg *config.Config
}

func New(cfg *config.Config) Parser {
	return Parser{cfg: cfg}
}

// ParseRequest parses a request header block from buf, returning the view
// and the unconsumed body bytes following the block.
func (p Parser) ParseRequest(buf []byte) (Request, []byte, error) {
	header, body, err := parse(buf, p.cfg)
	if err != nil {
		return Request{}, nil, err
	}

	return Request{header}, body, nil
}

// ParseResponse parses a response header block from buf, returning the
// view and the unconsumed body bytes following the block.
func (p Parser) ParseResponse(buf []byte) (Response, []byte, error) {
	header, body, err := parse(buf, p.cfg)
	if err != nil {
		return Response{}, nil, err
	}

	return Response{header}, body, nil
}

// ParseRequest is a shorthand over New(config.Default()).ParseRequest.
func ParseRequest(buf []byte) (Request, []byte, error) {
	return New(config.Default()).ParseRequest(buf)
}

// ParseResponse is a shorthand over New(config.Default()).ParseResponse.
func ParseResponse(buf []byte) (Response, []byte, error) {
	return New(config.Default()).ParseResponse(buf)
}
