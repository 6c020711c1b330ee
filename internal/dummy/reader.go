// Package dummy provides byte sources imitating network connections for
// tests: data arrives in fragments of a fixed size, or not at all.
package dummy

import "io"

var _ io.Reader = new(ChunkReader)

// ChunkReader yields its data in pieces of at most `size` bytes each,
// imitating a connection delivering a request in fragments. Once the data
// runs out, it reports io.EOF.
type ChunkReader struct {
	data []byte
	size int
	pos  int
}

func NewChunkReader(data []byte, size int) *ChunkReader {
	return &ChunkReader{
		data: data,
		size: size,
	}
}

func (c *ChunkReader) Read(p []byte) (n int, err error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}

	end := c.pos + c.size
	if end > len(c.data) {
		end = len(c.data)
	}

	n = copy(p, c.data[c.pos:end])
	c.pos += n

	return n, nil
}

// ErrReader fails every read with the given error.
type ErrReader struct {
	err error
}

func NewErrReader(err error) ErrReader {
	return ErrReader{err: err}
}

func (e ErrReader) Read([]byte) (int, error) {
	return 0, e.err
}
