package httphead

import (
	"io"

	"github.com/indigo-web/utils/uf"
)

// WriteTo renders the header block back into wire form: the status line,
// each field as "key: value" in whatever order the map yields them, and
// the terminating empty line. Writes go to w sequentially, so a failure
// midway leaves it partially written. Implements io.WriterTo.
func (h *Header) WriteTo(w io.Writer) (n int64, err error) {
	write := func(pieces ...[]byte) error {
		for _, piece := range pieces {
			written, err := w.Write(piece)
			n += int64(written)
			if err != nil {
				return err
			}
		}

		return nil
	}

	if err = write(h.line[0], space, h.line[1], space, h.line[2], crlf); err != nil {
		return n, err
	}

	for key, value := range h.fields {
		if err = write(uf.S2B(string(key)), colsp, uf.S2B(string(value)), crlf); err != nil {
			return n, err
		}
	}

	return n, write(crlf)
}
