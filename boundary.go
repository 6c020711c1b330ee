package httphead

import (
	"bytes"
	"io"

	"github.com/indigo-web/httphead/config"
	"github.com/indigo-web/utils/buffer"
)

// Read fills buf from src until the four-byte header terminator shows up
// somewhere in the consumed bytes. It returns the offset right past the
// terminator and the total number of bytes placed into buf. No reads are
// issued once the terminator is seen, but the read revealing it may have
// already pulled body bytes along; those stay at buf[end:n].
//
// If buf fills up completely without a match, io.ErrShortBuffer is
// returned. The bytes consumed so far are not rolled back: retrying takes
// a bigger buffer and a re-read. Source errors, io.EOF included, are
// propagated untouched. A source endlessly returning (0, nil) makes Read
// spin; timeouts are the source's business.
func Read(src io.Reader, buf []byte) (end, n int, err error) {
	for {
		if idx := bytes.Index(buf[:n], term); idx != -1 {
			return idx + len(term), n, nil
		}

		if err != nil {
			return 0, n, err
		}

		if n == len(buf) {
			return 0, n, io.ErrShortBuffer
		}

		var read int
		read, err = src.Read(buf[n:])
		n += read
	}
}

// Reader is the growing flavor of Read: it accumulates the stream into
// its own storage, expanding between the config.Reader bounds instead of
// demanding a pre-sized buffer.
type Reader struct {
	src   io.Reader
	buff  *buffer.Buffer
	chunk []byte
}

func NewReader(src io.Reader, cfg *config.Config) *Reader {
	return &Reader{
		src:   src,
		buff:  buffer.New(cfg.Reader.Default, cfg.Reader.Maximal),
		chunk: make([]byte, cfg.Reader.ChunkSize),
	}
}

// Next consumes the source up to the header terminator and returns
// everything consumed along with the offset right past the terminator,
// ready to be handed to a parse call. Overflowing the configured maximum
// yields io.ErrShortBuffer.
//
// The returned slice is owned by the Reader and is overridden by the
// following Next call.
func (r *Reader) Next() (buf []byte, end int, err error) {
	r.buff.Clear()

	var (
		carry    [3]byte
		carryLen int
		total    int
	)

	for {
		read, rerr := r.src.Read(r.chunk)
		piece := r.chunk[:read]

		if read > 0 {
			if !r.buff.Append(piece) {
				return nil, 0, io.ErrShortBuffer
			}

			// the terminator may be torn between reads, so the glued edges
			// are checked separately from the piece itself
			var edges [6]byte
			glued := copy(edges[:], carry[:carryLen])
			glued += copy(edges[glued:], piece[:min(3, len(piece))])

			if idx := bytes.Index(edges[:glued], term); idx != -1 {
				return r.buff.Finish(), total - carryLen + idx + len(term), nil
			}
			if idx := bytes.Index(piece, term); idx != -1 {
				return r.buff.Finish(), total + idx + len(term), nil
			}

			total += read
			carryLen = saveTail(&carry, carryLen, piece)
		}

		if rerr != nil {
			return nil, 0, rerr
		}
	}
}

// saveTail keeps the last bytes of carry+piece in carry and reports how
// many of them are meaningful.
func saveTail(carry *[3]byte, carryLen int, piece []byte) int {
	if len(piece) >= len(carry) {
		return copy(carry[:], piece[len(piece)-len(carry):])
	}

	var joined [6]byte
	n := copy(joined[:], carry[:carryLen])
	n += copy(joined[n:], piece)

	start := 0
	if n > len(carry) {
		start = n - len(carry)
	}

	return copy(carry[:], joined[start:n])
}
