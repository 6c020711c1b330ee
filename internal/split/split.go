// Package split contains primitives for cutting a byte buffer on a fixed
// multi-byte pattern. All of them leave the buffer intact and hand out
// subslices of it, never copies.
package split

import (
	"bytes"
	"iter"
)

// Once cuts b at the first occurrence of pat. If pat isn't met, the whole
// b is returned as head.
func Once(b, pat []byte) (head, tail []byte, found bool) {
	idx := index(b, pat)
	if idx == -1 {
		return b, nil, false
	}

	return b[:idx], b[idx+len(pat):], true
}

// N cuts b at the first n-1 occurrences of pat. The last piece keeps any
// further occurrences intact. Absent pattern simply produces fewer pieces,
// down to a single one.
func N(b, pat []byte, n int) [][]byte {
	if n <= 0 {
		return nil
	}

	pieces := make([][]byte, 0, n)

	for ; n > 1; n-- {
		idx := index(b, pat)
		if idx == -1 {
			break
		}

		pieces = append(pieces, b[:idx])
		b = b[idx+len(pat):]
	}

	return append(pieces, b)
}

// All cuts b at every occurrence of pat.
func All(b, pat []byte) [][]byte {
	pieces := make([][]byte, 0, 1)

	for {
		idx := index(b, pat)
		if idx == -1 {
			return append(pieces, b)
		}

		pieces = append(pieces, b[:idx])
		b = b[idx+len(pat):]
	}
}

// Iter walks the pieces of b between occurrences of pat without collecting
// them anywhere.
func Iter(b, pat []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			idx := index(b, pat)
			if idx == -1 {
				yield(b)
				return
			}

			if !yield(b[:idx]) {
				return
			}

			b = b[idx+len(pat):]
		}
	}
}

// Exact reports whether the cut produced exactly n pieces.
func Exact(pieces [][]byte, n int) bool {
	return len(pieces) == n
}

// Min reports whether the cut produced at least n pieces.
func Min(pieces [][]byte, n int) bool {
	return len(pieces) >= n
}

// index treats an empty pattern as never matching, unlike bytes.Index.
// Matching it at every position would never terminate the cut loops.
func index(b, pat []byte) int {
	if len(pat) == 0 {
		return -1
	}

	return bytes.Index(b, pat)
}
