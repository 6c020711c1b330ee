package strutil

// LStripWS cuts leading spaces and horizontal tabs.
func LStripWS(b []byte) []byte {
	for i, c := range b {
		switch c {
		case ' ', '\t':
		default:
			return b[i:]
		}
	}

	return b[:0]
}

// RStripWS cuts trailing spaces and horizontal tabs.
func RStripWS(b []byte) []byte {
	for i := len(b); i > 0; i-- {
		switch b[i-1] {
		case ' ', '\t':
		default:
			return b[:i]
		}
	}

	return b[:0]
}

// TrimWS cuts surrounding spaces and horizontal tabs from both sides.
func TrimWS(b []byte) []byte {
	return LStripWS(RStripWS(b))
}
