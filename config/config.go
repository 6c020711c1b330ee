package config

type (
	Fields struct {
		// Prealloc is the initial capacity of the parsed field map.
		Prealloc int
	}

	Memory struct {
		// Copy detaches parsed values from the source buffer by copying the
		// header block into freshly allocated storage before cutting it up.
		// A parsed header may then outlive the buffer it came from, at the
		// cost of one allocation per parse. The body tail keeps aliasing
		// the source buffer either way.
		Copy bool
	}

	Reader struct {
		// Default and Maximal bound the storage of the accumulating
		// boundary reader. Maximal is the hard cap on the header block
		// size, terminator included.
		Default, Maximal int
		// ChunkSize is how much is requested from the source per read.
		ChunkSize int
	}
)

// Config holds pre-allocation sizes and memory policies. Modify defaults
// returned by Default() instead of constructing it from scratch.
type Config struct {
	Fields Fields
	Memory Memory
	Reader Reader
}

func Default() *Config {
	return &Config{
		Fields: Fields{
			Prealloc: 8, // covers an ordinary client request without growth
		},
		Reader: Reader{
			Default:   2 * 1024,
			Maximal:   16 * 1024, // far beyond what sane intermediaries accept
			ChunkSize: 512,
		},
	}
}
