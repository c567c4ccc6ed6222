package internal

import (
	cryptoRand "crypto/rand"
	"io"
	"math/rand"
)

// EntropyReader is the default source for unseeded generators
var EntropyReader io.Reader = cryptoRand.Reader

// SeededReader implements the io.Reader interface and generates deterministic bytes
// based on a fixed seed. It stands in for EntropyReader in tests.
type SeededReader struct {
	rand *rand.Rand
}

// NewSeededReader creates a new SeededReader with a fixed seed.
func NewSeededReader(seed int64) *SeededReader {
	return &SeededReader{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Read fills the buffer from the seeded source, it never fails.
func (sr *SeededReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(sr.rand.Intn(256))
	}
	return len(p), nil
}

// FailingReader returns Err on every read.
type FailingReader struct {
	Err error
}

func (fr FailingReader) Read([]byte) (int, error) {
	return 0, fr.Err
}
