package internal

import (
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/sampling"
	"golang.org/x/crypto/blake2b"
)

// TextSeedReader returns a keyed PRNG stream for a text seed.
// The text is compressed with BLAKE2b-512 first, because the BLAKE2Xb key
// is limited to 64 bytes while seeds can be of any length.
func TextSeedReader(text string) (io.Reader, error) {
	key := blake2b.Sum512([]byte(text))
	prng, err := sampling.NewKeyedPRNG(key[:])
	if err != nil {
		return nil, fmt.Errorf("keyed prng: %w", err)
	}
	return prng, nil
}
