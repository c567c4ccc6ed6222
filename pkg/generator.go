package pkg

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/tuneinsight/lattigo/v6/utils/sampling"

	"github.com/MingLLuo/streamrng/internal"
	"github.com/MingLLuo/streamrng/pkg/xoshiro"
)

// Generator is a xoshiro256** stream with the numeric draw operations.
//
// A Generator is not safe for concurrent use. Every consumer is expected to
// own its own instance, obtained through Root.Derive or Locals.Get.
type Generator struct {
	state xoshiro.State
}

var (
	_ rand.Source   = (*Generator)(nil)
	_ io.Reader     = (*Generator)(nil)
	_ sampling.PRNG = (*Generator)(nil)
)

// NewGenerator resolves seed into a fresh generator. The entropy source is
// only read when the seed is absent.
func NewGenerator(seed Seed) (*Generator, error) {
	return newGenerator(seed, internal.EntropyReader)
}

func newGenerator(seed Seed, entropy io.Reader) (*Generator, error) {
	st, err := seed.resolve(entropy)
	if err != nil {
		return nil, err
	}
	return &Generator{state: st}, nil
}

// FromUint64 creates a deterministic generator from a numeric seed
func FromUint64(seed uint64) *Generator {
	return &Generator{state: xoshiro.FromUint64(seed)}
}

// FromText creates a deterministic generator from a text seed
func FromText(seed string) *Generator {
	return &Generator{state: textState(seed)}
}

// FromEntropy creates a non-deterministic generator seeded from r.
// A nil r means the operating system source.
func FromEntropy(r io.Reader) (*Generator, error) {
	return newGenerator(NoSeed(), r)
}

// FromState wraps an existing state
func FromState(st xoshiro.State) *Generator {
	if !st.Valid() {
		st = xoshiro.FromUint64(0)
	}
	return &Generator{state: st}
}

// Derive consumes output of g to seed a new, independent generator.
// g is advanced irreversibly: two calls return two different children.
func (g *Generator) Derive() *Generator {
	return &Generator{state: g.state.Fork()}
}

// Clone returns a copy that continues the same sequence independently
func (g *Generator) Clone() *Generator {
	c := *g
	return &c
}

// State returns a snapshot of the internal state
func (g *Generator) State() xoshiro.State {
	return g.state
}

// NextU32 returns a uniform draw over the full uint32 range
func (g *Generator) NextU32() uint32 {
	return uint32(g.state.Next() >> 32)
}

// NextU64 returns a uniform draw over the full uint64 range
func (g *Generator) NextU64() uint64 {
	return g.state.Next()
}

// NextF32 returns a uniform draw in [0, 1) with 24 bits of precision
func (g *Generator) NextF32() float32 {
	return float32(g.NextU32()>>8) * (1.0 / (1 << 24))
}

// NextF64 returns a uniform draw in [0, 1) with 53 bits of precision
func (g *Generator) NextF64() float64 {
	return float64(g.NextU64()>>11) * (1.0 / (1 << 53))
}

// NextU32Range returns a draw in [min, max) by scaling NextF32.
//
// The scaling is not exactly uniform over large ranges, and max < min wraps
// around in the subtraction. Both are part of the recorded sequence and are
// left as is; callers must pass min < max.
func (g *Generator) NextU32Range(min, max uint32) uint32 {
	return uint32(float32(g.NextF32()*float32(max-min))) + min
}

// NextU64Range returns a draw in [min, max) by scaling NextF64.
// See NextU32Range for the caveats.
func (g *Generator) NextU64Range(min, max uint64) uint64 {
	return uint64(float64(g.NextF64()*float64(max-min))) + min
}

// NextF32Range returns a draw in [min, max)
func (g *Generator) NextF32Range(min, max float32) float32 {
	return float32(g.NextF32()*(max-min)) + min
}

// NextF64Range returns a draw in [min, max)
func (g *Generator) NextF64Range(min, max float64) float64 {
	return float64(g.NextF64()*(max-min)) + min
}

// Uint64 implements rand.Source
func (g *Generator) Uint64() uint64 {
	return g.NextU64()
}

// Read fills p with generator output, eight bytes per draw in little-endian
// order. A tail of five to seven bytes takes one more 64-bit draw, a tail of
// one to four bytes one 32-bit draw. Read never fails.
func (g *Generator) Read(p []byte) (int, error) {
	left := p
	for len(left) >= 8 {
		binary.LittleEndian.PutUint64(left, g.NextU64())
		left = left[8:]
	}
	if len(left) > 4 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], g.NextU64())
		copy(left, buf[:])
	} else if len(left) > 0 {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], g.NextU32())
		copy(left, buf[:])
	}
	return len(p), nil
}

// Rand returns a math/rand/v2 generator drawing from g.
// It shares state with g and inherits its single-owner rule.
func (g *Generator) Rand() *rand.Rand {
	return rand.New(g)
}

func (g *Generator) String() string {
	w := g.state.Words()
	return fmt.Sprintf("Generator{%016x %016x %016x %016x}", w[0], w[1], w[2], w[3])
}
