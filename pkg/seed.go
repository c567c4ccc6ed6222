package pkg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MingLLuo/streamrng/internal"
	"github.com/MingLLuo/streamrng/pkg/xoshiro"
)

// SeedKind tells which variant a Seed holds
type SeedKind int

const (
	// SeedNone asks for a non-deterministic generator seeded from entropy
	SeedNone SeedKind = iota
	// SeedInteger is a 64-bit numeric seed
	SeedInteger
	// SeedText is an arbitrary string seed; "" is valid and differs from SeedNone
	SeedText
)

func (k SeedKind) String() string {
	switch k {
	case SeedNone:
		return "none"
	case SeedInteger:
		return "integer"
	case SeedText:
		return "text"
	default:
		return fmt.Sprintf("SeedKind(%d)", int(k))
	}
}

// Seed is the value a Root is built from. It is immutable.
type Seed struct {
	kind   SeedKind
	number uint64
	text   string
}

// NoSeed returns the absent seed
func NoSeed() Seed {
	return Seed{kind: SeedNone}
}

// IntegerSeed returns a numeric seed
func IntegerSeed(n uint64) Seed {
	return Seed{kind: SeedInteger, number: n}
}

// TextSeed returns a string seed
func TextSeed(s string) Seed {
	return Seed{kind: SeedText, text: s}
}

// ParseSeed builds a seed from a kind name ("none", "integer", "text") and a
// value, as found in flags or configuration files.
func ParseSeed(kind, value string) (Seed, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "none":
		return NoSeed(), nil
	case "integer", "int", "number":
		n, err := strconv.ParseUint(strings.TrimSpace(value), 0, 64)
		if err != nil {
			return Seed{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
		return IntegerSeed(n), nil
	case "text", "string":
		return TextSeed(value), nil
	default:
		return Seed{}, fmt.Errorf("%w: unknown seed kind %q", ErrInvalidSeed, kind)
	}
}

// Kind returns the seed variant
func (s Seed) Kind() SeedKind {
	return s.kind
}

// Uint64 returns the numeric seed, ok is false for other kinds
func (s Seed) Uint64() (n uint64, ok bool) {
	return s.number, s.kind == SeedInteger
}

// Text returns the text seed, ok is false for other kinds
func (s Seed) Text() (text string, ok bool) {
	return s.text, s.kind == SeedText
}

// Deterministic reports whether two runs with this seed reproduce each other
func (s Seed) Deterministic() bool {
	return s.kind != SeedNone
}

func (s Seed) String() string {
	switch s.kind {
	case SeedInteger:
		return fmt.Sprintf("integer(%d)", s.number)
	case SeedText:
		return fmt.Sprintf("text(%q)", s.text)
	default:
		return "none"
	}
}

// resolve turns the seed into an initial generator state. entropy is only
// read for SeedNone.
func (s Seed) resolve(entropy io.Reader) (xoshiro.State, error) {
	switch s.kind {
	case SeedInteger:
		return xoshiro.FromUint64(s.number), nil
	case SeedText:
		return textState(s.text), nil
	default:
		if entropy == nil {
			entropy = internal.EntropyReader
		}
		st, err := xoshiro.FromReader(entropy)
		if err != nil {
			return xoshiro.State{}, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}
		return st, nil
	}
}

// textState maps a string to a state through the keyed text hash.
// The keyed PRNG can only fail on keys longer than 64 bytes and the digest
// is exactly 64, so failures here are programming errors.
func textState(text string) xoshiro.State {
	r, err := internal.TextSeedReader(text)
	if err != nil {
		panic(err)
	}
	st, err := xoshiro.FromReader(r)
	if err != nil {
		panic(err)
	}
	return st
}
