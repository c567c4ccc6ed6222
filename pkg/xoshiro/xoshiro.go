// Package xoshiro provides the xoshiro256** state machine and its seeding primitives for streamrng
package xoshiro

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
)

// StateSize is the number of bytes needed to seed a State
const StateSize = 32

// splitMixIncrement is the golden-ratio increment of SplitMix64
const splitMixIncrement = 0x9e3779b97f4a7c15

var (
	// ErrShortSeed indicates that a seed source returned fewer than StateSize bytes
	ErrShortSeed = errors.New("short seed")
)

// State represents a xoshiro256** generator state.
// The zero value is not a valid state; use one of the constructors.
type State struct {
	s [4]uint64
}

// FromWords creates a state from four words. An all-zero input is replaced by
// the state of FromUint64(0), since xoshiro never leaves the zero state.
func FromWords(w0, w1, w2, w3 uint64) State {
	if w0|w1|w2|w3 == 0 {
		return FromUint64(0)
	}
	return State{s: [4]uint64{w0, w1, w2, w3}}
}

// FromSeed creates a state from 32 little-endian bytes
func FromSeed(seed [StateSize]byte) State {
	return FromWords(
		binary.LittleEndian.Uint64(seed[0:8]),
		binary.LittleEndian.Uint64(seed[8:16]),
		binary.LittleEndian.Uint64(seed[16:24]),
		binary.LittleEndian.Uint64(seed[24:32]),
	)
}

// FromUint64 expands a 64-bit seed into a full state with SplitMix64
func FromUint64(seed uint64) State {
	var st State
	sm := seed
	for i := range st.s {
		st.s[i] = splitMix64(&sm)
	}
	return st
}

// FromReader reads StateSize bytes from r and uses them as the seed
func FromReader(r io.Reader) (State, error) {
	var seed [StateSize]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrShortSeed, err)
	}
	return FromSeed(seed), nil
}

// Next advances the state and returns the next 64-bit output
func (x *State) Next() uint64 {
	result := bits.RotateLeft64(x.s[1]*5, 7) * 9

	t := x.s[1] << 17

	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]

	x.s[2] ^= t

	x.s[3] = bits.RotateLeft64(x.s[3], 45)

	return result
}

// Fork draws four outputs and returns them as a new state.
// The receiver is advanced by four steps.
func (x *State) Fork() State {
	w0 := x.Next()
	w1 := x.Next()
	w2 := x.Next()
	w3 := x.Next()
	return FromWords(w0, w1, w2, w3)
}

// Words returns a copy of the four state words
func (x State) Words() [4]uint64 {
	return x.s
}

// Equal returns true if both states are identical
func (x State) Equal(other State) bool {
	return x.s == other.s
}

// Valid reports whether the state can produce output (is not all zero)
func (x State) Valid() bool {
	return x.s[0]|x.s[1]|x.s[2]|x.s[3] != 0
}

func splitMix64(state *uint64) uint64 {
	*state += splitMixIncrement
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
