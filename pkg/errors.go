package pkg

import "errors"

// Common errors that may be returned
var (
	ErrEntropyUnavailable = errors.New("streamrng: entropy source unavailable")
	ErrInvalidSeed        = errors.New("streamrng: invalid seed")
)
