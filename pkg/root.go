package pkg

import (
	"sync"
)

// Root is the process-wide generator every consumer stream is derived from.
// It is built once at startup and never reseeded.
type Root struct {
	mu      sync.Mutex
	gen     *Generator
	seed    Seed
	derived uint64
	metrics *Metrics
}

// NewRoot resolves seed into a Root.
// It fails only when the seed is absent and the entropy source cannot be read.
func NewRoot(seed Seed, opts ...Option) (*Root, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	gen, err := newGenerator(seed, o.entropy)
	if err != nil {
		return nil, err
	}
	return &Root{gen: gen, seed: seed, metrics: o.metrics}, nil
}

// Derive returns a new generator seeded from the root's output, advancing
// the root. Children are reproducible only for a fixed call order: the
// n-th call after construction always returns the same child for a given
// deterministic seed, whichever consumer it is handed to.
func (r *Root) Derive() *Generator {
	r.mu.Lock()
	child := r.gen.Derive()
	r.derived++
	r.mu.Unlock()

	r.metrics.observeDerivation(sourceRoot)
	return child
}

// Seed returns the seed the root was built from
func (r *Root) Seed() Seed {
	return r.seed
}

// Derived returns the number of children derived so far
func (r *Root) Derived() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.derived
}

// NewLocal derives a consumer generator from root. Without a root the
// generator is seeded from the operating system entropy source instead.
func NewLocal(root *Root) (*Generator, error) {
	if root != nil {
		return root.Derive(), nil
	}
	g, err := FromEntropy(nil)
	if err != nil {
		return nil, err
	}
	return g, nil
}
