package pkg

import (
	"io"

	"github.com/puzpuzpuz/xsync/v3"
)

// Locals hands out one private generator per consumer ID, derived lazily
// from a Root on first access.
//
// Handles are derived in first-access order. When consumers first ask
// concurrently, or in a different order across runs, the same ID can receive
// a different child even though the seed is fixed. Hosts that need stable
// per-consumer streams call Prepare with a fixed ID order at startup.
type Locals struct {
	root    *Root
	entropy io.Reader
	metrics *Metrics
	handles *xsync.MapOf[string, *Generator]
}

// NewLocals creates an empty handle cache over root. A nil root seeds every
// handle from the entropy source instead.
func NewLocals(root *Root, opts ...Option) *Locals {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.metrics == nil && root != nil {
		o.metrics = root.metrics
	}
	return &Locals{
		root:    root,
		entropy: o.entropy,
		metrics: o.metrics,
		handles: xsync.NewMapOf[string, *Generator](),
	}
}

// Get returns the consumer's generator, deriving it on first access.
// Concurrent first calls for the same ID derive exactly one child.
// The returned generator must only be used by that consumer.
// Without a root, an unreadable entropy source panics before the handle
// map is touched, so the Locals stays usable after a recover.
func (l *Locals) Get(id string) *Generator {
	if g, ok := l.handles.Load(id); ok {
		return g
	}
	if l.root == nil {
		return l.getUnseeded(id)
	}
	g, _ := l.handles.LoadOrCompute(id, func() *Generator {
		child := l.root.Derive()
		l.metrics.observeHandleCreated()
		return child
	})
	return g
}

// Prepare derives handles for ids in the given order, skipping IDs that
// already have one. Calling it once at startup with a fixed order makes the
// ID to stream mapping reproducible.
func (l *Locals) Prepare(ids ...string) {
	for _, id := range ids {
		l.Get(id)
	}
}

// Release drops the consumer's handle. A later Get derives a new one.
func (l *Locals) Release(id string) bool {
	_, ok := l.handles.LoadAndDelete(id)
	if ok {
		l.metrics.observeHandleReleased()
	}
	return ok
}

// Len returns the number of live handles
func (l *Locals) Len() int {
	return l.handles.Size()
}

// Range calls f for every handle; iteration stops when f returns false.
// f must not draw from the handles, they belong to their consumers.
func (l *Locals) Range(f func(id string, g *Generator) bool) {
	l.handles.Range(f)
}

// Root returns the root handles are derived from, nil if entropy seeded
func (l *Locals) Root() *Root {
	return l.root
}

// getUnseeded reads entropy outside the map callback; a loser of a
// concurrent first access drops its generator, no shared state is consumed.
func (l *Locals) getUnseeded(id string) *Generator {
	fresh, err := FromEntropy(l.entropy)
	if err != nil {
		// no safe default exists for an unseeded stream
		panic(err)
	}
	g, _ := l.handles.LoadOrCompute(id, func() *Generator {
		l.metrics.observeDerivation(sourceEntropy)
		l.metrics.observeHandleCreated()
		return fresh
	})
	return g
}
