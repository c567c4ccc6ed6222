package pkg

import "io"

// Option configures a Root
type Option func(o *options)

type options struct {
	entropy io.Reader
	metrics *Metrics
}

// WithEntropy sets the reader used when the seed is absent
func WithEntropy(r io.Reader) Option {
	return func(o *options) {
		o.entropy = r
	}
}

// WithMetrics sets the metrics updated on derivation and handle creation
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
