package pkg

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MingLLuo/streamrng/internal"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	root, err := NewRoot(IntegerSeed(1), WithMetrics(m))
	require.NoError(t, err)
	l := NewLocals(root)
	l.Prepare("a", "b", "a")
	root.Derive()
	l.Release("b")

	assert.Equal(t, float64(3), testutil.ToFloat64(m.Derivations.WithLabelValues(sourceRoot)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.HandlesCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HandlesLive))
}

func TestMetricsEntropyLocals(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	l := NewLocals(nil, WithMetrics(m), WithEntropy(internal.NewSeededReader(1)))
	l.Get("a")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Derivations.WithLabelValues(sourceEntropy)))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeDerivation(sourceRoot)
		m.observeHandleCreated()
		m.observeHandleReleased()
	})
}
