package pkg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sourceRoot    = "root"
	sourceEntropy = "entropy"
)

// Metrics tracks derivations and consumer handles.
// A nil *Metrics is valid and records nothing.
type Metrics struct {

	// children handed out, partitioned by where their state came from
	Derivations prometheus.CounterVec

	// consumer handles created and currently held by Locals
	HandlesCreated prometheus.Counter
	HandlesLive    prometheus.Gauge
}

// NewMetrics creates and registers the collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{}

	m.Derivations = *factory.NewCounterVec(prometheus.CounterOpts{
		Name: "streamrng_derivations_total",
		Help: "child generators derived; partitioned by state source",
	}, []string{"source"})

	m.HandlesCreated = factory.NewCounter(prometheus.CounterOpts{
		Name: "streamrng_handles_created_total",
		Help: "consumer handles created on first access",
	})
	m.HandlesLive = factory.NewGauge(prometheus.GaugeOpts{
		Name: "streamrng_handles_live",
		Help: "consumer handles currently held",
	})

	return m
}

func (m *Metrics) observeDerivation(source string) {
	if m == nil {
		return
	}
	m.Derivations.With(prometheus.Labels{"source": source}).Inc()
}

func (m *Metrics) observeHandleCreated() {
	if m == nil {
		return
	}
	m.HandlesCreated.Inc()
	m.HandlesLive.Inc()
}

func (m *Metrics) observeHandleReleased() {
	if m == nil {
		return
	}
	m.HandlesLive.Dec()
}
