package pkg

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal draws from a normal distribution with mean mu and deviation sigma
func (g *Generator) Normal(mu, sigma float64) float64 {
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: g}
	return d.Rand()
}

// NormalVector draws n samples from a normal distribution
func (g *Generator) NormalVector(n int, mu, sigma float64) []float64 {
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: g}
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = d.Rand()
	}
	return samples
}

// Exponential draws from an exponential distribution with the given rate
func (g *Generator) Exponential(rate float64) float64 {
	d := distuv.Exponential{Rate: rate, Src: g}
	return d.Rand()
}

// Bernoulli returns true with probability p
func (g *Generator) Bernoulli(p float64) bool {
	d := distuv.Bernoulli{P: p, Src: g}
	return d.Rand() == 1
}
