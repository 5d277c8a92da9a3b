package testutil

import (
	"math/rand"

	"github.com/katalvlaran/wfst/semiring"
)

// WeightFn produces a transition weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) semiring.Weight

// DefaultWeightFn always returns a constant tropical weight of 1.
func DefaultWeightFn(_ *rand.Rand) semiring.Weight {
	return semiring.TropicalWeight(1)
}

// UniformTropicalWeightFn returns a WeightFn sampling a tropical weight
// uniformly in [min, max]. Falls back to min when rng is nil.
func UniformTropicalWeightFn(min, max float64) WeightFn {
	return func(rng *rand.Rand) semiring.Weight {
		if rng == nil || max <= min {
			return semiring.TropicalWeight(min)
		}
		return semiring.TropicalWeight(min + rng.Float64()*(max-min))
	}
}

// config holds the resolved generator configuration: an optional RNG
// (nil means deterministic) and the weight distribution to apply to every
// generated transition.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customizes a generator by mutating a config before construction.
type Option func(cfg *config)

// newConfig resolves defaults, then applies opts in order.
func newConfig(opts ...Option) *config {
	cfg := &config{rng: nil, weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds a fresh *rand.Rand for reproducible stochastic generators.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects an explicit RNG source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithWeightFn overrides the per-transition weight generator. A nil fn is a
// no-op.
func WithWeightFn(fn WeightFn) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.weightFn = fn
		}
	}
}
