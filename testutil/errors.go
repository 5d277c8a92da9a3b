package testutil

import "errors"

// ErrTooFewStates indicates a requested state count is smaller than the
// minimum a generator can produce a meaningful fixture from.
var ErrTooFewStates = errors.New("testutil: state count too small")

// ErrInvalidProbability indicates a probability argument lies outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("testutil: probability out of range")

// ErrNeedRandSource indicates a stochastic generator was invoked with
// 0 < p < 1 but no RNG was configured via WithSeed/WithRand.
var ErrNeedRandSource = errors.New("testutil: rng is required")
