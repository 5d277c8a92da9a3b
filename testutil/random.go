package testutil

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
)

const minRandomSparseStates = 1

// RandomSparse builds an Erdos-Renyi-style acceptor over numStates states
// and an alphabet {1, ..., numLabels}: for every (state, label) pair, a
// transition to a uniformly-chosen destination state is included
// independently with probability p. Without a configured RNG (possible
// only for p of 0 or 1) every destination is state 0. The last state is
// always final. Trial
// order is (state asc, label asc, then a single rng.Intn draw for the
// destination), so results are reproducible for a fixed seed.
//
// Requires numStates >= 1 (else ErrTooFewStates), 0 <= p <= 1 (else
// ErrInvalidProbability), and a configured RNG when 0 < p < 1 (else
// ErrNeedRandSource).
func RandomSparse(numStates, numLabels int, p float64, opts ...Option) (*fst.VectorFst, error) {
	if numStates < minRandomSparseStates {
		return nil, fmt.Errorf("testutil.RandomSparse: numStates=%d < min=%d: %w", numStates, minRandomSparseStates, ErrTooFewStates)
	}
	if p < 0.0 || p > 1.0 {
		return nil, fmt.Errorf("testutil.RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0.0 && p < 1.0 {
		return nil, fmt.Errorf("testutil.RandomSparse: %w", ErrNeedRandSource)
	}

	f := fst.NewVectorFst()
	ids := make([]fst.StateId, numStates)
	for i := 0; i < numStates; i++ {
		ids[i] = f.AddState()
	}
	if err := f.SetStart(ids[0]); err != nil {
		return nil, fmt.Errorf("testutil.RandomSparse: SetStart: %w", err)
	}

	for i := 0; i < numStates; i++ {
		for l := 1; l <= numLabels; l++ {
			include := p == 1.0
			if cfg.rng != nil && p > 0.0 && p < 1.0 {
				include = cfg.rng.Float64() <= p
			}
			if !include {
				continue
			}
			dest := 0
			if cfg.rng != nil {
				dest = cfg.rng.Intn(numStates)
			}
			label := fst.Label(l)
			tr := fst.NewTr(label, label, cfg.weightFn(cfg.rng), ids[dest])
			if err := f.AddTr(ids[i], tr); err != nil {
				return nil, fmt.Errorf("testutil.RandomSparse: AddTr(%d,%d): %w", i, l, err)
			}
		}
	}

	one := cfg.weightFn(cfg.rng).One()
	if err := f.SetFinal(ids[numStates-1], one); err != nil {
		return nil, fmt.Errorf("testutil.RandomSparse: SetFinal: %w", err)
	}

	return f, nil
}
