package testutil

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
)

const minChainStates = 2

// Chain builds a linear acceptor over n states: state i has a single
// transition to state i+1 labeled i+1, and the last state is final with
// semiring.One(). It is the simplest non-trivial fixture for algorithms that
// only need a connected, acyclic, already label-sorted acceptor (Connect,
// TopSort, ShortestDistance, Minimize).
//
// Requires n >= 2, else ErrTooFewStates.
func Chain(n int, opts ...Option) (*fst.VectorFst, error) {
	if n < minChainStates {
		return nil, fmt.Errorf("testutil.Chain: n=%d < min=%d: %w", n, minChainStates, ErrTooFewStates)
	}
	cfg := newConfig(opts...)

	f := fst.NewVectorFst()
	ids := make([]fst.StateId, n)
	for i := 0; i < n; i++ {
		ids[i] = f.AddState()
	}
	if err := f.SetStart(ids[0]); err != nil {
		return nil, fmt.Errorf("testutil.Chain: SetStart: %w", err)
	}

	for i := 0; i < n-1; i++ {
		label := fst.Label(i + 1)
		w := cfg.weightFn(cfg.rng)
		tr := fst.NewTr(label, label, w, ids[i+1])
		if err := f.AddTr(ids[i], tr); err != nil {
			return nil, fmt.Errorf("testutil.Chain: AddTr(%d): %w", i, err)
		}
	}

	if err := f.SetFinal(ids[n-1], cfg.weightFn(cfg.rng).One()); err != nil {
		return nil, fmt.Errorf("testutil.Chain: SetFinal: %w", err)
	}

	return f, nil
}
