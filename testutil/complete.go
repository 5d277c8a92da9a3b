package testutil

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
)

const (
	minCompleteStates = 1
	minCompleteLabels = 1
)

// Complete builds a fully-populated deterministic acceptor over numStates
// states and an alphabet {1, ..., numLabels}: every state has exactly one
// outgoing transition per label, cycling forward (state i, label l) -> state
// (i + l) % numStates. Every state is final with semiring.One(). This is the
// FST analogue of the complete graph K_n — useful for exercising matchers
// and composition against a dense, fully label-sorted operand.
//
// Requires numStates >= 1 and numLabels >= 1, else ErrTooFewStates.
func Complete(numStates, numLabels int, opts ...Option) (*fst.VectorFst, error) {
	if numStates < minCompleteStates {
		return nil, fmt.Errorf("testutil.Complete: numStates=%d < min=%d: %w", numStates, minCompleteStates, ErrTooFewStates)
	}
	if numLabels < minCompleteLabels {
		return nil, fmt.Errorf("testutil.Complete: numLabels=%d < min=%d: %w", numLabels, minCompleteLabels, ErrTooFewStates)
	}
	cfg := newConfig(opts...)

	f := fst.NewVectorFst()
	ids := make([]fst.StateId, numStates)
	for i := 0; i < numStates; i++ {
		ids[i] = f.AddState()
	}
	if err := f.SetStart(ids[0]); err != nil {
		return nil, fmt.Errorf("testutil.Complete: SetStart: %w", err)
	}

	for i := 0; i < numStates; i++ {
		for l := 1; l <= numLabels; l++ {
			label := fst.Label(l)
			next := ids[(i+l)%numStates]
			tr := fst.NewTr(label, label, cfg.weightFn(cfg.rng), next)
			if err := f.AddTr(ids[i], tr); err != nil {
				return nil, fmt.Errorf("testutil.Complete: AddTr(%d,%d): %w", i, l, err)
			}
		}
	}

	one := cfg.weightFn(cfg.rng).One()
	for i := 0; i < numStates; i++ {
		if err := f.SetFinal(ids[i], one); err != nil {
			return nil, fmt.Errorf("testutil.Complete: SetFinal(%d): %w", i, err)
		}
	}

	return f, nil
}
