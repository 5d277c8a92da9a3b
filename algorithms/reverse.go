package algorithms

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Reverse builds the reversal of f into out: every transition s->t
// becomes t->s in the result, the original start state becomes final
// with weight One(), and a fresh start state is added with an epsilon
// transition (weighted by each original final weight) to every state
// that was final in f (spec §4.3). out must be empty.
func Reverse(f fst.Fst, out fst.MutableFst) error {
	if f == nil || out == nil {
		return ErrFstNil
	}
	ef, ok := f.(fst.ExpandedFst)
	if !ok {
		return ErrFstNil
	}
	n := ef.NumStates()
	ids := make([]fst.StateId, n)
	for s := 0; s < n; s++ {
		ids[s] = out.AddState()
	}
	newStart := out.AddState()
	if err := out.SetStart(newStart); err != nil {
		return err
	}

	var one semiring.Weight
	for s := 0; s < n; s++ {
		for _, t := range f.GetTrs(fst.StateId(s)) {
			one = t.Weight.One()
			if err := out.AddTr(ids[t.Next], fst.NewTr(t.ILabel, t.OLabel, t.Weight, ids[s])); err != nil {
				return err
			}
		}
	}

	start := f.Start()
	if start != fst.NoStateId && one != nil {
		if err := out.SetFinal(ids[start], one); err != nil {
			return err
		}
	}

	for s := 0; s < n; s++ {
		if w, isFinal := f.FinalWeight(fst.StateId(s)); isFinal {
			if err := out.AddTr(newStart, fst.NewTr(fst.Eps, fst.Eps, w, ids[s])); err != nil {
				return err
			}
		}
	}

	out.SetProperties(0)
	return nil
}
