package algorithms

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Union destructively adds a copy of f2's states/transitions into f1 and
// epsilon-connects a fresh joint start state to both original starts
// (spec §4.3: L(result) = L(f1) ∪ L(f2)). f1 and f2 must already share a
// semiring; callers are responsible for passing compatible Fsts since
// this package has no reflective way to compare concrete semiring types.
func Union(f1 fst.MutableFst, f2 fst.Fst) error {
	if f1 == nil || f2 == nil {
		return ErrFstNil
	}
	offset, err := appendFst(f1, f2)
	if err != nil {
		return err
	}
	start1 := f1.Start()
	start2 := f2.Start()
	newStart := f1.AddState()
	if err := f1.SetStart(newStart); err != nil {
		return err
	}
	one := findOne(f1)
	if one != nil {
		if start1 != fst.NoStateId {
			if err := f1.AddTr(newStart, fst.NewTr(fst.Eps, fst.Eps, one, start1)); err != nil {
				return err
			}
		}
		if start2 != fst.NoStateId {
			if err := f1.AddTr(newStart, fst.NewTr(fst.Eps, fst.Eps, one, offset+start2)); err != nil {
				return err
			}
		}
	}
	f1.SetProperties(0)
	return nil
}

// Concat destructively appends a copy of f2 after f1: every state that
// was final in f1 gets an epsilon transition (weighted by its former
// final weight) to f2's former start state, and f1's former final
// markings are cleared (spec §4.3: L(result) = L(f1)·L(f2)).
func Concat(f1 fst.MutableFst, f2 fst.Fst) error {
	if f1 == nil || f2 == nil {
		return ErrFstNil
	}
	n1 := f1.NumStates()
	offset, err := appendFst(f1, f2)
	if err != nil {
		return err
	}
	start2 := f2.Start()
	for s := 0; s < n1; s++ {
		sid := fst.StateId(s)
		w, isFinal := f1.FinalWeight(sid)
		if !isFinal {
			continue
		}
		if start2 != fst.NoStateId {
			if err := f1.AddTr(sid, fst.NewTr(fst.Eps, fst.Eps, w, offset+start2)); err != nil {
				return err
			}
		}
		if err := f1.DeleteFinal(sid); err != nil {
			return err
		}
	}
	f1.SetProperties(0)
	return nil
}

// appendFst copies every state/transition/final-weight of f2 into f1,
// returning the StateId offset f2's original ids were shifted by. It
// does not touch f1's start state or add any connecting transitions;
// Union and Concat layer that on top.
func appendFst(f1 fst.MutableFst, f2 fst.Fst) (fst.StateId, error) {
	ef2, ok := f2.(fst.ExpandedFst)
	if !ok {
		return 0, ErrFstNil
	}
	offset := fst.StateId(f1.NumStates())
	n2 := ef2.NumStates()
	for s := 0; s < n2; s++ {
		f1.AddState()
	}
	for s := 0; s < n2; s++ {
		sid := fst.StateId(s)
		for _, t := range f2.GetTrs(sid) {
			nt := t
			nt.Next = offset + t.Next
			if err := f1.AddTr(offset+sid, nt); err != nil {
				return 0, err
			}
		}
		if w, isFinal := f2.FinalWeight(sid); isFinal {
			if err := f1.SetFinal(offset+sid, w); err != nil {
				return 0, err
			}
		}
	}
	return offset, nil
}

// findOne scans f for any transition or final weight so it can borrow
// that semiring's One(); appendFst always runs before this is called, so
// a non-empty f1 has f2's weights available even if f1 started empty.
func findOne(f fst.Fst) semiring.Weight {
	ef, ok := f.(fst.ExpandedFst)
	if !ok {
		return nil
	}
	for s := 0; s < ef.NumStates(); s++ {
		sid := fst.StateId(s)
		if trs := f.GetTrs(sid); len(trs) > 0 {
			return trs[0].Weight.One()
		}
		if w, isFinal := f.FinalWeight(sid); isFinal && w != nil {
			return w.One()
		}
	}
	return nil
}
