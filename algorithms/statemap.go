package algorithms

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// WeightConvert rewrites every transition weight and final weight of f
// in place by applying convert, e.g. projecting a Gallic weight down to
// its tropical component (spec §4.3). Grounded structurally on
// original_source/rustfst's weight-mapper family (state_map.rs /
// projection.rs): a single per-weight function threaded through every
// Tr and final weight of every state.
func WeightConvert(f fst.MutableFst, convert func(semiring.Weight) semiring.Weight) error {
	if f == nil {
		return ErrFstNil
	}
	for s := 0; s < f.NumStates(); s++ {
		sid := fst.StateId(s)
		trs := f.GetTrs(sid)
		out := make([]fst.Tr, len(trs))
		for i, t := range trs {
			out[i] = t
			out[i].Weight = convert(t.Weight)
		}
		if err := f.SetTrs(sid, out); err != nil {
			return err
		}
		if w, isFinal := f.FinalWeight(sid); isFinal {
			if err := f.SetFinal(sid, convert(w)); err != nil {
				return err
			}
		}
	}
	f.SetProperties(0)
	return nil
}

// ProjectType selects which label Project keeps for both sides.
type ProjectType int

const (
	// ProjectInput copies ilabel into olabel on every Tr.
	ProjectInput ProjectType = iota
	// ProjectOutput copies olabel into ilabel on every Tr.
	ProjectOutput
)

// Project turns f into an acceptor by overwriting one label side with
// the other on every transition (spec §4.3).
func Project(f fst.MutableFst, typ ProjectType) error {
	if f == nil {
		return ErrFstNil
	}
	for s := 0; s < f.NumStates(); s++ {
		sid := fst.StateId(s)
		trs := f.GetTrs(sid)
		out := make([]fst.Tr, len(trs))
		for i, t := range trs {
			out[i] = t
			switch typ {
			case ProjectInput:
				out[i].OLabel = t.ILabel
			case ProjectOutput:
				out[i].ILabel = t.OLabel
			}
		}
		if err := f.SetTrs(sid, out); err != nil {
			return err
		}
	}
	f.SetProperties(f.Properties() | fst.Acceptor)
	return nil
}

// Invert swaps ilabel and olabel on every transition of f, turning the
// relation T into its inverse T^-1 (spec §4.3).
func Invert(f fst.MutableFst) error {
	if f == nil {
		return ErrFstNil
	}
	for s := 0; s < f.NumStates(); s++ {
		sid := fst.StateId(s)
		trs := f.GetTrs(sid)
		out := make([]fst.Tr, len(trs))
		for i, t := range trs {
			out[i] = t
			out[i].ILabel, out[i].OLabel = t.OLabel, t.ILabel
		}
		if err := f.SetTrs(sid, out); err != nil {
			return err
		}
	}
	f.SetProperties(0)
	return nil
}

// RelabelPairs renumbers ilabel/olabel via the given old->new maps,
// leaving unmapped labels untouched (spec §4.3). Collisions are not
// guarded against: two old labels mapped to the same new label both
// become that label, matching original_source/rustfst's relabel_pairs,
// which does not check caller-supplied pairs either.
func RelabelPairs(f fst.MutableFst, ilabelPairs, olabelPairs map[fst.Label]fst.Label) error {
	if f == nil {
		return ErrFstNil
	}
	for s := 0; s < f.NumStates(); s++ {
		sid := fst.StateId(s)
		trs := f.GetTrs(sid)
		out := make([]fst.Tr, len(trs))
		for i, t := range trs {
			out[i] = t
			if nl, ok := ilabelPairs[t.ILabel]; ok {
				out[i].ILabel = nl
			}
			if nl, ok := olabelPairs[t.OLabel]; ok {
				out[i].OLabel = nl
			}
		}
		if err := f.SetTrs(sid, out); err != nil {
			return err
		}
	}
	f.SetProperties(0)
	return nil
}
