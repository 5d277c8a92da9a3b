package compose

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/lazy"
	"github.com/katalvlaran/wfst/matcher"
	"github.com/katalvlaran/wfst/reachable"
	"github.com/katalvlaran/wfst/semiring"
)

// pairState is one state of the composed result: a pair of operand
// states plus the epsilon-disambiguation FilterState they were reached
// under (the same (s1, s2) pair can be legitimately split into two
// distinct composed states when reached under different filter states).
type pairState struct {
	s1, s2 fst.StateId
	fs     FilterState
}

// op is the lazy.Op driving composition: Expand(s) looks up s's
// pairState, matches fst2's input-labeled transitions against fst1's
// output-labeled ones (plus the two operands' independent epsilon
// moves), and returns the combined transitions.
type op struct {
	fst1, fst2 fst.Fst
	m2         matcher.Matcher // matches fst2's transitions by ILabel
	lookahead  *matcher.LookaheadMatcher // non-nil when pruning is available
	filter     ComposeFilter

	stateOf map[pairState]fst.StateId
	pairOf  []pairState
	props   fst.Properties
}

// newOp prefers a binary-search matcher.Sorted over fst2 when fst2
// already advertises ILabelSorted (the common case once
// algorithms.TrSort has run), falling back to a full scan otherwise. When
// fst2 is also an fst.ExpandedFst, its labels are precomputed into a
// reachable.LabelReachableData and m2 is wrapped in a matcher.
// LookaheadMatcher so Expand can skip matching a label fst2 provably
// cannot reach at all (spec §4.4.1's lookahead filters).
func newOp(fst1, fst2 fst.Fst) (*op, error) {
	o := &op{
		fst1:    fst1,
		fst2:    fst2,
		filter:  NewMatchFilter(fst1, fst2),
		stateOf: make(map[pairState]fst.StateId),
	}
	var base matcher.Matcher
	if fst2.Properties().Has(fst.ILabelSorted) {
		if m, err := matcher.NewSorted(fst2, matcher.MatchInput); err == nil {
			base = m
		}
	}
	if base == nil {
		base = newLinearMatcher(fst2, matcher.MatchInput)
	}
	o.m2 = base
	if fef, ok := fst2.(fst.ExpandedFst); ok {
		data := reachable.NewLabelReachable().Data(fef, true)
		lm := matcher.NewLookaheadMatcher(base, data)
		o.m2 = lm
		o.lookahead = lm
	}
	return o, nil
}

func (o *op) idFor(ps pairState) fst.StateId {
	if id, ok := o.stateOf[ps]; ok {
		return id
	}
	id := fst.StateId(len(o.pairOf))
	o.stateOf[ps] = id
	o.pairOf = append(o.pairOf, ps)
	return id
}

func (o *op) Start() fst.StateId {
	s1, s2 := o.fst1.Start(), o.fst2.Start()
	if s1 == fst.NoStateId || s2 == fst.NoStateId {
		return fst.NoStateId
	}
	return o.idFor(pairState{s1: s1, s2: s2, fs: FilterBoth})
}

func (o *op) Properties() fst.Properties { return o.props }

func (o *op) Expand(s fst.StateId) ([]fst.Tr, semiring.Weight, bool, error) {
	ps := o.pairOf[s]
	o.filter.SetState(ps.s1, ps.s2, ps.fs)

	var out []fst.Tr

	// non-epsilon / matched moves: for every t1 out of s1 with a
	// non-epsilon olabel, find t2 out of s2 whose ilabel matches. When a
	// lookahead matcher is available, t1.OLabel is first checked against
	// fst2's precomputed reachability from s2 so an unreachable label
	// never pays for a Find at all.
	for _, t1 := range o.fst1.GetTrs(ps.s1) {
		if t1.IsEpsilonOutput() {
			continue
		}
		if o.lookahead != nil && !o.lookahead.LookaheadLabel(ps.s2, t1.OLabel) {
			continue
		}
		t2s, _ := o.m2.Find(ps.s2, t1.OLabel)
		for _, t2 := range t2s {
			next := o.filter.FilterTr(t1, t2)
			if next == NoFilterState {
				continue
			}
			nextId := o.idFor(pairState{s1: t1.Next, s2: t2.Next, fs: next})
			w, err := t1.Weight.Times(t2.Weight)
			if err != nil {
				return nil, nil, false, err
			}
			out = append(out, fst.NewTr(t1.ILabel, t2.OLabel, w, nextId))
		}
	}

	// fst1-only epsilon moves: t1 epsilon-out, fst2 stays put.
	for _, t1 := range o.fst1.GetTrs(ps.s1) {
		if !t1.IsEpsilonOutput() {
			continue
		}
		t2 := fst.NewTr(fst.NoLabel, fst.NoLabel, nil, ps.s2)
		next := o.filter.FilterTr(t1, t2)
		if next == NoFilterState {
			continue
		}
		nextId := o.idFor(pairState{s1: t1.Next, s2: ps.s2, fs: next})
		out = append(out, fst.NewTr(t1.ILabel, fst.Eps, t1.Weight, nextId))
	}

	// fst2-only epsilon moves: fst1 stays put, t2 epsilon-in.
	for _, t2 := range o.fst2.GetTrs(ps.s2) {
		if !t2.IsEpsilonInput() {
			continue
		}
		t1 := fst.NewTr(fst.NoLabel, fst.NoLabel, nil, ps.s1)
		next := o.filter.FilterTr(t1, t2)
		if next == NoFilterState {
			continue
		}
		nextId := o.idFor(pairState{s1: ps.s1, s2: t2.Next, fs: next})
		out = append(out, fst.NewTr(fst.Eps, t2.OLabel, t2.Weight, nextId))
	}

	w1, f1 := o.fst1.FinalWeight(ps.s1)
	w2, f2 := o.fst2.FinalWeight(ps.s2)
	if f1 && f2 {
		fw, err := w1.Times(w2)
		if err != nil {
			return nil, nil, false, err
		}
		return out, fw, true, nil
	}
	return out, nil, false, nil
}

// linearMatcher is a fallback matcher.Matcher that scans every
// transition of a state; used when an operand isn't label-sorted so
// matcher.Sorted can't apply.
type linearMatcher struct {
	f   fst.Fst
	typ matcher.MatchType
}

func newLinearMatcher(f fst.Fst, typ matcher.MatchType) *linearMatcher {
	return &linearMatcher{f: f, typ: typ}
}

func (m *linearMatcher) Type() matcher.MatchType { return m.typ }

func (m *linearMatcher) Find(s fst.StateId, label fst.Label) ([]fst.Tr, error) {
	var out []fst.Tr
	for _, t := range m.f.GetTrs(s) {
		l := t.ILabel
		if m.typ == matcher.MatchOutput {
			l = t.OLabel
		}
		if l == label {
			out = append(out, t)
		}
	}
	return out, nil
}

// Compose returns the lazily-evaluated composition of fst1 and fst2
// (spec §4.5): Compose(fst1, fst2).Compute() yields the same transducer
// OpenFst's eager compose would, but nothing is expanded until visited.
func Compose(fst1, fst2 fst.Fst) (*lazy.Fst, error) {
	if fst1.Start() == fst.NoStateId || fst2.Start() == fst.NoStateId {
		return nil, ErrEmptyComposition
	}
	o, err := newOp(fst1, fst2)
	if err != nil {
		return nil, err
	}
	return lazy.NewFst(o, 0), nil
}
