package compose

import "github.com/katalvlaran/wfst/fst"

// FilterState is the three-plus-one-value automaton the match filter
// steps on every pair of candidate transitions. NoFilterState marks an
// invalid (to-be-discarded) path.
type FilterState int

const (
	// FilterBoth means either operand may still take an epsilon move.
	FilterBoth FilterState = 0
	// FilterOnly1 means only fst1 may take an epsilon move from here.
	FilterOnly1 FilterState = 1
	// FilterOnly2 means only fst2 may take an epsilon move from here.
	FilterOnly2 FilterState = 2
	// NoFilterState marks a spurious epsilon-path combination; the
	// candidate transition pair must be discarded.
	NoFilterState FilterState = -1
)

// ComposeFilter is the epsilon-disambiguation contract Compose drives
// once per candidate transition pair (spec §4.5.2). Four variants are
// named there; MatchFilter is the canonical one actually wired into
// Compose by default, the other three are provided for callers with a
// weaker-but-cheaper correctness precondition already satisfied.
type ComposeFilter interface {
	// Start returns the filter state a composition's start pair begins in.
	Start() FilterState

	// SetState updates the filter's notion of the current operand state
	// pair and incoming filter state, ahead of one or more FilterTr calls.
	SetState(s1, s2 fst.StateId, fs FilterState)

	// FilterTr decides the next FilterState for a candidate pair about to
	// be combined into one composed transition, or NoFilterState to
	// discard it.
	FilterTr(t1, t2 fst.Tr) FilterState
}

// MatchFilter is the epsilon-disambiguating filter Compose drives once
// per matched transition pair, translated one-for-one from
// original_source/rustfst's MatchComposeFilter::filter_tr. It tracks,
// per (s1, s2) state pair, whether s1/s2 have only-epsilon outgoing
// transitions (alleps) or none at all (noeps) — recomputed by SetState
// whenever the state pair changes, memoized otherwise.
type MatchFilter struct {
	fst1, fst2 fst.Fst

	s1, s2           fst.StateId
	fs               FilterState
	alleps1, alleps2 bool
	noeps1, noeps2   bool
}

// NewMatchFilter returns a filter over fst1 and fst2 in the start state.
func NewMatchFilter(fst1, fst2 fst.Fst) *MatchFilter {
	return &MatchFilter{fst1: fst1, fst2: fst2, s1: fst.NoStateId, s2: fst.NoStateId, fs: FilterBoth}
}

// Start returns the initial filter state.
func (mf *MatchFilter) Start() FilterState { return FilterBoth }

// SetState updates the filter's notion of "current state pair", which
// alleps1/alleps2/noeps1/noeps2 depend on. A no-op when (s1, s2, fs)
// haven't changed.
func (mf *MatchFilter) SetState(s1, s2 fst.StateId, fs FilterState) {
	if mf.s1 == s1 && mf.s2 == s2 && mf.fs == fs {
		return
	}
	mf.s1, mf.s2, mf.fs = s1, s2, fs

	trs1 := mf.fst1.GetTrs(s1)
	trs2 := mf.fst2.GetTrs(s2)

	oeps1 := 0
	for _, t := range trs1 {
		if t.IsEpsilonOutput() {
			oeps1++
		}
	}
	ieps2 := 0
	for _, t := range trs2 {
		if t.IsEpsilonInput() {
			ieps2++
		}
	}
	_, f1 := mf.fst1.FinalWeight(s1)
	_, f2 := mf.fst2.FinalWeight(s2)

	mf.alleps1 = len(trs1) == oeps1 && !f1
	mf.alleps2 = len(trs2) == ieps2 && !f2
	mf.noeps1 = oeps1 == 0
	mf.noeps2 = ieps2 == 0
}

// FilterTr decides the next FilterState for a candidate pair (t1, t2)
// about to be combined into one composed transition. A t2.ILabel ==
// NoLabel means t1 is an epsilon move in fst1 being considered with no
// matching move in fst2 (and symmetrically for t1.OLabel == NoLabel);
// both being non-epsilon always resets to FilterBoth.
func (mf *MatchFilter) FilterTr(t1, t2 fst.Tr) FilterState {
	switch {
	case t2.ILabel == fst.NoLabel:
		if mf.fs == FilterBoth {
			if mf.noeps2 {
				return FilterBoth
			}
			if mf.alleps2 {
				return NoFilterState
			}
			return FilterOnly1
		}
		if mf.fs == FilterOnly1 {
			return FilterOnly1
		}
		return NoFilterState

	case t1.OLabel == fst.NoLabel:
		if mf.fs == FilterBoth {
			if mf.noeps1 {
				return FilterBoth
			}
			if mf.alleps1 {
				return NoFilterState
			}
			return FilterOnly2
		}
		if mf.fs == FilterOnly2 {
			return FilterOnly2
		}
		return NoFilterState

	case t1.OLabel == fst.Eps:
		// epsilon in both: only legal while still in FilterBoth, to avoid
		// counting the same real epsilon:epsilon path through both
		// "only1" and "only2" branches.
		if mf.fs == FilterBoth {
			return FilterBoth
		}
		return NoFilterState

	default:
		return FilterBoth
	}
}

var _ ComposeFilter = (*MatchFilter)(nil)

// SequenceFilter enforces only that a composed path doesn't interleave
// fst1-only epsilon moves with fst2-only ones — once a path has taken an
// fst1-only epsilon move it may take more of the same kind but not switch
// to fst2-only without first passing through a non-epsilon move, and
// symmetrically. Unlike MatchFilter, it never inspects either operand's
// transitions or final weights to precompute alleps/noeps: it is cheaper
// per step but only correct when the operands don't additionally need
// that finer per-state disambiguation (spec §4.5.2 names this as the
// variant that "allows ε-in-A before ε-in-B or vice versa but not
// interleaved").
type SequenceFilter struct {
	fs FilterState
}

// NewSequenceFilter returns a SequenceFilter in the start state. fst1 and
// fst2 are accepted only for constructor-signature parity with the other
// ComposeFilter variants; SequenceFilter itself needs neither.
func NewSequenceFilter(fst1, fst2 fst.Fst) *SequenceFilter {
	return &SequenceFilter{fs: FilterBoth}
}

func (sf *SequenceFilter) Start() FilterState { return FilterBoth }

func (sf *SequenceFilter) SetState(s1, s2 fst.StateId, fs FilterState) {
	sf.fs = fs
}

func (sf *SequenceFilter) FilterTr(t1, t2 fst.Tr) FilterState {
	switch {
	case t2.ILabel == fst.NoLabel:
		if sf.fs == FilterBoth || sf.fs == FilterOnly1 {
			return FilterOnly1
		}
		return NoFilterState

	case t1.OLabel == fst.NoLabel:
		if sf.fs == FilterBoth || sf.fs == FilterOnly2 {
			return FilterOnly2
		}
		return NoFilterState

	case t1.OLabel == fst.Eps:
		if sf.fs == FilterBoth {
			return FilterBoth
		}
		return NoFilterState

	default:
		return FilterBoth
	}
}

var _ ComposeFilter = (*SequenceFilter)(nil)

// NullFilter performs no epsilon disambiguation at all: every candidate
// pair is admitted in FilterBoth. Spec §4.5.2 is explicit that this is
// only correct when one of the two operands is epsilon-free — callers
// pick NullFilter when they already know that and want to skip the
// bookkeeping the other filters do, not as a safe default.
type NullFilter struct{}

// NewNullFilter returns a NullFilter. fst1 and fst2 are accepted only for
// constructor-signature parity; NullFilter inspects neither.
func NewNullFilter(fst1, fst2 fst.Fst) *NullFilter { return &NullFilter{} }

func (nf *NullFilter) Start() FilterState { return FilterBoth }

func (nf *NullFilter) SetState(s1, s2 fst.StateId, fs FilterState) {}

func (nf *NullFilter) FilterTr(t1, t2 fst.Tr) FilterState { return FilterBoth }

var _ ComposeFilter = (*NullFilter)(nil)

// TrivialFilter is NullFilter's precondition made explicit and checked:
// at construction it scans whichever operand is an fst.ExpandedFst for
// output (fst1) or input (fst2) epsilon transitions, and records whether
// at least one side was confirmed epsilon-free. FilterTr still always
// returns FilterBoth — the check doesn't change behavior, it lets a
// caller ask EpsilonFreeGuaranteed before trusting the result the way
// NullFilter asks them to trust it blindly.
type TrivialFilter struct {
	guaranteed bool
}

// NewTrivialFilter returns a TrivialFilter over fst1 and fst2, eagerly
// checking the epsilon-free precondition when either operand is an
// fst.ExpandedFst. A non-expanded (lazily generated) operand can't be
// scanned in full, so it can't contribute to the guarantee.
func NewTrivialFilter(fst1, fst2 fst.Fst) *TrivialFilter {
	return &TrivialFilter{guaranteed: isEpsilonFree(fst1, true) || isEpsilonFree(fst2, false)}
}

func (tf *TrivialFilter) Start() FilterState { return FilterBoth }

func (tf *TrivialFilter) SetState(s1, s2 fst.StateId, fs FilterState) {}

func (tf *TrivialFilter) FilterTr(t1, t2 fst.Tr) FilterState { return FilterBoth }

// EpsilonFreeGuaranteed reports whether the operand side this filter
// needs to be epsilon-free for correctness was actually confirmed so at
// construction.
func (tf *TrivialFilter) EpsilonFreeGuaranteed() bool { return tf.guaranteed }

// isEpsilonFree reports whether every transition of f is free of an
// output epsilon (checkOutput) or input epsilon (!checkOutput). f that
// isn't an fst.ExpandedFst can't be fully scanned and is conservatively
// reported as not guaranteed.
func isEpsilonFree(f fst.Fst, checkOutput bool) bool {
	fef, ok := f.(fst.ExpandedFst)
	if !ok {
		return false
	}
	for s := 0; s < fef.NumStates(); s++ {
		for _, t := range fef.GetTrs(fst.StateId(s)) {
			if checkOutput && t.IsEpsilonOutput() {
				return false
			}
			if !checkOutput && t.IsEpsilonInput() {
				return false
			}
		}
	}
	return true
}

var _ ComposeFilter = (*TrivialFilter)(nil)
