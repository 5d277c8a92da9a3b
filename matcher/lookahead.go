package matcher

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/reachable"
)

// LookaheadMatcher wraps a base Matcher with reachable.LabelReachableData
// built over the same Fst, letting composition ask "can this state reach
// label L at all" before paying for a Find (spec §4.4.1, §4.5.3's
// lookahead filters). Find itself is unchanged; LookaheadLabel and
// LookaheadFinal are the pruning queries composition drives.
type LookaheadMatcher struct {
	base Matcher
	data *reachable.LabelReachableData
}

// NewLookaheadMatcher wraps base, consulting data for lookahead queries.
// data is nil-safe: a nil data makes every lookahead query report true,
// i.e. no pruning, degrading to base's plain behavior.
func NewLookaheadMatcher(base Matcher, data *reachable.LabelReachableData) *LookaheadMatcher {
	return &LookaheadMatcher{base: base, data: data}
}

func (m *LookaheadMatcher) Type() MatchType { return m.base.Type() }

func (m *LookaheadMatcher) Find(s fst.StateId, label fst.Label) ([]fst.Tr, error) {
	return m.base.Find(s, label)
}

// LookaheadLabel reports whether some transition out of s carries label,
// per the wrapped LabelReachableData (see ReachLabel: transitions beyond
// s are not consulted). Composition uses this to skip a Find whose result
// is already known to be empty.
func (m *LookaheadMatcher) LookaheadLabel(s fst.StateId, label fst.Label) bool {
	if m.data == nil {
		return true
	}
	return m.data.ReachLabel(s, label)
}

// LookaheadFinal reports whether s itself is final, per the wrapped
// LabelReachableData; finality reached through epsilon transitions is
// not detected.
func (m *LookaheadMatcher) LookaheadFinal(s fst.StateId) bool {
	if m.data == nil {
		return true
	}
	return m.data.ReachFinal(s)
}

var _ Matcher = (*LookaheadMatcher)(nil)
