package reachable

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/wfst/fst"
)

// LabelReachableData is the precomputed, state-keyed interval sets plus
// the relabeling table that lets composition test "does some transition
// out of s carry a label in the other Fst's alphabet" in O(log k) rather
// than O(alphabet size) (spec §4.5.1's lookahead filters, grounded on
// label_reachable.rs's LabelReachableData).
type LabelReachableData struct {
	ReachInput  bool
	FinalLabel  fst.Label
	Label2Index map[fst.Label]fst.Label
	Intervals   []IntervalSet // indexed by StateId
}

// Relabel maps label onto its compact index, assigning a fresh one the
// first time it is seen. Eps always maps to itself, matching
// label_reachable.rs's relabel: "if label == EPS_LABEL { return
// EPS_LABEL }".
func (d *LabelReachableData) Relabel(label fst.Label) fst.Label {
	if label == fst.Eps {
		return fst.Eps
	}
	if idx, ok := d.Label2Index[label]; ok {
		return idx
	}
	idx := fst.Label(len(d.Label2Index) + 1)
	d.Label2Index[label] = idx
	return idx
}

// buildLabelReachableData walks every state of f once, relabeling each
// transition's label (by ilabel if reachInput, else olabel) and folding
// the relabeled value into that state's IntervalSet. A final state also
// relabels fst.NoLabel into its own interval, matching label_reachable.rs's
// transform_fst redirecting every final state through a kNoLabel-labeled
// transition before the reachability pass runs: the resulting index is
// recorded as FinalLabel so reach_final-style queries can test membership
// the same way a real label would be.
func buildLabelReachableData(f fst.ExpandedFst, reachInput bool) *LabelReachableData {
	d := &LabelReachableData{
		ReachInput:  reachInput,
		FinalLabel:  fst.NoLabel,
		Label2Index: make(map[fst.Label]fst.Label),
		Intervals:   make([]IntervalSet, f.NumStates()),
	}
	for s := 0; s < f.NumStates(); s++ {
		sid := fst.StateId(s)
		for _, t := range f.GetTrs(sid) {
			label := t.ILabel
			if !reachInput {
				label = t.OLabel
			}
			idx := d.Relabel(label)
			d.Intervals[s].Add(int32(idx), int32(idx)+1)
		}
		if w, isFinal := f.FinalWeight(sid); isFinal && w != nil {
			idx := d.Relabel(fst.NoLabel)
			d.Intervals[s].Add(int32(idx), int32(idx)+1)
		}
	}
	if idx, ok := d.Label2Index[fst.NoLabel]; ok {
		d.FinalLabel = idx
	}
	return d
}

// RelabelPairs returns the (old label -> new label) pairs needed to
// relabel some other Fst's labels into this data's compact alphabet
// (original_source's LabelReachableData::relabel_pairs, the mechanism
// spec.md §9's Open Question discusses). Every label already assigned an
// index maps to it, except ones aliasing FinalLabel — real arc labels
// should never be relabeled onto the synthetic final-state index.
//
// When avoidCollisions is true, every label in [1, len(Label2Index)]
// that either has no assigned index or aliases FinalLabel is additionally
// pushed onto the same target, len(Label2Index)+1 — so a caller relabeling
// an Fst whose labels this data never saw can't collide with an index
// already taken. Multiple such labels therefore collide with each other
// at that shared target by construction: preserved literally from
// relabel_pairs, which documents this as intentional rather than
// guarding against it.
func (d *LabelReachableData) RelabelPairs(avoidCollisions bool) map[fst.Label]fst.Label {
	pairs := make(map[fst.Label]fst.Label, len(d.Label2Index))
	for key, val := range d.Label2Index {
		if key == fst.NoLabel {
			continue
		}
		if val != d.FinalLabel {
			pairs[key] = val
		}
	}
	if avoidCollisions {
		n := fst.Label(len(d.Label2Index))
		sink := n + 1
		for i := fst.Label(1); i <= n; i++ {
			if v, ok := d.Label2Index[i]; !ok || v == d.FinalLabel {
				pairs[i] = sink
			}
		}
	}
	return pairs
}

// ReachLabel reports whether some transition out of s carries label on
// the ReachInput side, via its relabeled index's membership in s's
// IntervalSet. Only s's own transitions count: labels behind an epsilon
// transition, or further along any path, are not in the set. Eps always
// reaches, matching Relabel's eps passthrough.
func (d *LabelReachableData) ReachLabel(s fst.StateId, label fst.Label) bool {
	if label == fst.Eps {
		return true
	}
	idx, ok := d.Label2Index[label]
	if !ok {
		return false
	}
	return d.Intervals[s].Contains(int32(idx))
}

// ReachFinal reports whether the synthetic FinalLabel index is a member of
// s's IntervalSet, which holds exactly when s itself is final. A state
// that reaches a final state only through epsilon transitions reports
// false.
func (d *LabelReachableData) ReachFinal(s fst.StateId) bool {
	if d.FinalLabel == fst.NoLabel {
		return false
	}
	return d.Intervals[s].Contains(int32(d.FinalLabel))
}

// LabelReachable is the Fst-scoped cache around buildLabelReachableData:
// the first caller computes it, every subsequent caller for the same
// instance gets the cached result. Building is guarded by
// golang.org/x/sync/singleflight so concurrent first-callers collapse
// into a single computation rather than racing — a composition may be
// driven by multiple lazy-expansion goroutines in a caller's own
// pipeline even though this package itself makes no concurrency promise
// beyond "safe to call Data() from many goroutines at once".
type LabelReachable struct {
	group singleflight.Group
	mu    sync.Mutex
	data  *LabelReachableData
}

// NewLabelReachable returns an unbuilt cache for f.
func NewLabelReachable() *LabelReachable {
	return &LabelReachable{}
}

// Data returns the LabelReachableData for f, computing it on the first
// call and reusing it afterward.
func (lr *LabelReachable) Data(f fst.ExpandedFst, reachInput bool) *LabelReachableData {
	lr.mu.Lock()
	cached := lr.data
	lr.mu.Unlock()
	if cached != nil {
		return cached
	}

	v, _, _ := lr.group.Do("build", func() (interface{}, error) {
		lr.mu.Lock()
		if lr.data != nil {
			d := lr.data
			lr.mu.Unlock()
			return d, nil
		}
		lr.mu.Unlock()

		d := buildLabelReachableData(f, reachInput)

		lr.mu.Lock()
		lr.data = d
		lr.mu.Unlock()
		return d, nil
	})
	return v.(*LabelReachableData)
}
