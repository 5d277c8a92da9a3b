package reachable

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/wfst/fst"
)

// StateReachable answers "can s reach some state in target" for every
// state s of f, computed once via a single reverse BFS from target and
// cached in a bitset.BitSet (original_source's state_reachable.rs, which
// runs the equivalent pass over the Fst's reversed transition graph).
type StateReachable struct {
	reach *bitset.BitSet
}

// BuildStateReachable computes reachability to target for every state of
// f. target states are trivially reachable from themselves.
func BuildStateReachable(f fst.ExpandedFst, target []fst.StateId) *StateReachable {
	n := f.NumStates()
	radj := make([][]fst.StateId, n)
	for s := 0; s < n; s++ {
		for _, t := range f.GetTrs(fst.StateId(s)) {
			radj[t.Next] = append(radj[t.Next], fst.StateId(s))
		}
	}

	reach := bitset.New(uint(n))
	queue := make([]fst.StateId, 0, len(target))
	for _, t := range target {
		if !reach.Test(uint(t)) {
			reach.Set(uint(t))
			queue = append(queue, t)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range radj[s] {
			if !reach.Test(uint(p)) {
				reach.Set(uint(p))
				queue = append(queue, p)
			}
		}
	}
	return &StateReachable{reach: reach}
}

// Reachable reports whether s can reach the target set.
func (sr *StateReachable) Reachable(s fst.StateId) bool {
	return sr.reach.Test(uint(s))
}
