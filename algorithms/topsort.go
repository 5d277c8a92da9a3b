package algorithms

import "github.com/katalvlaran/wfst/fst"

// three-color DFS marking, per dfs/topological.go's White/Gray/Black
// convention.
const (
	white = 0
	gray  = 1
	black = 2
)

// TopSort computes a topological order of f's states: for every Tr
// s->t, s precedes t in the returned order (spec §4.3). Returns
// ErrCycleDetected if f is cyclic.
//
// Adapted from dfs/topological.go's recursive three-color walk: this
// version walks an explicit stack so a long transducer chain (a common
// shape for composed FSTs) cannot exhaust the Go call stack.
func TopSort(f fst.MutableFst) ([]fst.StateId, error) {
	if f == nil {
		return nil, ErrFstNil
	}
	n := f.NumStates()
	state := make([]int, n)
	order := make([]fst.StateId, 0, n)

	type frame struct {
		s fst.StateId
		i int
	}

	for s := 0; s < n; s++ {
		if state[s] != white {
			continue
		}
		stack := []*frame{{s: fst.StateId(s)}}
		state[s] = gray
		for len(stack) > 0 {
			fr := stack[len(stack)-1]
			trs := f.GetTrs(fr.s)
			if fr.i >= len(trs) {
				state[fr.s] = black
				order = append(order, fr.s)
				stack = stack[:len(stack)-1]
				continue
			}
			next := trs[fr.i].Next
			fr.i++
			switch state[next] {
			case white:
				state[next] = gray
				stack = append(stack, &frame{s: next})
			case gray:
				return nil, ErrCycleDetected
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	isTopSorted := true
	for s := 0; s < n && isTopSorted; s++ {
		for _, t := range f.GetTrs(fst.StateId(s)) {
			if int(t.Next) <= s {
				isTopSorted = false
				break
			}
		}
	}
	if isTopSorted {
		f.SetProperties(f.Properties() | fst.TopSorted)
	}

	return order, nil
}
