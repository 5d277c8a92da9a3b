package algorithms

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// ShortestDistance computes, for every state reachable from f's start
// state, the ⊕-sum over all paths from the start to that state of the
// ⊗-product of the path's transition weights (spec §4.3, generalizing
// Dijkstra to an arbitrary semiring rather than (ℝ, +, min)).
//
// Structurally adapted from dijkstra/dijkstra.go's runner/relax split —
// the same "pop a state, relax its outgoing transitions, push whichever
// neighbors improved" shape — but the priority queue is replaced with a
// plain FIFO and "improved" is redefined via the semiring's own Plus
// rather than integer comparison, since most semirings here (Log,
// Product, String, Gallic) have no total order a heap could use.
// Requires an idempotent semiring (ErrNotIdempotent) so that "d[next]
// unchanged by a Plus" is a valid fixed-point test.
func ShortestDistance(f fst.Fst) ([]semiring.Weight, error) {
	if f == nil {
		return nil, ErrFstNil
	}
	n := 0
	if ef, ok := f.(fst.ExpandedFst); ok {
		n = ef.NumStates()
	}
	start := f.Start()
	if start == fst.NoStateId {
		return make([]semiring.Weight, n), nil
	}

	var zero, one semiring.Weight
	if trs := f.GetTrs(start); len(trs) > 0 {
		zero = trs[0].Weight.Zero()
		one = trs[0].Weight.One()
	} else if w, ok := f.FinalWeight(start); ok && w != nil {
		zero = w.Zero()
		one = w.One()
	}
	if zero == nil {
		return make([]semiring.Weight, n), nil
	}
	if !zero.Properties().Has(semiring.Idempotent) {
		return nil, ErrNotIdempotent
	}

	d := make([]semiring.Weight, n)
	r := make([]semiring.Weight, n)
	inQueue := make([]bool, n)
	for i := range d {
		d[i] = zero
		r[i] = zero
	}
	d[start] = one
	r[start] = one

	queue := []fst.StateId{start}
	inQueue[start] = true

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		inQueue[s] = false

		rs := r[s]
		r[s] = zero

		for _, t := range f.GetTrs(s) {
			cand, err := rs.Times(t.Weight)
			if err != nil {
				return nil, err
			}
			nd, err := d[t.Next].Plus(cand)
			if err != nil {
				return nil, err
			}
			if !nd.Equal(d[t.Next]) {
				d[t.Next] = nd
				r[t.Next], err = r[t.Next].Plus(cand)
				if err != nil {
					return nil, err
				}
				if !inQueue[t.Next] {
					queue = append(queue, t.Next)
					inQueue[t.Next] = true
				}
			}
		}
	}

	return d, nil
}
