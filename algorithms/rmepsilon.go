package algorithms

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/lazy"
	"github.com/katalvlaran/wfst/semiring"
)

// rmEpsilonOp is the lazy.Op behind RmEpsilon: Expand(s) computes s's
// epsilon closure (spec §4.3.4) and folds every closure member's direct
// non-epsilon transitions and final weight into s's own transition set,
// each scaled by the closure weight that reaches that member.
type rmEpsilonOp struct {
	f          fst.Fst
	zero, one  semiring.Weight
}

// RmEpsilon returns the lazy Fst that removes every full-epsilon
// transition (both labels Eps) from f, folding their weight into
// whatever non-epsilon transitions and final weights they led to (spec
// §4.3.4). Structurally adapted from ShortestDistance's FIFO relaxation
// — epsilonClosure is the same "pop a state, relax its outgoing
// transitions, requeue whichever neighbor improved" loop, restricted to
// f's epsilon-subgraph and reseeded at every state RmEpsilon visits
// rather than run once from a single start. Requires an idempotent
// semiring for the same reason ShortestDistance does: "d unchanged by a
// Plus" must be a valid fixed-point test.
func RmEpsilon(f fst.Fst) (*lazy.Fst, error) {
	if f == nil {
		return nil, ErrFstNil
	}
	zero, one := findZeroOne(f)
	if zero != nil && !zero.Properties().Has(semiring.Idempotent) {
		return nil, ErrNotIdempotent
	}
	return lazy.NewFst(&rmEpsilonOp{f: f, zero: zero, one: one}, 0), nil
}

func (op *rmEpsilonOp) Start() fst.StateId { return op.f.Start() }

// Properties passes f's properties through unchanged: removal only
// folds away full-epsilon transitions, which carry no dedicated
// property bit of their own (Epsilons/IEpsilons/OEpsilons also cover
// the partial-epsilon transitions this pass leaves untouched).
func (op *rmEpsilonOp) Properties() fst.Properties { return op.f.Properties() }

func (op *rmEpsilonOp) Expand(s fst.StateId) ([]fst.Tr, semiring.Weight, bool, error) {
	if op.zero == nil {
		// f carries no sample weight anywhere reachable (e.g. an empty
		// ExpandedFst, or f isn't one at all); nothing to scale, so s's
		// own epsilon transitions are simply dropped unscaled.
		var out []fst.Tr
		for _, t := range op.f.GetTrs(s) {
			if t.IsEpsilon() {
				continue
			}
			out = append(out, t)
		}
		w, isFinal := op.f.FinalWeight(s)
		return out, w, isFinal, nil
	}

	closure, err := op.epsilonClosure(s)
	if err != nil {
		return nil, nil, false, err
	}

	var out []fst.Tr
	finalAcc := op.zero
	anyFinal := false
	for u, w := range closure {
		for _, t := range op.f.GetTrs(u) {
			if t.IsEpsilon() {
				continue
			}
			tw, err := w.Times(t.Weight)
			if err != nil {
				return nil, nil, false, err
			}
			out = append(out, fst.NewTr(t.ILabel, t.OLabel, tw, t.Next))
		}
		if fw, isFinal := op.f.FinalWeight(u); isFinal && fw != nil {
			contrib, err := w.Times(fw)
			if err != nil {
				return nil, nil, false, err
			}
			finalAcc, err = finalAcc.Plus(contrib)
			if err != nil {
				return nil, nil, false, err
			}
			anyFinal = true
		}
	}
	if !anyFinal {
		return out, nil, false, nil
	}
	return out, finalAcc, true, nil
}

// epsilonClosure computes, for the single state s, the weighted
// reachability set over f's epsilon-subgraph (transitions with both
// labels Eps): closure[u] is the ⊕-sum over every epsilon-only path
// from s to u of the ⊗-product of its transition weights, with
// closure[s] = one for the empty path.
func (op *rmEpsilonOp) epsilonClosure(s fst.StateId) (map[fst.StateId]semiring.Weight, error) {
	d := map[fst.StateId]semiring.Weight{s: op.one}
	r := map[fst.StateId]semiring.Weight{s: op.one}
	inQueue := map[fst.StateId]bool{s: true}
	queue := []fst.StateId{s}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		ru := r[u]
		r[u] = op.zero

		for _, t := range op.f.GetTrs(u) {
			if !t.IsEpsilon() {
				continue
			}
			cand, err := ru.Times(t.Weight)
			if err != nil {
				return nil, err
			}
			cur, ok := d[t.Next]
			if !ok {
				cur = op.zero
			}
			nd, err := cur.Plus(cand)
			if err != nil {
				return nil, err
			}
			if ok && nd.Equal(cur) {
				continue
			}
			d[t.Next] = nd
			rcur, ok2 := r[t.Next]
			if !ok2 {
				rcur = op.zero
			}
			rnext, err := rcur.Plus(cand)
			if err != nil {
				return nil, err
			}
			r[t.Next] = rnext
			if !inQueue[t.Next] {
				queue = append(queue, t.Next)
				inQueue[t.Next] = true
			}
		}
	}
	return d, nil
}
