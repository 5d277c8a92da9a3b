package algorithms

import (
	"strconv"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/lazy"
	"github.com/katalvlaran/wfst/semiring"
)

// FactorIterator defines how FactorWeight peels a single factor off a
// weight at one visit: Factor(w) splits w into (w1, w2) with w1 ⊗ w2
// equal to w, to be applied once — w1 stays on the transition or final
// weight being visited, w2 is carried onto a freshly synthesized
// continuation state. ok reports whether anything remained to peel;
// once false, w is left untouched (spec §4.3.3's base case).
type FactorIterator interface {
	Factor(w semiring.Weight) (w1, w2 semiring.Weight, ok bool)
}

// GallicFactor peels one label off a GallicWeight's string component
// per visit, leaving the underlying W weight on the first factor and
// carrying the rest of the string forward — spec §4.3.3 names this
// exactly ("epsilon-normalization's second step is the classical
// instance"): rmepsilon's Gallic encoding produces a GallicWeight per
// transition, and FactorWeight(GallicFactor{}) unwinds it one label at
// a time back into plain transitions.
type GallicFactor struct{}

// Factor implements FactorIterator. A string of length <= 1 is already
// irreducible (nothing left to peel), matching rustfst's
// GallicFactorVariant semantics for a Restrict/Left/Right string
// component.
func (GallicFactor) Factor(w semiring.Weight) (semiring.Weight, semiring.Weight, bool) {
	g, ok := w.(semiring.GallicWeight)
	if !ok || g.S.Infinite || len(g.S.Labels) <= 1 {
		return nil, nil, false
	}
	head := semiring.NewGallicWeight(g.Variant, semiring.NewStringWeight(g.S.Side, g.S.Labels[0]), g.W)
	tail := semiring.NewGallicWeight(g.Variant, semiring.NewStringWeight(g.S.Side, g.S.Labels[1:]...), g.W.One())
	return head, tail, true
}

var _ FactorIterator = GallicFactor{}

// factorState is a FactorWeight visit: orig is the source Fst state
// whose own transitions/final weight this visit reads, and residual is
// the weight left over from factoring a previous visit (nil at a
// genuine, unfactored orig state). orig == fst.NoStateId marks a pure
// continuation state synthesized to finish peeling a final weight that
// had nothing left to attach to an actual transition.
type factorState struct {
	orig     fst.StateId
	residual semiring.Weight
}

func (s factorState) key() string {
	k := ""
	if s.residual != nil {
		k = s.residual.String()
	}
	return strconv.Itoa(int(s.orig)) + "|" + k
}

// factorWeightOp is the lazy.Op behind FactorWeight.
type factorWeightOp struct {
	f    fst.Fst
	iter FactorIterator

	stateOf map[string]fst.StateId
	pairOf  []factorState
}

func newFactorWeightOp(f fst.Fst, iter FactorIterator) *factorWeightOp {
	return &factorWeightOp{f: f, iter: iter, stateOf: make(map[string]fst.StateId)}
}

func (op *factorWeightOp) idFor(fs factorState) fst.StateId {
	k := fs.key()
	if id, ok := op.stateOf[k]; ok {
		return id
	}
	id := fst.StateId(len(op.pairOf))
	op.stateOf[k] = id
	op.pairOf = append(op.pairOf, fs)
	return id
}

// FactorWeight returns the lazy Fst that normalizes f's transition and
// final weights by repeatedly peeling a factor off via iter, synthesizing
// a fresh state per peel (spec §4.3.3). New states are created purely on
// demand as Expand visits them.
func FactorWeight(f fst.Fst, iter FactorIterator) (*lazy.Fst, error) {
	if f == nil {
		return nil, ErrFstNil
	}
	if iter == nil {
		return nil, ErrFstNil
	}
	op := newFactorWeightOp(f, iter)
	return lazy.NewFst(op, 0), nil
}

func (op *factorWeightOp) Start() fst.StateId {
	start := op.f.Start()
	if start == fst.NoStateId {
		return fst.NoStateId
	}
	return op.idFor(factorState{orig: start})
}

// Properties passes f's properties through unchanged; FactorWeight may
// introduce fresh epsilon continuation states, so Acceptor/Epsilons bits
// can't be asserted any tighter than the source already allows.
func (op *factorWeightOp) Properties() fst.Properties { return op.f.Properties() }

func (op *factorWeightOp) Expand(s fst.StateId) ([]fst.Tr, semiring.Weight, bool, error) {
	fs := op.pairOf[s]

	if fs.orig == fst.NoStateId {
		return op.expandContinuation(fs.residual)
	}

	var out []fst.Tr
	for _, t := range op.f.GetTrs(fs.orig) {
		w := t.Weight
		if fs.residual != nil {
			var err error
			w, err = fs.residual.Times(t.Weight)
			if err != nil {
				return nil, nil, false, err
			}
		}
		w1, w2, ok := op.iter.Factor(w)
		if !ok {
			nextId := op.idFor(factorState{orig: t.Next})
			out = append(out, fst.NewTr(t.ILabel, t.OLabel, w, nextId))
			continue
		}
		nextId := op.idFor(factorState{orig: t.Next, residual: w2})
		out = append(out, fst.NewTr(t.ILabel, t.OLabel, w1, nextId))
	}

	fw, isFinal := op.f.FinalWeight(fs.orig)
	if !isFinal || fw == nil {
		return out, nil, false, nil
	}
	finalW := fw
	if fs.residual != nil {
		var err error
		finalW, err = fs.residual.Times(fw)
		if err != nil {
			return nil, nil, false, err
		}
	}
	w1, w2, ok := op.iter.Factor(finalW)
	if !ok {
		return out, finalW, true, nil
	}
	contId := op.idFor(factorState{orig: fst.NoStateId, residual: w2})
	out = append(out, fst.NewTr(fst.Eps, fst.Eps, w1, contId))
	return out, nil, false, nil
}

// expandContinuation finishes peeling a final weight that outlived the
// original transition it was attached to: residual alone is factored
// until nothing remains, chaining one epsilon transition per peel.
func (op *factorWeightOp) expandContinuation(residual semiring.Weight) ([]fst.Tr, semiring.Weight, bool, error) {
	w1, w2, ok := op.iter.Factor(residual)
	if !ok {
		return nil, residual, true, nil
	}
	contId := op.idFor(factorState{orig: fst.NoStateId, residual: w2})
	return []fst.Tr{fst.NewTr(fst.Eps, fst.Eps, w1, contId)}, nil, false, nil
}
