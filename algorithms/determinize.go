package algorithms

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// weightedSubsetElem pairs an original state with a "residual weight":
// how much weight remains to be applied after leaving the subset state
// that contains it (spec §4.3's weighted subset construction).
type weightedSubsetElem struct {
	state    fst.StateId
	residual semiring.Weight
}

// Determinize builds an equivalent deterministic Fst in out from in via
// the weighted powerset construction: each state of out corresponds to
// a set of (state, residual weight) pairs of in, and the residual weight
// factors out the common leftover so no single input label can lead to
// two distinct next subsets (spec §4.3). Requires ErrNotIdempotent if
// in's semiring is not idempotent (the residual-factoring argument
// needs it); out must be empty.
func Determinize(in fst.Fst, out fst.MutableFst) error {
	if in == nil || out == nil {
		return ErrFstNil
	}
	zero, one := findZeroOne(in)
	if zero == nil {
		return nil
	}
	if !zero.Properties().Has(semiring.Idempotent) {
		return ErrNotIdempotent
	}

	start := in.Start()
	if start == fst.NoStateId {
		return nil
	}

	type subset = []weightedSubsetElem
	keyOf := func(ss subset) string {
		sorted := append(subset(nil), ss...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].state < sorted[j].state })
		k := ""
		for _, e := range sorted {
			k += strconv.Itoa(int(e.state)) + ":" + e.residual.String() + ";"
		}
		return k
	}

	subsetId := make(map[string]fst.StateId)
	var queue []subset

	newSubsetState := func(ss subset) fst.StateId {
		k := keyOf(ss)
		if id, ok := subsetId[k]; ok {
			return id
		}
		id := out.AddState()
		subsetId[k] = id
		queue = append(queue, ss)
		return id
	}

	startSubset := subset{{state: start, residual: one}}
	startId := newSubsetState(startSubset)
	if err := out.SetStart(startId); err != nil {
		return err
	}

	for len(queue) > 0 {
		ss := queue[0]
		queue = queue[1:]
		sid := newSubsetState(ss)

		// group outgoing transitions of every element by ilabel
		byLabel := make(map[fst.Label][]struct {
			t   fst.Tr
			res semiring.Weight
		})
		var labelOrder []fst.Label
		for _, e := range ss {
			for _, t := range in.GetTrs(e.state) {
				w, err := e.residual.Times(t.Weight)
				if err != nil {
					return err
				}
				if _, seen := byLabel[t.ILabel]; !seen {
					labelOrder = append(labelOrder, t.ILabel)
				}
				byLabel[t.ILabel] = append(byLabel[t.ILabel], struct {
					t   fst.Tr
					res semiring.Weight
				}{t, w})
			}
		}
		sort.Slice(labelOrder, func(i, j int) bool { return labelOrder[i] < labelOrder[j] })

		for _, label := range labelOrder {
			group := byLabel[label]
			total := zero
			for _, g := range group {
				var err error
				total, err = total.Plus(g.res)
				if err != nil {
					return err
				}
			}
			var next subset
			for _, g := range group {
				rem := total
				if dw, ok := g.res.(semiring.DivisibleWeight); ok {
					leftover, err := dw.Divide(total, semiring.DivideLeft)
					if err == nil {
						rem = leftover
					}
				}
				next = append(next, weightedSubsetElem{state: g.t.Next, residual: rem})
			}
			nextId := newSubsetState(next)
			if err := out.AddTr(sid, fst.NewTr(label, label, total, nextId)); err != nil {
				return err
			}
		}

		// a subset state is final, with the ⊕-sum of each element's
		// residual-weighted final weight, if any element is final in in.
		finalAcc := zero
		anyFinal := false
		for _, e := range ss {
			if w, isFinal := in.FinalWeight(e.state); isFinal && w != nil {
				anyFinal = true
				contrib, err := e.residual.Times(w)
				if err != nil {
					return err
				}
				finalAcc, err = finalAcc.Plus(contrib)
				if err != nil {
					return err
				}
			}
		}
		if anyFinal {
			if err := out.SetFinal(sid, finalAcc); err != nil {
				return err
			}
		}
	}

	out.SetProperties(fst.IDeterministic | fst.Acceptor)
	return nil
}

func findZeroOne(f fst.Fst) (semiring.Weight, semiring.Weight) {
	ef, ok := f.(fst.ExpandedFst)
	if !ok {
		return nil, nil
	}
	for s := 0; s < ef.NumStates(); s++ {
		sid := fst.StateId(s)
		if trs := f.GetTrs(sid); len(trs) > 0 {
			return trs[0].Weight.Zero(), trs[0].Weight.One()
		}
		if w, isFinal := f.FinalWeight(sid); isFinal && w != nil {
			return w.Zero(), w.One()
		}
	}
	return nil, nil
}
