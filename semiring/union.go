package semiring

import (
	"fmt"
	"sort"
	"strings"
)

// UnionWeight represents a formal sum of an underlying semiring's values as
// a sorted list (spec §4.1: "sorted merge" ⊕, "distributive product" ⊗).
// Sample carries a zero-valued instance of the underlying weight type so
// that Zero()/One() can be produced even from an empty UnionWeight.
type UnionWeight struct {
	Sample Weight
	Values []Weight
}

// NewUnionWeight builds a UnionWeight over values, sorted canonically.
func NewUnionWeight(sample Weight, values ...Weight) UnionWeight {
	cp := append([]Weight(nil), values...)
	sortWeights(cp)
	return UnionWeight{Sample: sample, Values: cp}
}

// sortWeights orders weights by their String() rendering. This is a
// simple, deterministic total order adequate for a formal-sum
// representation; it is not meant to reflect any numeric ordering of the
// underlying semiring.
func sortWeights(vs []Weight) {
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].String() < vs[j].String() })
}

func (w UnionWeight) Zero() Weight { return UnionWeight{Sample: w.Sample} }
func (w UnionWeight) One() Weight {
	if w.Sample == nil {
		return UnionWeight{}
	}
	return UnionWeight{Sample: w.Sample, Values: []Weight{w.Sample.One()}}
}

func (w UnionWeight) Plus(other Weight) (Weight, error) {
	o, ok := other.(UnionWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Union.Plus: %w", ErrIncompatibleWeights)
	}
	merged := append(append([]Weight(nil), w.Values...), o.Values...)
	sortWeights(merged)
	sample := w.Sample
	if sample == nil {
		sample = o.Sample
	}
	return UnionWeight{Sample: sample, Values: merged}, nil
}

func (w UnionWeight) Times(other Weight) (Weight, error) {
	o, ok := other.(UnionWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Union.Times: %w", ErrIncompatibleWeights)
	}
	out := make([]Weight, 0, len(w.Values)*len(o.Values))
	for _, a := range w.Values {
		for _, b := range o.Values {
			t, err := a.Times(b)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
	}
	sortWeights(out)
	sample := w.Sample
	if sample == nil {
		sample = o.Sample
	}
	return UnionWeight{Sample: sample, Values: out}, nil
}

func (w UnionWeight) Quantize() Weight {
	out := make([]Weight, len(w.Values))
	for i, v := range w.Values {
		out[i] = v.Quantize()
	}
	sortWeights(out)
	return UnionWeight{Sample: w.Sample, Values: out}
}

func (w UnionWeight) Equal(other Weight) bool {
	o, ok := other.(UnionWeight)
	if !ok || len(o.Values) != len(w.Values) {
		return false
	}
	a, b := w.Quantize().(UnionWeight), o.Quantize().(UnionWeight)
	for i := range a.Values {
		if !a.Values[i].Equal(b.Values[i]) {
			return false
		}
	}
	return true
}

func (w UnionWeight) Hash() uint64 {
	q := w.Quantize().(UnionWeight)
	var h uint64 = 14695981039346656037
	for _, v := range q.Values {
		h = (h ^ v.Hash()) * 1099511628211
	}
	return h
}

func (w UnionWeight) IsZero() bool { return len(w.Values) == 0 }
func (w UnionWeight) IsOne() bool {
	return len(w.Values) == 1 && w.Sample != nil && w.Values[0].Equal(w.Sample.One())
}

func (w UnionWeight) String() string {
	parts := make([]string, len(w.Values))
	for i, v := range w.Values {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Properties: a formal sorted sum is commutative by construction and
// distributes on both sides; it is idempotent only when the underlying
// semiring deduplicates equal summands, which this representation does
// not do automatically, so Idempotent/Path are not advertised.
func (w UnionWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative
}
