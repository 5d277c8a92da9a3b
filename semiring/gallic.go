package semiring

import "fmt"

// GallicVariant selects one of the five Gallic weight flavors (spec §4.1
// table). GallicUnion is not a variant of GallicWeight itself; it denotes
// a UnionWeight of GallicRestrict pairs — see NewGallicUnionWeight.
type GallicVariant int

const (
	GallicLeft GallicVariant = iota
	GallicRight
	GallicRestrict
	GallicMin
	GallicUnion
)

// GallicWeight pairs a StringWeight with an underlying weight W, used by
// factor-weight / shortest-path algorithms to carry an output string
// alongside a score (spec §4.1, §4.3.3). For GallicLeft/GallicRight/
// GallicRestrict, ⊕ combines both components independently (the pair
// behaves like ProductWeight(StringWeight, W)). For GallicMin, ⊕ instead
// keeps whichever entire pair has the smaller W component under W's
// natural PATH order (a≤b iff a⊕b=a), discarding the other pair outright
// — this requires W to be a PATH semiring (spec §8: "For PATH semirings:
// a⊕b ∈ {a,b}").
type GallicWeight struct {
	Variant GallicVariant
	S       StringWeight
	W       Weight
}

// NewGallicWeight builds a GallicWeight pair. variant must not be GallicUnion.
func NewGallicWeight(variant GallicVariant, s StringWeight, w Weight) GallicWeight {
	return GallicWeight{Variant: variant, S: s, W: w}
}

// NewGallicUnionWeight builds the "UNION-wrapped default" variant: a
// UnionWeight of GallicRestrict pairs, used to carry an n-best set of
// (string,weight) alternatives.
func NewGallicUnionWeight(pairs ...GallicWeight) UnionWeight {
	vs := make([]Weight, len(pairs))
	for i, p := range pairs {
		p.Variant = GallicRestrict
		vs[i] = p
	}
	var sample Weight
	if len(pairs) > 0 {
		sample = GallicWeight{Variant: GallicRestrict, S: pairs[0].S, W: pairs[0].W}
	}
	return NewUnionWeight(sample, vs...)
}

func (w GallicWeight) stringSide() StringSide {
	switch w.Variant {
	case GallicRight:
		return StringRight
	case GallicRestrict, GallicMin:
		return StringRestrict
	default:
		return StringLeft
	}
}

func (w GallicWeight) Zero() Weight {
	return GallicWeight{Variant: w.Variant, S: StringWeight{Side: w.stringSide(), Infinite: true}, W: w.W.Zero()}
}

func (w GallicWeight) One() Weight {
	return GallicWeight{Variant: w.Variant, S: StringWeight{Side: w.stringSide()}, W: w.W.One()}
}

func (w GallicWeight) Plus(other Weight) (Weight, error) {
	o, ok := other.(GallicWeight)
	if !ok || o.Variant != w.Variant {
		return nil, fmt.Errorf("semiring: Gallic.Plus: %w", ErrIncompatibleWeights)
	}
	if w.Variant == GallicMin {
		if !w.W.Properties().Has(Path) {
			return nil, fmt.Errorf("semiring: Gallic(min).Plus requires a PATH weight: %w", ErrSemiringMismatch)
		}
		sum, err := w.W.Plus(o.W)
		if err != nil {
			return nil, err
		}
		if sum.Equal(w.W) {
			return w, nil
		}
		return o, nil
	}
	sPlus, err := w.S.Plus(o.S)
	if err != nil {
		return nil, err
	}
	wPlus, err := w.W.Plus(o.W)
	if err != nil {
		return nil, err
	}
	return GallicWeight{Variant: w.Variant, S: sPlus.(StringWeight), W: wPlus}, nil
}

func (w GallicWeight) Times(other Weight) (Weight, error) {
	o, ok := other.(GallicWeight)
	if !ok || o.Variant != w.Variant {
		return nil, fmt.Errorf("semiring: Gallic.Times: %w", ErrIncompatibleWeights)
	}
	sTimes, err := w.S.Times(o.S)
	if err != nil {
		return nil, err
	}
	wTimes, err := w.W.Times(o.W)
	if err != nil {
		return nil, err
	}
	return GallicWeight{Variant: w.Variant, S: sTimes.(StringWeight), W: wTimes}, nil
}

func (w GallicWeight) Quantize() Weight {
	return GallicWeight{Variant: w.Variant, S: w.S.Quantize().(StringWeight), W: w.W.Quantize()}
}

func (w GallicWeight) Equal(other Weight) bool {
	o, ok := other.(GallicWeight)
	return ok && o.Variant == w.Variant && w.S.Equal(o.S) && w.W.Equal(o.W)
}

func (w GallicWeight) Hash() uint64 { return w.S.Hash()*1000003 ^ w.W.Hash() }

func (w GallicWeight) IsZero() bool { return w.S.IsZero() && w.W.IsZero() }
func (w GallicWeight) IsOne() bool  { return w.S.IsOne() && w.W.IsOne() }

func (w GallicWeight) String() string { return "(" + w.S.String() + "," + w.W.String() + ")" }

// Properties mirrors StringWeight's for the string component intersected
// with the underlying weight's, except GallicMin, which is always
// idempotent and PATH by construction (⊕ always returns one whole input).
func (w GallicWeight) Properties() Properties {
	if w.Variant == GallicMin {
		return LeftSemiring | RightSemiring | Idempotent | Path
	}
	return w.S.Properties() & w.W.Properties()
}
