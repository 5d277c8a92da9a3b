package semiring

import "fmt"

// ProductWeight is the pointwise product semiring W1×W2: ⊕ and ⊗ apply
// componentwise, zero is (0_W1,0_W2), one is (1_W1,1_W2). Used to carry
// two independent weight streams along the same path (e.g. a tropical
// score paired with a count).
type ProductWeight struct {
	W1, W2 Weight
}

func NewProductWeight(w1, w2 Weight) ProductWeight { return ProductWeight{W1: w1, W2: w2} }

func (w ProductWeight) Zero() Weight { return ProductWeight{W1: w.W1.Zero(), W2: w.W2.Zero()} }
func (w ProductWeight) One() Weight  { return ProductWeight{W1: w.W1.One(), W2: w.W2.One()} }

func (w ProductWeight) Plus(other Weight) (Weight, error) {
	o, ok := other.(ProductWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Product.Plus: %w", ErrIncompatibleWeights)
	}
	p1, err := w.W1.Plus(o.W1)
	if err != nil {
		return nil, err
	}
	p2, err := w.W2.Plus(o.W2)
	if err != nil {
		return nil, err
	}
	return ProductWeight{W1: p1, W2: p2}, nil
}

func (w ProductWeight) Times(other Weight) (Weight, error) {
	o, ok := other.(ProductWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Product.Times: %w", ErrIncompatibleWeights)
	}
	t1, err := w.W1.Times(o.W1)
	if err != nil {
		return nil, err
	}
	t2, err := w.W2.Times(o.W2)
	if err != nil {
		return nil, err
	}
	return ProductWeight{W1: t1, W2: t2}, nil
}

func (w ProductWeight) Quantize() Weight {
	return ProductWeight{W1: w.W1.Quantize(), W2: w.W2.Quantize()}
}

func (w ProductWeight) Equal(other Weight) bool {
	o, ok := other.(ProductWeight)
	return ok && w.W1.Equal(o.W1) && w.W2.Equal(o.W2)
}

func (w ProductWeight) Hash() uint64 {
	return w.W1.Hash()*1000003 ^ w.W2.Hash()
}

func (w ProductWeight) IsZero() bool { return w.W1.IsZero() && w.W2.IsZero() }
func (w ProductWeight) IsOne() bool  { return w.W1.IsOne() && w.W2.IsOne() }

func (w ProductWeight) String() string { return "(" + w.W1.String() + "," + w.W2.String() + ")" }

// Properties is the conjunction of both component properties: the pair is
// only PATH/Idempotent/Commutative/Left/RightSemiring if both components
// advertise it, since a single non-conforming component breaks the law for
// the pair as a whole.
func (w ProductWeight) Properties() Properties {
	return w.W1.Properties() & w.W2.Properties()
}
