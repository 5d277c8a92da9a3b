package semiring

import (
	"fmt"
	"strconv"
)

// IntegerWeight is ℕ under + (⊕) and × (⊗), e.g. for counting the number
// of accepting paths.
type IntegerWeight int64

func (w IntegerWeight) Zero() Weight { return IntegerWeight(0) }
func (w IntegerWeight) One() Weight  { return IntegerWeight(1) }

func (w IntegerWeight) Plus(other Weight) (Weight, error) {
	o, ok := other.(IntegerWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Integer.Plus: %w", ErrIncompatibleWeights)
	}
	return w + o, nil
}

func (w IntegerWeight) Times(other Weight) (Weight, error) {
	o, ok := other.(IntegerWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Integer.Times: %w", ErrIncompatibleWeights)
	}
	return w * o, nil
}

func (w IntegerWeight) Quantize() Weight { return w }

func (w IntegerWeight) Equal(other Weight) bool {
	o, ok := other.(IntegerWeight)
	return ok && w == o
}

func (w IntegerWeight) Hash() uint64 { return uint64(w) }

func (w IntegerWeight) IsZero() bool { return w == 0 }
func (w IntegerWeight) IsOne() bool  { return w == 1 }

func (w IntegerWeight) String() string { return strconv.FormatInt(int64(w), 10) }

// Properties: + and × over ℕ are commutative and distribute on both sides,
// but ℕ-addition is not idempotent (1+1≠1), so it is not PATH.
func (w IntegerWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative
}
