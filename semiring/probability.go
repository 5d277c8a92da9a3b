package semiring

import (
	"fmt"
	"strconv"
)

// ProbabilityWeight is ℝ≥0 under + (⊕) and × (⊗); zero is 0, one is 1.
// Unlike LogWeight/TropicalWeight it represents probabilities directly
// rather than their negative log, so it is convenient for small models
// and for property-testing the other semirings' log-domain arithmetic
// against it.
type ProbabilityWeight float64

func (w ProbabilityWeight) Zero() Weight { return ProbabilityWeight(0) }
func (w ProbabilityWeight) One() Weight  { return ProbabilityWeight(1) }

func (w ProbabilityWeight) Plus(other Weight) (Weight, error) {
	o, ok := other.(ProbabilityWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Probability.Plus: %w", ErrIncompatibleWeights)
	}
	return w + o, nil
}

func (w ProbabilityWeight) Times(other Weight) (Weight, error) {
	o, ok := other.(ProbabilityWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Probability.Times: %w", ErrIncompatibleWeights)
	}
	return w * o, nil
}

func (w ProbabilityWeight) Divide(other Weight, _ DivideSide) (Weight, error) {
	o, ok := other.(ProbabilityWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Probability.Divide: %w", ErrIncompatibleWeights)
	}
	if o == 0 {
		return nil, ErrDivideUndefined
	}
	return w / o, nil
}

func (w ProbabilityWeight) Quantize() Weight {
	return ProbabilityWeight(quantizeFloat(float64(w), DefaultQuantizationDelta))
}

func (w ProbabilityWeight) Equal(other Weight) bool {
	o, ok := other.(ProbabilityWeight)
	if !ok {
		return false
	}
	return w.Quantize().(ProbabilityWeight) == o.Quantize().(ProbabilityWeight)
}

func (w ProbabilityWeight) Hash() uint64 {
	return hashFloat64(float64(w.Quantize().(ProbabilityWeight)))
}

func (w ProbabilityWeight) IsZero() bool { return w.Equal(ProbabilityWeight(0)) }
func (w ProbabilityWeight) IsOne() bool  { return w.Equal(ProbabilityWeight(1)) }

func (w ProbabilityWeight) String() string { return strconv.FormatFloat(float64(w), 'g', -1, 64) }

// Properties: + and × over ℝ≥0 are commutative and distribute on both
// sides; + is not idempotent so this is not PATH.
func (w ProbabilityWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative
}
