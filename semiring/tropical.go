package semiring

import (
	"fmt"
	"math"
	"strconv"
)

// TropicalWeight is ℝ∪{∞} under min (⊕) and + (⊗); zero is +∞, one is 0.
// It is the weight of choice for shortest-path style scoring (e.g. ASR/MT
// decoding), since ⊕=min makes every path-sum just the best path's weight.
type TropicalWeight float64

func (w TropicalWeight) Zero() Weight { return TropicalWeight(math.Inf(1)) }
func (w TropicalWeight) One() Weight  { return TropicalWeight(0) }

func (w TropicalWeight) Plus(other Weight) (Weight, error) {
	o, ok := other.(TropicalWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Tropical.Plus: %w", ErrIncompatibleWeights)
	}
	if w < o {
		return w, nil
	}
	return o, nil
}

func (w TropicalWeight) Times(other Weight) (Weight, error) {
	o, ok := other.(TropicalWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Tropical.Times: %w", ErrIncompatibleWeights)
	}
	if math.IsInf(float64(w), 1) || math.IsInf(float64(o), 1) {
		return TropicalWeight(math.Inf(1)), nil
	}
	return w + o, nil
}

// Divide performs weak division: a⊗x=b (left) or x⊗a=b (right) reduces to
// x = b - a under + / since Tropical⊗ is commutative both sides agree.
func (w TropicalWeight) Divide(other Weight, _ DivideSide) (Weight, error) {
	o, ok := other.(TropicalWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Tropical.Divide: %w", ErrIncompatibleWeights)
	}
	if math.IsInf(float64(o), 1) {
		return nil, ErrDivideUndefined
	}
	if math.IsInf(float64(w), 1) {
		return TropicalWeight(math.Inf(1)), nil
	}
	return w - o, nil
}

func (w TropicalWeight) Quantize() Weight {
	return TropicalWeight(quantizeFloat(float64(w), DefaultQuantizationDelta))
}

func (w TropicalWeight) Equal(other Weight) bool {
	o, ok := other.(TropicalWeight)
	if !ok {
		return false
	}
	return w.Quantize().(TropicalWeight) == o.Quantize().(TropicalWeight)
}

func (w TropicalWeight) Hash() uint64 {
	return hashFloat64(float64(w.Quantize().(TropicalWeight)))
}

func (w TropicalWeight) IsZero() bool { return math.IsInf(float64(w), 1) }
func (w TropicalWeight) IsOne() bool  { return w.Equal(TropicalWeight(0)) }

func (w TropicalWeight) String() string {
	if math.IsInf(float64(w), 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}

// Properties: min over ℝ∪{∞} is idempotent (min(a,a)=a) and commutative,
// distributes over + on both sides, and is a PATH semiring (min always
// returns one of its two arguments).
func (w TropicalWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative | Idempotent | Path
}
