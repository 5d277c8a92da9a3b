package semiring

import (
	"fmt"
	"math"
	"strconv"
)

// LogWeight is ℝ∪{∞} under the numerically-stable log-sum-exp (⊕) and +
// (⊗); zero is +∞, one is 0. It represents −log(probability) summed over
// paths, the "soft" counterpart of TropicalWeight that does not discard
// alternative-path mass (spec §4.1: "PATH not set").
//
// Grounded on original_source/rustfst/src/semirings/log_weight.rs: the
// ⊕ formula is min(x,y) − log1p(exp(−|x−y|)), which avoids the overflow
// and cancellation that a naive −log(e⁻ˣ+e⁻ʸ) suffers for large |x−y|.
type LogWeight float64

func (w LogWeight) Zero() Weight { return LogWeight(math.Inf(1)) }
func (w LogWeight) One() Weight  { return LogWeight(0) }

// logPlus computes −log(e⁻ˣ+e⁻ʸ) in a numerically stable way, guarding
// the cases where either argument is +∞ (the semiring zero).
func logPlus(x, y float64) float64 {
	if math.IsInf(x, 1) {
		return y
	}
	if math.IsInf(y, 1) {
		return x
	}
	if x > y {
		x, y = y, x
	}
	// x <= y here; min(x,y) - log1p(exp(-(y-x)))
	return x - math.Log1p(math.Exp(x-y))
}

func (w LogWeight) Plus(other Weight) (Weight, error) {
	o, ok := other.(LogWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Log.Plus: %w", ErrIncompatibleWeights)
	}
	return LogWeight(logPlus(float64(w), float64(o))), nil
}

func (w LogWeight) Times(other Weight) (Weight, error) {
	o, ok := other.(LogWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Log.Times: %w", ErrIncompatibleWeights)
	}
	if math.IsInf(float64(w), 1) || math.IsInf(float64(o), 1) {
		return LogWeight(math.Inf(1)), nil
	}
	return w + o, nil
}

func (w LogWeight) Divide(other Weight, _ DivideSide) (Weight, error) {
	o, ok := other.(LogWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Log.Divide: %w", ErrIncompatibleWeights)
	}
	if math.IsInf(float64(o), 1) {
		return nil, ErrDivideUndefined
	}
	if math.IsInf(float64(w), 1) {
		return LogWeight(math.Inf(1)), nil
	}
	return w - o, nil
}

func (w LogWeight) Quantize() Weight {
	return LogWeight(quantizeFloat(float64(w), DefaultQuantizationDelta))
}

func (w LogWeight) Equal(other Weight) bool {
	o, ok := other.(LogWeight)
	if !ok {
		return false
	}
	return w.Quantize().(LogWeight) == o.Quantize().(LogWeight)
}

func (w LogWeight) Hash() uint64 { return hashFloat64(float64(w.Quantize().(LogWeight))) }

func (w LogWeight) IsZero() bool { return math.IsInf(float64(w), 1) }
func (w LogWeight) IsOne() bool  { return w.Equal(LogWeight(0)) }

func (w LogWeight) String() string {
	if math.IsInf(float64(w), 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}

// Properties: log-sum-exp is commutative and distributes over + on both
// sides, but is not idempotent (logPlus(x,x) = x − ln2 ≠ x in general) and
// so is not PATH (spec §8 scenario 5: plus(0.0,0.0) = −ln(2)).
func (w LogWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative
}
