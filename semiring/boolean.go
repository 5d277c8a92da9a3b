package semiring

import "fmt"

// BooleanWeight is the {0,1} semiring under OR (⊕) and AND (⊗).
type BooleanWeight bool

// Zero is false (the OR identity).
func (w BooleanWeight) Zero() Weight { return BooleanWeight(false) }

// One is true (the AND identity).
func (w BooleanWeight) One() Weight { return BooleanWeight(true) }

func (w BooleanWeight) Plus(other Weight) (Weight, error) {
	o, ok := other.(BooleanWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Boolean.Plus: %w", ErrIncompatibleWeights)
	}
	return BooleanWeight(bool(w) || bool(o)), nil
}

func (w BooleanWeight) Times(other Weight) (Weight, error) {
	o, ok := other.(BooleanWeight)
	if !ok {
		return nil, fmt.Errorf("semiring: Boolean.Times: %w", ErrIncompatibleWeights)
	}
	return BooleanWeight(bool(w) && bool(o)), nil
}

func (w BooleanWeight) Quantize() Weight { return w }

func (w BooleanWeight) Equal(other Weight) bool {
	o, ok := other.(BooleanWeight)
	return ok && w == o
}

func (w BooleanWeight) Hash() uint64 {
	if w {
		return 1
	}
	return 0
}

func (w BooleanWeight) IsZero() bool { return !bool(w) }
func (w BooleanWeight) IsOne() bool  { return bool(w) }

func (w BooleanWeight) String() string {
	if w {
		return "1"
	}
	return "0"
}

// Properties: OR/AND over {0,1} is commutative and idempotent on both
// sides, and is a PATH semiring since a⊕b always equals a or b (OR of two
// booleans is always one of them when at least one side is false, and
// true⊕true=true=a=b).
func (w BooleanWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative | Idempotent | Path
}
