package semiring

import "errors"

// Sentinel errors for semiring operations (spec.md §7).
var (
	// ErrIncompatibleWeights is returned when two weights cannot be
	// combined under the semiring's operations, e.g. concatenating two
	// StringWeight RESTRICT values that disagree.
	ErrIncompatibleWeights = errors.New("semiring: incompatible weights")

	// ErrDivideUndefined is returned by Divide when no divisor
	// representative exists (e.g. dividing by the additive identity).
	ErrDivideUndefined = errors.New("semiring: division undefined")

	// ErrSemiringMismatch is returned when an operation's precondition on
	// the semiring's advertised Properties is not met: GallicMin's Plus
	// returns it when the underlying weight is not PATH.
	ErrSemiringMismatch = errors.New("semiring: required property not advertised")

	// ErrClosureUndefined reports a weight with no well-defined Kleene
	// star, for implementations of ClosedWeight.Closure. No semiring in
	// this package implements ClosedWeight, so nothing here returns it.
	ErrClosureUndefined = errors.New("semiring: closure undefined")
)

// DivideSide selects which side of a weak division to perform.
type DivideSide int

const (
	// DivideLeft solves a in a⊗x = b for x (left division).
	DivideLeft DivideSide = iota
	// DivideRight solves a in x⊗a = b for x (right division).
	DivideRight
	// DivideAny picks either side; only sound when the semiring is commutative.
	DivideAny
)
