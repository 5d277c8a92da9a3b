package fst

import "errors"

// Sentinel errors returned by VectorFst and shared by algorithms/ and
// friends (spec §7: "errors are values, one sentinel per failure mode").
var (
	// ErrStateOutOfRange is returned when a StateId does not name a state
	// currently in the Fst.
	ErrStateOutOfRange = errors.New("fst: state id out of range")

	// ErrNoStartState reports a missing start state. No function of this
	// module returns it.
	ErrNoStartState = errors.New("fst: no start state set")

	// ErrTrIndexOutOfRange is returned by DeleteTrs when an index does not
	// name a transition currently on the state.
	ErrTrIndexOutOfRange = errors.New("fst: transition index out of range")

	// ErrUnsortedFst reports a missing ILabelSorted/OLabelSorted property.
	// No function of this module returns it; matcher.NewSorted returns
	// matcher.ErrUnsorted instead.
	ErrUnsortedFst = errors.New("fst: transitions are not label-sorted")

	// ErrSemiringMismatch reports two Fsts, or an Fst and a Weight, over
	// different semirings. No function of this module returns it.
	ErrSemiringMismatch = errors.New("fst: semiring mismatch")
)
