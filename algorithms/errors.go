package algorithms

import "errors"

var (
	// ErrFstNil is returned when a nil Fst/MutableFst is passed to an
	// operation that requires one.
	ErrFstNil = errors.New("algorithms: fst is nil")

	// ErrNoStartState reports a missing start state. No function of this
	// package returns it: ShortestDistance returns all-nil distances and
	// Connect removes every state when no start state is set.
	ErrNoStartState = errors.New("algorithms: no start state set")

	// ErrCyclicNegative reports a shortest distance that cannot be bounded
	// on a cyclic graph. No function of this package returns it;
	// ShortestDistance rejects non-idempotent semirings with
	// ErrNotIdempotent instead.
	ErrCyclicNegative = errors.New("algorithms: cannot bound shortest distance on a cyclic graph in this semiring")

	// ErrNotIdempotent is returned by Determinize, ShortestDistance and
	// RmEpsilon when the semiring's Properties do not include Idempotent,
	// which their residual-factoring / fixed-point arguments rely on.
	ErrNotIdempotent = errors.New("algorithms: semiring must be idempotent")

	// ErrAcceptorRequired is returned by Minimize, which (per spec §4.3)
	// operates on a deterministic weighted acceptor.
	ErrAcceptorRequired = errors.New("algorithms: operation requires an acceptor")

	// ErrNotDeterministic reports a non-deterministic input. No function
	// of this package returns it; Minimize does not check determinism.
	ErrNotDeterministic = errors.New("algorithms: fst must be deterministic")

	// ErrSemiringMismatch reports two operands over different semirings.
	// No function of this package returns it; Union and Concat do not
	// compare their operands' semirings.
	ErrSemiringMismatch = errors.New("algorithms: semiring mismatch between operands")

	// ErrCycleDetected is returned by TopSort when f has a cycle and so
	// no topological order exists.
	ErrCycleDetected = errors.New("algorithms: cycle detected")
)
