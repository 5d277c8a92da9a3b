package matcher

import "errors"

var (
	// ErrUnsorted is returned by NewSorted when the underlying Fst does
	// not advertise the label-sorted property the requested MatchType
	// needs.
	ErrUnsorted = errors.New("matcher: fst is not sorted on the requested label side")

	// ErrNoMatch is returned by RhoSigmaPhi.Find when no arc matches
	// label and no sigma/rho fallback applies. Sorted.Find reports no
	// match as an empty result with a nil error instead.
	ErrNoMatch = errors.New("matcher: no transition matches label")
)
