package matcher

import "github.com/katalvlaran/wfst/fst"

// MatchType selects which label side a Matcher searches on.
type MatchType int

const (
	// MatchInput searches by ilabel.
	MatchInput MatchType = iota
	// MatchOutput searches by olabel.
	MatchOutput
)

// Matcher is the label-lookup contract compose.Compose drives. It never
// mutates the underlying Fst.
type Matcher interface {
	// Find returns the transitions of state s whose matched label side
	// equals label. label == fst.Eps matches only true epsilon
	// transitions on that side, never used as a wildcard — composition's
	// epsilon handling is the filter's job (spec §4.5.2), not the
	// matcher's.
	Find(s fst.StateId, label fst.Label) ([]fst.Tr, error)

	// Type reports which side this Matcher searches on.
	Type() MatchType
}
