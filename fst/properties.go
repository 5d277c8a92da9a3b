package fst

// Properties is the advisory bitset every Fst advertises (spec §3). After
// any mutation, properties become "unknown" (cleared) — mutation never
// silently keeps stale flags set. No function re-derives the bitset by
// scanning the graph; bits come back only when an algorithm that
// establishes them sets them.
type Properties uint32

const (
	Acceptor Properties = 1 << iota // every Tr has ILabel == OLabel
	Accessible
	Coaccessible
	ILabelSorted // Tr-sort invariant holds on the input side
	OLabelSorted // Tr-sort invariant holds on the output side
	IDeterministic
	ODeterministic
	Epsilons      // at least one Tr has ILabel == Eps or OLabel == Eps
	IEpsilons     // at least one Tr has ILabel == Eps
	OEpsilons     // at least one Tr has OLabel == Eps
	Weighted      // at least one Tr/final weight is not One()
	Cyclic
	TopSorted // states are numbered so every Tr goes from a lower to a higher id
)

// Has reports whether every bit in want is set in p.
func (p Properties) Has(want Properties) bool { return p&want == want }
