// Package semiring defines the Weight algebra that every other layer of
// wfst is generic over: the additive/multiplicative identities, the
// associative-commutative ⊕ and associative ⊗, equality modulo
// quantization, and the optional division/closure/reverse operations.
//
// Concrete semirings:
//
//	Boolean     — {0,1} under OR/AND.
//	Integer     — ℕ under +/×.
//	Log         — numerically-stable log-sum-exp under ⊕, + under ⊗.
//	Tropical    — min under ⊕, + under ⊗ (idempotent, PATH).
//	Probability — ℝ≥0 under +/×.
//	Product     — pointwise pair of two semirings.
//	Power       — fixed-size tuple of a semiring with itself.
//	String      — sequences under longest-common-prefix/suffix/restrict and concat.
//	Union       — sorted list of a semiring's values under merge/distributive product.
//	Gallic      — StringWeight × W, in five variants.
//
// Every floating-point semiring quantizes to DefaultQuantizationDelta
// before comparing or hashing, so that Equal(a, b) and a stable hash key
// agree (spec §4.1: "two weights that quantize equal must hash equal").
package semiring
