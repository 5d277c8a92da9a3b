// Package matcher implements the label-lookup contract composition
// relies on (spec.md §4.4): given a state and a label, find the
// transitions out of that state matching it, without scanning every
// outgoing transition. Sorted provides an O(log d) binary search over an
// ILabelSorted/OLabelSorted state (out-degree d); RhoSigmaPhi layers the
// OpenFst "fallback label" conventions (rho = else-match, sigma =
// any-match, phi = fail-over-to-another-state) on top of it.
//
// Grounded on original_source/rustfst/src/fst_traits/matcher_fst.rs's
// MatchType/Matcher split, adapted to Go's sort.Search instead of Rust's
// binary_search_by.
package matcher
