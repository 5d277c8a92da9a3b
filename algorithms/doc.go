// Package algorithms implements the eager, in-place FST algorithms of
// spec.md's "L3a" layer, every one written against fst.MutableFst /
// fst.ExpandedFst rather than a concrete container:
//
//   - Connectivity: Connect (Tarjan-based trim of inaccessible/non-
//     coaccessible states)
//   - Canonicalization: TrSort, TrUnique
//   - Ordering: TopSort
//   - Distances: ShortestDistance, generalized over any semiring
//   - Label/weight transforms: Project, Invert, RelabelPairs,
//     WeightConvert, Encode/Decode (there is no separate StateMap or
//     TrMap function)
//   - Structural combinators: Reverse, Union, Concat
//   - Size reduction: Determinize (weighted subset construction),
//     Minimize (Moore-style partition refinement via union-find)
//
// Free functions return plain Go errors rather than panicking; every
// failure mode has a single sentinel in errors.go.
package algorithms
