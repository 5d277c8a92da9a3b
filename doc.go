// Package wfst is a weighted finite-state transducer toolkit for Go.
//
// 🚀 What is wfst?
//
//	A thread-safe-by-contract, dependency-lean library that brings together:
//
//	  • Semiring algebra: tropical, log, boolean, probability, string,
//	    product, power, gallic and union weights behind one Weight interface
//	  • Core FST primitives: states, transitions, symbol tables, an
//	    in-memory VectorFst implementing the full MutableFst contract
//	  • Classic algorithms: connect, sort, determinize, minimize, encode,
//	    shortest-distance, state/label reachability
//	  • Lazy evaluation: cached on-demand expansion for composition results
//	    too large (or too cheap) to materialize eagerly
//	  • Composition: an epsilon-disambiguating match filter, translated from
//	    the standard three-way filter-state algorithm used by production
//	    WFST toolkits
//
// ✨ Why choose wfst?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Semiring-generic  — algorithms are written once against the Weight
//     interface, not against any one weight type
//   - Extensible        — matchers and lazy Ops are small interfaces you
//     can implement for custom transducer sources
//   - Pure Go           — no cgo
//
// Under the hood, everything is organized under focused subpackages:
//
//	semiring/   — Weight interface and its concrete algebras
//	fst/        — StateId/Label/Tr primitives, Fst/MutableFst/ExpandedFst, VectorFst
//	algorithms/ — connect, sort, shortest-distance, determinize, minimize, encode
//	reachable/  — interval-set label reachability and state reachability
//	matcher/    — sorted binary-search and rho/sigma/phi fallback matchers
//	lazy/       — Op/Cache pairing for on-demand FST expansion
//	compose/    — epsilon-filtered transducer composition
//	testutil/   — deterministic synthetic-FST generators for test fixtures
//
// Quick example: a single-transition transducer mapping label 1 to label 2
// with tropical weight 1.0, composed with one mapping 2 to 3 with weight
// 0.5, yields one transition from label 1 to label 3 with weight 1.5
// (compose/compose_test.go builds the same shape with weights 1 and 2).
//
// Dive into DESIGN.md for the grounding behind each package's choices.
//
//	go get github.com/katalvlaran/wfst
package wfst
