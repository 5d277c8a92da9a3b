// Package testutil provides deterministic synthetic-FST generators for use
// in package test suites across the module. It centralizes common
// configuration — RNG source and per-transition weight distribution — behind
// a small functional-options surface so fixtures stay DRY and reproducible.
//
// The key type is Option, a function that mutates a config. Use WithSeed to
// freeze stochastic generators (RandomSparse) and WithWeightFn to control the
// weight distribution; everything else defaults to a constant tropical
// weight of 1.
package testutil
