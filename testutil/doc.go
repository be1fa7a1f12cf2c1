// Package testutil provides testing utilities for splitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating push
// sequences and fragment-size configurations.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(1000, 1<<20)     // 1000 values in [0, 1<<20)
//	sizes := rng.FragmentSizes(8, 64)   // 8 capacities in [1, 64]
//	n := rng.IntRange(1, 10)            // in [1, 10]
package testutil
