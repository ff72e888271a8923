// Package testutil provides testing utilities for dynvec.
//
// This package is intended for use in tests and benchmarks only.
//
// # Deterministic Input
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(1024, 100)   // 1024 values in [0, 100)
//	i := rng.Intn(len(values))      // random index
package testutil
