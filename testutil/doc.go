// Package testutil provides testing utilities for scatterset.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating keys (including keys that collide
// in a given table size) and a reference set to check results against.
//
// # Key Generation
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(10_000)               // random, small and edge keys
//	hot := rng.CollidingKeys(8, 1024)      // 8 keys sharing one bucket
//
// # Reference Model
//
//	ref := testutil.NewReference()
//	ref.Add(k)
//	ref.Contains(k)
package testutil
