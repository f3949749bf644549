// Package scatterset provides a compact hash set of int64 keys.
//
// A Set stores keys directly in a flat power-of-two buffer (open addressing)
// and resolves collisions by linear probing from a golden-ratio hash of the
// key. It is built for tracking very large numbers of object ids, for
// example the visited nodes of a heap-graph walk, at 8 bytes plus one bit
// per slot instead of the per-entry overhead of a map.
//
// # Quick Start
//
//	var s scatterset.Set
//	s.Add(42)
//	s.Contains(42) // true
//	s.Remove(42)
//
// Sets can be pre-sized and tuned:
//
//	s, err := scatterset.New(
//	    scatterset.WithExpectedElements(1_000_000),
//	    scatterset.WithLoadFactor(0.75),
//	)
//
// # Deletion
//
// Removing a key does not leave a tombstone. The hole is closed by moving
// later keys of the same cluster backwards when the hole lies on their probe
// path. Lookups therefore always stop at the first empty slot.
//
// # Growth
//
// A set grows when an insert would exceed the load factor, or up front via
// EnsureCapacity. Growth rebuilds the table from scratch into a larger
// buffer. There is no shrink; Release drops the buffers and returns the set
// to its minimal size.
//
// # Concurrency
//
// A Set is not safe for concurrent use. Distinct sets share no state.
package scatterset
