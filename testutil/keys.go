package testutil

import (
	"math"

	"github.com/hupe1980/scatterset/internal/hash"
)

// CollidingPair are two distinct keys with the same mixed hash.
var CollidingPair = [2]int64{11, 14723950898}

// EdgeKeys returns keys at the boundaries of the int64 range plus the
// colliding pair.
func EdgeKeys() []int64 {
	return []int64{42, 0, math.MinInt64, math.MaxInt64, -1, CollidingPair[0], CollidingPair[1]}
}

// Keys returns n keys drawn from three populations: uniform int64 values,
// small integers in [-1024, 1024) (heavily duplicated), and EdgeKeys.
func (r *RNG) Keys(n int) []int64 {
	edge := EdgeKeys()

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]int64, n)
	for i := range keys {
		switch r.rand.Intn(10) {
		case 0:
			keys[i] = edge[r.rand.Intn(len(edge))]
		case 1, 2, 3:
			keys[i] = int64(r.rand.Intn(2048) - 1024)
		default:
			keys[i] = int64(r.rand.Uint64())
		}
	}
	return keys
}

// ZipfKeys returns n keys from a universe of size distinct ids with a
// Zipfian access skew, mimicking repeated visits of hot objects.
func (r *RNG) ZipfKeys(n, universe int, s float64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]int64, n)
	for i := range keys {
		keys[i] = int64(r.zipfLocked(universe, s)) << 3 // object ids are 8-byte aligned
	}
	return keys
}

// CollidingKeys returns n distinct keys that share one bucket in a table of
// the given power-of-two capacity.
func (r *RNG) CollidingKeys(n, capacity int) []int64 {
	mask := capacity - 1

	r.mu.Lock()
	defer r.mu.Unlock()

	first := int64(r.rand.Uint64())
	target := hash.Bucket(first, mask)

	keys := []int64{first}
	seen := map[int64]struct{}{first: {}}
	for len(keys) < n {
		k := int64(r.rand.Uint64())
		if _, dup := seen[k]; dup || hash.Bucket(k, mask) != target {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
