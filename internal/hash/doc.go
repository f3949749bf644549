// Package hash provides the key mixing function used by scatter sets.
//
// # Golden-ratio mixing
//
// Keys are spread over buckets with a multiplicative mix: the key is
// multiplied by the 64-bit fractional part of the golden ratio and the high
// half is folded into the low half:
//
//	h := uint64(key) * 0x9E3779B97F4A7C15
//	return uint32(h ^ h>>32)
//
// The result is truncated to 32 bits. Table masks never exceed 30 bits, so
// the truncation does not reduce the number of reachable buckets.
//
// # Collisions
//
// Distinct keys may mix to the same value. 11 and 14723950898 are one such
// pair and are used throughout the tests to exercise probing and removal.
package hash
