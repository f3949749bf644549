package hash

// PhiC64 is 2^64 divided by the golden ratio, rounded to an odd integer.
const PhiC64 uint64 = 0x9E3779B97F4A7C15

// MixPhi mixes a 64-bit key into a well-distributed 32-bit value.
func MixPhi(k int64) uint32 {
	h := uint64(k) * PhiC64
	return uint32(h ^ h>>32)
}

// Bucket returns the ideal slot of k in a table with the given mask.
// mask must be a power of two minus one.
func Bucket(k int64, mask int) int {
	return int(MixPhi(k)) & mask
}
