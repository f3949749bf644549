package testutil

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Reference is a reference set of int64 keys backed by a 64-bit roaring
// bitmap. Keys are stored by their uint64 bit pattern.
type Reference struct {
	rb *roaring64.Bitmap
}

// NewReference creates an empty reference set.
func NewReference() *Reference {
	return &Reference{rb: roaring64.New()}
}

// Add inserts k and reports whether it was not present.
func (r *Reference) Add(k int64) bool {
	return r.rb.CheckedAdd(uint64(k))
}

// Remove deletes k and reports whether it was present.
func (r *Reference) Remove(k int64) bool {
	return r.rb.CheckedRemove(uint64(k))
}

// Contains reports whether k is present.
func (r *Reference) Contains(k int64) bool {
	return r.rb.Contains(uint64(k))
}

// Len returns the number of keys.
func (r *Reference) Len() int {
	return int(r.rb.GetCardinality())
}

// Keys returns all keys ordered by their uint64 bit pattern.
func (r *Reference) Keys() []int64 {
	raw := r.rb.ToArray()
	keys := make([]int64, len(raw))
	for i, v := range raw {
		keys[i] = int64(v)
	}
	return keys
}

// Clear removes all keys.
func (r *Reference) Clear() {
	r.rb.Clear()
}
