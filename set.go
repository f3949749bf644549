package scatterset

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/scatterset/internal/hash"
	"github.com/hupe1980/scatterset/internal/sizing"
)

var noopLogger = NoopLogger()

// Set is an open-addressing hash set of int64 keys.
//
// Keys live in a flat power-of-two buffer and collisions are resolved by
// linear probing. Slot occupancy is tracked in a separate bitset, so every
// int64 value (including 0) is a valid key. Removal repairs the probe chain
// by shifting keys backwards, so no tombstones are left behind.
//
// The zero value is an empty set ready to use. A Set must not be copied
// after first use and is not safe for concurrent use.
type Set struct {
	keys     []int64
	occupied *bitset.BitSet
	mask     int
	size     int
	resizeAt int

	loadFactor float64
	logger     *Logger
}

// New creates an empty set configured by opts.
func New(opts ...Option) (*Set, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	capacity, err := sizing.MinBufferSize(o.expectedElements, o.loadFactor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, translateError(err))
	}

	s := &Set{
		loadFactor: o.loadFactor,
		logger:     o.logger,
	}
	s.allocate(capacity)
	return s, nil
}

// Add inserts key and reports whether it was not already present.
//
// Add panics with a *CapacityError if the set would need more than
// MaxCapacity slots.
func (s *Set) Add(key int64) bool {
	s.lazyInit()

	slot, found := s.find(key)
	if found {
		return false
	}

	if s.size >= s.resizeAt {
		s.grow(s.size + 1)
		slot, _ = s.find(key)
	}

	s.keys[slot] = key
	s.occupied.Set(uint(slot))
	s.size++
	return true
}

// Remove deletes key and reports whether it was present.
func (s *Set) Remove(key int64) bool {
	if s.keys == nil {
		return false
	}

	slot, found := s.find(key)
	if !found {
		return false
	}

	s.shiftConflictingKeys(slot)
	s.size--
	return true
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key int64) bool {
	if s.keys == nil {
		return false
	}
	_, found := s.find(key)
	return found
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return s.size
}

// Capacity returns the number of slots in the backing buffer.
// It is 0 for a zero Set that has not been used yet.
func (s *Set) Capacity() int {
	return len(s.keys)
}

// EnsureCapacity grows the set so that n more keys can be added without
// a resize. Existing keys are preserved.
func (s *Set) EnsureCapacity(n int) error {
	s.lazyInit()

	if n <= 0 {
		return nil
	}
	if n > MaxCapacity {
		err := &CapacityError{Requested: n, Max: MaxCapacity}
		s.log().LogCapacityExceeded(err)
		return err
	}

	required := s.size + n
	if required <= s.resizeAt {
		return nil
	}

	capacity, err := sizing.MinBufferSize(required, s.lf())
	if err != nil {
		err = translateError(err)
		s.log().LogCapacityExceeded(err)
		return err
	}

	s.rehash(capacity, "ensure capacity")
	return nil
}

// Clear removes all keys but keeps the current capacity.
func (s *Set) Clear() {
	if s.occupied != nil {
		s.occupied.ClearAll()
	}
	s.size = 0
}

// Release drops the backing buffers and resets the set to its empty,
// minimal-capacity state.
func (s *Set) Release() {
	capacity, n := len(s.keys), s.size

	s.keys = nil
	s.occupied = nil
	s.size = 0
	s.allocate(s.minimalCapacity())

	s.log().LogRelease(capacity, n)
}

// All returns an iterator over the keys in slot order.
// The order is unspecified and changes on resize. The set must not be
// modified during iteration.
func (s *Set) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if s.occupied == nil {
			return
		}
		for i, ok := s.occupied.NextSet(0); ok; i, ok = s.occupied.NextSet(i + 1) {
			if !yield(s.keys[i]) {
				return
			}
		}
	}
}

// ForEach calls fn for each key. If fn returns false, iteration stops.
func (s *Set) ForEach(fn func(key int64) bool) {
	for k := range s.All() {
		if !fn(k) {
			return
		}
	}
}

// find returns the slot holding key, or the empty slot that ends its
// probe sequence.
func (s *Set) find(key int64) (int, bool) {
	slot := hash.Bucket(key, s.mask)
	for s.occupied.Test(uint(slot)) {
		if s.keys[slot] == key {
			return slot, true
		}
		slot = (slot + 1) & s.mask
	}
	return slot, false
}

// shiftConflictingKeys empties gapSlot and closes the hole by moving later
// keys of the same run backwards. A key at slot may fill the gap only if the
// gap lies on its probe path, i.e. its distance from its ideal bucket is at
// least the distance from the gap.
func (s *Set) shiftConflictingKeys(gapSlot int) {
	mask := s.mask
	distance := 0
	for {
		distance++
		slot := (gapSlot + distance) & mask
		if !s.occupied.Test(uint(slot)) {
			break
		}

		existing := s.keys[slot]
		shift := (slot - hash.Bucket(existing, mask)) & mask
		if shift >= distance {
			s.keys[gapSlot] = existing
			gapSlot = slot
			distance = 0
		}
	}

	s.occupied.Clear(uint(gapSlot))
	s.keys[gapSlot] = 0
}

// grow rebuilds the table so that required keys fit under the resize
// threshold. The buffer at least doubles; low load factors may need more.
func (s *Set) grow(required int) {
	capacity, err := sizing.NextBufferSize(len(s.keys), required)
	if err == nil {
		var minimal int
		minimal, err = sizing.MinBufferSize(required, s.lf())
		capacity = max(capacity, minimal)
	}
	if err != nil {
		err = translateError(err)
		s.log().LogCapacityExceeded(err)
		panic(err)
	}
	s.rehash(capacity, "grow")
}

// rehash rebuilds the table from scratch into a buffer of capacity slots.
func (s *Set) rehash(capacity int, reason string) {
	from := len(s.keys)
	prevKeys, prevOccupied := s.keys, s.occupied

	s.allocate(capacity)
	for i, ok := prevOccupied.NextSet(0); ok; i, ok = prevOccupied.NextSet(i + 1) {
		k := prevKeys[i]
		slot := hash.Bucket(k, s.mask)
		for s.occupied.Test(uint(slot)) {
			slot = (slot + 1) & s.mask
		}
		s.keys[slot] = k
		s.occupied.Set(uint(slot))
	}

	s.log().LogResize(reason, from, capacity, s.size)
}

func (s *Set) allocate(capacity int) {
	s.keys = make([]int64, capacity)
	s.occupied = bitset.New(uint(capacity))
	s.mask = capacity - 1
	s.resizeAt = sizing.ExpandAtCount(capacity, s.lf())
}

func (s *Set) lazyInit() {
	if s.keys == nil {
		s.allocate(s.minimalCapacity())
	}
}

func (s *Set) minimalCapacity() int {
	// Cannot fail for the default element count and a valid load factor.
	capacity, _ := sizing.MinBufferSize(DefaultExpectedElements, s.lf())
	return capacity
}

func (s *Set) lf() float64 {
	if s.loadFactor == 0 {
		return DefaultLoadFactor
	}
	return s.loadFactor
}

func (s *Set) log() *Logger {
	if s.logger == nil {
		return noopLogger
	}
	return s.logger
}
