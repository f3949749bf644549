package scatterset

import "github.com/hupe1980/scatterset/internal/hash"

// Stats is a point-in-time snapshot of a set's layout.
//
// Displacement is the distance of a key from its ideal bucket along the
// probe sequence; it is the number of extra slots a lookup of that key scans.
type Stats struct {
	Len               int
	Capacity          int
	ResizeAt          int
	LoadFactor        float64
	MaxDisplacement   int
	TotalDisplacement int
}

// Load returns the current ratio of keys to slots.
func (st Stats) Load() float64 {
	if st.Capacity == 0 {
		return 0
	}
	return float64(st.Len) / float64(st.Capacity)
}

// MeanDisplacement returns the average displacement per key.
func (st Stats) MeanDisplacement() float64 {
	if st.Len == 0 {
		return 0
	}
	return float64(st.TotalDisplacement) / float64(st.Len)
}

// Stats computes a snapshot of the set. It scans every occupied slot.
func (s *Set) Stats() Stats {
	st := Stats{
		Len:        s.size,
		Capacity:   len(s.keys),
		ResizeAt:   s.resizeAt,
		LoadFactor: s.lf(),
	}
	if s.occupied == nil {
		return st
	}

	for i, ok := s.occupied.NextSet(0); ok; i, ok = s.occupied.NextSet(i + 1) {
		slot := int(i)
		d := (slot - hash.Bucket(s.keys[slot], s.mask)) & s.mask
		st.TotalDisplacement += d
		st.MaxDisplacement = max(st.MaxDisplacement, d)
	}
	return st
}
