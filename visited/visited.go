// Package visited tracks object ids seen during a graph walk.
package visited

import "github.com/hupe1980/scatterset"

// Set tracks visited node ids for a single walk.
//
// It is backed by a scatterset.Set, so ids may be any int64 value
// including 0 and negative numbers.
type Set struct {
	ids scatterset.Set
}

// New creates a visited set pre-sized for capacity ids.
func New(capacity int) (*Set, error) {
	v := &Set{}
	if err := v.EnsureCapacity(capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// Visit marks a node as visited and reports whether this is the first visit.
func (v *Set) Visit(id int64) bool {
	return v.ids.Add(id)
}

// Visited returns true if the node has been visited.
func (v *Set) Visited(id int64) bool {
	return v.ids.Contains(id)
}

// Forget unmarks a node so a later walk step may visit it again.
func (v *Set) Forget(id int64) {
	v.ids.Remove(id)
}

// Len returns the number of visited nodes.
func (v *Set) Len() int {
	return v.ids.Len()
}

// Reset clears the visited status for all nodes and keeps the allocated
// capacity for the next walk.
func (v *Set) Reset() {
	v.ids.Clear()
}

// Release drops all storage; the set shrinks back to its minimal size.
func (v *Set) Release() {
	v.ids.Release()
}

// EnsureCapacity ensures n more nodes can be visited without a resize.
func (v *Set) EnsureCapacity(n int) error {
	return v.ids.EnsureCapacity(n)
}
