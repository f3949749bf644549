package scatterset

import (
	"fmt"
	"math"
	"testing"

	"github.com/hupe1980/scatterset/internal/hash"
	"github.com/hupe1980/scatterset/internal/sizing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValues = []int64{42, 0, math.MinInt64, math.MaxInt64, -1, 11, 14723950898}

// requireInvariants checks the table layout: power-of-two capacity, size
// bookkeeping, no duplicates, and no empty slot on any key's probe path.
func requireInvariants(t *testing.T, s *Set) {
	t.Helper()

	c := len(s.keys)
	require.GreaterOrEqual(t, c, sizing.MinCapacity)
	require.Equal(t, c, sizing.NextPowerOfTwo(c), "capacity must be a power of two")
	require.Equal(t, c-1, s.mask)
	require.Equal(t, uint(c), s.occupied.Len())
	require.Equal(t, uint(s.size), s.occupied.Count())
	require.LessOrEqual(t, s.size, s.resizeAt)
	require.Less(t, s.resizeAt, c)
	require.LessOrEqual(t, float64(s.size), float64(c)*s.lf(), "load factor exceeded")

	seen := make(map[int64]struct{}, s.size)
	for i, ok := s.occupied.NextSet(0); ok; i, ok = s.occupied.NextSet(i + 1) {
		slot := int(i)
		k := s.keys[slot]

		_, dup := seen[k]
		require.False(t, dup, "key %d stored twice", k)
		seen[k] = struct{}{}

		for j := hash.Bucket(k, s.mask); j != slot; j = (j + 1) & s.mask {
			require.True(t, s.occupied.Test(uint(j)), "empty slot %d on probe path of key %d at slot %d", j, k, slot)
		}
	}
}

func newSet(t *testing.T, opts ...Option) *Set {
	t.Helper()
	s, err := New(opts...)
	require.NoError(t, err)
	return s
}

func verifyAddOperation(t *testing.T, s *Set) {
	t.Helper()

	require.Equal(t, hash.MixPhi(11), hash.MixPhi(14723950898))

	for i, v := range testValues {
		assert.False(t, s.Contains(v))
		assert.Equal(t, i, s.Len())

		assert.True(t, s.Add(v))

		assert.Equal(t, i+1, s.Len())
		for _, prev := range testValues[:i+1] {
			assert.True(t, s.Contains(prev), "key %d", prev)
		}
		requireInvariants(t, s)
	}

	assert.True(t, s.Add(30))
	assert.True(t, s.Contains(30))

	n := s.Len()
	assert.False(t, s.Add(testValues[0]))
	assert.Equal(t, n, s.Len())
	requireInvariants(t, s)
}

func verifyRemoveOperation(t *testing.T, s *Set) {
	t.Helper()

	values := []int64{42, 0, math.MinInt64, math.MaxInt64, -1}

	// Removing from an empty set.
	for _, v := range values {
		assert.False(t, s.Remove(v))
		assert.Zero(t, s.Len())
		assert.False(t, s.Contains(v))
	}

	for _, v := range values {
		s.Add(v)
	}

	for i, v := range values {
		assert.True(t, s.Contains(v))

		assert.True(t, s.Remove(v))

		assert.False(t, s.Contains(v))
		assert.Equal(t, len(values)-i-1, s.Len())
		for _, rest := range values[i+1:] {
			assert.True(t, s.Contains(rest), "key %d", rest)
		}
		requireInvariants(t, s)
	}

	// Removing the same key twice.
	s.Add(42)
	assert.True(t, s.Remove(42))
	assert.False(t, s.Remove(42))
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains(42))

	// Colliding keys removed in reverse insertion order.
	s.Add(11)
	s.Add(14723950898)
	s.Remove(14723950898)
	s.Remove(11)
	assert.False(t, s.Contains(11))
	assert.False(t, s.Contains(14723950898))
	assert.Zero(t, s.Len())
	requireInvariants(t, s)
}

func TestSet_Add(t *testing.T) {
	verifyAddOperation(t, newSet(t))
}

func TestSet_Remove(t *testing.T) {
	verifyRemoveOperation(t, newSet(t))
}

func TestSet_Release(t *testing.T) {
	s := newSet(t)
	s.Add(42)
	s.Release()

	assert.Zero(t, s.Len())
	assert.False(t, s.Contains(42))
	requireInvariants(t, s)
}

func TestSet_ReleaseAfterGrowth(t *testing.T) {
	s := newSet(t)
	for k := int64(0); k < 1000; k++ {
		s.Add(k)
	}
	require.Greater(t, s.Capacity(), 1000)

	s.Release()

	assert.Zero(t, s.Len())
	assert.Equal(t, 8, s.Capacity())
	for k := int64(0); k < 1000; k++ {
		assert.False(t, s.Contains(k))
	}
	requireInvariants(t, s)

	// The set is reusable after release.
	assert.True(t, s.Add(7))
	assert.True(t, s.Contains(7))
}

func TestSet_EnsureCapacity(t *testing.T) {
	t.Run("before adding", func(t *testing.T) {
		s := newSet(t)
		require.NoError(t, s.EnsureCapacity(10))
		verifyAddOperation(t, s)
	})

	t.Run("before removing", func(t *testing.T) {
		s := newSet(t)
		require.NoError(t, s.EnsureCapacity(10))
		verifyRemoveOperation(t, s)
	})

	t.Run("after adding", func(t *testing.T) {
		s := newSet(t)
		s.Add(42)
		s.Add(10)
		require.NoError(t, s.EnsureCapacity(100))

		assert.True(t, s.Contains(10))
		assert.True(t, s.Contains(42))
		assert.Equal(t, 2, s.Len())
		requireInvariants(t, s)
	})

	t.Run("no resize for reserved elements", func(t *testing.T) {
		s := newSet(t)
		for k := int64(0); k < 5; k++ {
			s.Add(k)
		}
		require.NoError(t, s.EnsureCapacity(1000))
		capacity := s.Capacity()

		for k := int64(5); k < 1005; k++ {
			s.Add(k)
		}
		assert.Equal(t, capacity, s.Capacity())
		assert.Equal(t, 1005, s.Len())
		requireInvariants(t, s)
	})

	t.Run("non-positive is a no-op", func(t *testing.T) {
		s := newSet(t)
		s.Add(1)
		require.NoError(t, s.EnsureCapacity(0))
		require.NoError(t, s.EnsureCapacity(-10))
		assert.Equal(t, 8, s.Capacity())
		assert.True(t, s.Contains(1))
	})

	t.Run("already large enough", func(t *testing.T) {
		s := newSet(t, WithExpectedElements(100))
		capacity := s.Capacity()
		require.NoError(t, s.EnsureCapacity(50))
		assert.Equal(t, capacity, s.Capacity())
	})
}

func TestSet_Scenario(t *testing.T) {
	s := newSet(t)

	for _, v := range testValues {
		s.Add(v)
	}
	assert.Equal(t, 7, s.Len())
	for _, v := range testValues {
		assert.True(t, s.Contains(v))
	}

	s.Add(30)
	assert.Equal(t, 8, s.Len())

	s.Remove(14723950898)
	s.Remove(11)
	assert.Equal(t, 6, s.Len())
	assert.False(t, s.Contains(11))
	assert.False(t, s.Contains(14723950898))
	for _, v := range []int64{42, 0, math.MinInt64, math.MaxInt64, -1, 30} {
		assert.True(t, s.Contains(v))
	}
	requireInvariants(t, s)
}

func TestSet_Duplicates(t *testing.T) {
	s := newSet(t)
	input := []int64{5, 5, 0, 0, -5, 5, math.MaxInt64, math.MaxInt64, 0}
	for _, k := range input {
		s.Add(k)
	}

	assert.Equal(t, 4, s.Len())
	for _, k := range input {
		assert.True(t, s.Contains(k))
	}
	assert.False(t, s.Contains(6))
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set

	assert.Zero(t, s.Len())
	assert.Zero(t, s.Capacity())
	assert.False(t, s.Contains(0))
	assert.False(t, s.Remove(0))
	for range s.All() {
		t.Fatal("zero set yielded a key")
	}
	assert.Equal(t, Stats{LoadFactor: DefaultLoadFactor}, s.Stats())

	assert.True(t, s.Add(0))
	assert.True(t, s.Contains(0))
	assert.Equal(t, 8, s.Capacity())
	requireInvariants(t, &s)
}

func TestSet_ZeroValueClearAndRelease(t *testing.T) {
	var a Set
	a.Clear()
	assert.Zero(t, a.Len())

	var b Set
	b.Release()
	assert.Equal(t, 8, b.Capacity())
	requireInvariants(t, &b)
}

func TestSet_Clear(t *testing.T) {
	s := newSet(t)
	for k := int64(-50); k < 50; k++ {
		s.Add(k)
	}
	capacity := s.Capacity()

	s.Clear()

	assert.Zero(t, s.Len())
	assert.Equal(t, capacity, s.Capacity())
	for k := int64(-50); k < 50; k++ {
		assert.False(t, s.Contains(k))
	}
	requireInvariants(t, s)

	assert.True(t, s.Add(3))
	assert.Equal(t, 1, s.Len())
}

func TestSet_Growth(t *testing.T) {
	s := newSet(t)
	require.Equal(t, 8, s.Capacity())

	// Six keys fit into eight slots at load factor 0.75; the seventh doubles.
	for k := int64(1); k <= 6; k++ {
		s.Add(k)
	}
	assert.Equal(t, 8, s.Capacity())

	s.Add(7)
	assert.Equal(t, 16, s.Capacity())
	requireInvariants(t, s)

	for k := int64(8); k <= 100_000; k++ {
		s.Add(k)
		if load := float64(s.Len()) / float64(s.Capacity()); load > DefaultLoadFactor {
			t.Fatalf("load %v exceeds load factor after adding %d", load, k)
		}
	}
	assert.Equal(t, 100_000, s.Len())
	requireInvariants(t, s)
}

func TestSet_LowLoadFactorKeepsEmptySlots(t *testing.T) {
	for _, lf := range []float64{0.01, 0.1, 0.3} {
		t.Run(fmt.Sprintf("lf=%v", lf), func(t *testing.T) {
			s := newSet(t, WithLoadFactor(lf), WithExpectedElements(0))

			for k := int64(1); k <= 64; k++ {
				require.True(t, s.Add(k))
				requireInvariants(t, s)
			}

			// Terminates only if an empty slot ends the probe sequence.
			assert.False(t, s.Contains(100))
			assert.False(t, s.Remove(100))
			assert.Equal(t, 64, s.Len())
		})
	}
}

func TestSet_LoadFactorBound(t *testing.T) {
	for _, lf := range []float64{0.01, 0.1, 0.3, 0.55, 0.6, 0.7, 0.99} {
		t.Run(fmt.Sprintf("lf=%v", lf), func(t *testing.T) {
			for _, expected := range []int{0, DefaultExpectedElements, 37} {
				s := newSet(t, WithLoadFactor(lf), WithExpectedElements(expected))
				for k := int64(1); k <= 2000; k++ {
					s.Add(k)
					if float64(s.Len()) > float64(s.Capacity())*lf {
						t.Fatalf("len %d exceeds capacity %d * load factor %v", s.Len(), s.Capacity(), lf)
					}
				}
				requireInvariants(t, s)
			}

			s := newSet(t, WithLoadFactor(lf))
			for k := int64(1); k <= 5; k++ {
				s.Add(k)
			}
			require.NoError(t, s.EnsureCapacity(100))
			assert.LessOrEqual(t, 105, s.Stats().ResizeAt)
			requireInvariants(t, s)
		})
	}
}

func TestSet_All(t *testing.T) {
	s := newSet(t)
	for _, v := range testValues {
		s.Add(v)
	}

	var got []int64
	for k := range s.All() {
		got = append(got, k)
	}
	assert.ElementsMatch(t, testValues, got)

	t.Run("early stop", func(t *testing.T) {
		var n int
		s.ForEach(func(int64) bool {
			n++
			return n < 3
		})
		assert.Equal(t, 3, n)
	})
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := newSet(t)
		assert.Equal(t, 8, s.Capacity())
		assert.Equal(t, DefaultLoadFactor, s.Stats().LoadFactor)
	})

	t.Run("expected elements", func(t *testing.T) {
		s := newSet(t, WithExpectedElements(1000))
		assert.Equal(t, 2048, s.Capacity())
		assert.GreaterOrEqual(t, s.Stats().ResizeAt, 1000)
	})

	t.Run("load factor", func(t *testing.T) {
		s := newSet(t, WithLoadFactor(0.5), WithExpectedElements(100))
		assert.Equal(t, 256, s.Capacity())
		assert.Equal(t, 0.5, s.Stats().LoadFactor)
	})

	t.Run("load factor survives release", func(t *testing.T) {
		s := newSet(t, WithLoadFactor(0.5))
		s.Release()
		assert.Equal(t, 0.5, s.Stats().LoadFactor)
	})
}
