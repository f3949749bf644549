package sizing

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	// MinCapacity is the smallest buffer ever allocated.
	MinCapacity = 4

	// MaxCapacity is the largest buffer ever allocated (1<<30 slots).
	MaxCapacity = 1 << 30

	// MinLoadFactor and MaxLoadFactor bound the accepted load factors.
	MinLoadFactor = 0.01
	MaxLoadFactor = 0.99
)

// LimitError reports a request that would need more than MaxCapacity slots.
type LimitError struct {
	Elements int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%d elements exceed the maximum buffer size of %d slots", e.Elements, MaxCapacity)
}

// ValidateLoadFactor checks that lf lies in [MinLoadFactor, MaxLoadFactor].
func ValidateLoadFactor(lf float64) error {
	if math.IsNaN(lf) || lf < MinLoadFactor || lf > MaxLoadFactor {
		return fmt.Errorf("load factor %v outside [%v, %v]", lf, MinLoadFactor, MaxLoadFactor)
	}
	return nil
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// MinBufferSize returns the smallest power-of-two buffer that holds elements
// keys without exceeding loadFactor, leaving at least one slot empty.
func MinBufferSize(elements int, loadFactor float64) (int, error) {
	if elements < 0 {
		return 0, fmt.Errorf("negative element count %d", elements)
	}

	length := math.Ceil(float64(elements) / loadFactor)
	if length > MaxCapacity {
		return 0, &LimitError{Elements: elements}
	}

	n := int(length)
	if n == elements {
		n++
	}

	n = max(MinCapacity, NextPowerOfTwo(n))
	// Rounding in elements/loadFactor may leave the threshold one short.
	for ExpandAtCount(n, loadFactor) < elements && n <= MaxCapacity {
		n <<= 1
	}
	if n > MaxCapacity {
		return 0, &LimitError{Elements: elements}
	}
	return n, nil
}

// ExpandAtCount returns the element count at which a buffer of arraySize
// slots must grow. It never exceeds arraySize*loadFactor and always leaves
// one slot empty.
func ExpandAtCount(arraySize int, loadFactor float64) int {
	return min(arraySize-1, int(math.Floor(float64(arraySize)*loadFactor)))
}

// NextBufferSize returns the buffer size that follows arraySize on growth.
// elements is only used for error reporting.
func NextBufferSize(arraySize, elements int) (int, error) {
	if arraySize >= MaxCapacity {
		return 0, &LimitError{Elements: elements}
	}
	return arraySize << 1, nil
}
