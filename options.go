package scatterset

import (
	"fmt"

	"github.com/hupe1980/scatterset/internal/sizing"
)

const (
	// DefaultExpectedElements is the number of elements a new set holds
	// without resizing.
	DefaultExpectedElements = 4

	// DefaultLoadFactor is the ratio of occupied slots to capacity at which
	// a set grows.
	DefaultLoadFactor = 0.75

	// MaxCapacity is the largest number of slots a set can allocate.
	MaxCapacity = sizing.MaxCapacity
)

type options struct {
	expectedElements int
	loadFactor       float64
	logger           *Logger
}

func defaultOptions() options {
	return options{
		expectedElements: DefaultExpectedElements,
		loadFactor:       DefaultLoadFactor,
	}
}

func (o *options) validate() error {
	if err := sizing.ValidateLoadFactor(o.loadFactor); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	if o.expectedElements < 0 {
		return fmt.Errorf("%w: expected elements must not be negative, got %d", ErrInvalidOption, o.expectedElements)
	}
	return nil
}

// Option configures a Set created with New.
type Option func(*options)

// WithExpectedElements pre-sizes the set so that n elements can be added
// without a resize.
func WithExpectedElements(n int) Option {
	return func(o *options) {
		o.expectedElements = n
	}
}

// WithLoadFactor sets the load factor, which must lie in [0.01, 0.99].
//
// Lower values trade memory for shorter probe sequences.
func WithLoadFactor(lf float64) Option {
	return func(o *options) {
		o.loadFactor = lf
	}
}

// WithLogger configures the logger used for resize and release events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
