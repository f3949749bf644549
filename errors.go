package scatterset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/scatterset/internal/sizing"
)

var (
	// ErrCapacityExceeded is returned when a set would need more than MaxCapacity slots.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidOption is returned by New when an option is out of range.
	ErrInvalidOption = errors.New("invalid option")
)

// CapacityError indicates that the buffers for the requested number of
// elements cannot be allocated.
//
// It matches ErrCapacityExceeded via errors.Is. The original underlying
// error (if any) can be accessed via errors.Unwrap.
type CapacityError struct {
	Requested int
	Max       int
	cause     error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d elements requested, at most %d slots", e.Requested, e.Max)
}

func (e *CapacityError) Unwrap() error { return e.cause }

// Is reports whether target is ErrCapacityExceeded.
func (e *CapacityError) Is(target error) bool { return target == ErrCapacityExceeded }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var le *sizing.LimitError
	if errors.As(err, &le) {
		return &CapacityError{Requested: le.Elements, Max: MaxCapacity, cause: err}
	}

	return err
}
