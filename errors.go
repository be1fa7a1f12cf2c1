package splitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is returned when an index is outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidGrowthParameter is returned when a growth strategy is constructed
	// with a non-positive capacity, a factor <= 1, or a nil capacity function.
	ErrInvalidGrowthParameter = errors.New("invalid growth parameter")

	// ErrCapacityOverflow reports that a computed fragment capacity exceeded
	// MaxFragmentCapacity. Growth saturates instead of failing, so this error is
	// only surfaced through logging and metrics.
	ErrCapacityOverflow = errors.New("fragment capacity overflow")

	// ErrCapacityExceeded is returned by Fragment.Push on a full fragment.
	// SplitVec never pushes into a full fragment, so seeing it means a broken invariant.
	ErrCapacityExceeded = errors.New("fragment capacity exceeded")
)

// IndexOutOfBoundsError indicates an access beyond the current length.
//
// It matches ErrIndexOutOfBounds via errors.Is.
type IndexOutOfBoundsError struct {
	Index int
	Len   int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: index %d, len %d", e.Index, e.Len)
}

func (e *IndexOutOfBoundsError) Is(target error) bool { return target == ErrIndexOutOfBounds }

// FragmentIndexError indicates a (fragment, inner) pair that does not address a live element.
//
// It matches ErrIndexOutOfBounds via errors.Is.
type FragmentIndexError struct {
	Fragment      int
	Inner         int
	FragmentCount int
	FragmentLen   int
}

func (e *FragmentIndexError) Error() string {
	if e.Fragment < 0 || e.Fragment >= e.FragmentCount {
		return fmt.Sprintf("index out of bounds: fragment %d, fragment count %d", e.Fragment, e.FragmentCount)
	}
	return fmt.Sprintf("index out of bounds: fragment %d inner %d, fragment len %d", e.Fragment, e.Inner, e.FragmentLen)
}

func (e *FragmentIndexError) Is(target error) bool { return target == ErrIndexOutOfBounds }

// InvalidGrowthParameterError names the offending growth parameter.
//
// It matches ErrInvalidGrowthParameter via errors.Is.
type InvalidGrowthParameterError struct {
	Kind  Kind
	Param string
	Value any
}

func (e *InvalidGrowthParameterError) Error() string {
	return fmt.Sprintf("invalid growth parameter: %s growth %s=%v", e.Kind, e.Param, e.Value)
}

func (e *InvalidGrowthParameterError) Is(target error) bool {
	return target == ErrInvalidGrowthParameter
}
