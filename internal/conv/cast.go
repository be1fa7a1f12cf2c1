package conv

import (
	"fmt"
	"math"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// MulSat returns a*b for non-negative operands, saturating at math.MaxInt.
// The second result reports whether saturation occurred.
func MulSat(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		panic(fmt.Sprintf("conv: MulSat requires non-negative operands, got %d and %d", a, b))
	}
	if a == 0 || b == 0 {
		return 0, false
	}
	if a > math.MaxInt/b {
		return math.MaxInt, true
	}
	return a * b, false
}

// AddSat returns a+b for non-negative operands, saturating at math.MaxInt.
// The second result reports whether saturation occurred.
func AddSat(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		panic(fmt.Sprintf("conv: AddSat requires non-negative operands, got %d and %d", a, b))
	}
	if a > math.MaxInt-b {
		return math.MaxInt, true
	}
	return a + b, false
}

// CeilFloatToIntSat returns ceil(f) as an int, saturating at math.MaxInt.
// f must be non-negative and not NaN.
func CeilFloatToIntSat(f float64) (int, bool) {
	if math.IsNaN(f) || f < 0 {
		panic(fmt.Sprintf("conv: CeilFloatToIntSat requires a non-negative number, got %v", f))
	}
	c := math.Ceil(f)
	// float64(math.MaxInt) rounds up to 2^63, which is itself out of range.
	if c >= float64(math.MaxInt) {
		return math.MaxInt, true
	}
	return int(c), false
}
