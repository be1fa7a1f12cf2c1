package splitvec

import (
	"fmt"
	"math"

	"github.com/hupe1980/splitvec/internal/conv"
)

const (
	// MaxFragmentCapacity is the largest capacity a growth strategy will produce.
	// Doubling and exponential growth saturate here instead of wrapping.
	MaxFragmentCapacity = math.MaxInt

	// DefaultInitialCapacity is the first fragment capacity of DefaultGrowth.
	DefaultInitialCapacity = 4

	// DefaultExponentialFactor is the factor used by ExponentialDefault.
	DefaultExponentialFactor = 1.5
)

// Kind identifies a growth strategy variant.
type Kind uint8

const (
	// KindLinear allocates fragments of one fixed capacity.
	KindLinear Kind = iota + 1
	// KindDoubling doubles the capacity of every new fragment.
	KindDoubling
	// KindExponential multiplies the capacity of every new fragment by a factor.
	KindExponential
	// KindCustom asks a caller-supplied function for every capacity.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindDoubling:
		return "doubling"
	case KindExponential:
		return "exponential"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// CapacityFunc returns the capacity of the fragment at fragmentIndex.
// It must be deterministic and return a positive value.
type CapacityFunc func(fragmentIndex int) int

// Growth is the policy that sizes newly allocated fragments.
//
// Growth is a small immutable value; the zero Growth behaves like DefaultGrowth.
type Growth struct {
	kind     Kind
	capacity int
	factor   float64
	fn       CapacityFunc
}

// DefaultGrowth returns doubling growth starting at DefaultInitialCapacity.
func DefaultGrowth() Growth {
	return Growth{kind: KindDoubling, capacity: DefaultInitialCapacity}
}

// Linear returns a strategy where every fragment has the given capacity.
func Linear(capacity int) (Growth, error) {
	if capacity <= 0 {
		return Growth{}, &InvalidGrowthParameterError{Kind: KindLinear, Param: "capacity", Value: capacity}
	}
	return Growth{kind: KindLinear, capacity: capacity}, nil
}

// Doubling returns a strategy whose first fragment has the initial capacity and
// every following fragment doubles the previous one.
func Doubling(initial int) (Growth, error) {
	if initial <= 0 {
		return Growth{}, &InvalidGrowthParameterError{Kind: KindDoubling, Param: "initial", Value: initial}
	}
	return Growth{kind: KindDoubling, capacity: initial}, nil
}

// Exponential returns a strategy whose first fragment has the initial capacity and
// every following fragment has ceil(previous*factor) capacity, growing by at least one.
func Exponential(initial int, factor float64) (Growth, error) {
	if initial <= 0 {
		return Growth{}, &InvalidGrowthParameterError{Kind: KindExponential, Param: "initial", Value: initial}
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 1 {
		return Growth{}, &InvalidGrowthParameterError{Kind: KindExponential, Param: "factor", Value: factor}
	}
	return Growth{kind: KindExponential, capacity: initial, factor: factor}, nil
}

// ExponentialDefault returns exponential growth starting at DefaultInitialCapacity
// with DefaultExponentialFactor.
func ExponentialDefault() Growth {
	return Growth{kind: KindExponential, capacity: DefaultInitialCapacity, factor: DefaultExponentialFactor}
}

// Custom returns a strategy that delegates every capacity decision to fn.
func Custom(fn CapacityFunc) (Growth, error) {
	if fn == nil {
		return Growth{}, &InvalidGrowthParameterError{Kind: KindCustom, Param: "fn", Value: nil}
	}
	return Growth{kind: KindCustom, fn: fn}, nil
}

func (g Growth) normalize() Growth {
	if g.kind == 0 {
		return DefaultGrowth()
	}
	return g
}

// Kind returns the strategy variant.
func (g Growth) Kind() Kind { return g.normalize().kind }

// Capacity returns the fixed capacity of linear growth or the initial capacity of
// doubling and exponential growth. It is zero for custom growth.
func (g Growth) Capacity() int { return g.normalize().capacity }

// Factor returns the multiplicative factor of exponential growth, 2 for doubling
// growth, and zero otherwise.
func (g Growth) Factor() float64 {
	switch g.normalize().kind {
	case KindDoubling:
		return 2
	case KindExponential:
		return g.factor
	default:
		return 0
	}
}

func (g Growth) String() string {
	g = g.normalize()
	switch g.kind {
	case KindLinear:
		return fmt.Sprintf("Linear(%d)", g.capacity)
	case KindDoubling:
		return fmt.Sprintf("Doubling(%d)", g.capacity)
	case KindExponential:
		return fmt.Sprintf("Exponential(%d, %g)", g.capacity, g.factor)
	default:
		return "Custom"
	}
}

// NextCapacity returns the capacity of the fragment following the given existing
// fragment capacities. Capacities of doubling and exponential growth saturate at
// MaxFragmentCapacity. A custom function returning a non-positive capacity yields
// ErrInvalidGrowthParameter.
func (g Growth) NextCapacity(existing []int) (int, error) {
	last := 0
	if len(existing) > 0 {
		last = existing[len(existing)-1]
	}
	c, _, err := g.normalize().next(len(existing), last)
	return c, err
}

// next computes the capacity of fragment number count given the capacity of the
// last existing fragment. g must be normalized.
func (g Growth) next(count, last int) (int, bool, error) {
	switch g.kind {
	case KindLinear:
		return g.capacity, false, nil
	case KindDoubling:
		if count == 0 {
			return g.capacity, false, nil
		}
		if last == 0 {
			return 1, false, nil
		}
		c, saturated := conv.MulSat(last, 2)
		return c, saturated, nil
	case KindExponential:
		if count == 0 {
			return g.capacity, false, nil
		}
		if last == 0 {
			return 1, false, nil
		}
		c, saturated := conv.CeilFloatToIntSat(float64(last) * g.factor)
		if !saturated && c <= last {
			c, saturated = conv.AddSat(last, 1)
		}
		return c, saturated, nil
	case KindCustom:
		c := g.fn(count)
		if c <= 0 {
			return 0, false, &InvalidGrowthParameterError{Kind: KindCustom, Param: fmt.Sprintf("capacity[%d]", count), Value: c}
		}
		return c, false, nil
	default:
		return 0, false, &InvalidGrowthParameterError{Kind: g.kind, Param: "kind", Value: uint8(g.kind)}
	}
}

// closedForm reports whether the strategy admits direct index resolution.
func (g Growth) closedForm() bool {
	return g.kind == KindLinear || g.kind == KindDoubling
}
