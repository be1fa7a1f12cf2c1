package splitvec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthConstructors(t *testing.T) {
	t.Run("invalid parameters", func(t *testing.T) {
		tests := []struct {
			name string
			fn   func() (Growth, error)
		}{
			{"linear zero", func() (Growth, error) { return Linear(0) }},
			{"linear negative", func() (Growth, error) { return Linear(-3) }},
			{"doubling zero", func() (Growth, error) { return Doubling(0) }},
			{"exponential zero initial", func() (Growth, error) { return Exponential(0, 1.5) }},
			{"exponential factor one", func() (Growth, error) { return Exponential(4, 1) }},
			{"exponential factor below one", func() (Growth, error) { return Exponential(4, 0.5) }},
			{"exponential NaN", func() (Growth, error) { return Exponential(4, math.NaN()) }},
			{"exponential Inf", func() (Growth, error) { return Exponential(4, math.Inf(1)) }},
			{"custom nil", func() (Growth, error) { return Custom(nil) }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := tt.fn()
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidGrowthParameter)

				var gpe *InvalidGrowthParameterError
				assert.True(t, errors.As(err, &gpe))
			})
		}
	})

	t.Run("accessors", func(t *testing.T) {
		g, err := Linear(8)
		require.NoError(t, err)
		assert.Equal(t, KindLinear, g.Kind())
		assert.Equal(t, 8, g.Capacity())
		assert.Equal(t, "Linear(8)", g.String())

		g, err = Exponential(3, 1.25)
		require.NoError(t, err)
		assert.Equal(t, KindExponential, g.Kind())
		assert.InDelta(t, 1.25, g.Factor(), 1e-12)

		var zero Growth
		assert.Equal(t, KindDoubling, zero.Kind())
		assert.Equal(t, DefaultInitialCapacity, zero.Capacity())
		assert.InDelta(t, 2.0, zero.Factor(), 1e-12)
	})
}

func TestGrowthNextCapacity(t *testing.T) {
	sequence := func(t *testing.T, g Growth, n int) []int {
		t.Helper()
		var caps []int
		for range n {
			c, err := g.NextCapacity(caps)
			require.NoError(t, err)
			caps = append(caps, c)
		}
		return caps
	}

	t.Run("linear", func(t *testing.T) {
		g, _ := Linear(4)
		assert.Equal(t, []int{4, 4, 4, 4}, sequence(t, g, 4))
	})

	t.Run("doubling", func(t *testing.T) {
		g, _ := Doubling(1)
		assert.Equal(t, []int{1, 2, 4, 8, 16}, sequence(t, g, 5))
	})

	t.Run("doubling after empty fragment", func(t *testing.T) {
		g, _ := Doubling(4)
		c, err := g.NextCapacity([]int{0})
		require.NoError(t, err)
		assert.Equal(t, 1, c)
	})

	t.Run("doubling saturates", func(t *testing.T) {
		g, _ := Doubling(1)
		c, err := g.NextCapacity([]int{math.MaxInt/2 + 1})
		require.NoError(t, err)
		assert.Equal(t, MaxFragmentCapacity, c)

		c, err = g.NextCapacity([]int{MaxFragmentCapacity})
		require.NoError(t, err)
		assert.Equal(t, MaxFragmentCapacity, c)
	})

	t.Run("exponential", func(t *testing.T) {
		g, _ := Exponential(4, 1.5)
		assert.Equal(t, []int{4, 6, 9, 14, 21}, sequence(t, g, 5))
	})

	t.Run("exponential minimum increment", func(t *testing.T) {
		g, _ := Exponential(1, 1.01)
		assert.Equal(t, []int{1, 2, 3, 4}, sequence(t, g, 4))
	})

	t.Run("exponential saturates", func(t *testing.T) {
		g, _ := Exponential(1, 3)
		c, err := g.NextCapacity([]int{math.MaxInt / 2})
		require.NoError(t, err)
		assert.Equal(t, MaxFragmentCapacity, c)
	})

	t.Run("custom", func(t *testing.T) {
		g, _ := Custom(func(k int) int { return k + 1 })
		assert.Equal(t, []int{1, 2, 3}, sequence(t, g, 3))
	})

	t.Run("custom non-positive", func(t *testing.T) {
		g, _ := Custom(func(k int) int { return 1 - k })
		_, err := g.NextCapacity([]int{1})
		assert.ErrorIs(t, err, ErrInvalidGrowthParameter)
	})

	t.Run("reproducible", func(t *testing.T) {
		g, _ := Exponential(5, 1.7)
		assert.Equal(t, sequence(t, g, 10), sequence(t, g, 10))
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "linear", KindLinear.String())
	assert.Equal(t, "doubling", KindDoubling.String())
	assert.Equal(t, "exponential", KindExponential.String())
	assert.Equal(t, "custom", KindCustom.String())
	assert.Equal(t, "kind(0)", Kind(0).String())
}
