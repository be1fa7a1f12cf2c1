package parallel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/splitvec"
	"github.com/hupe1980/splitvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVec(t *testing.T, capacity, n int) *splitvec.SplitVec[int] {
	t.Helper()
	v, err := splitvec.NewLinear[int](capacity)
	require.NoError(t, err)
	v.ExtendFromSlice(testutil.Sequence(n))
	return v
}

func TestForEachFragment(t *testing.T) {
	t.Run("visits every element once with its offset", func(t *testing.T) {
		v := newVec(t, 7, 100)

		var mu sync.Mutex
		seen := make([]int, 0, 100)
		err := ForEachFragment(context.Background(), v, 4, func(_ context.Context, f, offset int, items []int) error {
			for k, x := range items {
				if x != offset+k {
					return errors.New("offset mismatch")
				}
			}
			assert.Equal(t, f*7, offset)
			mu.Lock()
			seen = append(seen, items...)
			mu.Unlock()
			return nil
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, testutil.Sequence(100), seen)
	})

	t.Run("respects limit", func(t *testing.T) {
		v := newVec(t, 1, 64)

		var running, peak atomic.Int32
		err := ForEachFragment(context.Background(), v, 3, func(context.Context, int, int, []int) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
			return nil
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int32(3))
	})

	t.Run("propagates first error", func(t *testing.T) {
		v := newVec(t, 4, 40)
		boom := errors.New("boom")

		err := ForEachFragment(context.Background(), v, 0, func(_ context.Context, f, _ int, _ []int) error {
			if f == 3 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		v := newVec(t, 4, 40)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		err := ForEachFragment(ctx, v, 1, func(context.Context, int, int, []int) error {
			calls.Add(1)
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls.Load())
	})

	t.Run("skips empty fragment", func(t *testing.T) {
		v := splitvec.FromSlice[int](nil)
		v.ExtendFromSlice([]int{1, 2, 3})

		var calls atomic.Int32
		err := ForEachFragment(context.Background(), v, 0, func(_ context.Context, f, _ int, items []int) error {
			calls.Add(1)
			assert.NotEmpty(t, items)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int32(v.FragmentCount()-1), calls.Load())
	})
}

func TestReduce(t *testing.T) {
	sum := func(_ context.Context, items []int) (int, error) {
		s := 0
		for _, x := range items {
			s += x
		}
		return s, nil
	}
	plus := func(a, b int) int { return a + b }

	t.Run("sum", func(t *testing.T) {
		v := newVec(t, 16, 1000)
		got, err := Reduce(context.Background(), v, 4, sum, plus, 0)
		require.NoError(t, err)
		assert.Equal(t, 999*1000/2, got)
	})

	t.Run("folds in fragment order", func(t *testing.T) {
		v := newVec(t, 3, 10)
		first := func(_ context.Context, items []int) ([]int, error) {
			return items[:1], nil
		}
		concat := func(acc, part []int) []int { return append(acc, part...) }

		got, err := Reduce(context.Background(), v, 0, first, concat, nil)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 3, 6, 9}, got)
	})

	t.Run("empty", func(t *testing.T) {
		got, err := Reduce(context.Background(), splitvec.New[int](), 2, sum, plus, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("error returns init", func(t *testing.T) {
		v := newVec(t, 2, 10)
		boom := errors.New("boom")
		fail := func(context.Context, []int) (int, error) { return 0, boom }

		got, err := Reduce(context.Background(), v, 2, fail, plus, -1)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, -1, got)
	})
}
