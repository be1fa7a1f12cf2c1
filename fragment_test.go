package splitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragment(t *testing.T) {
	t.Run("push until full", func(t *testing.T) {
		f := NewFragment[int](3)
		for i := range 3 {
			require.NoError(t, f.Push(i))
		}
		assert.True(t, f.IsFull())
		assert.ErrorIs(t, f.Push(3), ErrCapacityExceeded)
		assert.Equal(t, 3, f.Len())
		assert.Equal(t, 3, f.Cap())
	})

	t.Run("storage never moves", func(t *testing.T) {
		f := NewFragment[int](4)
		require.NoError(t, f.Push(1))
		p := f.Ptr(0)
		for i := range 3 {
			require.NoError(t, f.Push(i))
		}
		assert.Same(t, p, f.Ptr(0))
	})

	t.Run("get bounds", func(t *testing.T) {
		f := NewFragment[string](2)
		require.NoError(t, f.Push("a"))

		v, ok := f.Get(0)
		assert.True(t, ok)
		assert.Equal(t, "a", v)

		_, ok = f.Get(1)
		assert.False(t, ok)
		_, ok = f.Get(-1)
		assert.False(t, ok)
		assert.Nil(t, f.Ptr(1))
	})

	t.Run("pop clears slot", func(t *testing.T) {
		x := 42
		f := NewFragment[*int](2)
		require.NoError(t, f.Push(&x))

		v, ok := f.Pop()
		require.True(t, ok)
		assert.Same(t, &x, v)
		assert.Nil(t, f.data[:1][0])

		_, ok = f.Pop()
		assert.False(t, ok)
	})

	t.Run("items are clipped", func(t *testing.T) {
		f := NewFragment[int](4)
		require.NoError(t, f.Push(1))
		items := f.Items()
		_ = append(items, 99)
		assert.Equal(t, 1, f.Len())
		assert.Equal(t, 0, f.data[:2][1])
	})

	t.Run("adopt keeps capacity", func(t *testing.T) {
		buf := make([]int, 2, 10)
		f := adoptFragment(buf)
		assert.Equal(t, 2, f.Len())
		assert.Equal(t, 10, f.Cap())
		assert.Same(t, &buf[0], f.Ptr(0))
	})
}
