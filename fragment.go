package splitvec

// Fragment is an append-only buffer with a fixed capacity.
//
// The backing array is allocated once and never resized, so the address of an
// element stays the same for as long as the element lives in the fragment.
type Fragment[T any] struct {
	data []T
}

// NewFragment allocates an empty fragment that holds up to capacity elements.
func NewFragment[T any](capacity int) *Fragment[T] {
	return &Fragment[T]{data: make([]T, 0, capacity)}
}

// adoptFragment wraps buf without copying. Its capacity becomes the fragment capacity.
func adoptFragment[T any](buf []T) *Fragment[T] {
	return &Fragment[T]{data: buf}
}

// Len returns the number of elements in the fragment.
func (f *Fragment[T]) Len() int { return len(f.data) }

// Cap returns the fixed capacity of the fragment.
func (f *Fragment[T]) Cap() int { return cap(f.data) }

// IsFull reports whether the fragment can no longer accept elements.
func (f *Fragment[T]) IsFull() bool { return len(f.data) == cap(f.data) }

// Push appends v. It returns ErrCapacityExceeded if the fragment is full.
func (f *Fragment[T]) Push(v T) error {
	if f.IsFull() {
		return ErrCapacityExceeded
	}
	// Within capacity append reuses the backing array.
	f.data = append(f.data, v)
	return nil
}

// pushSlice copies as many elements of s as fit and returns how many were copied.
func (f *Fragment[T]) pushSlice(s []T) int {
	n := min(cap(f.data)-len(f.data), len(s))
	f.data = append(f.data, s[:n]...)
	return n
}

// Get returns the element at i.
func (f *Fragment[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(f.data) {
		var zero T
		return zero, false
	}
	return f.data[i], true
}

// Ptr returns a pointer to the element at i, or nil if i is out of range.
func (f *Fragment[T]) Ptr(i int) *T {
	if i < 0 || i >= len(f.data) {
		return nil
	}
	return &f.data[i]
}

// Pop removes and returns the last element.
func (f *Fragment[T]) Pop() (T, bool) {
	var zero T
	n := len(f.data)
	if n == 0 {
		return zero, false
	}
	v := f.data[n-1]
	// Clear the slot so whatever it referenced can be collected.
	f.data[n-1] = zero
	f.data = f.data[:n-1]
	return v, true
}

// truncate shrinks the fragment to n elements, clearing the vacated slots.
func (f *Fragment[T]) truncate(n int) {
	clear(f.data[n:])
	f.data = f.data[:n]
}

// Items returns the live elements. The result is clipped to its length, so
// appending to it allocates a new array instead of writing into the fragment.
func (f *Fragment[T]) Items() []T {
	return f.data[:len(f.data):len(f.data)]
}
