package splitvec

import (
	"iter"
	"slices"
)

// SplitVec is a growable sequence that never moves an element once it is stored.
//
// Elements live in fragments whose backing arrays are allocated once. Growth
// appends a new fragment sized by the growth strategy instead of reallocating,
// so a pointer returned by GetPtr or At stays valid until that element is
// removed or the container is converted with IntoSlice.
//
// Invariants:
//   - every fragment except the last is full
//   - the last fragment is empty only if it is the only fragment
//   - Len equals the sum of the fragment lengths
//
// Use New or one of the NewXxx constructors; the zero SplitVec is not ready for
// use. SplitVec is not safe for concurrent use. Wrap it in syncvec.Vec when it
// is shared between goroutines.
type SplitVec[T any] struct {
	fragments []*Fragment[T]
	growth    Growth
	len       int

	// canonical reports that fragment capacities follow the growth pattern
	// exactly, which allows closed-form index resolution.
	canonical bool

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty SplitVec. Fragments are allocated lazily on first push.
func New[T any](opts ...Option) *SplitVec[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newWithOptions[T](o)
}

func newWithOptions[T any](o options) *SplitVec[T] {
	return &SplitVec[T]{
		growth:    o.growth,
		canonical: true,
		logger:    o.logger.WithGrowth(o.growth),
		metrics:   o.metricsCollector,
	}
}

func newWithGrowth[T any](g Growth, err error, opts []Option) (*SplitVec[T], error) {
	if err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.growth = g
	return newWithOptions[T](o), nil
}

// NewLinear creates an empty SplitVec whose fragments all hold capacity elements.
func NewLinear[T any](capacity int, opts ...Option) (*SplitVec[T], error) {
	g, err := Linear(capacity)
	return newWithGrowth[T](g, err, opts)
}

// NewDoubling creates an empty SplitVec with doubling growth starting at initial.
func NewDoubling[T any](initial int, opts ...Option) (*SplitVec[T], error) {
	g, err := Doubling(initial)
	return newWithGrowth[T](g, err, opts)
}

// NewExponential creates an empty SplitVec with exponential growth.
func NewExponential[T any](initial int, factor float64, opts ...Option) (*SplitVec[T], error) {
	g, err := Exponential(initial, factor)
	return newWithGrowth[T](g, err, opts)
}

// NewCustom creates an empty SplitVec whose fragment capacities come from fn.
func NewCustom[T any](fn CapacityFunc, opts ...Option) (*SplitVec[T], error) {
	g, err := Custom(fn)
	return newWithGrowth[T](g, err, opts)
}

// Len returns the number of elements.
func (v *SplitVec[T]) Len() int { return v.len }

// IsEmpty reports whether the container holds no elements.
func (v *SplitVec[T]) IsEmpty() bool { return v.len == 0 }

// Growth returns the growth strategy.
func (v *SplitVec[T]) Growth() Growth { return v.growth }

// Capacity returns the total capacity of all allocated fragments.
func (v *SplitVec[T]) Capacity() int {
	c := 0
	for _, f := range v.fragments {
		c += f.Cap()
	}
	return c
}

// Push appends value, allocating a new fragment if the last one is full.
// Existing elements are never moved.
//
// Push panics if a custom growth function returns a non-positive capacity.
// Use TryPush to receive that failure as an error.
func (v *SplitVec[T]) Push(value T) {
	if err := v.TryPush(value); err != nil {
		panic(err)
	}
}

// TryPush is like Push but returns ErrInvalidGrowthParameter instead of
// panicking. The container is unchanged on error.
func (v *SplitVec[T]) TryPush(value T) error {
	last, err := v.writable()
	if err != nil {
		return err
	}
	last.data = append(last.data, value)
	v.len++
	return nil
}

// writable returns a non-full last fragment, growing if necessary.
func (v *SplitVec[T]) writable() (*Fragment[T], error) {
	n := len(v.fragments)
	if n > 0 && !v.fragments[n-1].IsFull() {
		return v.fragments[n-1], nil
	}
	last := 0
	if n > 0 {
		last = v.fragments[n-1].Cap()
	}
	c, saturated, err := v.growth.next(n, last)
	if err != nil {
		return nil, err
	}
	return v.allocFragment(c, saturated), nil
}

func (v *SplitVec[T]) allocFragment(capacity int, saturated bool) *Fragment[T] {
	n := len(v.fragments)
	prev := 0
	if n > 0 {
		prev = v.fragments[n-1].Cap()
	}
	if saturated {
		v.logger.LogGrowthSaturated(n, prev)
		v.metrics.RecordGrowthSaturated()
	}
	v.canonical = v.canonical && v.fitsClosedForm(n, prev, capacity)

	f := NewFragment[T](capacity)
	// Growing the outer slice moves fragment headers only, never element storage.
	v.fragments = append(v.fragments, f)

	v.logger.LogFragmentAllocated(n, capacity, v.len)
	v.metrics.RecordFragmentAlloc(capacity)
	return f
}

// Extend pushes every value produced by seq.
func (v *SplitVec[T]) Extend(seq iter.Seq[T]) {
	for x := range seq {
		v.Push(x)
	}
}

// ExtendFromSlice appends the elements of s, filling the last fragment and then
// allocating each new fragment once and copying into it in bulk.
//
// ExtendFromSlice panics if a custom growth function returns a non-positive
// capacity. Use TryExtendFromSlice to receive that failure as an error.
func (v *SplitVec[T]) ExtendFromSlice(s []T) {
	if err := v.TryExtendFromSlice(s); err != nil {
		panic(err)
	}
}

// TryExtendFromSlice is like ExtendFromSlice but returns growth failures as an
// error. Every fragment capacity is computed before anything is appended, so the
// container is unchanged on error.
func (v *SplitVec[T]) TryExtendFromSlice(s []T) error {
	type planned struct {
		capacity  int
		saturated bool
	}

	n := len(v.fragments)
	remaining := len(s)
	last := 0
	if n > 0 {
		lf := v.fragments[n-1]
		remaining -= lf.Cap() - lf.Len()
		last = lf.Cap()
	}

	var plan []planned
	for count := n; remaining > 0; count++ {
		c, saturated, err := v.growth.next(count, last)
		if err != nil {
			return err
		}
		plan = append(plan, planned{capacity: c, saturated: saturated})
		remaining -= c
		last = c
	}

	if n > 0 {
		copied := v.fragments[n-1].pushSlice(s)
		v.len += copied
		s = s[copied:]
	}
	for _, p := range plan {
		copied := v.allocFragment(p.capacity, p.saturated).pushSlice(s)
		v.len += copied
		s = s[copied:]
	}
	return nil
}

// Get returns the element at global index i.
func (v *SplitVec[T]) Get(i int) (T, error) {
	f, inner, ok := v.FragmentAndInnerIndex(i)
	if !ok {
		var zero T
		return zero, &IndexOutOfBoundsError{Index: i, Len: v.len}
	}
	return v.fragments[f].data[inner], nil
}

// GetPtr returns a pointer to the element at global index i. The pointer stays
// valid across later pushes.
func (v *SplitVec[T]) GetPtr(i int) (*T, error) {
	f, inner, ok := v.FragmentAndInnerIndex(i)
	if !ok {
		return nil, &IndexOutOfBoundsError{Index: i, Len: v.len}
	}
	return &v.fragments[f].data[inner], nil
}

// Set replaces the element at global index i.
func (v *SplitVec[T]) Set(i int, value T) error {
	p, err := v.GetPtr(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// At returns a pointer to the element addressed by a (fragment, inner) pair,
// bypassing index resolution. Use it when the layout is known, e.g. i/c and i%c
// for linear growth with capacity c.
func (v *SplitVec[T]) At(fragment, inner int) (*T, error) {
	if fragment < 0 || fragment >= len(v.fragments) {
		return nil, &FragmentIndexError{Fragment: fragment, Inner: inner, FragmentCount: len(v.fragments)}
	}
	f := v.fragments[fragment]
	p := f.Ptr(inner)
	if p == nil {
		return nil, &FragmentIndexError{
			Fragment:      fragment,
			Inner:         inner,
			FragmentCount: len(v.fragments),
			FragmentLen:   f.Len(),
		}
	}
	return p, nil
}

// Pop removes and returns the last element. A fragment emptied by Pop is
// released unless it is the only fragment left.
func (v *SplitVec[T]) Pop() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	n := len(v.fragments)
	last := v.fragments[n-1]
	x, _ := last.Pop()
	v.len--
	if last.Len() == 0 && n > 1 {
		v.releaseFrom(n - 1)
	}
	return x, true
}

// Truncate shortens the container to n elements, releasing fragments that no
// longer hold any. It has no effect if n >= Len. Truncate panics if n is negative.
func (v *SplitVec[T]) Truncate(n int) {
	if n < 0 {
		panic(&IndexOutOfBoundsError{Index: n, Len: v.len})
	}
	if n >= v.len {
		return
	}
	f, inner, _ := v.FragmentAndInnerIndex(n)
	if inner == 0 && f > 0 {
		v.releaseFrom(f)
	} else {
		v.fragments[f].truncate(inner)
		v.releaseFrom(f + 1)
	}
	v.len = n
}

// Clear removes all elements. The first fragment is kept, empty, for reuse.
func (v *SplitVec[T]) Clear() {
	if len(v.fragments) == 0 {
		return
	}
	v.fragments[0].truncate(0)
	v.releaseFrom(1)
	v.len = 0
}

// releaseFrom drops fragments [from, len).
func (v *SplitVec[T]) releaseFrom(from int) {
	n := len(v.fragments)
	if from >= n {
		return
	}
	for k := n - 1; k >= from; k-- {
		f := v.fragments[k]
		v.fragments[k] = nil
		v.logger.LogFragmentReleased(k, f.Cap())
		v.metrics.RecordFragmentRelease(f.Cap())
	}
	v.fragments = v.fragments[:from]
	if !v.canonical {
		v.recomputeCanonical()
	}
}

// FragmentCount returns the number of fragments.
func (v *SplitVec[T]) FragmentCount() int { return len(v.fragments) }

// FragmentLengths returns the length of every fragment in order.
func (v *SplitVec[T]) FragmentLengths() []int {
	lens := make([]int, len(v.fragments))
	for k, f := range v.fragments {
		lens[k] = f.Len()
	}
	return lens
}

// FragmentCapacities returns the capacity of every fragment in order.
func (v *SplitVec[T]) FragmentCapacities() []int {
	caps := make([]int, len(v.fragments))
	for k, f := range v.fragments {
		caps[k] = f.Cap()
	}
	return caps
}

// Fragment returns the live elements of fragment f. Elements may be modified in
// place; appending to the result never writes into the fragment.
func (v *SplitVec[T]) Fragment(f int) ([]T, error) {
	if f < 0 || f >= len(v.fragments) {
		return nil, &FragmentIndexError{Fragment: f, FragmentCount: len(v.fragments)}
	}
	return v.fragments[f].Items(), nil
}

// All returns an iterator over index/value pairs in insertion order.
func (v *SplitVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for _, f := range v.fragments {
			for _, x := range f.data {
				if !yield(i, x) {
					return
				}
				i++
			}
		}
	}
}

// Values returns an iterator over the elements in insertion order.
func (v *SplitVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, f := range v.fragments {
			for _, x := range f.data {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// Pointers returns an iterator over index/pointer pairs in insertion order.
func (v *SplitVec[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		i := 0
		for _, f := range v.fragments {
			for k := range f.data {
				if !yield(i, &f.data[k]) {
					return
				}
				i++
			}
		}
	}
}

// Equal reports whether v holds exactly the elements of s in order.
func Equal[T comparable](v *SplitVec[T], s []T) bool {
	if v.len != len(s) {
		return false
	}
	for _, f := range v.fragments {
		n := f.Len()
		if !slices.Equal(f.data, s[:n]) {
			return false
		}
		s = s[n:]
	}
	return true
}
