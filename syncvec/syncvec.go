// Package syncvec provides a SplitVec guarded by a read-write lock.
//
// Reads take the shared lock and mutations the exclusive lock. Because elements
// never move, a pointer returned by PushPtr or GetPtr stays valid after the lock
// is released; synchronizing access through that pointer is up to the caller.
package syncvec

import (
	"slices"
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/hupe1980/splitvec"
)

// Vec is a SplitVec safe for concurrent use.
type Vec[T any] struct {
	mu sync.RWMutex
	_  cpu.CacheLinePad // keep the lock word off neighbouring cache lines
	v  *splitvec.SplitVec[T]
}

// New creates an empty Vec.
func New[T any](opts ...splitvec.Option) *Vec[T] {
	return &Vec[T]{v: splitvec.New[T](opts...)}
}

// Wrap takes ownership of v. The caller must not use v directly afterwards.
func Wrap[T any](v *splitvec.SplitVec[T]) *Vec[T] {
	return &Vec[T]{v: v}
}

// Len returns the number of elements.
func (s *Vec[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Len()
}

// Get returns the element at index i.
func (s *Vec[T]) Get(i int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Get(i)
}

// GetPtr returns a pointer to the element at index i.
func (s *Vec[T]) GetPtr(i int) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetPtr(i)
}

// Set replaces the element at index i.
func (s *Vec[T]) Set(i int, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Set(i, value)
}

// Push appends value and returns its index.
func (s *Vec[T]) Push(value T) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.v.TryPush(value); err != nil {
		return 0, err
	}
	return s.v.Len() - 1, nil
}

// PushPtr appends value and returns a pointer to the stored element.
func (s *Vec[T]) PushPtr(value T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.v.TryPush(value); err != nil {
		return nil, err
	}
	return s.v.GetPtr(s.v.Len() - 1)
}

// ExtendFromSlice appends all elements of values atomically.
func (s *Vec[T]) ExtendFromSlice(values []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.TryExtendFromSlice(values)
}

// Pop removes and returns the last element.
func (s *Vec[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Pop()
}

// FragmentLengths returns the length of every fragment.
func (s *Vec[T]) FragmentLengths() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.FragmentLengths()
}

// Snapshot copies the current elements into a new slice. The Vec is unchanged.
func (s *Vec[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.AppendSeq(make([]T, 0, s.v.Len()), s.v.Values())
}

// IntoSlice converts the contents into one contiguous slice and empties the Vec.
func (s *Vec[T]) IntoSlice() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.IntoSlice()
}

// View runs fn with shared access. fn must not mutate v or retain it.
func (s *Vec[T]) View(fn func(v *splitvec.SplitVec[T])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.v)
}

// Update runs fn with exclusive access and returns its error.
func (s *Vec[T]) Update(fn func(v *splitvec.SplitVec[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.v)
}
