package splitvec

import "time"

// FromSlice adopts buf as the first fragment without copying. The fragment
// capacity is cap(buf) and its length is len(buf); the growth strategy only
// sizes fragments allocated afterwards.
//
// The caller must not use buf after the call.
func FromSlice[T any](buf []T, opts ...Option) *SplitVec[T] {
	v := New[T](opts...)
	v.fragments = append(v.fragments, adoptFragment(buf))
	v.len = len(buf)
	v.canonical = v.fitsClosedForm(0, 0, cap(buf))

	v.logger.LogFragmentAllocated(0, cap(buf), v.len)
	v.metrics.RecordFragmentAlloc(cap(buf))
	return v
}

// IntoSlice copies all elements into one newly allocated contiguous slice and
// releases every fragment.
//
// This abandons pinning: pointers obtained before the call refer to released
// fragments, not to the returned slice. The container is left empty and can be
// reused with the same growth strategy.
func (v *SplitVec[T]) IntoSlice() []T {
	start := time.Now()
	fragments := len(v.fragments)

	out := make([]T, 0, v.len)
	for k, f := range v.fragments {
		out = append(out, f.data...)
		v.fragments[k] = nil
		v.logger.LogFragmentReleased(k, f.Cap())
		v.metrics.RecordFragmentRelease(f.Cap())
	}
	v.fragments = nil
	v.len = 0
	v.canonical = true

	elapsed := time.Since(start)
	v.logger.LogConversion(len(out), fragments, elapsed)
	v.metrics.RecordConversion(len(out), elapsed)
	return out
}
