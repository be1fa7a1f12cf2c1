// Package splitvec provides a growable sequence that never moves its elements.
//
// A SplitVec stores elements in fragments. Each fragment is allocated once with a
// fixed capacity and is never reallocated, so a pointer to an element stays valid
// while the container grows. This makes SplitVec suitable for arenas,
// self-referential structures and caches that hand out long-lived references.
//
// # Growth Strategies
//
//	v, _ := splitvec.NewLinear[Node](1024)             // every fragment holds 1024
//	v, _ := splitvec.NewDoubling[Node](4)              // 4, 8, 16, ...
//	v, _ := splitvec.NewExponential[Node](4, 1.5)      // 4, 6, 9, 14, ...
//	v, _ := splitvec.NewCustom[Node](func(k int) int { // caller decides
//	    return 64 << min(k, 10)
//	})
//
// Linear and doubling layouts resolve an index in constant time. Exponential and
// custom layouts walk the fragment lengths.
//
// # Pinned Access
//
//	v.Push(node)
//	p, _ := v.GetPtr(0)   // stays valid across later pushes
//	q, _ := v.At(f, i)    // direct (fragment, inner) addressing
//
// # Conversion
//
//	v := splitvec.FromSlice(buf)   // buf becomes fragment 0, no copy
//	out := v.IntoSlice()           // one copy, pinning is abandoned
//
// # Concurrency
//
// SplitVec is not safe for concurrent use. Package syncvec wraps it with a
// read-write lock, and package parallel fans read-only work out over fragments.
package splitvec
