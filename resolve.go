package splitvec

import "math/bits"

// FragmentAndInnerIndex translates global index i into the fragment holding it
// and the position inside that fragment. ok is false if i is out of range.
//
// An index on a fragment boundary belongs to the following fragment at inner 0.
// The pair is only valid until the next mutation that changes fragment boundaries.
func (v *SplitVec[T]) FragmentAndInnerIndex(i int) (fragment, inner int, ok bool) {
	if i < 0 || i >= v.len {
		return 0, 0, false
	}
	if v.canonical {
		fragment, inner = v.resolveClosedForm(i)
		return fragment, inner, true
	}
	return v.resolveScan(i)
}

// resolveClosedForm computes coordinates directly from the first fragment
// capacity. It requires a canonical linear or doubling layout and 0 <= i < len.
//
// Doubling with first capacity c places fragment f at c*(2^f - 1), so f is the
// position of the highest set bit of i/c + 1.
func (v *SplitVec[T]) resolveClosedForm(i int) (int, int) {
	c := v.fragments[0].Cap()
	if v.growth.kind == KindLinear {
		return i / c, i % c
	}
	f := bits.Len(uint(i/c+1)) - 1
	return f, i - c*(1<<f-1)
}

// resolveScan walks cumulative fragment lengths until it passes i.
func (v *SplitVec[T]) resolveScan(i int) (int, int, bool) {
	if i < 0 || i >= v.len {
		return 0, 0, false
	}
	for f, frag := range v.fragments {
		n := frag.Len()
		if i < n {
			return f, i, true
		}
		i -= n
	}
	return 0, 0, false
}

// fitsClosedForm reports whether a fragment of the given capacity at position k,
// following a fragment of capacity prev, keeps the layout canonical.
func (v *SplitVec[T]) fitsClosedForm(k, prev, capacity int) bool {
	if !v.growth.closedForm() {
		return false
	}
	switch v.growth.kind {
	case KindLinear:
		return capacity == v.growth.capacity
	default:
		if k == 0 {
			return capacity > 0
		}
		// A saturated capacity is odd and can never equal a doubled one.
		return prev <= MaxFragmentCapacity/2 && capacity == 2*prev
	}
}

func (v *SplitVec[T]) recomputeCanonical() {
	v.canonical = true
	prev := 0
	for k, f := range v.fragments {
		if !v.fitsClosedForm(k, prev, f.Cap()) {
			v.canonical = false
			return
		}
		prev = f.Cap()
	}
}
