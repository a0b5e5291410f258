package bucketvec

import (
	"cmp"
	"hash/maphash"
)

// Equal reports whether a and b hold the same elements in the same order.
// Growth configuration and bucket layout do not matter.
func Equal[T comparable](a, b *Vec[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T1, T2 any](a *Vec[T1], b *Vec[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ca, cb := newCursor(a.buckets, a.len), newCursor(b.buckets, b.len)
	for x := ca.next(); x != nil; x = ca.next() {
		if !eq(*x, *cb.next()) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically, like slices.Compare.
func Compare[T cmp.Ordered](a, b *Vec[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but compares elements with cmp.
func CompareFunc[T1, T2 any](a *Vec[T1], b *Vec[T2], cmp func(T1, T2) int) int {
	ca, cb := newCursor(a.buckets, a.len), newCursor(b.buckets, b.len)
	for {
		x, y := ca.next(), cb.next()
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return -1
		case y == nil:
			return +1
		}
		if c := cmp(*x, *y); c != 0 {
			return c
		}
	}
}

// Hash writes the length of v followed by its elements to h.
// Vecs that are Equal produce the same hash for the same seed.
func Hash[T comparable](h *maphash.Hash, v *Vec[T]) {
	maphash.WriteComparable(h, v.len)
	for _, b := range v.buckets {
		for _, e := range b.entries {
			maphash.WriteComparable(h, e)
		}
	}
}
