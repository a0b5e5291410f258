package bucketvec

import (
	"fmt"
	"iter"
)

// Vec is an append-only sequence stored in fixed-capacity buckets.
// Not goroutine-safe; callers sharing a Vec must synchronise access.
//
// The zero value is an empty Vec using DefaultConfig.
type Vec[T any] struct {
	cfg     GrowthConfig
	buckets []bucket[T]
	len     int
}

// New creates an empty Vec with the given growth configuration.
// The zero GrowthConfig selects DefaultConfig. New panics if cfg is invalid.
// No element storage is allocated until the first push.
func New[T any](cfg GrowthConfig) *Vec[T] {
	cfg = cfg.orDefault()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &Vec[T]{cfg: cfg}
}

// FromSlice creates a Vec holding a copy of values, in order.
func FromSlice[T any](cfg GrowthConfig, values []T) *Vec[T] {
	v := New[T](cfg)
	v.Extend(values...)
	return v
}

// Collect creates a Vec from the values yielded by seq, in order.
func Collect[T any](cfg GrowthConfig, seq iter.Seq[T]) *Vec[T] {
	v := New[T](cfg)
	v.ExtendSeq(seq)
	return v
}

// Config returns the growth configuration of v.
func (v *Vec[T]) Config() GrowthConfig {
	return v.cfg.orDefault()
}

// Len returns the number of elements stored in v.
func (v *Vec[T]) Len() int {
	return v.len
}

// IsEmpty reports whether v holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.len == 0
}

// Push appends value to v.
//
// Push never moves, reallocates or otherwise invalidates elements already
// stored: it either fills the last bucket or opens a new one.
func (v *Vec[T]) Push(value T) {
	v.push(value)
}

// push appends value and returns a pointer to the stored element.
func (v *Vec[T]) push(value T) *T {
	// Fast path: room left in the last bucket
	if k := len(v.buckets); k > 0 && !v.buckets[k-1].full() {
		p := v.buckets[k-1].push(value)
		v.len++
		return p
	}
	return v.pushBucket(value)
}

// pushBucket opens a new bucket holding value as its first element.
func (v *Vec[T]) pushBucket(value T) *T {
	v.cfg = v.cfg.orDefault()
	i := len(v.buckets)
	capacity := v.cfg.BucketCapacity(i)
	if capacity < 1 {
		panic(fmt.Sprintf("bucketvec: bucket %d computed capacity %d (%s)", i, capacity, v.cfg))
	}
	v.buckets = append(v.buckets, newBucket[T](capacity))
	p := v.buckets[i].push(value)
	v.len++
	return p
}

// Extend appends values in order.
func (v *Vec[T]) Extend(values ...T) {
	for _, value := range values {
		v.push(value)
	}
}

// ExtendSeq appends every value yielded by seq, in order.
func (v *Vec[T]) ExtendSeq(seq iter.Seq[T]) {
	for value := range seq {
		v.push(value)
	}
}

// Ptr returns a pointer to the element at index i, or nil if i is out of
// range. The pointer stays valid across later pushes.
func (v *Vec[T]) Ptr(i int) *T {
	if i < 0 || i >= v.len {
		return nil
	}
	b, off := v.cfg.orDefault().Locate(i)
	return v.buckets[b].at(off)
}

// Get returns the element at index i. The boolean is false if i is out of
// range.
func (v *Vec[T]) Get(i int) (T, bool) {
	if p := v.Ptr(i); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// FirstPtr returns a pointer to the first element, or nil if v is empty.
func (v *Vec[T]) FirstPtr() *T {
	if v.len == 0 {
		return nil
	}
	return v.buckets[0].at(0)
}

// LastPtr returns a pointer to the last element, or nil if v is empty.
func (v *Vec[T]) LastPtr() *T {
	if v.len == 0 {
		return nil
	}
	last := &v.buckets[len(v.buckets)-1]
	return last.at(last.len() - 1)
}

// First returns the first element, if any.
func (v *Vec[T]) First() (T, bool) {
	return deref(v.FirstPtr())
}

// Last returns the last element, if any.
func (v *Vec[T]) Last() (T, bool) {
	return deref(v.LastPtr())
}

// Slice copies the elements of v into a new slice.
func (v *Vec[T]) Slice() []T {
	out := make([]T, 0, v.len)
	for _, b := range v.buckets {
		out = append(out, b.entries...)
	}
	return out
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
