package bucketvec

import "iter"

// cursor walks a bucket sequence from both ends.
// head is the unvisited part of bucket front, tail the unvisited part of
// bucket back. remaining bounds the walk so the two ends never hand out
// the same element, even while sharing a bucket.
type cursor[T any] struct {
	buckets   []bucket[T]
	front     int
	back      int
	head      []T
	tail      []T
	remaining int
}

func newCursor[T any](buckets []bucket[T], n int) cursor[T] {
	c := cursor[T]{buckets: buckets, remaining: n}
	if n > 0 {
		c.back = len(buckets) - 1
		c.head = buckets[0].entries
		c.tail = buckets[c.back].entries
	}
	return c
}

func (c *cursor[T]) next() *T {
	if c.remaining == 0 {
		return nil
	}
	for len(c.head) == 0 {
		c.front++
		c.head = c.buckets[c.front].entries
	}
	p := &c.head[0]
	c.head = c.head[1:]
	c.remaining--
	return p
}

func (c *cursor[T]) nextBack() *T {
	if c.remaining == 0 {
		return nil
	}
	for len(c.tail) == 0 {
		c.back--
		c.tail = c.buckets[c.back].entries
	}
	p := &c.tail[len(c.tail)-1]
	c.tail = c.tail[:len(c.tail)-1]
	c.remaining--
	return p
}

// Iter yields copies of the elements of a Vec from either end.
// Elements pushed after the iterator was created are not visited.
type Iter[T any] struct {
	c cursor[T]
}

// Iter returns an iterator over the elements of v.
func (v *Vec[T]) Iter() *Iter[T] {
	return &Iter[T]{c: newCursor(v.buckets, v.len)}
}

// Next returns the next element from the front.
func (it *Iter[T]) Next() (T, bool) { return deref(it.c.next()) }

// NextBack returns the next element from the back.
func (it *Iter[T]) NextBack() (T, bool) { return deref(it.c.nextBack()) }

// Len returns the number of elements not yet yielded.
func (it *Iter[T]) Len() int { return it.c.remaining }

// IterMut yields pointers to the elements of a Vec from either end.
type IterMut[T any] struct {
	c cursor[T]
}

// IterMut returns an iterator over pointers to the elements of v.
func (v *Vec[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{c: newCursor(v.buckets, v.len)}
}

// Next returns a pointer to the next element from the front, or nil.
func (it *IterMut[T]) Next() *T { return it.c.next() }

// NextBack returns a pointer to the next element from the back, or nil.
func (it *IterMut[T]) NextBack() *T { return it.c.nextBack() }

// Len returns the number of elements not yet yielded.
func (it *IterMut[T]) Len() int { return it.c.remaining }

// Drain owns the elements taken out of a Vec and yields them by value.
type Drain[T any] struct {
	c cursor[T]
}

// Drain moves all elements out of v into the returned iterator.
// v is left empty and keeps its configuration.
func (v *Vec[T]) Drain() *Drain[T] {
	d := &Drain[T]{c: newCursor(v.buckets, v.len)}
	*v = Vec[T]{cfg: v.cfg}
	return d
}

// Next removes and returns the next element from the front.
func (d *Drain[T]) Next() (T, bool) { return take(d.c.next()) }

// NextBack removes and returns the next element from the back.
func (d *Drain[T]) NextBack() (T, bool) { return take(d.c.nextBack()) }

// Len returns the number of elements left in the drain.
func (d *Drain[T]) Len() int { return d.c.remaining }

// take clears the drained slot so the collector can reclaim what it referenced.
func take[T any](p *T) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	v := *p
	*p = zero
	return v, true
}

// All returns an iterator over index-value pairs of v, in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c := newCursor(v.buckets, v.len)
		for i := 0; ; i++ {
			p := c.next()
			if p == nil || !yield(i, *p) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of v, in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := newCursor(v.buckets, v.len)
		for p := c.next(); p != nil; p = c.next() {
			if !yield(*p) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs of v, last to first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c := newCursor(v.buckets, v.len)
		for i := c.remaining - 1; ; i-- {
			p := c.nextBack()
			if p == nil || !yield(i, *p) {
				return
			}
		}
	}
}

// Pointers returns an iterator over index-pointer pairs of v, in order.
func (v *Vec[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		c := newCursor(v.buckets, v.len)
		for i := 0; ; i++ {
			p := c.next()
			if p == nil || !yield(i, p) {
				return
			}
		}
	}
}
