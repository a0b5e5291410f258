package bucketvec

// bucket is a fixed-capacity chunk of elements.
// Its backing array is allocated once by newBucket and never grows, so
// pointers into entries stay valid for the lifetime of the bucket.
type bucket[T any] struct {
	entries []T
}

// newBucket allocates storage for exactly capacity elements.
func newBucket[T any](capacity int) bucket[T] {
	return bucket[T]{entries: make([]T, 0, capacity)}
}

func (b *bucket[T]) len() int { return len(b.entries) }

func (b *bucket[T]) capacity() int { return cap(b.entries) }

func (b *bucket[T]) full() bool { return len(b.entries) == cap(b.entries) }

// push stores value in the next free slot and returns a pointer to it.
// The owning Vec checks for room first, so a full bucket here means the
// capacity bookkeeping is broken.
func (b *bucket[T]) push(value T) *T {
	if b.full() {
		panic("bucketvec: bucket is already filled to capacity")
	}
	b.entries = append(b.entries, value)
	return &b.entries[len(b.entries)-1]
}

// at returns a pointer to the element at offset, or nil if offset is not
// below the current length.
func (b *bucket[T]) at(offset int) *T {
	if offset < 0 || offset >= len(b.entries) {
		return nil
	}
	return &b.entries[offset]
}
