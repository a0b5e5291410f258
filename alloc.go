package bucketvec

// Access pairs a freshly pushed element with its global index.
// It saves a second lookup after PushAccess.
type Access[T any] struct {
	index int
	ptr   *T
}

// Index returns the global index of the pushed element.
func (a Access[T]) Index() int {
	return a.index
}

// Value returns a copy of the pushed element.
func (a Access[T]) Value() T {
	return *a.ptr
}

// Ptr returns a pointer to the pushed element inside the Vec.
func (a Access[T]) Ptr() *T {
	return a.ptr
}

// PushAccess appends value and returns access to the stored element.
// The index is the length of v before the push.
func (v *Vec[T]) PushAccess(value T) Access[T] {
	index := v.len
	return Access[T]{index: index, ptr: v.push(value)}
}

// Alloc appends a zero T and returns a pointer to it.
// The pointer is valid as long as v is reachable.
func (v *Vec[T]) Alloc() *T {
	var zero T
	return v.push(zero)
}

// AllocN appends n zero values and returns pointers to them, in order.
// Returns nil if n <= 0.
func (v *Vec[T]) AllocN(n int) []*T {
	if n <= 0 {
		return nil
	}
	ptrs := make([]*T, n)
	for i := range ptrs {
		ptrs[i] = v.Alloc()
	}
	return ptrs
}
