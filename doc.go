// Package bucketvec implements a growable sequence with stable element addresses.
//
// # Overview
//
// A Vec stores its elements in a list of fixed-capacity buckets. A bucket
// is allocated once, with its final capacity, and is never resized. Pushing
// either fills the last bucket or opens a new one, so a pointer obtained
// from Ptr, PushAccess, Alloc or IterMut keeps pointing at the same element
// for the lifetime of the Vec. This is useful for:
//
//   - Replacing []*T where every element is allocated separately
//   - Graphs and intrusive structures that keep pointers into a pool
//   - Interning tables that hand out long-lived references
//
// No unsafe code is involved: stability comes from the layout alone.
//
// # Basic Usage
//
//	v := bucketvec.New[Node](bucketvec.GrowthConfig{}) // DefaultConfig
//
//	// Push and keep a pointer
//	a := v.PushAccess(Node{Name: "root"})
//	root := a.Ptr()
//
//	// Pushing more never moves root
//	for i := 0; i < 1000; i++ {
//		v.Push(Node{Parent: root})
//	}
//
//	// Random access
//	n, ok := v.Get(42)
//
// # Growth
//
// Bucket capacities follow a GrowthConfig with a starting capacity N and a
// growth rate a. Bucket i holds about N*a^i elements; exactly
//
//	floor(N*(a^(i+1)-1)/(a-1)) - floor(N*(a^i-1)/(a-1))
//
// With a == 1 every bucket holds N elements. The global index j is mapped
// to its bucket in O(1) with a closed-form logarithm. DefaultConfig is
// N = 4, a = 2.
//
// With N = 1 and a = 2, pushing A..K gives
//
//	[ [A], [B, C], [D, E, F, G], [H, I, J, K, _, _, _, _] ]
//
// and the 16th push opens a bucket of capacity 16.
//
// # Iteration
//
// Iter, IterMut and Drain walk the buckets from both ends. Next and
// NextBack may be interleaved freely; the two ends meet in the middle and
// never yield an element twice. All, Values, Backward and Pointers return
// range-over-func iterators.
//
// # Encoding
//
// Encode writes a compact element count followed by every element;
// Decode rebuilds the buckets from its own GrowthConfig. *Vec also
// implements cbor.Marshaler and cbor.Unmarshaler as a flat array.
//
// # Thread Safety
//
// Vec is not goroutine-safe. Wrap it in your own lock when sharing it.
// A pointer handed out by the Vec must not be written while another
// goroutine reads the Vec.
package bucketvec
