package bucketvec

// NumBuckets returns the number of buckets currently allocated by v.
func (v *Vec[T]) NumBuckets() int {
	return len(v.buckets)
}

// Capacity returns the total capacity of all buckets in v.
func (v *Vec[T]) Capacity() int {
	sum := 0
	for i := range v.buckets {
		sum += v.buckets[i].capacity()
	}
	return sum
}

// Utilization returns the ratio of stored elements to total capacity (0.0 to 1.0).
// Returns 0.0 if v has no capacity.
func (v *Vec[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.len) / float64(capacity)
}

// BucketStats describes a single bucket.
type BucketStats struct {
	Start    int // Global index of the first slot
	Len      int // Elements stored
	Capacity int // Fixed capacity
}

// Layout returns one BucketStats per bucket, in order.
func (v *Vec[T]) Layout() []BucketStats {
	stats := make([]BucketStats, len(v.buckets))
	start := 0
	for i := range v.buckets {
		b := &v.buckets[i]
		stats[i] = BucketStats{Start: start, Len: b.len(), Capacity: b.capacity()}
		start += b.capacity()
	}
	return stats
}

// Metrics returns a snapshot of Vec statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	cfg := v.Config()
	return VecMetrics{
		Len:              v.len,
		Capacity:         v.Capacity(),
		NumBuckets:       v.NumBuckets(),
		StartingCapacity: cfg.StartingCapacity,
		GrowthRate:       cfg.GrowthRate,
		Utilization:      v.Utilization(),
	}
}

// VecMetrics contains statistical information about a Vec.
type VecMetrics struct {
	Len              int     // Elements stored
	Capacity         int     // Total capacity in elements
	NumBuckets       int     // Number of buckets
	StartingCapacity int     // Capacity of the first bucket
	GrowthRate       float64 // Growth rate between buckets
	Utilization      float64 // Ratio of stored elements to total capacity (0.0-1.0)
}
