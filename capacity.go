package bucketvec

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// epsilon is the tolerance used when comparing the growth rate against
// the special values 1 and 2.
const epsilon = 1e-10

func nearly(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// uniform reports whether all buckets share the starting capacity.
func (c GrowthConfig) uniform() bool {
	return nearly(c.GrowthRate, 1)
}

// maxTotal is the first float64 that no longer fits an int.
const maxTotal = float64(math.MaxInt) + 1

// TotalCapacity returns the summed capacity of buckets 0..i, excluding
// bucket i itself.
//
// With N the starting capacity and a the growth rate this is
//
//	i * N                          for a == 1
//	floor(N * (a^i - 1) / (a - 1)) otherwise
//
// Sums that do not fit an int saturate at math.MaxInt.
func (c GrowthConfig) TotalCapacity(i int) int {
	if i <= 0 {
		return 0
	}
	n := c.StartingCapacity
	if c.uniform() {
		if n > 0 && i > math.MaxInt/n {
			return math.MaxInt
		}
		return i * n
	}
	a := c.GrowthRate
	total := math.Floor(float64(n) * (math.Pow(a, float64(i)) - 1) / (a - 1))
	if !(total < maxTotal) {
		return math.MaxInt
	}
	return int(total)
}

// BucketCapacity returns the fixed capacity of bucket i. Once TotalCapacity
// has saturated, following buckets report 0.
func (c GrowthConfig) BucketCapacity(i int) int {
	if c.uniform() {
		return c.StartingCapacity
	}
	return c.TotalCapacity(i+1) - c.TotalCapacity(i)
}

// Locate maps the global index j to the bucket holding it and the offset
// inside that bucket.
//
// For a != 1 the bucket is the inverse of the geometric sum,
//
//	ceil(log_a(1 + (j+1)(a-1)/N)) - 1
//
// which is then settled against TotalCapacity so that Locate always
// agrees with the capacities BucketCapacity hands out. Indices at or past
// the saturated sum land in the last bucket below math.MaxInt.
func (c GrowthConfig) Locate(j int) (bucket, offset int) {
	n := c.StartingCapacity
	if c.uniform() {
		return j / n, j % n
	}
	a := c.GrowthRate
	x := 1 + (float64(j)+1)*(a-1)/float64(n)
	var l float64
	if nearly(a, 2) {
		l = math.Log2(x)
	} else {
		l = math.Log(x) / math.Log(a)
	}
	bucket = int(math.Ceil(l)) - 1
	if bucket < 0 {
		bucket = 0
	}
	// Rounding in Log and Floor may put the estimate one bucket off.
	for bucket > 0 {
		if start := c.TotalCapacity(bucket); start <= j && start < math.MaxInt {
			break
		}
		bucket--
	}
	for {
		next := c.TotalCapacity(bucket + 1)
		if next > j || next == math.MaxInt {
			break
		}
		bucket++
	}
	return bucket, j - c.TotalCapacity(bucket)
}

// Verify checks the capacity math of c against a brute-force simulation
// of the first buckets. It pushes one index at a time, records where
// every bucket really starts and compares that with TotalCapacity,
// BucketCapacity and Locate. At most one mismatch is reported per bucket.
func (c GrowthConfig) Verify(buckets int) error {
	if buckets < 0 {
		return fmt.Errorf("bucketvec: cannot verify %d buckets", buckets)
	}
	c = c.orDefault()
	if err := c.Validate(); err != nil {
		return err
	}
	var errs *multierror.Error
	start := 0
	for i := 0; i < buckets; i++ {
		if got := c.TotalCapacity(i); got != start {
			errs = multierror.Append(errs,
				fmt.Errorf("bucket %d: total capacity %d, simulated %d", i, got, start))
		}
		capacity := c.BucketCapacity(i)
		if capacity < 1 {
			errs = multierror.Append(errs, fmt.Errorf("bucket %d: capacity %d", i, capacity))
			break
		}
		for j := start; j < start+capacity; j++ {
			b, off := c.Locate(j)
			if b != i || off != j-start {
				errs = multierror.Append(errs,
					fmt.Errorf("index %d: located at (%d, %d), simulated (%d, %d)", j, b, off, i, j-start))
				break
			}
		}
		start += capacity
	}
	return errs.ErrorOrNil()
}
