package bucketvec

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalCapacity(t *testing.T) {
	tests := []struct {
		name string
		cfg  GrowthConfig
		want []int
	}{
		{"doubling from 1", GrowthConfig{1, 2}, []int{0, 1, 3, 7, 15, 31, 63}},
		{"doubling from 4", GrowthConfig{4, 2}, []int{0, 4, 12, 28, 60}},
		{"uniform", GrowthConfig{4, 1}, []int{0, 4, 8, 12, 16}},
		{"tripling", GrowthConfig{1, 3}, []int{0, 1, 4, 13, 40, 121}},
		{"one and a half", GrowthConfig{3, 1.5}, []int{0, 3, 7, 14, 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.want {
				assert.Equal(t, want, tt.cfg.TotalCapacity(i), "TotalCapacity(%d)", i)
			}
		})
	}
}

func TestBucketCapacity(t *testing.T) {
	tests := []struct {
		name string
		cfg  GrowthConfig
		want []int
	}{
		{"doubling from 1", GrowthConfig{1, 2}, []int{1, 2, 4, 8, 16, 32}},
		{"default", DefaultConfig(), []int{4, 8, 16, 32}},
		{"uniform", GrowthConfig{5, 1}, []int{5, 5, 5, 5}},
		{"one and a half", GrowthConfig{3, 1.5}, []int{3, 4, 7, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.want {
				assert.Equal(t, want, tt.cfg.BucketCapacity(i), "BucketCapacity(%d)", i)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	cfg := GrowthConfig{StartingCapacity: 1, GrowthRate: 2}
	tests := []struct {
		index, bucket, offset int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 1, 1},
		{3, 2, 0},
		{6, 2, 3},
		{7, 3, 0},
		{14, 3, 7},
		{15, 4, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("index %d", tt.index), func(t *testing.T) {
			b, off := cfg.Locate(tt.index)
			assert.Equal(t, tt.bucket, b, "bucket")
			assert.Equal(t, tt.offset, off, "offset")
		})
	}
}

func TestLocateUniform(t *testing.T) {
	cfg := GrowthConfig{StartingCapacity: 4, GrowthRate: 1}
	for j := 0; j < 100; j++ {
		b, off := cfg.Locate(j)
		assert.Equal(t, j/4, b)
		assert.Equal(t, j%4, off)
	}
}

// TestCapacityConsistency compares the closed forms with a prefix sum
// built from BucketCapacity one bucket at a time.
func TestCapacityConsistency(t *testing.T) {
	configs := append([]struct {
		name string
		cfg  GrowthConfig
	}{
		{"near one", GrowthConfig{StartingCapacity: 2, GrowthRate: 1.1}},
		{"almost two", GrowthConfig{StartingCapacity: 5, GrowthRate: 2.0000000000001}},
		{"e", GrowthConfig{StartingCapacity: 7, GrowthRate: 2.718281828}},
	}, testConfigs...)

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			const bound = 9
			sum := 0
			for i := 0; i <= bound; i++ {
				require.Equal(t, sum, tc.cfg.TotalCapacity(i), "TotalCapacity(%d)", i)
				for j := 0; j < sum; j++ {
					b, _ := tc.cfg.Locate(j)
					require.Less(t, b, i, "Locate(%d)", j)
				}
				sum += tc.cfg.BucketCapacity(i)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	for _, tc := range testConfigs {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.cfg.Verify(10))
		})
	}
	t.Run("growth rate 1.01", func(t *testing.T) {
		require.NoError(t, GrowthConfig{StartingCapacity: 1, GrowthRate: 1.01}.Verify(200))
	})
	t.Run("zero config", func(t *testing.T) {
		require.NoError(t, GrowthConfig{}.Verify(8))
	})
	t.Run("invalid config", func(t *testing.T) {
		err := GrowthConfig{StartingCapacity: -1, GrowthRate: 2}.Verify(8)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
	t.Run("negative bucket count", func(t *testing.T) {
		require.Error(t, DefaultConfig().Verify(-5))
	})
}

func TestTotalCapacitySaturates(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1<<62, cfg.TotalCapacity(60))
	for _, i := range []int{61, 62, 64, 70, 1000, math.MaxInt} {
		assert.Equal(t, math.MaxInt, cfg.TotalCapacity(i), "TotalCapacity(%d)", i)
	}
	assert.Equal(t, 0, cfg.BucketCapacity(62))

	uniform := GrowthConfig{StartingCapacity: 1 << 40, GrowthRate: 1}
	assert.Equal(t, 1<<62, uniform.TotalCapacity(1<<22))
	assert.Equal(t, math.MaxInt, uniform.TotalCapacity(1<<23))
	assert.Equal(t, math.MaxInt, uniform.TotalCapacity(1<<30))

	for _, tc := range testConfigs {
		t.Run(tc.name, func(t *testing.T) {
			prev := 0
			for i := 0; i < 200; i++ {
				total := tc.cfg.TotalCapacity(i)
				require.GreaterOrEqual(t, total, prev, "TotalCapacity(%d)", i)
				require.GreaterOrEqual(t, tc.cfg.BucketCapacity(i), 0, "BucketCapacity(%d)", i)
				prev = total
			}
		})
	}
}

func TestLocateLargeIndices(t *testing.T) {
	cfg := DefaultConfig()
	b, off := cfg.Locate(4_000_000_000_000_000_000)
	assert.Equal(t, 59, b)
	assert.Equal(t, 4_000_000_000_000_000_000-cfg.TotalCapacity(59), off)

	b, off = cfg.Locate(5_000_000_000_000_000_000)
	assert.Equal(t, 60, b)
	assert.Equal(t, 5_000_000_000_000_000_000-1<<62, off)

	b, off = cfg.Locate(math.MaxInt)
	assert.Equal(t, 60, b)
	assert.Equal(t, math.MaxInt-1<<62, off)

	for _, tc := range testConfigs {
		if tc.cfg.uniform() {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			for _, j := range []int{math.MaxInt / 3, math.MaxInt / 2, math.MaxInt - 1, math.MaxInt} {
				b, off := tc.cfg.Locate(j)
				start := tc.cfg.TotalCapacity(b)
				require.Less(t, start, math.MaxInt, "Locate(%d)", j)
				require.LessOrEqual(t, start, j, "Locate(%d)", j)
				require.Equal(t, j-start, off, "Locate(%d)", j)
				if next := tc.cfg.TotalCapacity(b + 1); next < math.MaxInt {
					require.Greater(t, next, j, "Locate(%d)", j)
				}
			}
		})
	}
}

// TestLocateMatchesPushes simulates pushes and records where every index
// really lands.
func TestLocateMatchesPushes(t *testing.T) {
	for _, tc := range testConfigs {
		t.Run(tc.name, func(t *testing.T) {
			v := New[int](tc.cfg)
			for j := 0; j < 5000; j++ {
				v.Push(j)
			}
			start := 0
			for b, stats := range v.Layout() {
				require.Equal(t, tc.cfg.BucketCapacity(b), stats.Capacity)
				require.Equal(t, tc.cfg.TotalCapacity(b), start)
				for off := 0; off < stats.Len; off++ {
					gb, goff := tc.cfg.Locate(start + off)
					require.Equal(t, b, gb)
					require.Equal(t, off, goff)
				}
				start += stats.Capacity
			}
		})
	}
}
