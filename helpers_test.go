package bucketvec

import (
	"testing"

	"github.com/brianvoe/gofakeit"
)

// testConfigs covers the uniform, doubling, integer, fractional and
// irrational growth rates.
var testConfigs = []struct {
	name string
	cfg  GrowthConfig
}{
	{"default", DefaultConfig()},
	{"doubling", GrowthConfig{StartingCapacity: 1, GrowthRate: 2}},
	{"tripling", GrowthConfig{StartingCapacity: 1, GrowthRate: 3}},
	{"equal size", GrowthConfig{StartingCapacity: 4, GrowthRate: 1}},
	{"wasteful", GrowthConfig{StartingCapacity: 1, GrowthRate: 1}},
	{"c3g1.5", GrowthConfig{StartingCapacity: 3, GrowthRate: 1.5}},
	{"crazy pi", GrowthConfig{StartingCapacity: 3, GrowthRate: 3.14159265}},
}

func smallTestValues() []int32 {
	return []int32{5, 42, 1337, -1, 0, 7, 66, 12, 1, 2, 3, 1}
}

func bigTestValues() []int32 {
	gofakeit.Seed(1337)
	values := make([]int32, 10_000)
	for i := range values {
		values[i] = int32(gofakeit.Number(-1_000_000, 1_000_000))
	}
	return values
}

// forEachConfig runs fn for every test config with both the small and the
// big value sets.
func forEachConfig(t *testing.T, fn func(t *testing.T, cfg GrowthConfig, values []int32)) {
	t.Helper()
	sets := []struct {
		name   string
		values func() []int32
	}{
		{"small", smallTestValues},
		{"big", bigTestValues},
	}
	for _, tc := range testConfigs {
		for _, set := range sets {
			t.Run(tc.name+"/"+set.name, func(t *testing.T) {
				fn(t, tc.cfg, set.values())
			})
		}
	}
}
