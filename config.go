package bucketvec

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

const (
	// DefaultStartingCapacity is the capacity of the first bucket.
	DefaultStartingCapacity = 4
	// DefaultGrowthRate doubles the capacity of every following bucket.
	DefaultGrowthRate = 2.0
)

// ErrInvalidConfig is wrapped by every error returned from GrowthConfig.Validate.
var ErrInvalidConfig = errors.New("bucketvec: invalid growth config")

// GrowthConfig controls how bucket capacities evolve.
//
// The capacity of bucket i is roughly StartingCapacity * GrowthRate^i.
// A GrowthRate of 1 makes all buckets equally sized. The zero value
// stands for DefaultConfig.
type GrowthConfig struct {
	// StartingCapacity is the capacity of the first bucket. Must be >= 1.
	StartingCapacity int `yaml:"starting_capacity"`
	// GrowthRate is the factor between consecutive bucket capacities. Must be >= 1.
	GrowthRate float64 `yaml:"growth_rate"`
}

// DefaultConfig returns the configuration used by the zero Vec.
func DefaultConfig() GrowthConfig {
	return GrowthConfig{
		StartingCapacity: DefaultStartingCapacity,
		GrowthRate:       DefaultGrowthRate,
	}
}

// IsZero reports whether c is the zero GrowthConfig.
func (c GrowthConfig) IsZero() bool {
	return c == GrowthConfig{}
}

// orDefault maps the zero config to DefaultConfig.
func (c GrowthConfig) orDefault() GrowthConfig {
	if c.IsZero() {
		return DefaultConfig()
	}
	return c
}

// Validate reports all problems with c at once.
func (c GrowthConfig) Validate() error {
	var errs *multierror.Error
	if c.StartingCapacity < 1 {
		errs = multierror.Append(errs,
			fmt.Errorf("%w: starting capacity %d is below 1", ErrInvalidConfig, c.StartingCapacity))
	}
	switch {
	case math.IsNaN(c.GrowthRate) || math.IsInf(c.GrowthRate, 0):
		errs = multierror.Append(errs,
			fmt.Errorf("%w: growth rate %v is not finite", ErrInvalidConfig, c.GrowthRate))
	case c.GrowthRate < 1 && !nearly(c.GrowthRate, 1):
		errs = multierror.Append(errs,
			fmt.Errorf("%w: growth rate %v is below 1", ErrInvalidConfig, c.GrowthRate))
	}
	return errs.ErrorOrNil()
}

// String renders c as "start=N rate=R".
func (c GrowthConfig) String() string {
	return fmt.Sprintf("start=%d rate=%g", c.StartingCapacity, c.GrowthRate)
}
