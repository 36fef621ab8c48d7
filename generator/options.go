package generator

import (
	"fmt"
	"math/rand"
)

// Option customizes a generation run by mutating genConfig before any draw.
type Option func(*genConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithCostRange sets the inclusive per-unit cost range. Costs must be positive.
func WithCostRange(min, max int) Option {
	checkRange("WithCostRange", min, max, 1)
	return func(c *genConfig) {
		c.cost = intRange{min, max}
	}
}

// WithCapacityRange sets the inclusive arc capacity range.
// Without it capacities fall in [ANTS, 3·ANTS].
func WithCapacityRange(min, max int) Option {
	checkRange("WithCapacityRange", min, max, 1)
	return func(c *genConfig) {
		c.capacity = intRange{min, max}
	}
}

// WithDemandRange sets the inclusive per-commodity demand range.
func WithDemandRange(min, max int) Option {
	checkRange("WithDemandRange", min, max, 0)
	return func(c *genConfig) {
		c.demand = intRange{min, max}
	}
}

// checkRange panics unless floor ≤ min ≤ max.
func checkRange(name string, min, max, floor int) {
	if min < floor || max < min {
		panic(fmt.Sprintf("generator: %s(%d, %d): want %d ≤ min ≤ max", name, min, max, floor))
	}
}
