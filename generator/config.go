package generator

import "math/rand"

// Deterministic defaults.
const (
	defaultCostMin   = 1
	defaultCostMax   = 10
	defaultDemandMin = 10
	defaultDemandMax = 50

	// Capacity defaults scale with the colony size.
	capacityPerAntMin = 1
	capacityPerAntMax = 3
)

// intRange is an inclusive [lo, hi] interval; the zero value means "unset".
type intRange struct{ lo, hi int }

func (r intRange) unset() bool { return r == intRange{} }

// draw returns a uniform value in [lo, hi].
func (r intRange) draw(rng *rand.Rand) int {
	return r.lo + rng.Intn(r.hi-r.lo+1)
}

// genConfig aggregates all knobs of one Layered call.
type genConfig struct {
	rng      *rand.Rand // nil means "no randomness" and is rejected
	cost     intRange
	capacity intRange
	demand   intRange
}

// newGenConfig applies opts in order (last wins) and resolves defaults that
// depend on the colony size.
func newGenConfig(ants int, opts ...Option) genConfig {
	cfg := genConfig{
		cost:   intRange{defaultCostMin, defaultCostMax},
		demand: intRange{defaultDemandMin, defaultDemandMax},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity.unset() {
		cfg.capacity = intRange{capacityPerAntMin * ants, capacityPerAntMax * ants}
	}
	return cfg
}
