package aco

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Params are the model constants of a run.
type Params struct {
	// Ants is the colony size (≥ 1).
	Ants int

	// Degradation is the evaporation percentage per epoch, in [0, 100].
	Degradation int

	// PheromoneConstant is the deposit numerator (> 0).
	PheromoneConstant float64

	// PheromoneMin is the lower bound and the initial level (> 0).
	PheromoneMin float64

	// PheromoneMax is the upper bound (≥ PheromoneMin).
	PheromoneMax float64
}

// validate checks Params domains.
func (p Params) validate() error {
	switch {
	case p.Ants < 1:
		return fmt.Errorf("%w: ants=%d < 1", ErrBadParams, p.Ants)
	case p.Degradation < 0 || p.Degradation > 100:
		return fmt.Errorf("%w: degradation=%d not in [0,100]", ErrBadParams, p.Degradation)
	case p.PheromoneConstant <= 0:
		return fmt.Errorf("%w: pheromone constant=%g ≤ 0", ErrBadParams, p.PheromoneConstant)
	case p.PheromoneMin <= 0:
		return fmt.Errorf("%w: pheromone min=%g ≤ 0", ErrBadParams, p.PheromoneMin)
	case p.PheromoneMin > p.PheromoneMax:
		return fmt.Errorf("%w: pheromone min=%g > max=%g", ErrBadParams, p.PheromoneMin, p.PheromoneMax)
	}
	return nil
}

// Policy decides what happens to an ant that cannot route.
type Policy int

const (
	// AbortEpoch returns the *InfeasibleRoutingError from AdvanceEpoch and
	// invalidates the simulation.
	AbortEpoch Policy = iota

	// StallAnt returns the ant to the idle pool for the rest of the epoch.
	// It pays nothing, deposits nothing and does not grow its package.
	StallAnt
)

// String renders the policy name.
func (p Policy) String() string {
	switch p {
	case AbortEpoch:
		return "abort"
	case StallAnt:
		return "stall"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Options configures a Simulation run.
//   - Seed: random stream seed; 0 selects the default seed.
//   - Rand: overrides Seed when non-nil (tests inject fixed draws).
//   - OnInfeasible: AbortEpoch (default) or StallAnt.
//   - CheckInvariants: verify conservation and table bounds after every move.
//   - Logger: receives epoch summaries (VERBOSE), stalls (DEBUG), decisions (TRACE).
//   - Observer: notified of committed epochs and stalls.
type Options struct {
	Seed            int64
	Rand            Source
	OnInfeasible    Policy
	CheckInvariants bool
	Logger          logr.Logger
	Observer        Observer
}

// DefaultOptions returns options with the default seed, the abort policy,
// a discarding logger and no observer.
func DefaultOptions() Options {
	return Options{
		Seed:         0,
		OnInfeasible: AbortEpoch,
		Logger:       logr.Discard(),
		Observer:     NopObserver{},
	}
}

// normalize fills zero-valued hooks with no-ops.
func (o *Options) normalize() {
	if o.Logger.GetSink() == nil {
		o.Logger = logr.Discard()
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	if o.Rand == nil {
		o.Rand = rngFromSeed(o.Seed)
	}
}
