package generator

import "errors"

// ErrNeedRandSource indicates that Layered was called without WithSeed or
// WithRand. Every dataset draws costs and capacities, so an RNG is always
// required.
var ErrNeedRandSource = errors.New("generator: rng is required")
