package aco

import "math/rand"

// Source is the random stream a Simulation draws routing decisions from.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// FixedDraws replays a fixed sequence of draws, cycling when exhausted.
// It is meant for tests and walkthroughs that need exact routing choices.
type FixedDraws struct {
	Values []float64
	next   int
}

// Float64 returns the next value of the sequence, or 0 for an empty one.
func (f *FixedDraws) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}
