package aco

import (
	"fmt"

	"github.com/katalvlaran/antflow/core"
)

// Evaporate scales every defined pheromone entry by (1 - degradation/100)
// and clamps the result to at least min.
// Complexity: O(A·K).
func Evaporate(t *core.Tables, degradation int, min float64) {
	keep := 1 - float64(degradation)/100
	t.UpdatePheromone(func(_, _ int, old float64) float64 {
		v := old * keep
		if v < min {
			return min
		}
		return v
	})
}

// Deposit adds delta to commodity's pheromone on each arc of hops, clamping
// to max after every single addition so that repeated deposits on a shared
// arc saturate in traversal order.
// Complexity: O(len(hops)).
func Deposit(t *core.Tables, hops []int, commodity int, delta, max float64) error {
	net := t.Network()
	for _, arc := range hops {
		if !net.Carries(arc, commodity) {
			return fmt.Errorf("%w: arc %s does not carry commodity %d",
				core.ErrArcNotFound, net.Arc(arc).Key(), commodity)
		}
		v := t.Pheromone(arc, commodity) + delta
		if v > max {
			v = max
		}
		t.SetPheromone(arc, commodity, v)
	}
	return nil
}
