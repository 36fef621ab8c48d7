package aco

import "github.com/katalvlaran/antflow/core"

// Selector is the roulette-wheel routing rule. An outgoing arc is feasible
// for commodity k when it carries k and has remaining capacity; its weight is
// pheromone × desirability.
type Selector struct {
	net    *core.Network
	tables *core.Tables
}

// NewSelector binds a selector to live tables.
func NewSelector(t *core.Tables) *Selector {
	return &Selector{net: t.Network(), tables: t}
}

// Select picks the arc an ant of commodity leaves source on.
//
// Steps:
//  1. Sum the weights of feasible arcs into Z.
//  2. Z == 0 ⇒ *InfeasibleRoutingError, without consuming a draw.
//  3. Draw r ∈ [0,1) from rnd.
//  4. Walk feasible arcs by ascending target, accumulating weight/Z, and
//     return the first arc where the running sum reaches r. Rounding that
//     leaves the sum short of r selects the last feasible arc.
//
// Returns the dense arc index.
// Complexity: O(out-degree(source)).
func (s *Selector) Select(source, commodity int, rnd Source) (int, error) {
	out := s.net.Outgoing(source)

	var z float64
	for _, a := range out {
		z += s.weight(a, commodity)
	}
	if z <= 0 {
		return -1, &InfeasibleRoutingError{AntID: -1, Source: source, Commodity: commodity}
	}

	r := rnd.Float64()
	var acc float64
	last := -1
	for _, a := range out {
		w := s.weight(a, commodity)
		if w <= 0 {
			continue
		}
		last = a
		acc += w / z
		if acc >= r {
			return a, nil
		}
	}
	return last, nil
}

// Probabilities returns the selection probability of every feasible arc
// leaving source, keyed by target node id. It draws nothing.
func (s *Selector) Probabilities(source, commodity int) map[int]float64 {
	out := s.net.Outgoing(source)
	var z float64
	for _, a := range out {
		z += s.weight(a, commodity)
	}
	probs := make(map[int]float64)
	if z <= 0 {
		return probs
	}
	for _, a := range out {
		if w := s.weight(a, commodity); w > 0 {
			probs[s.net.Arc(a).To] = w / z
		}
	}
	return probs
}

// weight is pheromone × desirability, or 0 for an infeasible arc.
func (s *Selector) weight(arc, commodity int) float64 {
	if s.tables.Remaining(arc) <= 0 || !s.net.Carries(arc, commodity) {
		return 0
	}
	return s.tables.Pheromone(arc, commodity) * s.net.Desirability(arc, commodity)
}
