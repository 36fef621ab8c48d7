package core

import "fmt"

// Tables holds the mutable per-run arc state of a Network:
//
//   - remaining[arc]            capacity left in the current epoch, 0 ≤ r ≤ capacity.
//   - pheromone[arc][commodity] reinforcement level, defined only where the arc
//     carries the commodity; undefined entries stay 0.
//
// Tables is not safe for concurrent use.
type Tables struct {
	net       *Network
	remaining []int
	pheromone []float64
}

// NewTables creates tables for n with every remaining capacity at its static
// capacity and every defined pheromone entry at initial.
// Complexity: O(A·K).
func NewTables(n *Network, initial float64) *Tables {
	t := &Tables{
		net:       n,
		remaining: make([]int, len(n.arcs)),
		pheromone: make([]float64, len(n.carries)),
	}
	t.ResetCapacity()
	for slot, ok := range n.carries {
		if ok {
			t.pheromone[slot] = initial
		}
	}
	return t
}

// Network returns the static network the tables belong to.
func (t *Tables) Network() *Network { return t.net }

// Remaining returns the capacity left on arc i.
func (t *Tables) Remaining(arc int) int { return t.remaining[arc] }

// Consume subtracts amount from arc i. It refuses to go below zero and leaves
// the table untouched in that case.
func (t *Tables) Consume(arc, amount int) error {
	if amount < 0 || amount > t.remaining[arc] {
		return fmt.Errorf("%w: arc %s remaining %d, consume %d",
			ErrCapacityUnderflow, t.net.arcs[arc].Key(), t.remaining[arc], amount)
	}
	t.remaining[arc] -= amount
	return nil
}

// ResetCapacity restores every arc's remaining capacity to its static capacity.
func (t *Tables) ResetCapacity() {
	for i, a := range t.net.arcs {
		t.remaining[i] = a.Capacity
	}
}

// Pheromone returns the level on arc i for commodity k (0 when not carried).
func (t *Tables) Pheromone(arc, commodity int) float64 {
	if !t.net.Carries(arc, commodity) {
		return 0
	}
	return t.pheromone[t.net.slot(arc, commodity)]
}

// SetPheromone stores v on arc i for commodity k. Entries the arc does not
// carry are left undefined.
func (t *Tables) SetPheromone(arc, commodity int, v float64) {
	if !t.net.Carries(arc, commodity) {
		return
	}
	t.pheromone[t.net.slot(arc, commodity)] = v
}

// UpdatePheromone replaces every defined entry with fn(arc, commodity, old),
// visiting arcs in ascending index order and commodities in ascending order.
func (t *Tables) UpdatePheromone(fn func(arc, commodity int, old float64) float64) {
	k := t.net.commodities
	for slot, ok := range t.net.carries {
		if !ok {
			continue
		}
		t.pheromone[slot] = fn(slot/k, slot%k+1, t.pheromone[slot])
	}
}
