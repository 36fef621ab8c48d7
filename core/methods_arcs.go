package core

import "fmt"

// ArcCount returns the number of physical arcs.
func (n *Network) ArcCount() int { return len(n.arcs) }

// Arc returns the arc with dense index i. It panics on an out-of-range index,
// like a slice access; indices come from ArcIndex, Outgoing or Arcs.
func (n *Network) Arc(i int) Arc { return n.arcs[i] }

// Arcs returns a copy of all arcs in ascending (from, to) order.
func (n *Network) Arcs() []Arc {
	out := make([]Arc, len(n.arcs))
	copy(out, n.arcs)
	return out
}

// ArcIndex returns the dense index of from→to.
func (n *Network) ArcIndex(from, to int) (int, bool) {
	i, ok := n.index[ArcKey{From: from, To: to}]
	return i, ok
}

// Lookup returns the arc from→to or ErrArcNotFound.
func (n *Network) Lookup(from, to int) (Arc, error) {
	i, ok := n.ArcIndex(from, to)
	if !ok {
		return Arc{}, fmt.Errorf("%w: %d→%d", ErrArcNotFound, from, to)
	}
	return n.arcs[i], nil
}

// Outgoing returns the dense indices of the arcs leaving node, ordered by
// ascending target id. The slice is shared and must not be modified.
func (n *Network) Outgoing(node int) []int {
	if !n.HasNode(node) {
		return nil
	}
	return n.out[node]
}

// OutgoingArcs returns a copy of the arcs leaving node, ascending by target.
func (n *Network) OutgoingArcs(node int) []Arc {
	idx := n.Outgoing(node)
	out := make([]Arc, len(idx))
	for i, a := range idx {
		out[i] = n.arcs[a]
	}
	return out
}

// Capacity returns the static capacity of arc i.
func (n *Network) Capacity(arc int) int { return n.arcs[arc].Capacity }

// Carries reports whether arc i is defined for commodity k.
func (n *Network) Carries(arc, commodity int) bool {
	if commodity < 1 || commodity > n.commodities {
		return false
	}
	return n.carries[n.slot(arc, commodity)]
}

// Cost returns the per-unit cost of arc i for commodity k (0 when not carried).
func (n *Network) Cost(arc, commodity int) float64 {
	if !n.Carries(arc, commodity) {
		return 0
	}
	return n.cost[n.slot(arc, commodity)]
}

// Desirability returns 1/cost of arc i for commodity k (0 when not carried).
func (n *Network) Desirability(arc, commodity int) float64 {
	if !n.Carries(arc, commodity) {
		return 0
	}
	return n.desirability[n.slot(arc, commodity)]
}
