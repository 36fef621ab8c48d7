package core

// PheromoneKey identifies one pheromone entry.
type PheromoneKey struct {
	From      int
	To        int
	Commodity int
}

// Snapshot is a deep, map-keyed copy of Tables for diagnostics and
// comparisons; it shares nothing with the live tables.
type Snapshot struct {
	Remaining map[ArcKey]int
	Pheromone map[PheromoneKey]float64
}

// Snapshot copies the current tables.
// Complexity: O(A·K).
func (t *Tables) Snapshot() Snapshot {
	s := Snapshot{
		Remaining: make(map[ArcKey]int, len(t.remaining)),
		Pheromone: make(map[PheromoneKey]float64),
	}
	for i, a := range t.net.arcs {
		s.Remaining[a.Key()] = t.remaining[i]
	}
	t.eachDefined(func(arc, commodity int, v float64) {
		a := t.net.arcs[arc]
		s.Pheromone[PheromoneKey{From: a.From, To: a.To, Commodity: commodity}] = v
	})
	return s
}

// Clone returns an independent copy of the tables bound to the same network.
func (t *Tables) Clone() *Tables {
	c := &Tables{
		net:       t.net,
		remaining: make([]int, len(t.remaining)),
		pheromone: make([]float64, len(t.pheromone)),
	}
	copy(c.remaining, t.remaining)
	copy(c.pheromone, t.pheromone)
	return c
}

// eachDefined visits defined pheromone entries without modifying them.
func (t *Tables) eachDefined(fn func(arc, commodity int, v float64)) {
	k := t.net.commodities
	for slot, ok := range t.net.carries {
		if ok {
			fn(slot/k, slot%k+1, t.pheromone[slot])
		}
	}
}
