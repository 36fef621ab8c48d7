package aco

import (
	"fmt"

	"github.com/katalvlaran/antflow/core"
)

// Epoch returns the number of committed epochs.
func (s *Simulation) Epoch() int { return s.epoch }

// Err returns the error that aborted the simulation, or nil.
func (s *Simulation) Err() error { return s.broken }

// Network returns the static network the simulation runs on.
func (s *Simulation) Network() *core.Network { return s.net }

// Params returns the model constants.
func (s *Simulation) Params() Params { return s.params }

// Ants returns deep copies of every ant, ascending by id.
func (s *Simulation) Ants() []Ant {
	out := make([]Ant, len(s.colony.ants))
	for i, a := range s.colony.ants {
		out[i] = a.clone()
	}
	return out
}

// Ant returns a copy of ant id.
func (s *Simulation) Ant(id int) (Ant, error) {
	if id < 0 || id >= len(s.colony.ants) {
		return Ant{}, fmt.Errorf("%w: %d", ErrAntNotFound, id)
	}
	return s.colony.ants[id].clone(), nil
}

// IdleCount returns the number of ants in the idle pool.
func (s *Simulation) IdleCount() int { return len(s.colony.pool) }

// Pheromone returns the pheromone of (from→to, commodity).
func (s *Simulation) Pheromone(from, to, commodity int) (float64, error) {
	arc, err := s.net.Lookup(from, to)
	if err != nil {
		return 0, err
	}
	if !s.net.Carries(arc.Index, commodity) {
		return 0, fmt.Errorf("%w: %s does not carry commodity %d", core.ErrArcNotFound, arc.Key(), commodity)
	}
	return s.tables.Pheromone(arc.Index, commodity), nil
}

// Remaining returns the remaining capacity of from→to.
func (s *Simulation) Remaining(from, to int) (int, error) {
	arc, err := s.net.Lookup(from, to)
	if err != nil {
		return 0, err
	}
	return s.tables.Remaining(arc.Index), nil
}

// Ledger returns the ledger entries ascending by commodity id.
func (s *Simulation) Ledger() []Commodity { return s.ledger.Snapshot() }

// Snapshot deep-copies both mutable tables.
func (s *Simulation) Snapshot() core.Snapshot { return s.tables.Snapshot() }
