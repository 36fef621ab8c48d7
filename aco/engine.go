package aco

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/antflow/core"
	"github.com/katalvlaran/antflow/logging"
)

// Simulation is the single owned aggregate of a run: static network, mutable
// tables, ledger, colony and random stream.
type Simulation struct {
	net      *core.Network
	tables   *core.Tables
	selector *Selector
	ledger   *Ledger
	colony   *colony
	params   Params
	opts     Options

	epoch  int   // committed epochs
	broken error // set by an aborted epoch
}

// New builds a Simulation with Params.Ants ants in the idle pool, pheromone
// at PheromoneMin on every defined (arc, commodity), and the ledger seeded
// from demands.
func New(net *core.Network, params Params, demands []Demand, opts Options) (*Simulation, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	ledger, err := NewLedger(net.Commodities(), demands)
	if err != nil {
		return nil, err
	}
	opts.normalize()

	tables := core.NewTables(net, params.PheromoneMin)
	return &Simulation{
		net:      net,
		tables:   tables,
		selector: NewSelector(tables),
		ledger:   ledger,
		colony:   newColony(params.Ants, net.Commodities(), net.NodeCount()),
		params:   params,
		opts:     opts,
	}, nil
}

// AdvanceEpoch runs exactly one epoch. The context is checked once before
// staging; a started epoch always runs to completion.
//
// On error nothing of the epoch is committed and the simulation refuses
// further epochs with ErrStateInvalid.
func (s *Simulation) AdvanceEpoch(ctx context.Context) (EpochResult, error) {
	if s.broken != nil {
		return EpochResult{}, fmt.Errorf("%w: %w", ErrStateInvalid, s.broken)
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return EpochResult{}, err
		}
	}

	start := time.Now()
	number := s.epoch + 1
	res, err := s.runEpoch(number)
	if err != nil {
		s.broken = err
		s.opts.Logger.Error(err, "epoch aborted", "epoch", number)
		return EpochResult{}, err
	}
	s.epoch = number
	res.Elapsed = time.Since(start)

	s.opts.Logger.V(logging.VERBOSE).Info("epoch settled",
		"epoch", number,
		"collected", res.Collected,
		"stalled", res.Stalled,
		"delivered", res.Delivered,
		"bestPaid", res.BestPaid,
		"elapsed", res.Elapsed)
	s.opts.Observer.EpochCompleted(res)
	return res, nil
}

// Run advances n epochs, stopping at the first error or cancellation.
// Results of committed epochs are returned either way.
func (s *Simulation) Run(ctx context.Context, n int) ([]EpochResult, error) {
	results := make([]EpochResult, 0, n)
	for i := 0; i < n; i++ {
		res, err := s.AdvanceEpoch(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// runEpoch performs stage → advance → collect → settle.
func (s *Simulation) runEpoch(number int) (EpochResult, error) {
	if err := s.stage(number); err != nil {
		return EpochResult{}, err
	}
	if err := s.advance(number); err != nil {
		return EpochResult{}, err
	}
	collected, err := s.collect(number)
	if err != nil {
		return EpochResult{}, err
	}
	if err = s.settle(number, collected); err != nil {
		return EpochResult{}, err
	}
	return s.summarize(number, collected), nil
}

// stage moves every idle ant to the source and restarts its path.
func (s *Simulation) stage(number int) error {
	c := s.colony
	src := s.net.Source()
	if len(c.pool) != len(c.ants) {
		return violation(number, nil, "%d of %d ants idle before staging", len(c.pool), len(c.ants))
	}
	for id := range c.ants {
		a := &c.ants[id]
		a.Path = append(a.Path[:0], src)
		a.Delivered = 0
		a.TotalPaid = 0
		a.Stalled = false
		c.hops[id] = c.hops[id][:0]
		if err := c.move(id, src); err != nil {
			return violation(number, err, "staging")
		}
	}
	return nil
}

// advance moves every ant one layer per step until all reach the sink.
// Order: layer ascending, node id ascending, ant id ascending.
func (s *Simulation) advance(number int) error {
	c := s.colony
	for layer := 0; layer < s.net.LayerCount()-1; layer++ {
		for _, node := range s.net.Layer(layer) {
			for _, id := range c.at[node].ids() {
				if err := s.step(number, id, node); err != nil {
					return err
				}
				if s.opts.CheckInvariants {
					if err := s.verify(number); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// step routes one ant out of node.
func (s *Simulation) step(number, id, node int) error {
	c := s.colony
	a := &c.ants[id]

	arc, err := s.selector.Select(node, a.Commodity, s.opts.Rand)
	if err != nil {
		if !errors.Is(err, ErrInfeasibleRouting) {
			return err
		}
		ie := &InfeasibleRoutingError{Epoch: number, AntID: id, Source: node, Commodity: a.Commodity}
		if s.opts.OnInfeasible != StallAnt {
			return ie
		}
		a.Stalled = true
		if err = c.move(id, inPool); err != nil {
			return violation(number, err, "stalling ant %d", id)
		}
		s.opts.Logger.V(logging.DEBUG).Info("ant stalled",
			"epoch", number, "ant", id, "node", node, "commodity", a.Commodity)
		s.opts.Observer.AntStalled(ie)
		return nil
	}

	target := s.net.Arc(arc).To
	pkg := a.PackageSize
	if rem := s.tables.Remaining(arc); rem < pkg {
		// The shortfall is no longer on its way: give it back.
		s.ledger.giveBack(a.Commodity, pkg-rem)
		pkg = rem
	}
	a.PackageSize = pkg

	if err = c.move(id, target); err != nil {
		return violation(number, err, "moving ant %d to node %d", id, target)
	}
	a.Path = append(a.Path, target)
	c.hops[id] = append(c.hops[id], arc)
	if err = s.tables.Consume(arc, pkg); err != nil {
		return violation(number, err, "ant %d on %s", id, s.net.Arc(arc).Key())
	}

	s.opts.Logger.V(logging.TRACE).Info("ant routed",
		"epoch", number, "ant", id, "from", node, "to", target, "package", pkg)
	return nil
}

// collect settles cost and demand for every ant at the sink and returns the
// collected ids in ascending order.
func (s *Simulation) collect(number int) ([]int, error) {
	c := s.colony
	hopsWant := s.net.LayerCount() - 1
	collected := c.at[s.net.Sink()].ids()

	for _, id := range collected {
		a := &c.ants[id]
		if len(c.hops[id]) != hopsWant {
			return nil, violation(number, nil, "ant %d reached the sink in %d hops, want %d",
				id, len(c.hops[id]), hopsWant)
		}
		var unit float64
		for _, arc := range c.hops[id] {
			unit += s.net.Cost(arc, a.Commodity)
		}
		a.Delivered = a.PackageSize
		a.TotalPaid = unit * float64(a.PackageSize)
		if s.ledger.fill(a.Commodity) {
			a.PackageSize++
		}
		if err := c.move(id, inPool); err != nil {
			return nil, violation(number, err, "collecting ant %d", id)
		}
	}

	if len(c.pool) != len(c.ants) {
		return nil, violation(number, nil, "%d of %d ants back in the pool after collection",
			len(c.pool), len(c.ants))
	}
	return collected, nil
}

// settle evaporates, deposits for each collected ant, then resets capacity.
func (s *Simulation) settle(number int, collected []int) error {
	p := s.params
	Evaporate(s.tables, p.Degradation, p.PheromoneMin)
	for _, id := range collected {
		a := &s.colony.ants[id]
		if a.TotalPaid <= 0 {
			return violation(number, nil, "ant %d paid %g", id, a.TotalPaid)
		}
		delta := p.PheromoneConstant / a.TotalPaid
		if err := Deposit(s.tables, s.colony.hops[id], a.Commodity, delta, p.PheromoneMax); err != nil {
			return violation(number, err, "deposit for ant %d", id)
		}
	}
	s.tables.ResetCapacity()

	if s.opts.CheckInvariants {
		return s.verify(number)
	}
	return nil
}

// summarize builds the EpochResult of a settled epoch.
func (s *Simulation) summarize(number int, collected []int) EpochResult {
	c := s.colony
	res := EpochResult{
		Epoch:       number,
		Ants:        make([]Ant, len(c.ants)),
		Collected:   len(collected),
		Commodities: s.ledger.Snapshot(),
	}
	for id, a := range c.ants {
		res.Ants[id] = a.clone()
		if a.Stalled {
			res.Stalled++
		}
	}
	for i, id := range collected {
		a := c.ants[id]
		res.Delivered += a.Delivered
		res.TotalPaid += a.TotalPaid
		if i == 0 || a.TotalPaid < res.BestPaid {
			res.BestPaid = a.TotalPaid
		}
	}
	return res
}

// verify checks ant conservation and the bounds of both mutable tables.
func (s *Simulation) verify(number int) error {
	if got, want := s.colony.population(), len(s.colony.ants); got != want {
		return violation(number, nil, "population %d, want %d", got, want)
	}
	for i := 0; i < s.net.ArcCount(); i++ {
		if r := s.tables.Remaining(i); r < 0 || r > s.net.Capacity(i) {
			return violation(number, core.ErrCapacityUnderflow, "arc %s remaining %d outside [0,%d]",
				s.net.Arc(i).Key(), r, s.net.Capacity(i))
		}
		for k := 1; k <= s.net.Commodities(); k++ {
			if !s.net.Carries(i, k) {
				continue
			}
			if v := s.tables.Pheromone(i, k); v < s.params.PheromoneMin || v > s.params.PheromoneMax {
				return violation(number, nil, "arc %s commodity %d pheromone %g outside [%g,%g]",
					s.net.Arc(i).Key(), k, v, s.params.PheromoneMin, s.params.PheromoneMax)
			}
		}
	}
	return nil
}
