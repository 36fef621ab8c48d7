package aco_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/antflow/aco"
	"github.com/katalvlaran/antflow/core"
)

// randomInstance builds a fully connected layered network whose shape,
// capacities and costs derive from seed.
func randomInstance(seed int64) (*core.Network, aco.Params, []aco.Demand) {
	r := rand.New(rand.NewSource(seed))
	layers := 3 + r.Intn(4)
	perLayer := 1 + r.Intn(3)
	commodities := 1 + r.Intn(3)
	nodes := perLayer * (layers - 2)

	parts, _ := core.Partition(nodes, layers)
	var specs []core.ArcSpec
	for l := 0; l+1 < len(parts); l++ {
		for _, from := range parts[l] {
			for _, to := range parts[l+1] {
				capacity := 1 + r.Intn(20)
				for k := 1; k <= commodities; k++ {
					specs = append(specs, core.ArcSpec{
						From: from, To: to, Commodity: k,
						Cost: 1 + r.Intn(9), Capacity: capacity,
					})
				}
			}
		}
	}
	net, err := core.NewNetwork(nodes, layers, commodities, specs)
	if err != nil {
		panic(err)
	}

	params := aco.Params{
		Ants:              1 + r.Intn(30),
		Degradation:       r.Intn(101),
		PheromoneConstant: float64(1 + r.Intn(200)),
		PheromoneMin:      float64(1 + r.Intn(3)),
	}
	params.PheromoneMax = params.PheromoneMin + float64(r.Intn(50))

	demands := make([]aco.Demand, commodities)
	for k := range demands {
		demands[k] = aco.Demand{Commodity: k + 1, Amount: r.Intn(40)}
	}
	return net, params, demands
}

// TestEpochInvariants checks conservation and table bounds over random
// instances. Options.CheckInvariants re-verifies after every single move.
func TestEpochInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("epochs conserve ants and respect bounds", prop.ForAll(
		func(seed int64) bool {
			net, params, demands := randomInstance(seed)
			sim, err := aco.New(net, params, demands, aco.Options{
				Seed:            seed,
				OnInfeasible:    aco.StallAnt,
				CheckInvariants: true,
			})
			if err != nil {
				return false
			}
			results, err := sim.Run(context.Background(), 8)
			if err != nil || len(results) != 8 {
				return false
			}
			for _, res := range results {
				if res.Collected+res.Stalled != params.Ants {
					return false
				}
				for _, a := range res.Ants {
					if a.Stalled {
						continue
					}
					if len(a.Path) != net.LayerCount() || a.TotalPaid <= 0 || a.Delivered < 1 {
						return false
					}
				}
			}
			if sim.IdleCount() != params.Ants {
				return false
			}
			snap := sim.Snapshot()
			for _, arc := range net.Arcs() {
				if snap.Remaining[arc.Key()] != arc.Capacity {
					return false
				}
			}
			for _, v := range snap.Pheromone {
				if v < params.PheromoneMin || v > params.PheromoneMax {
					return false
				}
			}
			return true
		},
		gen.Int64Range(1, 1<<40),
	))

	properties.Property("equal seeds give equal runs", prop.ForAll(
		func(seed int64) bool {
			run := func() core.Snapshot {
				net, params, demands := randomInstance(seed)
				sim, err := aco.New(net, params, demands, aco.Options{Seed: seed, OnInfeasible: aco.StallAnt})
				if err != nil {
					return core.Snapshot{}
				}
				if _, err = sim.Run(context.Background(), 5); err != nil {
					return core.Snapshot{}
				}
				return sim.Snapshot()
			}
			return cmp.Equal(run(), run())
		},
		gen.Int64Range(1, 1<<40),
	))

	properties.TestingRun(t)
}
