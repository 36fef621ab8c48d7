package aco_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antflow/aco"
	"github.com/katalvlaran/antflow/core"
)

// splitNetwork: one commodity, two routes.
//
//	layer0: {1}  layer1: {2,3}  layer2: {4}
//
// 1→2 costs 1 and 1→3 costs 3, so with equal pheromone the routes are
// weighted 0.75 / 0.25.
func splitNetwork(t *testing.T) *core.Network {
	t.Helper()
	n, err := core.NewNetwork(2, 3, 1, []core.ArcSpec{
		{From: 1, To: 2, Commodity: 1, Cost: 1, Capacity: 100},
		{From: 1, To: 3, Commodity: 1, Cost: 3, Capacity: 100},
		{From: 2, To: 4, Commodity: 1, Cost: 1, Capacity: 100},
		{From: 3, To: 4, Commodity: 1, Cost: 1, Capacity: 100},
	})
	require.NoError(t, err)
	return n
}

// chainNetwork: a single route 1→2→3 whose last arc has capacity bottleneck.
func chainNetwork(t *testing.T, bottleneck int) *core.Network {
	t.Helper()
	n, err := core.NewNetwork(1, 3, 1, []core.ArcSpec{
		{From: 1, To: 2, Commodity: 1, Cost: 2, Capacity: 100},
		{From: 2, To: 3, Commodity: 1, Cost: 3, Capacity: bottleneck},
	})
	require.NoError(t, err)
	return n
}

// baseParams are small, valid model constants.
func baseParams(ants int) aco.Params {
	return aco.Params{
		Ants:              ants,
		Degradation:       10,
		PheromoneConstant: 10,
		PheromoneMin:      1,
		PheromoneMax:      50,
	}
}

// mustSim builds a simulation with invariant checking enabled.
func mustSim(t *testing.T, net *core.Network, p aco.Params, demands []aco.Demand, opts aco.Options) *aco.Simulation {
	t.Helper()
	opts.CheckInvariants = true
	s, err := aco.New(net, p, demands, opts)
	require.NoError(t, err)
	return s
}

// countingSource records how many draws were taken.
type countingSource struct {
	aco.FixedDraws
	calls int
}

func (c *countingSource) Float64() float64 {
	c.calls++
	return c.FixedDraws.Float64()
}

// stallRecorder is an Observer that keeps every notification.
type stallRecorder struct {
	epochs []int
	stalls []*aco.InfeasibleRoutingError
}

func (r *stallRecorder) EpochCompleted(res aco.EpochResult) { r.epochs = append(r.epochs, res.Epoch) }

func (r *stallRecorder) AntStalled(err *aco.InfeasibleRoutingError) {
	r.stalls = append(r.stalls, err)
}

// diamondSpecs: 4 inner nodes over 4 layers, commodity 2 only on 1→2→4→6.
//
//	layer0: {1}  layer1: {2,3}  layer2: {4,5}  layer3: {6}
func diamondSpecs() []core.ArcSpec {
	return []core.ArcSpec{
		{From: 1, To: 2, Commodity: 1, Cost: 2, Capacity: 10},
		{From: 1, To: 2, Commodity: 2, Cost: 4, Capacity: 10},
		{From: 1, To: 3, Commodity: 1, Cost: 5, Capacity: 3},
		{From: 2, To: 4, Commodity: 1, Cost: 1, Capacity: 6},
		{From: 2, To: 4, Commodity: 2, Cost: 1, Capacity: 6},
		{From: 2, To: 5, Commodity: 1, Cost: 3, Capacity: 6},
		{From: 3, To: 4, Commodity: 1, Cost: 1, Capacity: 2},
		{From: 3, To: 5, Commodity: 1, Cost: 1, Capacity: 2},
		{From: 4, To: 6, Commodity: 1, Cost: 2, Capacity: 9},
		{From: 4, To: 6, Commodity: 2, Cost: 8, Capacity: 9},
		{From: 5, To: 6, Commodity: 1, Cost: 2, Capacity: 9},
	}
}
