package generator_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antflow/aco"
	"github.com/katalvlaran/antflow/config"
	"github.com/katalvlaran/antflow/core"
	"github.com/katalvlaran/antflow/dataset"
	"github.com/katalvlaran/antflow/generator"
)

func TestLayered_Deterministic(t *testing.T) {
	cfg := config.Default()
	a, err := generator.Layered(cfg, generator.WithSeed(11))
	require.NoError(t, err)
	b, err := generator.Layered(cfg, generator.WithSeed(11))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(a, b))
}

func TestLayered_Shape(t *testing.T) {
	cfg := config.Default()
	ds, err := generator.Layered(cfg,
		generator.WithSeed(3),
		generator.WithCostRange(2, 4),
		generator.WithCapacityRange(7, 9),
		generator.WithDemandRange(1, 1),
	)
	require.NoError(t, err)

	net, err := core.NewNetwork(cfg.Nodes, cfg.Layers, cfg.Commodities, ds.Arcs)
	require.NoError(t, err, "generated arcs must build a network")

	for _, s := range ds.Arcs {
		assert.GreaterOrEqual(t, s.Cost, 2)
		assert.LessOrEqual(t, s.Cost, 4)
		assert.GreaterOrEqual(t, s.Capacity, 7)
		assert.LessOrEqual(t, s.Capacity, 9)
	}
	require.Len(t, ds.Supplies, cfg.Commodities)
	for i, s := range ds.Supplies {
		assert.Equal(t, dataset.SupplyRecord{Commodity: i + 1, Demand: 1}, s)
	}

	// Every physical arc carries every commodity.
	assert.Equal(t, net.ArcCount()*cfg.Commodities, len(ds.Arcs))

	// Connectivity: every non-sink node has an exit, every non-source node an entry.
	in := make(map[int]int)
	for _, a := range net.Arcs() {
		in[a.To]++
	}
	for id := net.Source(); id <= net.Sink(); id++ {
		if id != net.Sink() {
			assert.NotEmptyf(t, net.Outgoing(id), "node %d has no exit", id)
		}
		if id != net.Source() {
			assert.Positivef(t, in[id], "node %d has no entry", id)
		}
	}
}

func TestLayered_Density(t *testing.T) {
	cfg := config.Default()
	cfg.Commodities = 1

	cfg.Density = 100
	full, err := generator.Layered(cfg, generator.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	npl := cfg.NodesPerLayer()
	// source→L1, L1→L2, L2→L3, L3→sink
	assert.Len(t, full.Arcs, npl+npl*npl*(cfg.Layers-3)+npl)

	cfg.Density = 0
	sparse, err := generator.Layered(cfg, generator.WithSeed(1))
	require.NoError(t, err)
	_, err = core.NewNetwork(cfg.Nodes, cfg.Layers, cfg.Commodities, sparse.Arcs)
	require.NoError(t, err)
	assert.Less(t, len(sparse.Arcs), len(full.Arcs))
}

func TestLayered_Errors(t *testing.T) {
	_, err := generator.Layered(config.Default())
	require.ErrorIs(t, err, generator.ErrNeedRandSource)

	cfg := config.Default()
	cfg.Layers = 2
	_, err = generator.Layered(cfg, generator.WithSeed(1))
	require.ErrorIs(t, err, config.ErrInvalidConfiguration)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { generator.WithRand(nil) })
	assert.Panics(t, func() { generator.WithCostRange(0, 3) })
	assert.Panics(t, func() { generator.WithCapacityRange(5, 4) })
	assert.Panics(t, func() { generator.WithDemandRange(-1, 4) })
	assert.NotPanics(t, func() { generator.WithDemandRange(0, 0) })
}

// TestLayered_Runs feeds a generated dataset through the whole pipeline.
func TestLayered_Runs(t *testing.T) {
	cfg := config.Default()
	ds, err := generator.Layered(cfg, generator.WithSeed(5))
	require.NoError(t, err)

	in, err := dataset.Build(cfg, ds)
	require.NoError(t, err)
	sim, err := in.NewSimulation(aco.Options{OnInfeasible: aco.StallAnt, CheckInvariants: true})
	require.NoError(t, err)
	res, err := sim.Run(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, res, 5)
}
