package aco_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antflow/aco"
	"github.com/katalvlaran/antflow/core"
)

func TestEvaporate_Decay(t *testing.T) {
	net := splitNetwork(t)
	tb := core.NewTables(net, 10)
	a, _ := net.ArcIndex(1, 2)

	aco.Evaporate(tb, 10, 1)
	assert.InDelta(t, 9.0, tb.Pheromone(a, 1), 1e-12)

	// Without deposits every entry converges to the floor and stays there.
	for i := 0; i < 100; i++ {
		aco.Evaporate(tb, 10, 1)
	}
	for _, arc := range net.Arcs() {
		assert.Equal(t, 1.0, tb.Pheromone(arc.Index, 1), arc.Key().String())
	}
}

func TestEvaporate_Extremes(t *testing.T) {
	net := splitNetwork(t)
	tb := core.NewTables(net, 4)
	a, _ := net.ArcIndex(1, 2)

	aco.Evaporate(tb, 0, 1)
	assert.Equal(t, 4.0, tb.Pheromone(a, 1))

	aco.Evaporate(tb, 100, 0.5)
	assert.Equal(t, 0.5, tb.Pheromone(a, 1))
}

func TestDeposit_ClampsEachAddition(t *testing.T) {
	net := splitNetwork(t)
	tb := core.NewTables(net, 1)
	a, _ := net.ArcIndex(1, 2)
	b, _ := net.ArcIndex(2, 4)

	require.NoError(t, aco.Deposit(tb, []int{a, b}, 1, 3, 5))
	assert.Equal(t, 4.0, tb.Pheromone(a, 1))
	assert.Equal(t, 4.0, tb.Pheromone(b, 1))

	require.NoError(t, aco.Deposit(tb, []int{a, a}, 1, 3, 5))
	assert.Equal(t, 5.0, tb.Pheromone(a, 1))

	other, _ := net.ArcIndex(1, 3)
	assert.Equal(t, 1.0, tb.Pheromone(other, 1), "untouched arc keeps its level")
}

func TestDeposit_UndefinedCommodity(t *testing.T) {
	net := splitNetwork(t)
	tb := core.NewTables(net, 1)
	a, _ := net.ArcIndex(1, 2)

	err := aco.Deposit(tb, []int{a}, 2, 1, 5)
	assert.ErrorIs(t, err, core.ErrArcNotFound)
}
