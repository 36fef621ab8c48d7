package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antflow/core"
)

// Diamond fixture: 4 inner nodes over 4 layers.
//
//	layer0: {1}  layer1: {2,3}  layer2: {4,5}  layer3: {6}
const (
	fixtureNodes       = 4
	fixtureLayers      = 4
	fixtureCommodities = 2
)

// diamondSpecs returns a fully connected layered arc list. Commodity 1 is
// carried everywhere, commodity 2 only on the upper route 1→2→4→6.
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

// mustDiamond builds the fixture network or fails the test.
func mustDiamond(t *testing.T) *core.Network {
	t.Helper()
	n, err := core.NewNetwork(fixtureNodes, fixtureLayers, fixtureCommodities, diamondSpecs())
	require.NoError(t, err)
	return n
}

// mustIndex resolves from→to to its dense index or fails the test.
func mustIndex(t *testing.T, n *core.Network, from, to int) int {
	t.Helper()
	i, ok := n.ArcIndex(from, to)
	require.Truef(t, ok, "arc %d→%d missing", from, to)
	return i
}
