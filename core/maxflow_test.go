package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antflow/core"
)

// Diamond capacities:
//
//	all arcs:    1→2 (10), 1→3 (3); 2→4 (6), 2→5 (6), 3→4 (2), 3→5 (2); 4→6 (9), 5→6 (9)
//	commodity 2: 1→2 (10) → 2→4 (6) → 4→6 (9)
func TestMaxFlow(t *testing.T) {
	n := mustDiamond(t)
	ctx := context.Background()

	cases := []struct {
		commodity int
		want      int
	}{
		// The source cut 10 + 3 is the bottleneck.
		{0, 13},
		{1, 13},
		{2, 6},
	}
	for _, tc := range cases {
		got, err := n.MaxFlow(ctx, tc.commodity)
		require.NoError(t, err)
		require.Equalf(t, tc.want, got, "commodity %d", tc.commodity)
	}

	_, err := n.MaxFlow(ctx, 3)
	require.ErrorIs(t, err, core.ErrCommodityRange)
}

func TestMaxFlow_Canceled(t *testing.T) {
	n := mustDiamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := n.MaxFlow(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMaxFlow_ZeroCapacity(t *testing.T) {
	n, err := core.NewNetwork(1, 3, 1, []core.ArcSpec{
		{From: 1, To: 2, Commodity: 1, Cost: 1, Capacity: 0},
		{From: 2, To: 3, Commodity: 1, Cost: 1, Capacity: 5},
	})
	require.NoError(t, err)
	got, err := n.MaxFlow(context.Background(), 0)
	require.NoError(t, err)
	require.Zero(t, got)
}
