package metrics_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antflow/aco"
	"github.com/katalvlaran/antflow/core"
	"github.com/katalvlaran/antflow/metrics"
)

func TestEpochCompleted(t *testing.T) {
	r := metrics.NewRegistry()
	r.EpochCompleted(aco.EpochResult{
		Epoch:     1,
		Collected: 3,
		Stalled:   1,
		Delivered: 5,
		TotalPaid: 42,
		BestPaid:  7,
		Commodities: []aco.Commodity{
			{ID: 1, Demand: 10, Supply: 4},
			{ID: 2, Demand: 2, Supply: 2},
		},
		Elapsed: 3 * time.Millisecond,
	})
	r.EpochCompleted(aco.EpochResult{Epoch: 2, Delivered: 2})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.EpochsTotal))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.DeliveredTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.EpochCost), "gauges hold the last epoch")
	assert.Equal(t, 4.0, testutil.ToFloat64(r.CommoditySupply.WithLabelValues("1")))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.CommodityGap.WithLabelValues("1")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.CommodityGap.WithLabelValues("2")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.EpochDuration))
}

func TestAntStalled(t *testing.T) {
	r := metrics.NewRegistry()
	r.AntStalled(&aco.InfeasibleRoutingError{Epoch: 1, AntID: 2, Source: 3, Commodity: 2})
	r.AntStalled(&aco.InfeasibleRoutingError{Epoch: 1, AntID: 4, Source: 3, Commodity: 2})
	assert.Equal(t, 2.0, testutil.ToFloat64(r.StallsTotal.WithLabelValues("2")))
}

// TestObserverWiring drives a real simulation with the registry attached.
func TestObserverWiring(t *testing.T) {
	net, err := core.NewNetwork(1, 3, 1, []core.ArcSpec{
		{From: 1, To: 2, Commodity: 1, Cost: 1, Capacity: 10},
		{From: 2, To: 3, Commodity: 1, Cost: 1, Capacity: 1},
	})
	require.NoError(t, err)

	r := metrics.NewRegistry()
	sim, err := aco.New(net, aco.Params{
		Ants: 2, Degradation: 10, PheromoneConstant: 10, PheromoneMin: 1, PheromoneMax: 10,
	}, nil, aco.Options{OnInfeasible: aco.StallAnt, Observer: r})
	require.NoError(t, err)

	_, err = sim.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, testutil.ToFloat64(r.EpochsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.StallsTotal.WithLabelValues("1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.AntsCollected))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "antflow_epochs_total 3"))
}
