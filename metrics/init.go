package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "antflow"

func (r *Registry) initEpochMetrics() {
	f := promauto.With(r.registry)

	r.EpochsTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "epochs_total",
		Help:      "Total number of committed epochs",
	})

	r.EpochDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "epoch_duration_seconds",
		Help:      "Wall time of one epoch in seconds",
		Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
	})

	r.EpochCost = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "epoch_cost",
		Help:      "Sum of total paid over collected ants in the last epoch",
	})

	r.BestCost = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "epoch_best_cost",
		Help:      "Lowest total paid by a collected ant in the last epoch",
	})

	r.AntsCollected = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ants_collected",
		Help:      "Ants that reached the sink in the last epoch",
	})

	r.AntsStalled = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ants_stalled",
		Help:      "Ants that could not route in the last epoch",
	})

	r.DeliveredTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "delivered_units_total",
		Help:      "Total commodity units carried into the sink",
	})

	r.StallsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stalls_total",
		Help:      "Total number of stalled ants by commodity",
	}, []string{"commodity"})
}

func (r *Registry) initCommodityMetrics() {
	f := promauto.With(r.registry)

	r.CommoditySupply = f.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "commodity_supply",
		Help:      "Cumulative supply recorded in the ledger",
	}, []string{"commodity"})

	r.CommodityGap = f.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "commodity_gap",
		Help:      "Demand minus supply",
	}, []string{"commodity"})
}
