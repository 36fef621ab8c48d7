package metrics

import (
	"strconv"

	"github.com/katalvlaran/antflow/aco"
)

// EpochCompleted records one committed epoch.
func (r *Registry) EpochCompleted(res aco.EpochResult) {
	r.EpochsTotal.Inc()
	r.EpochDuration.Observe(res.Elapsed.Seconds())
	r.EpochCost.Set(res.TotalPaid)
	r.BestCost.Set(res.BestPaid)
	r.AntsCollected.Set(float64(res.Collected))
	r.AntsStalled.Set(float64(res.Stalled))
	r.DeliveredTotal.Add(float64(res.Delivered))

	for _, c := range res.Commodities {
		label := strconv.Itoa(c.ID)
		r.CommoditySupply.WithLabelValues(label).Set(float64(c.Supply))
		r.CommodityGap.WithLabelValues(label).Set(float64(c.Gap()))
	}
}

// AntStalled counts one stall.
func (r *Registry) AntStalled(err *aco.InfeasibleRoutingError) {
	r.StallsTotal.WithLabelValues(strconv.Itoa(err.Commodity)).Inc()
}

var _ aco.Observer = (*Registry)(nil)
