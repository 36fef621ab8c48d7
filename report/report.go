// Package report accumulates per-epoch results of a run and renders them as
// JSON, YAML or a terminal table.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/antflow/aco"
	"github.com/katalvlaran/antflow/config"
)

// EpochSummary is the reportable part of an aco.EpochResult.
type EpochSummary struct {
	Epoch     int     `json:"epoch" yaml:"epoch"`
	Collected int     `json:"collected" yaml:"collected"`
	Stalled   int     `json:"stalled" yaml:"stalled"`
	Delivered int     `json:"delivered" yaml:"delivered"`
	TotalPaid float64 `json:"total_paid" yaml:"total_paid"`
	BestPaid  float64 `json:"best_paid" yaml:"best_paid"`
	ElapsedMS float64 `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// Route is the cheapest delivery seen during the run.
type Route struct {
	Epoch     int     `json:"epoch" yaml:"epoch"`
	AntID     int     `json:"ant" yaml:"ant"`
	Commodity int     `json:"commodity" yaml:"commodity"`
	Path      []int   `json:"path" yaml:"path,flow"`
	Package   int     `json:"package" yaml:"package"`
	Paid      float64 `json:"paid" yaml:"paid"`
}

// CommoditySummary is the ledger state of one commodity.
type CommoditySummary struct {
	Commodity int `json:"commodity" yaml:"commodity"`
	Demand    int `json:"demand" yaml:"demand"`
	Supply    int `json:"supply" yaml:"supply"`
	Gap       int `json:"gap" yaml:"gap"`
}

// Run is the report of one simulation run.
type Run struct {
	ID          uuid.UUID          `json:"id" yaml:"id"`
	StartedAt   time.Time          `json:"started_at" yaml:"started_at"`
	Config      config.Config      `json:"config" yaml:"config"`
	MaxFlow     int                `json:"max_flow" yaml:"max_flow"`
	Epochs      []EpochSummary     `json:"epochs" yaml:"epochs"`
	Best        *Route             `json:"best,omitempty" yaml:"best,omitempty"`
	Commodities []CommoditySummary `json:"commodities" yaml:"commodities"`
	Error       string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewRun starts an empty report with a fresh id.
func NewRun(cfg config.Config) *Run {
	return &Run{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
		Config:    cfg,
	}
}

// Add appends one epoch and refreshes the best route and the ledger.
func (r *Run) Add(res aco.EpochResult) {
	r.Epochs = append(r.Epochs, EpochSummary{
		Epoch:     res.Epoch,
		Collected: res.Collected,
		Stalled:   res.Stalled,
		Delivered: res.Delivered,
		TotalPaid: res.TotalPaid,
		BestPaid:  res.BestPaid,
		ElapsedMS: float64(res.Elapsed.Microseconds()) / 1000,
	})

	for _, a := range res.Ants {
		if a.Stalled || a.Delivered == 0 {
			continue
		}
		if r.Best == nil || a.TotalPaid < r.Best.Paid {
			r.Best = &Route{
				Epoch:     res.Epoch,
				AntID:     a.ID,
				Commodity: a.Commodity,
				Path:      append([]int(nil), a.Path...),
				Package:   a.Delivered,
				Paid:      a.TotalPaid,
			}
		}
	}

	r.Commodities = r.Commodities[:0]
	for _, c := range res.Commodities {
		r.Commodities = append(r.Commodities, CommoditySummary{
			Commodity: c.ID, Demand: c.Demand, Supply: c.Supply, Gap: c.Gap(),
		})
	}
}

// Fail records the error that ended the run.
func (r *Run) Fail(err error) {
	if err != nil {
		r.Error = err.Error()
	}
}
