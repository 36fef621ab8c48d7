package generator

import (
	"fmt"

	"github.com/katalvlaran/antflow/config"
	"github.com/katalvlaran/antflow/core"
	"github.com/katalvlaran/antflow/dataset"
)

// Layered samples a dataset for cfg's NODES, LAYERS, COMMODITIES, DENSITY and
// ANTS. The arc list is sorted by (from, to, commodity) and the supply list by
// commodity.
//
// Errors:
//   - *config.ConfigurationError when cfg does not validate.
//   - ErrNeedRandSource when neither WithSeed nor WithRand was given.
//
// Complexity: O(Σ |L_i|·|L_i+1| · K).
func Layered(cfg config.Config, opts ...Option) (*dataset.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gc := newGenConfig(cfg.Ants, opts...)
	if gc.rng == nil {
		return nil, fmt.Errorf("Layered: %w", ErrNeedRandSource)
	}
	parts, err := core.Partition(cfg.Nodes, cfg.Layers)
	if err != nil {
		return nil, config.Wrap("config", err)
	}

	p := float64(cfg.Density) / 100
	rng := gc.rng
	ds := &dataset.Dataset{}

	// 1) Bernoulli trials per layer pair, then forced connectivity.
	for l := 0; l+1 < len(parts); l++ {
		from, to := parts[l], parts[l+1]
		// adj[i][j]: from[i] → to[j]
		adj := make([][]bool, len(from))
		for i := range from {
			adj[i] = make([]bool, len(to))
			for j := range to {
				adj[i][j] = rng.Float64() < p
			}
		}
		for i := range from {
			if !anyTrue(adj[i]) {
				adj[i][rng.Intn(len(to))] = true
			}
		}
		for j := range to {
			hit := false
			for i := range from {
				hit = hit || adj[i][j]
			}
			if !hit {
				adj[rng.Intn(len(from))][j] = true
			}
		}

		// 2) Attributes in ascending (from, to, commodity) order.
		for i, u := range from {
			for j, v := range to {
				if !adj[i][j] {
					continue
				}
				capacity := gc.capacity.draw(rng)
				for k := 1; k <= cfg.Commodities; k++ {
					ds.Arcs = append(ds.Arcs, core.ArcSpec{
						From: u, To: v, Commodity: k,
						Cost:     gc.cost.draw(rng),
						Capacity: capacity,
					})
				}
			}
		}
	}

	// 3) Demands.
	for k := 1; k <= cfg.Commodities; k++ {
		ds.Supplies = append(ds.Supplies, dataset.SupplyRecord{Commodity: k, Demand: gc.demand.draw(rng)})
	}
	return ds, nil
}

func anyTrue(row []bool) bool {
	for _, b := range row {
		if b {
			return true
		}
	}
	return false
}
