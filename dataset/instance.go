package dataset

import (
	"fmt"

	"github.com/katalvlaran/antflow/aco"
	"github.com/katalvlaran/antflow/config"
	"github.com/katalvlaran/antflow/core"
)

// Instance is everything a Simulation needs, checked against one another.
type Instance struct {
	Config  config.Config
	Network *core.Network
	Params  aco.Params
	Demands []aco.Demand
}

// Build validates cfg, builds the network from ds.Arcs and converts the
// supply records into ledger seeds. Any failure is a ConfigurationError.
func Build(cfg config.Config, ds *Dataset) (*Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	net, err := core.NewNetwork(cfg.Nodes, cfg.Layers, cfg.Commodities, ds.Arcs)
	if err != nil {
		return nil, config.Wrap("model", err)
	}

	demands := make([]aco.Demand, 0, len(ds.Supplies))
	var problems []string
	for _, s := range ds.Supplies {
		if s.Commodity > cfg.Commodities {
			problems = append(problems,
				fmt.Sprintf("commodity %d exceeds COMMODITIES=%d", s.Commodity, cfg.Commodities))
			continue
		}
		demands = append(demands, aco.Demand{Commodity: s.Commodity, Amount: s.Demand, Supply: s.Initial})
	}
	if len(problems) > 0 {
		return nil, &config.ConfigurationError{Source: "supply", Problems: problems}
	}
	if _, err = aco.NewLedger(cfg.Commodities, demands); err != nil {
		return nil, config.Wrap("supply", err)
	}

	return &Instance{
		Config:  cfg,
		Network: net,
		Params: aco.Params{
			Ants:              cfg.Ants,
			Degradation:       cfg.PheromoneDegradation,
			PheromoneConstant: float64(cfg.PheromoneConstant),
			PheromoneMin:      float64(cfg.PheromoneMin),
			PheromoneMax:      float64(cfg.PheromoneMax),
		},
		Demands: demands,
	}, nil
}

// NewSimulation starts a simulation over the instance. A zero opts.Seed
// falls back to the configured SEED.
func (in *Instance) NewSimulation(opts aco.Options) (*aco.Simulation, error) {
	if opts.Seed == 0 {
		opts.Seed = in.Config.Seed
	}
	return aco.New(in.Network, in.Params, in.Demands, opts)
}
