package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antflow/config"
	"github.com/katalvlaran/antflow/dataset"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration and, optionally, its arc and supply lists",
		Long: `Check inputs without running anything.

This command checks for:
  - Missing, unknown, duplicate or out-of-range configuration keys
  - Malformed arc or supply records
  - Arcs that skip a layer or name unknown nodes or commodities
  - Conflicting capacities and duplicate (arc, commodity) records

Examples:
  antflow validate --config aco.conf
  antflow validate --config aco.conf --model aco.model --supply aco.supply`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			modelPath, _ := cmd.Flags().GetString("model")
			supplyPath, _ := cmd.Flags().GetString("supply")
			out := cmd.OutOrStdout()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: ok (%d inner nodes over %d layers, %d per layer)\n",
				cfgPath, cfg.Nodes, cfg.Layers, cfg.NodesPerLayer())

			if modelPath == "" && supplyPath == "" {
				return nil
			}
			if modelPath == "" || supplyPath == "" {
				return fmt.Errorf("--model and --supply must be given together")
			}
			ds, err := dataset.Load(modelPath, supplyPath)
			if err != nil {
				return err
			}
			in, err := dataset.Build(cfg, ds)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: ok (%d records, %d arcs)\n", modelPath, len(ds.Arcs), in.Network.ArcCount())
			for k := 0; k <= in.Network.Commodities(); k++ {
				bound, err := in.Network.MaxFlow(cmd.Context(), k)
				if err != nil {
					return err
				}
				if k == 0 {
					fmt.Fprintf(out, "capacity bound: %d units per epoch\n", bound)
					continue
				}
				fmt.Fprintf(out, "  commodity %d: %d units per epoch\n", k, bound)
			}
			fmt.Fprintf(out, "%s: ok (%d commodities with demand)\n", supplyPath, len(in.Demands))
			return nil
		},
	}

	cmd.Flags().String("config", "aco.conf", "Configuration file (flat KEY VALUE, or .yaml/.yml)")
	cmd.Flags().String("model", "", "Arc list")
	cmd.Flags().String("supply", "", "Supply list")

	return cmd
}
