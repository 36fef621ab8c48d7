package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antflow/config"
	"github.com/katalvlaran/antflow/dataset"
	"github.com/katalvlaran/antflow/generator"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an arc list and a supply list for a configuration",
		Long: `Generate a random layered arc list and supply list.

Every node of layer i connects to each node of layer i+1 with probability
DENSITY/100; missing exits and entries are forced so that every node can
reach the sink.

Examples:
  antflow generate --config aco.conf --model aco.model --supply aco.supply
  antflow generate --config aco.conf --model aco.model --supply aco.supply --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFromFlags(cmd)
			if err != nil {
				return err
			}
			cfgPath, _ := cmd.Flags().GetString("config")
			modelPath, _ := cmd.Flags().GetString("model")
			supplyPath, _ := cmd.Flags().GetString("supply")

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			seed := cfg.Seed
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetInt64("seed")
			}
			opts := []generator.Option{generator.WithSeed(seed)}
			if cmd.Flags().Changed("cost-min") || cmd.Flags().Changed("cost-max") {
				lo, _ := cmd.Flags().GetInt("cost-min")
				hi, _ := cmd.Flags().GetInt("cost-max")
				if lo < 1 || hi < lo {
					return fmt.Errorf("invalid cost range [%d, %d]", lo, hi)
				}
				opts = append(opts, generator.WithCostRange(lo, hi))
			}

			ds, err := generator.Layered(cfg, opts...)
			if err != nil {
				return err
			}
			if err = writeFile(modelPath, func(f *os.File) error { return dataset.WriteArcs(f, ds.Arcs) }); err != nil {
				return err
			}
			if err = writeFile(supplyPath, func(f *os.File) error { return dataset.WriteSupplies(f, ds.Supplies) }); err != nil {
				return err
			}

			logger.Info("dataset generated", "model", modelPath, "supply", supplyPath, "records", len(ds.Arcs), "seed", seed)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d arc records to %s and %d supply records to %s\n",
				len(ds.Arcs), modelPath, len(ds.Supplies), supplyPath)
			return nil
		},
	}

	cmd.Flags().String("config", "aco.conf", "Configuration file (flat KEY VALUE, or .yaml/.yml)")
	cmd.Flags().String("model", "aco.model", "Arc list to write")
	cmd.Flags().String("supply", "aco.supply", "Supply list to write")
	cmd.Flags().Int64("seed", 0, "Override SEED")
	cmd.Flags().Int("cost-min", 1, "Lowest per-unit arc cost")
	cmd.Flags().Int("cost-max", 10, "Highest per-unit arc cost")

	return cmd
}

// writeFile creates path and hands it to fn.
func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err = fn(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
