package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antflow/aco"
	"github.com/katalvlaran/antflow/config"
	"github.com/katalvlaran/antflow/dataset"
	"github.com/katalvlaran/antflow/logging"
	"github.com/katalvlaran/antflow/metrics"
	"github.com/katalvlaran/antflow/report"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation for the configured number of epochs",
		Long: `Run the simulation for EPOCHS epochs and print a report.

An ant that finds every outgoing arc saturated aborts the run unless
--stall is set, in which case it sits out the rest of the epoch.

Examples:
  antflow run --config aco.conf --model aco.model --supply aco.supply
  antflow run --config aco.yaml --model aco.model --supply aco.supply --stall --format json
  antflow run ... --metrics-addr :9090   # keep serving /metrics after the run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFromFlags(cmd)
			if err != nil {
				return err
			}
			cfgPath, _ := cmd.Flags().GetString("config")
			modelPath, _ := cmd.Flags().GetString("model")
			supplyPath, _ := cmd.Flags().GetString("supply")
			stall, _ := cmd.Flags().GetBool("stall")
			format, _ := cmd.Flags().GetString("format")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("epochs") {
				cfg.Epochs, _ = cmd.Flags().GetInt("epochs")
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			ds, err := dataset.Load(modelPath, supplyPath)
			if err != nil {
				return err
			}
			in, err := dataset.Build(cfg, ds)
			if err != nil {
				return err
			}

			ctx, stop := notifyContext(cmd.Context())
			defer stop()

			reg := metrics.NewRegistry()
			var srv *http.Server
			if metricsAddr != "" {
				if srv, err = serveMetrics(metricsAddr, reg, logger); err != nil {
					return err
				}
				defer shutdown(srv, logger)
			}

			opts := aco.Options{
				Logger:       logger.WithName("aco"),
				Observer:     reg,
				OnInfeasible: aco.AbortEpoch,
			}
			if stall {
				opts.OnInfeasible = aco.StallAnt
			}
			rep, runErr := runEpochs(ctx, in, opts, logger)

			if err = rep.Write(cmd.OutOrStdout(), format); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			if srv != nil {
				logger.Info("run finished, serving metrics until interrupted", "addr", metricsAddr)
				<-ctx.Done()
			}
			return nil
		},
	}

	cmd.Flags().String("config", "aco.conf", "Configuration file (flat KEY VALUE, or .yaml/.yml)")
	cmd.Flags().String("model", "aco.model", "Arc list")
	cmd.Flags().String("supply", "aco.supply", "Supply list")
	cmd.Flags().Int("epochs", 0, "Override EPOCHS")
	cmd.Flags().Int64("seed", 0, "Override SEED (0 selects the default seed)")
	cmd.Flags().Bool("stall", false, "Stall ants that cannot route instead of aborting")
	cmd.Flags().String("format", report.FormatTable, "Report format: table, json or yaml")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address")

	return cmd
}

// runEpochs drives the simulation and records every committed epoch.
// The report is returned even when the run stops early.
func runEpochs(ctx context.Context, in *dataset.Instance, opts aco.Options, logger logr.Logger) (*report.Run, error) {
	rep := report.NewRun(in.Config)
	logger = logger.WithValues("run", rep.ID.String())

	sim, err := in.NewSimulation(opts)
	if err != nil {
		rep.Fail(err)
		return rep, err
	}
	if rep.MaxFlow, err = in.Network.MaxFlow(ctx, 0); err != nil {
		rep.Fail(err)
		return rep, err
	}
	logger.Info("run started",
		"epochs", in.Config.Epochs,
		"ants", in.Params.Ants,
		"arcs", in.Network.ArcCount(),
		"commodities", in.Network.Commodities(),
		"maxFlow", rep.MaxFlow)

	for i := 0; i < in.Config.Epochs; i++ {
		res, err := sim.AdvanceEpoch(ctx)
		if err != nil {
			rep.Fail(err)
			return rep, fmt.Errorf("epoch %d: %w", sim.Epoch()+1, err)
		}
		rep.Add(res)
	}
	logger.V(logging.VERBOSE).Info("run finished", "epochs", sim.Epoch())
	return rep, nil
}

// serveMetrics starts an HTTP server exposing reg on /metrics.
func serveMetrics(addr string, reg *metrics.Registry, logger logr.Logger) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "metrics server stopped")
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())
	return srv, nil
}

func shutdown(srv *http.Server, logger logr.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error(err, "metrics server shutdown")
	}
}
