// Package antflow simulates multi-commodity flow assignment on layered
// networks with an ant colony.
//
// A colony of ants carries commodity packages from a single source, layer by
// layer, to a single sink. Every arc has a capacity that bounds the units
// routed over it in one epoch; every (arc, commodity) pair has a cost and a
// pheromone level. Ants pick their next node with a roulette wheel weighted by
// pheromone × 1/cost. After each epoch pheromone evaporates and every ant that
// reached the sink deposits constant/paid on its route, so cheap feasible
// routes attract later ants.
//
// Packages:
//
//	core/      layered Network (partition, arcs, per-commodity cost) and the
//	           mutable Tables (remaining capacity, pheromone)
//	aco/       Simulation: the epoch engine, Selector, pheromone update, ledger
//	config/    flat KEY VALUE and YAML configuration, validation
//	dataset/   arc list and supply list readers/writers, Instance assembly
//	generator/ random layered datasets driven by DENSITY
//	metrics/   Prometheus Registry implementing aco.Observer
//	report/    per-run report as JSON, YAML or terminal table
//	logging/   logr over zap with verbosity levels
//	cmd/antflow the command line driver (run, generate, validate, version)
//
// Quick start:
//
//	cfg, _ := config.Load("aco.conf")
//	ds, _ := dataset.Load("aco.model", "aco.supply")
//	in, _ := dataset.Build(cfg, ds)
//	sim, _ := in.NewSimulation(aco.Options{OnInfeasible: aco.StallAnt})
//	results, err := sim.Run(ctx, cfg.Epochs)
package antflow
