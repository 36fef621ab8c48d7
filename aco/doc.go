// Package aco implements the multi-commodity ant colony epoch engine over a
// layered core.Network.
//
// A Simulation owns one colony of ants, the commodity ledger, the mutable
// arc tables (remaining capacity and pheromone) and a single seeded random
// stream. Each call to AdvanceEpoch runs one full round:
//
//	IDLE → STAGED → ADVANCING(0..L-2) → COLLECTED → SETTLED → IDLE
//
//  1. Stage:   every idle ant moves to the source; its path restarts there.
//  2. Advance: layer by layer (ascending node id, ascending ant id) each ant
//     picks a next node with the roulette-wheel Selector, clamps its package
//     to the arc's remaining capacity (a shrink is given back to the ledger),
//     moves, and consumes capacity.
//  3. Collect: every surviving ant is at the sink; it pays
//     PackageSize × Σ cost along its path, and grows its package by one while
//     its commodity's demand is not met.
//  4. Settle:  Evaporate every pheromone entry, Deposit
//     PheromoneConstant/TotalPaid on each collected ant's hops (clamped after
//     every single deposit), and reset remaining capacity.
//
// Ownership:
//
//	Ants live in an arena indexed by id. The idle pool and every node hold
//	ordered id sets; moving an ant removes its id from one set and inserts it
//	into another. A failed removal or insertion is an InvariantViolation.
//
// Determinism:
//
//	One *rand.Rand per Simulation (Options.Seed, 0 → default seed) is drawn
//	once per routing decision in layer → node → ant order. Two simulations
//	built from the same network, parameters and seed produce identical paths
//	and tables.
//
// Errors:
//
//	ErrBadParams          - invalid Params or demand records.
//	ErrInfeasibleRouting  - wrapped by *InfeasibleRoutingError (ant, node, commodity, epoch).
//	ErrInvariant          - wrapped by *InvariantViolation.
//	ErrStateInvalid       - any call after an aborted epoch.
//
// A Simulation is not safe for concurrent use.
package aco
