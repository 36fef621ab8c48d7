// Package core provides the static layered network and the mutable arc tables
// that an ant colony routes commodities through.
//
// The network N = (V, A) is a fixed partition of integer node identifiers into
// ordered layers:
//
//   - Node 1 is the unique source and sits alone in layer 0.
//   - Node nodes+2 is the unique sink and sits alone in the last layer.
//   - Every other node id belongs to layer ceil((id-1) / nodesPerLayer), where
//     nodesPerLayer = nodes / (layers-2).
//   - Arcs connect a node of layer i to a node of layer i+1 only.
//
// Why split Network and Tables?
//
//   - Network is immutable after NewNetwork returns: layers, arcs, capacities,
//     per-commodity costs and desirabilities. It may be shared freely.
//   - Tables owns the two mutable per-run tables: remaining capacity (reset
//     every epoch) and pheromone (evolves across epochs).
//
// Storage layout:
//
//	Arcs receive dense indices in ascending (from, to) order. Every
//	per-(arc, commodity) table is a flat slice addressed by
//	arc*commodities + (commodity-1), so "arc carries commodity k" is an
//	explicit flag (Carries) and never implied by map presence.
//
// Deterministic iteration:
//
//	Layer(i)      ascending node id
//	Outgoing(n)   ascending target id
//	Arcs()        ascending (from, to)
//
// Errors:
//
//	ErrLayerCount      - fewer than 3 layers.
//	ErrNodeCount       - node count does not split evenly over the inner layers.
//	ErrCommodityCount  - fewer than 1 commodity.
//	ErrNodeNotFound    - arc endpoint outside 1..nodes+2.
//	ErrArcSkipsLayer   - arc does not lead from layer i to layer i+1.
//	ErrCommodityRange  - commodity outside 1..commodities.
//	ErrBadCost         - cost ≤ 0 (desirability 1/cost undefined).
//	ErrBadCapacity     - negative capacity.
//	ErrCapacityConflict- two records for one physical arc disagree on capacity.
//	ErrDuplicateArc    - one (arc, commodity) pair defined twice.
//	ErrArcNotFound     - lookup of a missing arc.
//	ErrCapacityUnderflow - Consume would drive remaining capacity below zero.
//
// Capacity bound:
//
//	MaxFlow(ctx, k) runs Dinic over the static capacities and returns how
//	many units can reach the sink in one epoch (k == 0: all arcs).
//
// Complexity:
//
//	NewNetwork: O(V + A·log A) for sorting arc keys.
//	All lookups: O(1) except ArcIndex (one map probe).
//	MaxFlow: O(V²·A) worst case.
package core
