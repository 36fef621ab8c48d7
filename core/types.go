package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction and table access.
var (
	// ErrLayerCount indicates fewer than three layers were requested.
	ErrLayerCount = errors.New("core: at least 3 layers are required")

	// ErrNodeCount indicates the inner nodes cannot be split evenly over the inner layers.
	ErrNodeCount = errors.New("core: node count does not fill the inner layers evenly")

	// ErrCommodityCount indicates fewer than one commodity.
	ErrCommodityCount = errors.New("core: at least 1 commodity is required")

	// ErrNodeNotFound indicates an arc references a node outside the network.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrArcSkipsLayer indicates an arc that does not lead to the next layer.
	ErrArcSkipsLayer = errors.New("core: arc must lead from layer i to layer i+1")

	// ErrCommodityRange indicates a commodity id outside 1..commodities.
	ErrCommodityRange = errors.New("core: commodity out of range")

	// ErrBadCost indicates a non-positive per-unit cost.
	ErrBadCost = errors.New("core: cost must be positive")

	// ErrBadCapacity indicates a negative capacity.
	ErrBadCapacity = errors.New("core: capacity must be non-negative")

	// ErrCapacityConflict indicates two records disagree on a physical arc's capacity.
	ErrCapacityConflict = errors.New("core: conflicting capacity for arc")

	// ErrDuplicateArc indicates an (arc, commodity) pair defined more than once.
	ErrDuplicateArc = errors.New("core: duplicate arc for commodity")

	// ErrArcNotFound indicates a lookup of an arc that does not exist.
	ErrArcNotFound = errors.New("core: arc not found")

	// ErrCapacityUnderflow indicates a consumption larger than the remaining capacity.
	ErrCapacityUnderflow = errors.New("core: remaining capacity would go negative")
)

// ArcKey identifies a physical arc by its ordered endpoints.
type ArcKey struct {
	From int
	To   int
}

// String renders the key as "from→to".
func (k ArcKey) String() string {
	return fmt.Sprintf("%d→%d", k.From, k.To)
}

// ArcSpec is one input record: a physical arc carrying one commodity.
// Several specs may describe the same physical arc for different commodities;
// they must agree on Capacity.
type ArcSpec struct {
	From      int
	To        int
	Commodity int
	Cost      int
	Capacity  int
}

// Key returns the physical arc of the record.
func (s ArcSpec) Key() ArcKey {
	return ArcKey{From: s.From, To: s.To}
}

// Arc is the static view of one physical arc.
type Arc struct {
	// Index is the dense arc index used by every per-arc table.
	Index int

	// From is the tail node id.
	From int

	// To is the head node id.
	To int

	// Capacity is the static upper bound on cumulative flow per epoch.
	Capacity int
}

// Key returns the ordered endpoints of the arc.
func (a Arc) Key() ArcKey {
	return ArcKey{From: a.From, To: a.To}
}

// ArcError describes an invalid arc record together with its cause.
type ArcError struct {
	Spec ArcSpec
	Err  error
}

func (e *ArcError) Error() string {
	return fmt.Sprintf("core: arc %d→%d commodity %d: %v", e.Spec.From, e.Spec.To, e.Spec.Commodity, e.Err)
}

// Unwrap exposes the sentinel cause for errors.Is.
func (e *ArcError) Unwrap() error { return e.Err }
