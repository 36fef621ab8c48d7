package aco

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the epoch engine.
var (
	// ErrNilNetwork is returned when New receives a nil network.
	ErrNilNetwork = errors.New("aco: network is nil")

	// ErrBadParams classifies invalid parameters or demand records.
	ErrBadParams = errors.New("aco: invalid parameters")

	// ErrInfeasibleRouting indicates an ant found every outgoing arc saturated.
	ErrInfeasibleRouting = errors.New("aco: no feasible outgoing arc")

	// ErrInvariant indicates internal state broke a structural invariant.
	ErrInvariant = errors.New("aco: invariant violation")

	// ErrStateInvalid is returned by AdvanceEpoch after an aborted epoch.
	ErrStateInvalid = errors.New("aco: simulation state invalid after aborted epoch")

	// ErrAntNotFound is returned by Ant for an unknown id.
	ErrAntNotFound = errors.New("aco: ant not found")
)

// InfeasibleRoutingError reports an ant that cannot leave its node because no
// outgoing arc carrying its commodity has capacity left.
type InfeasibleRoutingError struct {
	Epoch     int
	AntID     int
	Source    int
	Commodity int
}

func (e *InfeasibleRoutingError) Error() string {
	if e.AntID < 0 {
		return fmt.Sprintf("aco: node %d has no feasible arc for commodity %d", e.Source, e.Commodity)
	}
	return fmt.Sprintf("aco: epoch %d: ant %d stuck at node %d: no feasible arc for commodity %d",
		e.Epoch, e.AntID, e.Source, e.Commodity)
}

// Unwrap returns ErrInfeasibleRouting.
func (e *InfeasibleRoutingError) Unwrap() error { return ErrInfeasibleRouting }

// InvariantViolation reports a broken internal invariant: negative capacity,
// an ant owned by two containers, an ant missing from the sink at collection.
type InvariantViolation struct {
	Epoch  int
	Detail string
	Err    error
}

func (e *InvariantViolation) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aco: epoch %d: invariant violation: %s: %v", e.Epoch, e.Detail, e.Err)
	}
	return fmt.Sprintf("aco: epoch %d: invariant violation: %s", e.Epoch, e.Detail)
}

// Unwrap exposes ErrInvariant and the underlying cause.
func (e *InvariantViolation) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvariant}
	}
	return []error{ErrInvariant, e.Err}
}

// violation builds an InvariantViolation.
func violation(epoch int, err error, format string, args ...any) *InvariantViolation {
	return &InvariantViolation{Epoch: epoch, Detail: fmt.Sprintf(format, args...), Err: err}
}

// Ant is one commodity shipment. Values returned by Simulation are copies.
type Ant struct {
	// ID is stable for the ant's lifetime.
	ID int

	// Commodity is (ID mod commodities) + 1.
	Commodity int

	// PackageSize is the amount the ant will carry next epoch.
	PackageSize int

	// Delivered is the amount carried into the sink this epoch (0 when stalled).
	Delivered int

	// Path lists the node ids visited this epoch, starting at the source.
	Path []int

	// TotalPaid is Delivered × Σ cost along Path, set at collection.
	TotalPaid float64

	// Stalled is true when the ant could not route this epoch.
	Stalled bool
}

// clone deep-copies the ant.
func (a Ant) clone() Ant {
	a.Path = append([]int(nil), a.Path...)
	return a
}

// Demand seeds one commodity of the ledger.
type Demand struct {
	Commodity int
	Amount    int
	Supply    int
}

// Commodity is a ledger entry snapshot.
type Commodity struct {
	ID     int
	Demand int
	Supply int
}

// Gap returns Demand - Supply.
func (c Commodity) Gap() int { return c.Demand - c.Supply }

// EpochResult summarizes one committed epoch.
type EpochResult struct {
	// Epoch is the 1-based number of the epoch.
	Epoch int

	// Ants holds every ant after settlement, ascending by id.
	Ants []Ant

	// Collected counts ants that reached the sink.
	Collected int

	// Stalled counts ants that could not route.
	Stalled int

	// Delivered sums the packages carried into the sink.
	Delivered int

	// TotalPaid sums TotalPaid over collected ants.
	TotalPaid float64

	// BestPaid is the lowest TotalPaid among collected ants, 0 when none.
	BestPaid float64

	// Commodities is the ledger after settlement, ascending by id.
	Commodities []Commodity

	// Elapsed is the wall time of the epoch.
	Elapsed time.Duration
}
