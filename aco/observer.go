package aco

// Observer is notified by a Simulation as epochs commit.
// Implementations must not retain EpochResult slices beyond the call
// if they mutate them.
type Observer interface {
	// EpochCompleted is called once per committed epoch.
	EpochCompleted(res EpochResult)

	// AntStalled is called for every ant stalled under the StallAnt policy.
	AntStalled(err *InfeasibleRoutingError)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) EpochCompleted(EpochResult)           {}
func (NopObserver) AntStalled(*InfeasibleRoutingError) {}
