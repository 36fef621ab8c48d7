package aco

import "fmt"

// Ledger tracks per-commodity demand (fixed) and cumulative supply.
// Only the epoch engine mutates supply.
type Ledger struct {
	demand []int // commodity-1 → target
	supply []int // commodity-1 → delivered so far
}

// NewLedger seeds a ledger for commodities 1..commodities. Commodities
// without a record have demand 0 and supply 0.
func NewLedger(commodities int, demands []Demand) (*Ledger, error) {
	l := &Ledger{
		demand: make([]int, commodities),
		supply: make([]int, commodities),
	}
	seen := make([]bool, commodities)
	for _, d := range demands {
		switch {
		case d.Commodity < 1 || d.Commodity > commodities:
			return nil, fmt.Errorf("%w: demand for commodity %d not in 1..%d", ErrBadParams, d.Commodity, commodities)
		case seen[d.Commodity-1]:
			return nil, fmt.Errorf("%w: duplicate demand for commodity %d", ErrBadParams, d.Commodity)
		case d.Amount < 0 || d.Supply < 0:
			return nil, fmt.Errorf("%w: negative demand or supply for commodity %d", ErrBadParams, d.Commodity)
		}
		seen[d.Commodity-1] = true
		l.demand[d.Commodity-1] = d.Amount
		l.supply[d.Commodity-1] = d.Supply
	}
	return l, nil
}

// Demand returns the target of commodity k.
func (l *Ledger) Demand(k int) int { return l.demand[k-1] }

// Supply returns the cumulative supply of commodity k.
func (l *Ledger) Supply(k int) int { return l.supply[k-1] }

// Gap returns Demand(k) - Supply(k).
func (l *Ledger) Gap(k int) int { return l.demand[k-1] - l.supply[k-1] }

// giveBack removes a capacity shortfall from commodity k's supply.
func (l *Ledger) giveBack(k, amount int) { l.supply[k-1] -= amount }

// fill books one more unit for commodity k while demand is unmet.
func (l *Ledger) fill(k int) bool {
	if l.Gap(k) <= 0 {
		return false
	}
	l.supply[k-1]++
	return true
}

// Snapshot returns every entry ascending by commodity id.
func (l *Ledger) Snapshot() []Commodity {
	out := make([]Commodity, len(l.demand))
	for i := range l.demand {
		out[i] = Commodity{ID: i + 1, Demand: l.demand[i], Supply: l.supply[i]}
	}
	return out
}
