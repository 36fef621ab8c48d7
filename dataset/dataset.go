// Package dataset reads and writes the static inputs of a run, the arc list
// ("model") and the supply list, and assembles them with a config.Config into
// a ready-to-run Instance.
//
// Arc list, one record per line, '#' comments and blank lines ignored:
//
//	from to commodity cost capacity
//	label from to commodity cost capacity tail   (label and tail are ignored)
//
// Supply list:
//
//	commodity demand [initial_supply]
//
// Every malformed record is reported, with its line number, in a single
// *config.ConfigurationError.
package dataset

import "github.com/katalvlaran/antflow/core"

// SupplyRecord seeds one commodity of the ledger.
type SupplyRecord struct {
	Commodity int `json:"commodity" yaml:"commodity"`
	Demand    int `json:"demand" yaml:"demand"`
	Initial   int `json:"initial,omitempty" yaml:"initial,omitempty"`
}

// Dataset is the raw content of an arc list and a supply list.
type Dataset struct {
	Arcs     []core.ArcSpec
	Supplies []SupplyRecord
}
