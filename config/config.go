// Package config loads and validates the named integer parameters of an
// antflow run.
//
// Two encodings are accepted:
//
//	# flat key-value (one "KEY VALUE" pair per line)
//	EPOCHS 50
//	ANTS 20
//
//	# YAML (lower snake-case keys)
//	epochs: 50
//	ants: 20
//
// Every parameter except SEED is required. Validate reports all problems at
// once as a *ConfigurationError.
package config

// Flat-file keys.
const (
	KeyEpochs               = "EPOCHS"
	KeyAnts                 = "ANTS"
	KeyNodes                = "NODES"
	KeyLayers               = "LAYERS"
	KeyPheromoneDegradation = "PHEROMONE_DEGRADATION"
	KeyCommodities          = "COMMODITIES"
	KeyDensity              = "DENSITY"
	KeyPheromoneConstant    = "PHEROMONE_CONSTANT"
	KeyPheromoneMax         = "PHEROMONE_MAX"
	KeyPheromoneMin         = "PHEROMONE_MIN"
	KeySeed                 = "SEED"
)

// RequiredKeys lists the keys that must appear in a flat configuration.
var RequiredKeys = []string{
	KeyEpochs, KeyAnts, KeyNodes, KeyLayers, KeyPheromoneDegradation,
	KeyCommodities, KeyDensity, KeyPheromoneConstant, KeyPheromoneMax, KeyPheromoneMin,
}

// Config holds the run parameters.
type Config struct {
	// Epochs is the number of rounds a driver runs.
	Epochs int `yaml:"epochs" json:"epochs" validate:"min=0"`

	// Ants is the colony size.
	Ants int `yaml:"ants" json:"ants" validate:"min=1"`

	// Nodes is the number of inner nodes (source and sink excluded).
	Nodes int `yaml:"nodes" json:"nodes" validate:"min=1"`

	// Layers is the number of layers, source and sink layers included.
	Layers int `yaml:"layers" json:"layers" validate:"min=3"`

	// PheromoneDegradation is the evaporation percentage per epoch.
	PheromoneDegradation int `yaml:"pheromone_degradation" json:"pheromone_degradation" validate:"min=0,max=100"`

	// Commodities is the number of commodity types, numbered 1..Commodities.
	Commodities int `yaml:"commodities" json:"commodities" validate:"min=1"`

	// Density is the arc probability percentage used by the instance generator.
	Density int `yaml:"density" json:"density" validate:"min=0,max=100"`

	// PheromoneConstant scales each deposit: delta = constant / total paid.
	PheromoneConstant int `yaml:"pheromone_constant" json:"pheromone_constant" validate:"min=1"`

	// PheromoneMax is the upper pheromone bound.
	PheromoneMax int `yaml:"pheromone_max" json:"pheromone_max" validate:"min=1,gtefield=PheromoneMin"`

	// PheromoneMin is the lower pheromone bound and the initial level.
	PheromoneMin int `yaml:"pheromone_min" json:"pheromone_min" validate:"min=1"`

	// Seed fixes the random stream; 0 selects the default seed.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Default returns a small configuration that validates.
func Default() Config {
	return Config{
		Epochs:               50,
		Ants:                 20,
		Nodes:                6,
		Layers:               5,
		PheromoneDegradation: 10,
		Commodities:          2,
		Density:              60,
		PheromoneConstant:    100,
		PheromoneMax:         50,
		PheromoneMin:         1,
	}
}

// NodesPerLayer returns Nodes/(Layers-2), or 0 when Layers < 3.
func (c Config) NodesPerLayer() int {
	if c.Layers < 3 {
		return 0
	}
	return c.Nodes / (c.Layers - 2)
}

// fields maps flat keys to the integer fields of c.
func (c *Config) fields() map[string]*int {
	return map[string]*int{
		KeyEpochs:               &c.Epochs,
		KeyAnts:                 &c.Ants,
		KeyNodes:                &c.Nodes,
		KeyLayers:               &c.Layers,
		KeyPheromoneDegradation: &c.PheromoneDegradation,
		KeyCommodities:          &c.Commodities,
		KeyDensity:              &c.Density,
		KeyPheromoneConstant:    &c.PheromoneConstant,
		KeyPheromoneMax:         &c.PheromoneMax,
		KeyPheromoneMin:         &c.PheromoneMin,
	}
}
