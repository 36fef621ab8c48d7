package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse reads the flat "KEY VALUE" format. Blank lines and text after '#'
// are ignored. Unknown, duplicate, missing or non-integer keys are reported
// together; the result is validated before it is returned.
func Parse(r io.Reader, source string) (Config, error) {
	var (
		cfg      Config
		problems []string
		seen     = make(map[string]bool)
		fields   = cfg.fields()
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		tok := strings.Fields(text)
		if len(tok) == 0 {
			continue
		}
		if len(tok) != 2 {
			problems = append(problems, fmt.Sprintf("line %d: want KEY VALUE, got %d fields", line, len(tok)))
			continue
		}
		key := strings.ToUpper(tok[0])
		if seen[key] {
			problems = append(problems, fmt.Sprintf("line %d: duplicate key %s", line, key))
			continue
		}
		seen[key] = true

		if key == KeySeed {
			v, err := strconv.ParseInt(tok[1], 10, 64)
			if err != nil {
				problems = append(problems, fmt.Sprintf("line %d: %s: %q is not an integer", line, key, tok[1]))
				continue
			}
			cfg.Seed = v
			continue
		}
		dst, ok := fields[key]
		if !ok {
			problems = append(problems, fmt.Sprintf("line %d: unknown key %s", line, key))
			continue
		}
		v, err := strconv.Atoi(tok[1])
		if err != nil {
			problems = append(problems, fmt.Sprintf("line %d: %s: %q is not an integer", line, key, tok[1]))
			continue
		}
		*dst = v
	}
	if err := sc.Err(); err != nil {
		return Config{}, &ConfigurationError{Source: source, Err: err}
	}

	for _, key := range RequiredKeys {
		if !seen[key] {
			problems = append(problems, fmt.Sprintf("missing key %s", key))
		}
	}
	if len(problems) > 0 {
		return Config{}, &ConfigurationError{Source: source, Problems: problems}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, withSource(err, source)
	}
	return cfg, nil
}

// yamlConfig mirrors Config with pointers so absent keys are detectable.
type yamlConfig struct {
	Epochs               *int   `yaml:"epochs"`
	Ants                 *int   `yaml:"ants"`
	Nodes                *int   `yaml:"nodes"`
	Layers               *int   `yaml:"layers"`
	PheromoneDegradation *int   `yaml:"pheromone_degradation"`
	Commodities          *int   `yaml:"commodities"`
	Density              *int   `yaml:"density"`
	PheromoneConstant    *int   `yaml:"pheromone_constant"`
	PheromoneMax         *int   `yaml:"pheromone_max"`
	PheromoneMin         *int   `yaml:"pheromone_min"`
	Seed                 *int64 `yaml:"seed"`
}

// ParseYAML reads the YAML encoding. Unknown keys are rejected.
func ParseYAML(r io.Reader, source string) (Config, error) {
	var y yamlConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &ConfigurationError{Source: source, Err: err}
	}

	var (
		cfg      Config
		problems []string
	)
	take := func(key string, src *int, dst *int) {
		if src == nil {
			problems = append(problems, fmt.Sprintf("missing key %s", strings.ToLower(key)))
			return
		}
		*dst = *src
	}
	take(KeyEpochs, y.Epochs, &cfg.Epochs)
	take(KeyAnts, y.Ants, &cfg.Ants)
	take(KeyNodes, y.Nodes, &cfg.Nodes)
	take(KeyLayers, y.Layers, &cfg.Layers)
	take(KeyPheromoneDegradation, y.PheromoneDegradation, &cfg.PheromoneDegradation)
	take(KeyCommodities, y.Commodities, &cfg.Commodities)
	take(KeyDensity, y.Density, &cfg.Density)
	take(KeyPheromoneConstant, y.PheromoneConstant, &cfg.PheromoneConstant)
	take(KeyPheromoneMax, y.PheromoneMax, &cfg.PheromoneMax)
	take(KeyPheromoneMin, y.PheromoneMin, &cfg.PheromoneMin)
	if y.Seed != nil {
		cfg.Seed = *y.Seed
	}
	if len(problems) > 0 {
		return Config{}, &ConfigurationError{Source: source, Problems: problems}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, withSource(err, source)
	}
	return cfg, nil
}

// Load reads path, choosing YAML for .yaml/.yml and the flat format otherwise.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &ConfigurationError{Source: path, Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f, path)
	default:
		return Parse(f, path)
	}
}

// Write emits cfg in the flat format, SEED last and only when set.
func Write(w io.Writer, cfg Config) error {
	fields := cfg.fields()
	for _, key := range RequiredKeys {
		if _, err := fmt.Fprintf(w, "%s %d\n", key, *fields[key]); err != nil {
			return err
		}
	}
	if cfg.Seed != 0 {
		if _, err := fmt.Fprintf(w, "%s %d\n", KeySeed, cfg.Seed); err != nil {
			return err
		}
	}
	return nil
}

// withSource relabels a validation error with the input it came from.
func withSource(err error, source string) error {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		ce.Source = source
	}
	return err
}
