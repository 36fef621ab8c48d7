package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/antflow/config"
	"github.com/katalvlaran/antflow/core"
)

// ReadArcs parses an arc list. Records are returned in file order; range
// checks against the layered partition happen in Build.
func ReadArcs(r io.Reader, source string) ([]core.ArcSpec, error) {
	var specs []core.ArcSpec
	err := scanRecords(r, source, func(line int, tok []string) string {
		switch len(tok) {
		case 5:
		case 7:
			tok = tok[1:6]
		default:
			return fmt.Sprintf("line %d: want 5 or 7 fields, got %d", line, len(tok))
		}
		v, bad := atois(tok)
		if bad != "" {
			return fmt.Sprintf("line %d: %q is not an integer", line, bad)
		}
		specs = append(specs, core.ArcSpec{From: v[0], To: v[1], Commodity: v[2], Cost: v[3], Capacity: v[4]})
		return ""
	})
	if err != nil {
		return nil, err
	}
	return specs, nil
}

// ReadSupplies parses a supply list. Commodities must be positive and unique;
// demand and initial supply must not be negative.
func ReadSupplies(r io.Reader, source string) ([]SupplyRecord, error) {
	var (
		recs []SupplyRecord
		seen = make(map[int]int)
	)
	err := scanRecords(r, source, func(line int, tok []string) string {
		if len(tok) < 2 || len(tok) > 3 {
			return fmt.Sprintf("line %d: want 2 or 3 fields, got %d", line, len(tok))
		}
		v, bad := atois(tok)
		if bad != "" {
			return fmt.Sprintf("line %d: %q is not an integer", line, bad)
		}
		rec := SupplyRecord{Commodity: v[0], Demand: v[1]}
		if len(v) == 3 {
			rec.Initial = v[2]
		}
		switch {
		case rec.Commodity < 1:
			return fmt.Sprintf("line %d: commodity %d must be positive", line, rec.Commodity)
		case rec.Demand < 0 || rec.Initial < 0:
			return fmt.Sprintf("line %d: commodity %d: negative amount", line, rec.Commodity)
		}
		if prev, dup := seen[rec.Commodity]; dup {
			return fmt.Sprintf("line %d: commodity %d already listed on line %d", line, rec.Commodity, prev)
		}
		seen[rec.Commodity] = line
		recs = append(recs, rec)
		return ""
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// LoadArcs reads the arc list at path.
func LoadArcs(path string) ([]core.ArcSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, config.Wrap(path, err)
	}
	defer f.Close()
	return ReadArcs(f, path)
}

// LoadSupplies reads the supply list at path.
func LoadSupplies(path string) ([]SupplyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, config.Wrap(path, err)
	}
	defer f.Close()
	return ReadSupplies(f, path)
}

// Load reads both lists.
func Load(modelPath, supplyPath string) (*Dataset, error) {
	arcs, err := LoadArcs(modelPath)
	if err != nil {
		return nil, err
	}
	supplies, err := LoadSupplies(supplyPath)
	if err != nil {
		return nil, err
	}
	return &Dataset{Arcs: arcs, Supplies: supplies}, nil
}

// scanRecords feeds the tokens of every non-empty line to fn and collects
// the problems it reports.
func scanRecords(r io.Reader, source string, fn func(line int, tok []string) string) error {
	var problems []string
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
		if p := fn(line, tok); p != "" {
			problems = append(problems, p)
		}
	}
	if err := sc.Err(); err != nil {
		return config.Wrap(source, err)
	}
	if len(problems) > 0 {
		return &config.ConfigurationError{Source: source, Problems: problems}
	}
	return nil
}

// atois converts every token, returning the first offending token.
func atois(tok []string) ([]int, string) {
	out := make([]int, len(tok))
	for i, s := range tok {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, s
		}
		out[i] = v
	}
	return out, ""
}
