package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration classifies every configuration failure: missing or
// malformed parameters and structurally invalid arc or supply records.
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// ConfigurationError collects every problem found in one input source so a
// run can be rejected with a single report before any simulation starts.
type ConfigurationError struct {
	// Source names the input (file name or "config").
	Source string

	// Problems lists each violation in discovery order.
	Problems []string

	// Err is the underlying cause, when one exists.
	Err error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config: invalid %s", e.Source)
	switch len(e.Problems) {
	case 0:
	case 1:
		fmt.Fprintf(&b, ": %s", e.Problems[0])
	default:
		fmt.Fprintf(&b, ": %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both ErrInvalidConfiguration and the underlying cause.
func (e *ConfigurationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidConfiguration}
	}
	return []error{ErrInvalidConfiguration, e.Err}
}

// Errorf builds a single-problem ConfigurationError for source.
func Errorf(source, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Source: source, Problems: []string{fmt.Sprintf(format, args...)}}
}

// Wrap classifies err as a configuration failure of source.
// A nil err yields nil.
func Wrap(source string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return err
	}
	return &ConfigurationError{Source: source, Err: err}
}
