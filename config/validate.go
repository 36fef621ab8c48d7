package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks field bounds through struct tags, then the cross-field
// rules the tags cannot express. Every violation is collected.
func (c Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &ConfigurationError{Source: "config", Err: err}
		}
		for _, fe := range verrs {
			problems = append(problems, formatFieldError(fe))
		}
	}

	// nodes_per_layer must be a positive integer so that source and sink
	// each sit alone in their layer.
	if c.Layers >= 3 && c.Nodes >= 1 {
		inner := c.Layers - 2
		if c.Nodes < inner || c.Nodes%inner != 0 {
			problems = append(problems, fmt.Sprintf(
				"Nodes: %d inner nodes do not split evenly over %d inner layers", c.Nodes, inner))
		}
	}

	if len(problems) > 0 {
		return &ConfigurationError{Source: "config", Problems: problems}
	}
	return nil
}

// formatFieldError renders one validator failure.
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s: value %v is below minimum %s", fe.Field(), fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: value %v exceeds maximum %s", fe.Field(), fe.Value(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s: value %v must be at least %s", fe.Field(), fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}
