package facts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAbbreviation is returned when an entity that has to be rendered
// has no display code.
var ErrMissingAbbreviation = errors.New("missing abbreviation")

// ConfigError lists every problem found while validating a Table.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fact table validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}
