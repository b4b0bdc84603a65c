// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// PileName validates a pile name is non-empty after trimming whitespace.
func PileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("pile name is required")
	}
	return nil
}

// PileNameField returns a criterio validator for pile names.
func PileNameField(field, name string) error {
	return criterio.Run(field, name, PileName)
}

// Positive validates n is greater than zero.
func Positive(n int) error {
	if n <= 0 {
		return fmt.Errorf("must be positive, got %d", n)
	}
	return nil
}
