package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration invariants that normalization cannot repair.
func (c *Config) Validate() error {
	if err := validateHexColor("render.color", c.Render.Color); err != nil {
		return err
	}
	if err := validateHexColor("render.bg", c.Render.Background); err != nil {
		return err
	}
	if strings.ContainsAny(c.Render.Name, `/\`) {
		return fmt.Errorf("render.name: %q must not contain path separators", c.Render.Name)
	}
	return nil
}

func validateHexColor(field, value string) error {
	if len(value) != 6 {
		return fmt.Errorf("%s: %q is not a six-digit hex color", field, value)
	}
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return fmt.Errorf("%s: %q is not a six-digit hex color", field, value)
		}
	}
	return nil
}
