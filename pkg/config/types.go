package config

import (
	"fmt"
	"time"
)

// Shared helpers used across configuration structs

// parseOptionalDuration parses a duration string from YAML, leaving dst
// untouched when the field is absent. Used by the UnmarshalYAML methods
// of sections carrying time.Duration fields, which yaml.v3 cannot decode
// from "500ms"-style strings on its own.
func parseOptionalDuration(field, raw string, dst *time.Duration) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = d
	return nil
}
