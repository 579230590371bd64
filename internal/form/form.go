// Package form coerces raw form input into numeric values. Data entry is
// never blocked on bad numbers: blank or unparsable input becomes zero, and
// invalid references are dropped rather than rejected.
package form

import (
	"strconv"
	"strings"
)

// Amount parses a numeric form value leniently.
func Amount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// OptionalID parses a positive integer reference; absent or invalid input
// yields nil.
func OptionalID(raw *string) *int64 {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}
