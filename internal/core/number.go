// Package core provides the dependency-free domain helpers shared by the
// API client and the dashboard service: flexible numeric decoding, month
// and date handling, amount parsing and derived budgeting metrics.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexNumber decodes a JSON value whose numeric encoding is not fixed.
//
// The upstream server does not serialize numeric fields consistently:
// integral amounts may arrive as JSON integers, fractional ones as JSON
// floats, and some fields as quoted strings. Decoding attempts, in order:
// a JSON number (float or integer), then a string holding a floating-point
// literal. Anything else fails with ErrUnsupportedNumeric.
type FlexNumber float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return fmt.Errorf("decode numeric: %w", ErrUnsupportedNumeric)
	}

	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("decode numeric %s: %w", s, ErrUnsupportedNumeric)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(unquoted), 64)
		if err != nil {
			return fmt.Errorf("decode numeric %s: %w", s, ErrUnsupportedNumeric)
		}
		*n = FlexNumber(v)
		return nil
	}

	// ParseFloat accepts both integer and float JSON literals. Everything
	// else (true, null, arrays, objects) fails here.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("decode numeric %s: %w", s, ErrUnsupportedNumeric)
	}
	*n = FlexNumber(v)
	return nil
}

// Float64 returns the decoded value.
func (n FlexNumber) Float64() float64 {
	return float64(n)
}
