package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a user-typed amount into a float64.
//
// It accepts plain floating-point input first, then falls back to two
// locale tolerances: a comma decimal separator (12,34) and comma thousands
// grouping (1,234.56). The sign is preserved; negative means outflow.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	// Comma as decimal separator, only when no dot competes for the role.
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
			return v, nil
		}
	}

	// Comma as thousands grouping.
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return v, nil
	}

	return 0, fmt.Errorf("parse amount %q: %w", s, ErrInvalidAmount)
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"BRL": "R$",
}

// FormatAmount renders an amount for display with a currency symbol and
// two decimal places. Unknown currency codes are used as a prefix.
func FormatAmount(v float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + symbol + strconv.FormatFloat(v, 'f', 2, 64)
}
