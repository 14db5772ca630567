package core

import "errors"

// Domain errors for core validation and parsing.
var (
	// ErrUnsupportedNumeric indicates a JSON value that is neither a number
	// nor a numeric string.
	ErrUnsupportedNumeric = errors.New("unsupported numeric format")

	// ErrInvalidAmount indicates a user-supplied amount that cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidMonth indicates a month key that is not in yyyy-MM form.
	ErrInvalidMonth = errors.New("invalid month key")

	// ErrInvalidDate indicates a date string that is not in yyyy-MM-dd form.
	ErrInvalidDate = errors.New("invalid date")
)
