// Package console is the terminal front end of the inventory and ledger programs.
//
// Parsing of raw input is kept in pure functions returning (value, error) so it can be
// tested without a terminal; Prompter and Ask wrap them in retry-until-valid loops.
package console

import (
	"fmt"
	"strconv"
	"strings"

	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/abgdnv/storekeeper/internal/record"
	"github.com/shopspring/decimal"
)

// ParseLabel trims s and rejects blank input.
func ParseLabel(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: value cannot be empty", storeerrors.ErrValidation)
	}
	return s, nil
}

// ParseDecimal reads a culture-invariant decimal: digits with an optional '.' separator.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, ",eE") {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal number", storeerrors.ErrValidation, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal number", storeerrors.ErrValidation, s)
	}
	return d, nil
}

// ParsePositiveDecimal is ParseDecimal restricted to values above zero.
func ParsePositiveDecimal(s string) (decimal.Decimal, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s is not positive", storeerrors.ErrValidation, d)
	}
	return d, nil
}

// ParseInt reads a base-10 integer.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", storeerrors.ErrValidation, strings.TrimSpace(s))
	}
	return n, nil
}

// ParseNonNegativeInt accepts integers >= 0.
func ParseNonNegativeInt(s string) (int, error) {
	return ParseIntInRange(0, maxInt)(s)
}

// ParsePositiveInt accepts integers >= 1.
func ParsePositiveInt(s string) (int, error) {
	return ParseIntInRange(1, maxInt)(s)
}

const maxInt = int(^uint(0) >> 1)

// ParseIntInRange returns a parser accepting integers in [lo, hi].
func ParseIntInRange(lo, hi int) func(string) (int, error) {
	return func(s string) (int, error) {
		n, err := ParseInt(s)
		if err != nil {
			return 0, err
		}
		if n < lo || n > hi {
			return 0, fmt.Errorf("%w: %d is outside [%d, %d]", storeerrors.ErrValidation, n, lo, hi)
		}
		return n, nil
	}
}

// ParseEntry reads a "label; amount" line. The amount must be a positive decimal.
func ParseEntry(s string) (record.Entry, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 2 {
		return record.Entry{}, fmt.Errorf("%w: expected \"name; amount\"", storeerrors.ErrValidation)
	}
	label, err := ParseLabel(parts[0])
	if err != nil {
		return record.Entry{}, err
	}
	amount, err := ParsePositiveDecimal(parts[1])
	if err != nil {
		return record.Entry{}, err
	}
	return record.Entry{Label: label, Amount: amount}, nil
}
