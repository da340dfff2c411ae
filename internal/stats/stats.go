// Package stats computes aggregate statistics over label/amount pairs.
package stats

import (
	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/abgdnv/storekeeper/internal/record"
	"github.com/shopspring/decimal"
)

// Summary holds the aggregates of a non-empty set of entries.
// MaxLabel and MinLabel name the first entry, in input order, that reached each extreme.
type Summary struct {
	Count    int
	Sum      decimal.Decimal
	Average  decimal.Decimal
	Max      decimal.Decimal
	MaxLabel string
	Min      decimal.Decimal
	MinLabel string
}

// Compute returns the sum, average, extremes and count of entries.
// Returns ErrEmptyInput if entries is empty.
func Compute(entries []record.Entry) (Summary, error) {
	if len(entries) == 0 {
		return Summary{}, storeerrors.ErrEmptyInput
	}

	first := entries[0]
	s := Summary{
		Count:    len(entries),
		Sum:      decimal.Zero,
		Max:      first.Amount,
		MaxLabel: first.Label,
		Min:      first.Amount,
		MinLabel: first.Label,
	}
	for _, e := range entries {
		s.Sum = s.Sum.Add(e.Amount)
		// strict comparisons: later equal values never replace the recorded extreme
		if e.Amount.GreaterThan(s.Max) {
			s.Max, s.MaxLabel = e.Amount, e.Label
		}
		if e.Amount.LessThan(s.Min) {
			s.Min, s.MinLabel = e.Amount, e.Label
		}
	}
	s.Average = s.Sum.Div(decimal.NewFromInt(int64(s.Count)))
	return s, nil
}
