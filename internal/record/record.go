// Package record defines the contract every stored entry satisfies.
package record

import "github.com/shopspring/decimal"

// Record is anything the store can hold: it has a generated identifier,
// a display label and a non-negative monetary amount.
type Record interface {
	ID() string
	Label() string
	Amount() decimal.Decimal
}

// Entry is the (label, amount) pair used by statistics and conversion.
type Entry struct {
	Label  string
	Amount decimal.Decimal
}

// Entries projects records into label/amount pairs, keeping their order.
func Entries[T Record](items []T) []Entry {
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{Label: item.Label(), Amount: item.Amount()}
	}
	return entries
}

// Total sums the amounts of the given entries.
func Total(entries []Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}
