// Package currency rescales monetary amounts into another unit.
package currency

import (
	"fmt"
	"strings"

	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/abgdnv/storekeeper/internal/record"
	"github.com/shopspring/decimal"
)

// CustomChoice is the menu choice that asks for a caller-supplied rate.
const CustomChoice = 5

// Rate expresses how many local currency units buy one Unit.
type Rate struct {
	Unit    string
	PerUnit decimal.Decimal
}

// presets are indexed by menu choice minus one.
var presets = []Rate{
	{Unit: "USD", PerUnit: decimal.NewFromInt(90)},
	{Unit: "EUR", PerUnit: decimal.NewFromInt(98)},
	{Unit: "GBP", PerUnit: decimal.NewFromInt(115)},
	{Unit: "JPY", PerUnit: decimal.New(6, -1)},
}

// Presets returns the built-in rates in menu order.
func Presets() []Rate {
	out := make([]Rate, len(presets))
	copy(out, presets)
	return out
}

// Preset returns the built-in rate for a menu choice in 1..len(Presets()).
func Preset(choice int) (Rate, bool) {
	if choice < 1 || choice > len(presets) {
		return Rate{}, false
	}
	return presets[choice-1], true
}

// NewRate builds a custom rate.
// Returns ErrInvalidRate if perUnit is not positive and ErrValidation if unit is blank.
func NewRate(perUnit decimal.Decimal, unit string) (Rate, error) {
	if !perUnit.IsPositive() {
		return Rate{}, fmt.Errorf("%w: got %s", storeerrors.ErrInvalidRate, perUnit)
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return Rate{}, fmt.Errorf("%w: unit label is required", storeerrors.ErrValidation)
	}
	return Rate{Unit: unit, PerUnit: perUnit}, nil
}

// Converted is one entry expressed in the target unit.
type Converted struct {
	Label  string
	Amount decimal.Decimal
	Value  decimal.Decimal
}

// Conversion is the read-only projection of a set of entries into Rate.Unit.
type Conversion struct {
	Rate  Rate
	Items []Converted
	Total decimal.Decimal
}

// Convert divides every amount by the rate. The entries are not modified.
// Returns ErrInvalidRate if rate was not built through Preset or NewRate.
func Convert(entries []record.Entry, rate Rate) (Conversion, error) {
	if !rate.PerUnit.IsPositive() {
		return Conversion{}, storeerrors.ErrInvalidRate
	}
	c := Conversion{
		Rate:  rate,
		Items: make([]Converted, len(entries)),
		Total: decimal.Zero,
	}
	for i, e := range entries {
		v := e.Amount.Div(rate.PerUnit)
		c.Items[i] = Converted{Label: e.Label, Amount: e.Amount, Value: v}
		c.Total = c.Total.Add(v)
	}
	return c, nil
}
