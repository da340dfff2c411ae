// Package ledger implements the personal expense tracker variant.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Expense is a single named spending entry.
type Expense struct {
	Code  string
	Name  string
	Value decimal.Decimal
}

func (e Expense) ID() string              { return e.Code }
func (e Expense) Label() string           { return e.Name }
func (e Expense) Amount() decimal.Decimal { return e.Value }

func (e Expense) String() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Value.StringFixed(2))
}
