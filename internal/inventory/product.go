// Package inventory implements the store inventory variant: products with stock levels and categories.
package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed product categories.
type Category string

const (
	Electronics Category = "Electronics"
	Clothing    Category = "Clothing"
	Food        Category = "Food"
	Books       Category = "Books"
	Sports      Category = "Sports"
)

// Categories lists every category in menu order (choice 1 is Electronics).
var Categories = []Category{Electronics, Clothing, Food, Books, Sports}

// CategoryFromChoice maps a menu choice in 1..5 to its category.
func CategoryFromChoice(choice int) (Category, bool) {
	if choice < 1 || choice > len(Categories) {
		return "", false
	}
	return Categories[choice-1], true
}

// ParseCategory resolves a category by name, ignoring case.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, true
		}
	}
	return "", false
}

// Product represents a product entity in the store.
type Product struct {
	Code     string
	Name     string
	Price    decimal.Decimal
	Quantity int
	Category Category
}

func (p Product) ID() string              { return p.Code }
func (p Product) Label() string           { return p.Name }
func (p Product) Amount() decimal.Decimal { return p.Price }

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Quantity > 0
}

// StockValue is price multiplied by the quantity on hand.
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

func (p Product) String() string {
	inStock := "no"
	if p.InStock() {
		inStock = "yes"
	}
	return fmt.Sprintf("Code: %s, Name: %s, Price: %s, Quantity: %d, In stock: %s, Category: %s",
		p.Code, p.Name, p.Price.StringFixed(2), p.Quantity, inStock, p.Category)
}
