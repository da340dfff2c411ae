// Package sorter reorders records by their monetary amount.
package sorter

import "github.com/shopspring/decimal"

// BubbleSort orders items ascending by key, in place.
// Adjacent elements are swapped only when the left key is strictly greater,
// so elements with equal keys keep their relative order.
func BubbleSort[T any](items []T, key func(T) decimal.Decimal) {
	n := len(items)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for i := 0; i < n-1-pass; i++ {
			if key(items[i]).GreaterThan(key(items[i+1])) {
				items[i], items[i+1] = items[i+1], items[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
