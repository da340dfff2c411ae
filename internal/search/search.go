// Package search filters records by identifier, label or an arbitrary predicate.
// Every query keeps the input order and returns an empty, non-nil slice when nothing matches.
package search

import (
	"strings"

	"github.com/abgdnv/storekeeper/internal/record"
)

// ByID returns the record whose identifier equals id exactly, if any.
func ByID[T record.Record](items []T, id string) []T {
	return Where(items, func(r T) bool { return r.ID() == id })
}

// ByLabel returns records whose label contains query, ignoring case.
// Surrounding whitespace in query is ignored; a blank query matches every record.
func ByLabel[T record.Record](items []T, query string) []T {
	needle := strings.ToLower(strings.TrimSpace(query))
	return Where(items, func(r T) bool {
		return strings.Contains(strings.ToLower(r.Label()), needle)
	})
}

// Where returns the items for which match reports true.
func Where[T any](items []T, match func(T) bool) []T {
	found := make([]T, 0)
	for _, it := range items {
		if match(it) {
			found = append(found, it)
		}
	}
	return found
}
