// Package store provides an interface for record storage operations.
package store

import "github.com/abgdnv/storekeeper/internal/record"

// Store is an interface for record storage operations.
// It abstracts the underlying collection so both program variants share one implementation.
type Store[T record.Record] interface {
	// Add draws a fresh identifier, builds the record with it and appends it.
	// The caller validates fields beforehand; Add itself never fails.
	Add(build func(id string) T) T

	// Remove deletes the first record with the given identifier.
	// Returns false if no such record exists.
	Remove(id string) bool

	// FindByID retrieves a single record by its identifier.
	FindByID(id string) (T, bool)

	// List returns a snapshot of all records in store order.
	List() []T

	// Update applies fn to a copy of the record and commits the copy only if fn returns nil.
	// Returns ErrNotFound if no record exists with the given identifier.
	Update(id string, fn func(*T) error) (T, error)

	// SortByAmount reorders the whole store ascending by amount.
	SortByAmount()

	// Len returns the number of live records.
	Len() int
}
