package store

import (
	"fmt"
	"sync"

	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/abgdnv/storekeeper/internal/record"
	"github.com/abgdnv/storekeeper/internal/sorter"
	"github.com/shopspring/decimal"
)

// IDSource hands out record identifiers.
type IDSource interface {
	Next() string
}

// inMemory implements Store using an insertion-ordered slice.
type inMemory[T record.Record] struct {
	mu      sync.RWMutex
	records []T
	ids     IDSource
}

// NewInMemory creates a new, empty in-memory Store drawing identifiers from ids.
func NewInMemory[T record.Record](ids IDSource) Store[T] {
	return &inMemory[T]{
		records: make([]T, 0),
		ids:     ids,
	}
}

// Add builds a record with a freshly issued identifier and appends it.
func (s *inMemory[T]) Add(build func(id string) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Next()
	if s.indexOf(id) >= 0 {
		panic(fmt.Sprintf("store: identifier %q issued twice", id))
	}
	r := build(id)
	s.records = append(s.records, r)
	return r
}

// Remove deletes the first record whose identifier equals id.
func (s *inMemory[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true
}

// FindByID retrieves a record by its identifier.
func (s *inMemory[T]) FindByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.records[i], true
}

// List retrieves all records.
func (s *inMemory[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]T, len(s.records))
	copy(list, s.records)
	return list
}

// Update mutates a record in place when fn accepts the change.
func (s *inMemory[T]) Update(id string, fn func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	i := s.indexOf(id)
	if i < 0 {
		return zero, storeerrors.ErrNotFound
	}
	candidate := s.records[i]
	if err := fn(&candidate); err != nil {
		return zero, err
	}
	if candidate.ID() != id {
		panic(fmt.Sprintf("store: update changed identifier %q to %q", id, candidate.ID()))
	}
	s.records[i] = candidate
	return candidate, nil
}

// SortByAmount bubble-sorts the records ascending by amount.
func (s *inMemory[T]) SortByAmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorter.BubbleSort(s.records, func(r T) decimal.Decimal { return r.Amount() })
}

// Len returns the number of records.
func (s *inMemory[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

func (s *inMemory[T]) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID() == id {
			return i
		}
	}
	return -1
}
