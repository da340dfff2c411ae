package store

import (
	"errors"
	"testing"

	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/abgdnv/storekeeper/internal/idgen"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// item is a minimal record used to exercise the store.
type item struct {
	code  string
	name  string
	price decimal.Decimal
}

func (i item) ID() string              { return i.code }
func (i item) Label() string           { return i.name }
func (i item) Amount() decimal.Decimal { return i.price }

func newItem(name string, price int64) func(id string) item {
	return func(id string) item {
		return item{code: id, name: name, price: decimal.NewFromInt(price)}
	}
}

func newTestStore() Store[item] {
	return NewInMemory[item](idgen.NewSequence(idgen.DefaultPrefix))
}

func Test_InMemory_Add(t *testing.T) {
	// given
	s := newTestStore()
	// when
	first := s.Add(newItem("Laptop", 45000))
	second := s.Add(newItem("Shirt", 1500))
	// then
	assert.Equal(t, "10001", first.ID())
	assert.Equal(t, "10002", second.ID())
	assert.Equal(t, 2, s.Len())

	found, ok := s.FindByID(first.ID())
	require.True(t, ok)
	assert.Equal(t, first, found)
}

func Test_InMemory_IdentifiersNeverReused(t *testing.T) {
	// given
	s := newTestStore()
	a := s.Add(newItem("a", 1))
	b := s.Add(newItem("b", 2))
	// when
	require.True(t, s.Remove(b.ID()))
	require.True(t, s.Remove(a.ID()))
	c := s.Add(newItem("c", 3))
	// then
	assert.Equal(t, "10003", c.ID())
	assert.Equal(t, 1, s.Len())
}

func Test_InMemory_Remove(t *testing.T) {
	testCases := []struct {
		name          string
		removeID      string
		expected      bool
		expectedOrder []string
	}{
		{name: "removes middle record", removeID: "10002", expected: true, expectedOrder: []string{"a", "c"}},
		{name: "removes first record", removeID: "10001", expected: true, expectedOrder: []string{"b", "c"}},
		{name: "unknown id is not an error", removeID: "99999", expected: false, expectedOrder: []string{"a", "b", "c"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := newTestStore()
			s.Add(newItem("a", 1))
			s.Add(newItem("b", 2))
			s.Add(newItem("c", 3))
			// when
			removed := s.Remove(tc.removeID)
			// then
			assert.Equal(t, tc.expected, removed)
			var names []string
			for _, r := range s.List() {
				names = append(names, r.Label())
			}
			assert.Equal(t, tc.expectedOrder, names)
		})
	}
}

func Test_InMemory_FindByID_NotFound(t *testing.T) {
	s := newTestStore()
	s.Add(newItem("a", 1))

	found, ok := s.FindByID("10002")

	assert.False(t, ok)
	assert.Equal(t, item{}, found)
}

func Test_InMemory_ListIsSnapshot(t *testing.T) {
	// given
	s := newTestStore()
	s.Add(newItem("a", 1))
	list := s.List()
	// when
	s.Add(newItem("b", 2))
	list[0].name = "changed"
	// then
	assert.Len(t, list, 1)
	found, _ := s.FindByID("10001")
	assert.Equal(t, "a", found.Label())
}

func Test_InMemory_Update(t *testing.T) {
	ErrRejected := errors.New("rejected")
	testCases := []struct {
		name          string
		id            string
		fn            func(*item) error
		expectError   error
		expectedLabel string
	}{
		{
			name:          "Success - change committed",
			id:            "10001",
			fn:            func(i *item) error { i.name = "renamed"; return nil },
			expectedLabel: "renamed",
		},
		{
			name:          "Error - change rejected leaves record untouched",
			id:            "10001",
			fn:            func(i *item) error { i.name = "renamed"; return ErrRejected },
			expectError:   ErrRejected,
			expectedLabel: "a",
		},
		{
			name:          "Error - record not found",
			id:            "20001",
			fn:            func(i *item) error { return nil },
			expectError:   storeerrors.ErrNotFound,
			expectedLabel: "a",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := newTestStore()
			s.Add(newItem("a", 1))
			// when
			_, err := s.Update(tc.id, tc.fn)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
			} else {
				require.NoError(t, err)
			}
			found, _ := s.FindByID("10001")
			assert.Equal(t, tc.expectedLabel, found.Label())
		})
	}
}

func Test_InMemory_SortByAmount(t *testing.T) {
	// given
	s := newTestStore()
	s.Add(newItem("B", 800))
	s.Add(newItem("A", 50))
	s.Add(newItem("C", 235))
	// when
	s.SortByAmount()
	// then
	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "A", list[0].Label())
	assert.Equal(t, "10002", list[0].ID())
	assert.Equal(t, "C", list[1].Label())
	assert.Equal(t, "10003", list[1].ID())
	assert.Equal(t, "B", list[2].Label())
	assert.Equal(t, "10001", list[2].ID())
}
