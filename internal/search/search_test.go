package search

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type entry struct {
	code, name string
	price      int64
}

func (e entry) ID() string              { return e.code }
func (e entry) Label() string           { return e.name }
func (e entry) Amount() decimal.Decimal { return decimal.NewFromInt(e.price) }

var catalogue = []entry{
	{code: "10001", name: "Хлеб", price: 50},
	{code: "10002", name: "ХЛЕБница", price: 700},
	{code: "10003", name: "Ноутбук HP", price: 45000},
	{code: "10004", name: "Football", price: 2500},
}

func codes(items []entry) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.code)
	}
	return out
}

func Test_ByID(t *testing.T) {
	testCases := []struct {
		name     string
		id       string
		expected []string
	}{
		{name: "exact match", id: "10003", expected: []string{"10003"}},
		{name: "no partial matching", id: "1000", expected: []string{}},
		{name: "unknown id", id: "99999", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, codes(ByID(catalogue, tc.id)))
		})
	}
}

func Test_ByLabel(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "cyrillic any case", query: "хлеб", expected: []string{"10001", "10002"}},
		{name: "upper case query", query: "ХЛЕБ", expected: []string{"10001", "10002"}},
		{name: "latin substring", query: "hp", expected: []string{"10003"}},
		{name: "surrounding spaces trimmed", query: "  ball ", expected: []string{"10004"}},
		{name: "blank query matches all", query: "", expected: []string{"10001", "10002", "10003", "10004"}},
		{name: "no matches", query: "tablet", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, codes(ByLabel(catalogue, tc.query)))
		})
	}
}

func Test_Where(t *testing.T) {
	cheap := Where(catalogue, func(e entry) bool { return e.price < 1000 })

	assert.Equal(t, []string{"10001", "10002"}, codes(cheap))
	assert.NotNil(t, Where([]entry{}, func(entry) bool { return true }))
}
