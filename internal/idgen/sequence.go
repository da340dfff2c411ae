// Package idgen generates record identifiers.
package idgen

import (
	"fmt"
	"sync/atomic"
)

// DefaultPrefix is the literal placed in front of every generated code.
const DefaultPrefix = "1"

// width is the minimum number of digits of the counter part.
const width = 4

// Sequence issues unique, monotonically increasing codes such as "10001", "10002".
// Codes are never reused, even after the record that owned one is deleted.
type Sequence struct {
	prefix string
	last   atomic.Int64
}

// NewSequence creates a sequence whose first code carries counter 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next code and advances the counter.
func (s *Sequence) Next() string {
	n := s.last.Add(1)
	return fmt.Sprintf("%s%0*d", s.prefix, width, n)
}

// Issued reports how many codes have been handed out so far.
func (s *Sequence) Issued() int64 {
	return s.last.Load()
}
