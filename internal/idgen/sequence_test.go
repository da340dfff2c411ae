package idgen

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sequence_Next(t *testing.T) {
	testCases := []struct {
		name     string
		prefix   string
		calls    int
		expected string
	}{
		{name: "first code", prefix: DefaultPrefix, calls: 1, expected: "10001"},
		{name: "tenth code", prefix: DefaultPrefix, calls: 10, expected: "10010"},
		{name: "custom prefix", prefix: "7", calls: 2, expected: "70002"},
		{name: "counter grows past four digits", prefix: DefaultPrefix, calls: 10000, expected: "110000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			seq := NewSequence(tc.prefix)
			// when
			var last string
			for i := 0; i < tc.calls; i++ {
				last = seq.Next()
			}
			// then
			assert.Equal(t, tc.expected, last)
			assert.Equal(t, int64(tc.calls), seq.Issued())
		})
	}
}

func Test_Sequence_StrictlyIncreasing(t *testing.T) {
	seq := NewSequence(DefaultPrefix)
	prev := int64(0)
	for i := 0; i < 200; i++ {
		code := seq.Next()
		n, err := strconv.ParseInt(strings.TrimPrefix(code, DefaultPrefix), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func Test_Sequence_ConcurrentCallersGetDistinctCodes(t *testing.T) {
	seq := NewSequence(DefaultPrefix)
	const workers, perWorker = 8, 100

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				code := seq.Next()
				mu.Lock()
				seen[code] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
