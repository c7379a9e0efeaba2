package refq_test

import (
	"testing"

	"github.com/davidvella/refq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEach(t *testing.T) {
	q := refq.New[string]()

	input := []struct {
		element  string
		priority float64
	}{
		{"low", -3},
		{"high", 12},
		{"mid", 4.5},
		{"also mid", 4.5},
	}
	for _, in := range input {
		_, err := q.Insert(in.element, in.priority)
		require.NoError(t, err)
	}

	var elements []string
	var ranks []int
	err := q.ForEach(func(rank int, element string) {
		ranks = append(ranks, rank)
		elements = append(elements, element)
	})
	require.NoError(t, err)

	// Priority order, equal priorities in storage order: "also mid" sifted
	// above "mid" on insert, so it sits earlier in storage.
	assert.Equal(t, []string{"high", "also mid", "mid", "low"}, elements)

	// Ranks are live storage positions, so each must resolve back to the
	// element the callback saw.
	for i, rank := range ranks {
		_, element, ok, err := q.At(rank)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, elements[i], element)
	}

	// The traversal does not consume the queue.
	assert.Equal(t, 4, q.Len())
}

func TestForEachNilCallback(t *testing.T) {
	q := refq.New[string]()
	err := q.ForEach(nil)
	assert.ErrorIs(t, err, refq.ErrNilCallback)
}

func TestForEachEmpty(t *testing.T) {
	q := refq.New[string]()
	calls := 0
	err := q.ForEach(func(int, string) { calls++ })
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestAllIterator(t *testing.T) {
	q := refq.New[string]()

	_, err := q.Insert("b", 2)
	require.NoError(t, err)
	_, err = q.Insert("c", 1)
	require.NoError(t, err)
	_, err = q.Insert("a", 3)
	require.NoError(t, err)

	var elements []string
	for _, element := range q.All() {
		elements = append(elements, element)
	}
	assert.Equal(t, []string{"a", "b", "c"}, elements)

	// Early break stops the iteration cleanly.
	elements = elements[:0]
	for _, element := range q.All() {
		elements = append(elements, element)
		break
	}
	assert.Equal(t, []string{"a"}, elements)
}

func TestStats(t *testing.T) {
	q := refq.New[string]()

	_, err := q.Insert("a", 1)
	require.NoError(t, err)
	_, err = q.Insert("b", 1)
	require.NoError(t, err)
	ref, err := q.Insert("c", 2.5)
	require.NoError(t, err)

	assert.Equal(t, map[float64]int{1: 2, 2.5: 1}, q.Stats())

	// A bucket drained to zero is pruned, not reported as zero.
	removed, err := q.Remove(ref)
	require.NoError(t, err)
	require.True(t, removed)
	assert.Equal(t, map[float64]int{1: 2}, q.Stats())

	// The returned map is a copy.
	stats := q.Stats()
	stats[1] = 99
	stats[7] = 1
	assert.Equal(t, map[float64]int{1: 2}, q.Stats())
}

func TestStatsTracksPops(t *testing.T) {
	q := refq.New[int]()

	for i := 0; i < 6; i++ {
		_, err := q.Insert(i, float64(i%2))
		require.NoError(t, err)
	}
	assert.Equal(t, map[float64]int{0: 3, 1: 3}, q.Stats())

	for q.Len() > 0 {
		_, ok := q.Pop()
		require.True(t, ok)

		total := 0
		for _, count := range q.Stats() {
			total += count
		}
		assert.Equal(t, q.Len(), total)
	}
	assert.Empty(t, q.Stats())
}
