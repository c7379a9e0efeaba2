package histogram

import (
	"github.com/google/btree"
)

const btreeDegree = 2

// bucket is one (priority, live count) pair.
type bucket struct {
	priority float64
	count    int
}

// Histogram counts live entries per distinct priority value. Buckets are
// kept ordered by priority; a bucket whose count drops to zero is pruned
// rather than left behind.
type Histogram struct {
	buckets *btree.BTreeG[bucket]
	total   int
}

// New returns an empty histogram.
func New() *Histogram {
	return &Histogram{
		buckets: btree.NewG[bucket](btreeDegree, func(a, b bucket) bool {
			return a.priority < b.priority
		}),
	}
}

// Inc records one more live entry at the given priority.
func (h *Histogram) Inc(priority float64) {
	n := 1
	if b, ok := h.buckets.Get(bucket{priority: priority}); ok {
		n = b.count + 1
	}
	h.buckets.ReplaceOrInsert(bucket{priority: priority, count: n})
	h.total++
}

// Dec records one fewer live entry at the given priority. Decrementing a
// priority with no bucket is a no-op.
func (h *Histogram) Dec(priority float64) {
	b, ok := h.buckets.Get(bucket{priority: priority})
	if !ok {
		return
	}
	if b.count <= 1 {
		h.buckets.Delete(b)
	} else {
		h.buckets.ReplaceOrInsert(bucket{priority: priority, count: b.count - 1})
	}
	h.total--
}

// Count returns the number of live entries at the given priority.
func (h *Histogram) Count(priority float64) int {
	b, ok := h.buckets.Get(bucket{priority: priority})
	if !ok {
		return 0
	}
	return b.count
}

// Distinct returns the number of priorities with at least one live entry.
func (h *Histogram) Distinct() int {
	return h.buckets.Len()
}

// Total returns the sum of all bucket counts. It always equals the number
// of live entries in the owning queue.
func (h *Histogram) Total() int {
	return h.total
}

// Snapshot returns a copy of the histogram as a plain map. Mutating the
// returned map has no effect on the histogram.
func (h *Histogram) Snapshot() map[float64]int {
	m := make(map[float64]int, h.buckets.Len())
	h.buckets.Ascend(func(b bucket) bool {
		m[b.priority] = b.count
		return true
	})
	return m
}

// Descend walks the buckets from highest priority to lowest, calling fn for
// each until fn returns false.
func (h *Histogram) Descend(fn func(priority float64, count int) bool) {
	h.buckets.Descend(func(b bucket) bool {
		return fn(b.priority, b.count)
	})
}

// Reset drops all buckets.
func (h *Histogram) Reset() {
	h.buckets.Clear(false)
	h.total = 0
}
