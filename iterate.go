package refq

import (
	"iter"
	"sort"
)

// ordered returns a snapshot of the entries sorted by priority descending.
// The sort is stable over storage order, so equal priorities keep their
// current heap layout order.
func (q *Queue[T]) ordered() []*entry[T] {
	snapshot := make([]*entry[T], len(q.entries))
	copy(snapshot, q.entries)
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].priority > snapshot[j].priority
	})
	return snapshot
}

// ForEach visits every live entry in priority order, highest first, without
// consuming the queue. The rank passed to fn is the entry's current 1-based
// storage position, not its position in the traversal. A nil fn fails with
// ErrNilCallback. fn must not mutate the queue.
func (q *Queue[T]) ForEach(fn func(rank int, element T)) error {
	if fn == nil {
		return ErrNilCallback
	}
	for _, e := range q.ordered() {
		fn(e.index+1, e.element)
	}
	return nil
}

// All returns the same priority-ordered traversal as ForEach as an
// iterator over (storage rank, element) pairs.
func (q *Queue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, e := range q.ordered() {
			if !yield(e.index+1, e.element) {
				return
			}
		}
	}
}

// Stats returns the live counts per distinct priority value. The returned
// map is a copy; mutating it does not affect the queue.
func (q *Queue[T]) Stats() map[float64]int {
	return q.hist.Snapshot()
}
