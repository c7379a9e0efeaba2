package refq

import (
	"math"

	"github.com/davidvella/refq/histogram"
	"github.com/davidvella/refq/monitoring"
	"github.com/google/uuid"
)

// entry is one element in the heap together with its bookkeeping.
type entry[T any] struct {
	ref      Ref
	element  T
	priority float64
	index    int
}

// Queue implements a binary max-heap whose entries are addressable through
// stable Ref handles. It is not safe for concurrent use.
type Queue[T any] struct {
	id       uuid.UUID
	entries  []*entry[T]
	live     map[Ref]*entry[T]
	removed  map[Ref]struct{}
	hist     *histogram.Histogram
	inserted uint64
	stats    monitoring.Stats
}

// New creates an empty queue.
func New[T any](opts ...Option) *Queue[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Queue[T]{
		id:      uuid.New(),
		entries: make([]*entry[T], 0),
		live:    make(map[Ref]*entry[T]),
		removed: make(map[Ref]struct{}),
		hist:    histogram.New(),
		stats:   o.stats,
	}
}

// Insert adds an element with the given priority and returns its handle.
// The priority must be a finite number; NaN and ±Inf fail with
// ErrInvalidPriority before any state changes.
func (q *Queue[T]) Insert(element T, priority float64) (Ref, error) {
	if math.IsNaN(priority) || math.IsInf(priority, 0) {
		return Ref{}, ErrInvalidPriority
	}

	q.inserted++
	e := &entry[T]{
		ref:      Ref{origin: q.id, seq: q.inserted},
		element:  element,
		priority: priority,
		index:    len(q.entries),
	}
	q.entries = append(q.entries, e)
	q.live[e.ref] = e
	q.hist.Inc(priority)
	q.up(e.index)

	if q.stats != nil {
		q.stats.RecordInsert(priority)
		q.stats.SetSize(len(q.entries), q.hist.Distinct())
	}
	return e.ref, nil
}

// Peek returns the highest priority element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, false
	}
	return q.entries[0].element, true
}

// Pop removes and returns the highest priority element. It returns false on
// an empty queue and never fails.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, false
	}

	root := q.entries[0]
	last := len(q.entries) - 1
	q.entries[0] = q.entries[last]
	q.entries[0].index = 0
	q.entries = q.entries[:last]
	if len(q.entries) > 0 {
		q.down(0)
	}
	q.discard(root)

	if q.stats != nil {
		q.stats.RecordExtract(root.priority)
		q.stats.SetSize(len(q.entries), q.hist.Distinct())
	}
	return root.element, true
}

// Len returns the number of live entries.
func (q *Queue[T]) Len() int {
	return len(q.entries)
}

// TotalInserted returns how many entries have ever been inserted. The
// counter never decreases, not even across Clear.
func (q *Queue[T]) TotalInserted() uint64 {
	return q.inserted
}

// Clear discards all entries and forgets every handle the queue has issued,
// live or removed. TotalInserted is preserved.
func (q *Queue[T]) Clear() {
	q.entries = q.entries[:0]
	q.live = make(map[Ref]*entry[T])
	q.removed = make(map[Ref]struct{})
	q.hist.Reset()

	if q.stats != nil {
		q.stats.SetSize(0, 0)
	}
}

// discard moves an entry's handle from the live set to the removed set.
func (q *Queue[T]) discard(e *entry[T]) {
	delete(q.live, e.ref)
	q.removed[e.ref] = struct{}{}
	q.hist.Dec(e.priority)
}

// swap exchanges entries at index i and j.
func (q *Queue[T]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.entries[i].index = i
	q.entries[j].index = j
}

// up moves the entry at index i toward the root until its parent's priority
// is greater or equal. The walk never swaps past an equal-priority parent,
// which keeps equal priorities in roughly insertion order.
func (q *Queue[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.entries[parent].priority >= q.entries[i].priority {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the entry at index i toward the leaves while either child
// strictly exceeds it. When both children exceed it and tie with each
// other, the right child wins.
func (q *Queue[T]) down(i int) {
	for {
		next := i
		if l := 2*i + 1; l < len(q.entries) && q.entries[l].priority > q.entries[next].priority {
			next = l
		}
		if r := 2*i + 2; r < len(q.entries) && q.entries[r].priority > q.entries[i].priority && q.entries[r].priority >= q.entries[next].priority {
			next = r
		}
		if next == i {
			break
		}
		q.swap(i, next)
		i = next
	}
}
