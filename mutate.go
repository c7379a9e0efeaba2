package refq

import "math"

// ChangePriority updates the priority of a live entry in place and restores
// the heap ordering around it. It returns the entry's new 1-based storage
// rank. The new priority must be finite; ref must identify a live entry:
// an already-removed handle fails with ErrRemovedReference, a handle this
// queue never issued with ErrUnknownReference.
func (q *Queue[T]) ChangePriority(ref Ref, priority float64) (int, error) {
	if math.IsNaN(priority) || math.IsInf(priority, 0) {
		return 0, ErrInvalidPriority
	}

	e, ok := q.live[ref]
	if !ok {
		if _, gone := q.removed[ref]; gone {
			return 0, ErrRemovedReference
		}
		return 0, ErrUnknownReference
	}

	old := e.priority
	if priority != old {
		q.hist.Dec(old)
		q.hist.Inc(priority)
		e.priority = priority
		if priority > old {
			q.up(e.index)
		} else {
			q.down(e.index)
		}
	}

	if q.stats != nil {
		q.stats.RecordPriorityChange(old, priority)
		q.stats.SetSize(len(q.entries), q.hist.Distinct())
	}
	return e.index + 1, nil
}

// Remove takes the entry identified by ref out of the queue, wherever it
// currently sits. It returns true when the entry was removed by this call
// and false, with no error, when the handle was already removed; removal is
// idempotent. A handle this queue never issued fails with
// ErrUnknownReference.
func (q *Queue[T]) Remove(ref Ref) (bool, error) {
	if _, gone := q.removed[ref]; gone {
		return false, nil
	}
	e, ok := q.live[ref]
	if !ok {
		return false, ErrUnknownReference
	}

	idx := e.index
	last := len(q.entries) - 1
	if idx != last {
		q.swap(idx, last)
	}
	q.entries = q.entries[:last]
	if idx < last {
		q.down(idx)
		q.up(idx)
	}
	q.discard(e)

	if q.stats != nil {
		q.stats.RecordRemoval(e.priority)
		q.stats.SetSize(len(q.entries), q.hist.Distinct())
	}
	return true, nil
}

// RemoveAt removes the entry at the given 1-based storage position. It
// validates the position like At: below 1 fails with ErrInvalidPosition,
// past the end reports false with no error.
func (q *Queue[T]) RemoveAt(position int) (bool, error) {
	if position < 1 {
		return false, ErrInvalidPosition
	}
	if position > len(q.entries) {
		return false, nil
	}
	return q.Remove(q.entries[position-1].ref)
}
