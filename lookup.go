package refq

// PositionOf returns the 1-based rank of the entry identified by ref in the
// heap's storage order: rank 1 is the root, rank Len() the last slot. A
// handle that was once valid but has since been popped or removed reports
// -1 with no error; a handle this queue never issued fails with
// ErrUnknownReference.
func (q *Queue[T]) PositionOf(ref Ref) (int, error) {
	if e, ok := q.live[ref]; ok {
		return e.index + 1, nil
	}
	if _, ok := q.removed[ref]; ok {
		return -1, nil
	}
	return 0, ErrUnknownReference
}

// At returns the handle and element stored at the given 1-based position of
// the storage order, which is heap layout order, not priority order.
// Positions below 1 fail with ErrInvalidPosition; positions past the end
// report ok=false.
func (q *Queue[T]) At(position int) (ref Ref, element T, ok bool, err error) {
	if position < 1 {
		err = ErrInvalidPosition
		return
	}
	if position > len(q.entries) {
		return
	}
	e := q.entries[position-1]
	return e.ref, e.element, true, nil
}
