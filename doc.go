// Package refq implements a priority queue whose entries can be addressed
// after insertion. Every insert returns a Ref, a stable handle that keeps
// identifying the same entry no matter how often the heap reorders, so
// callers can query an entry's position, change its priority, or remove it
// without searching by value.
//
// The queue is a binary max-heap over a caller-supplied float64 priority:
// the entry with the highest priority is returned first. Elements themselves
// are opaque; the queue stores and returns them unchanged and never compares
// them.
//
// Key features:
//   - O(log n) insert, extract, priority change and targeted removal
//   - O(1) peek, size, and handle validation
//   - Handles stay valid across arbitrary unrelated mutations
//   - Removal is idempotent: removing an already-removed entry reports
//     false instead of failing
//   - Live per-priority counts, available ordered or as a snapshot map
//
// Basic usage:
//
//	q := refq.New[string]()
//
//	a, _ := q.Insert("deploy", 1)
//	b, _ := q.Insert("rollback", 2)
//
//	element, _ := q.Peek() // "rollback"
//
//	// Promote "deploy" past "rollback".
//	rank, _ := q.ChangePriority(a, 3)
//
//	element, _ = q.Pop() // "deploy"
//
//	// b is still a valid handle for "rollback".
//	pos, _ := q.PositionOf(b)
//	_ = rank
//	_ = pos
//
// Entries of equal priority dequeue in approximately first-in-first-out
// order: an entry never sifts past an equal-priority ancestor, but the heap
// does not track insertion sequence, so the order among equal priorities is
// not guaranteed globally.
//
// The queue is not safe for concurrent use. All operations are synchronous
// and non-blocking; none perform I/O.
package refq
