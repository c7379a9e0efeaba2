package refq_test

import (
	"fmt"

	"github.com/davidvella/refq"
)

// ExampleQueue demonstrates inserting, repositioning and dequeuing entries
// through their handles.
func ExampleQueue() {
	q := refq.New[string]()

	deploy, err := q.Insert("deploy", 1)
	if err != nil {
		fmt.Printf("Failed to insert: %v\n", err)
		return
	}
	if _, err := q.Insert("rollback", 2); err != nil {
		fmt.Printf("Failed to insert: %v\n", err)
		return
	}

	element, _ := q.Peek()
	fmt.Printf("Next: %s\n", element)

	// Promote "deploy" past "rollback".
	if _, err := q.ChangePriority(deploy, 3); err != nil {
		fmt.Printf("Failed to change priority: %v\n", err)
		return
	}

	element, _ = q.Pop()
	fmt.Printf("Dequeued: %s\n", element)
	fmt.Printf("Remaining: %d\n", q.Len())

	// Output:
	// Next: rollback
	// Dequeued: deploy
	// Remaining: 1
}

// ExampleQueue_handles demonstrates the lifecycle of a handle.
func ExampleQueue_handles() {
	q := refq.New[string]()

	ref, _ := q.Insert("job", 7)
	q.Insert("urgent job", 9)

	// "urgent job" sifted to the root, pushing "job" to the second slot.
	position, _ := q.PositionOf(ref)
	fmt.Printf("Position: %d\n", position)

	removed, _ := q.Remove(ref)
	fmt.Printf("Removed: %t\n", removed)

	// Removing again is harmless and reports false.
	removed, _ = q.Remove(ref)
	fmt.Printf("Removed again: %t\n", removed)

	// A removed handle reports position -1 instead of failing.
	position, _ = q.PositionOf(ref)
	fmt.Printf("Position after removal: %d\n", position)

	// Output:
	// Position: 2
	// Removed: true
	// Removed again: false
	// Position after removal: -1
}

// ExampleQueue_ForEach demonstrates priority-ordered traversal without
// consuming the queue.
func ExampleQueue_ForEach() {
	q := refq.New[string]()

	q.Insert("compact", 1)
	q.Insert("flush", 5)
	q.Insert("serve", 10)

	// The rank is each entry's current heap slot, so it follows storage
	// order rather than the traversal order.
	_ = q.ForEach(func(rank int, element string) {
		fmt.Printf("%s (slot %d)\n", element, rank)
	})

	fmt.Printf("Still queued: %d\n", q.Len())

	// Output:
	// serve (slot 1)
	// flush (slot 3)
	// compact (slot 2)
	// Still queued: 3
}
