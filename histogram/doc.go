// Package histogram tracks how many live entries a queue holds at each
// distinct priority value. Buckets are stored in a balanced tree ordered by
// priority, so callers get both O(log n) count updates and ordered
// traversal from the highest priority bucket down, without sorting on read.
//
// A bucket exists only while its count is positive; decrementing a count to
// zero removes the bucket entirely, so Distinct and Snapshot never report
// empty buckets.
//
// Basic usage:
//
//	h := histogram.New()
//	h.Inc(2.5)
//	h.Inc(2.5)
//	h.Inc(-1)
//
//	h.Count(2.5) // 2
//	h.Total()    // 3
//
//	h.Descend(func(priority float64, count int) bool {
//	    fmt.Printf("%v: %d\n", priority, count)
//	    return true
//	})
//
//	h.Dec(-1)
//	h.Distinct() // 1
package histogram
