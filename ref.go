package refq

import (
	"fmt"

	"github.com/google/uuid"
)

// Ref is the handle returned by Insert. It identifies one specific entry for
// that entry's whole lifetime, independently of where the heap currently
// stores it. A Ref stays valid until its entry is popped or removed; it is
// never reissued for a later insertion, even one with identical element and
// priority.
//
// Refs are comparable and may be used as map keys. The zero Ref is never
// issued by any queue.
type Ref struct {
	origin uuid.UUID
	seq    uint64
}

// IsZero reports whether r is the zero Ref, which no queue ever issues.
func (r Ref) IsZero() bool {
	return r == Ref{}
}

// String returns a short diagnostic form of the handle.
func (r Ref) String() string {
	return fmt.Sprintf("refq.Ref(%s#%d)", r.origin, r.seq)
}
