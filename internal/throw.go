package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors up and down every stage of the sweep and triangulation
// would add a ton of complexity to the code for failures that only happen if
// the engine itself is broken. Instead, internal invariant violations panic
// with an *InvalidMonotoneChainError, and the public API recovers to convert to
// an error. Any other panic is a genuine crash and is re-raised.

// Panic with an *InvalidMonotoneChainError.
func fatalf(format string, args ...interface{}) {
	panic(&InvalidMonotoneChainError{cause: errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if chainError, ok := r.(*InvalidMonotoneChainError); ok {
			return chainError
		}
		panic(r)
	}
	return nil
}

// Returned when a ring has fewer than three distinct points, zero area, or
// coordinates that are not finite. Ring 0 is the exterior; ring i+1 is hole i.
type DegenerateRingError struct {
	Ring   int
	Reason string
}

func (e *DegenerateRingError) Error() string {
	return fmt.Sprintf("degenerate ring %d: %s", e.Ring, e.Reason)
}

// Returned by the optional validation pass when two edges that are not
// neighbors in the same ring touch or cross.
type SelfIntersectingInputError struct {
	A, B Segment
	// Ring indexes of the two edges, using the same numbering as DegenerateRingError
	RingA, RingB int
}

func (e *SelfIntersectingInputError) Error() string {
	return fmt.Sprintf("edge %v of ring %d intersects edge %v of ring %d", e.A, e.RingA, e.B, e.RingB)
}

// An internal invariant of the sweep or the monotone triangulator was
// violated. This indicates a defect in the engine (or input that broke a
// documented precondition, such as self intersection), never ordinary bad
// input.
type InvalidMonotoneChainError struct {
	cause error
}

func (e *InvalidMonotoneChainError) Error() string {
	return "invalid monotone chain: " + e.cause.Error()
}

func (e *InvalidMonotoneChainError) Cause() error  { return e.cause }
func (e *InvalidMonotoneChainError) Unwrap() error { return e.cause }
