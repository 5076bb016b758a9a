package tessellate

import "github.com/osuushi/tessellate/internal"

// A ring has fewer than three distinct points, zero area, or non-finite
// coordinates. Reject the input or re-collect the geometry.
type DegenerateRingError = internal.DegenerateRingError

// Two edges of the input touch or cross. Only returned when validation is
// enabled with WithValidation.
type SelfIntersectingInputError = internal.SelfIntersectingInputError

// The engine broke one of its own invariants. This is a bug (or input that
// silently broke the simple polygon precondition), not a problem with the
// input that can be fixed by retrying. It only aborts the call that hit it.
type InvalidMonotoneChainError = internal.InvalidMonotoneChainError
