package vec

import "errors"

var (
	// ErrIndexOutOfBounds signals a checked access beyond the live length.
	ErrIndexOutOfBounds = errors.New("vec: index out of bounds")
	// ErrShrinkBelowLen signals a capacity reservation below the live length.
	ErrShrinkBelowLen = errors.New("vec: capacity below live length")
	// ErrTooLarge signals that a capacity computation exceeds the platform limit.
	ErrTooLarge = errors.New("vec: capacity too large")
	// ErrInvalidCapacity signals a negative capacity request.
	ErrInvalidCapacity = errors.New("vec: invalid capacity")
	// ErrInvariant signals a structural invariant violation found by Check.
	ErrInvariant = errors.New("vec: invariant violated")
)
