package array

import "errors"

var (
	// ErrInvalidSize signals a non-positive array size.
	ErrInvalidSize = errors.New("array: invalid size")
	// ErrIndexOutOfBounds signals a checked access beyond the array size.
	ErrIndexOutOfBounds = errors.New("array: index out of bounds")
)
