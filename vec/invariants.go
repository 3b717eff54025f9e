package vec

import "fmt"

// Check validates the structural invariants of the sequence. It returns nil
// for a healthy sequence and a wrapped ErrInvariant describing the first
// violation otherwise. Intended for tests and debugging; the public
// operations maintain these invariants on their own.
func (v *Vec[T]) Check() error {
	if v.size < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvariant, v.size)
	}
	if v.size > len(v.data) {
		return fmt.Errorf("%w: length %d exceeds capacity %d", ErrInvariant, v.size, len(v.data))
	}
	if v.data == nil && v.size != 0 {
		return fmt.Errorf("%w: live elements without backing block", ErrInvariant)
	}
	return nil
}
