package vec

import (
	"fmt"

	"github.com/vanierrobotics/aex"
)

// Vec is a growable sequence with contiguous storage.
//
// A sequence created by
//
//	Vec[T]{}
//
// is a valid object and behaves like the empty sequence; storage is
// allocated lazily by the first growth-triggering append.
//
// The backing block always spans the full capacity. Live elements occupy
// the slots below Len; slots in [Len, Cap) hold the zero value of T and are
// not observable through checked access.
//
// A Vec owns its backing block exclusively. Copying the struct value
// aliases the block and is not supported; pass a *Vec instead.
type Vec[T any] struct {
	data []T // backing block, len(data) is the capacity
	size int // number of live elements
}

// New creates an empty sequence with no backing storage.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity creates an empty sequence with storage preallocated for n
// elements, avoiding growth for the first n appends.
func WithCapacity[T any](n int) (*Vec[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
	}
	v := &Vec[T]{}
	if n > 0 {
		if err := v.realloc(n); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vec[T]) Cap() int {
	return len(v.data)
}

// IsEmpty reports whether the sequence holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.size == 0
}

// Append inserts value as the new last element. If the backing block is
// full it is grown first; a growth failure is returned before any state is
// touched, leaving the sequence in its prior valid state.
func (v *Vec[T]) Append(value T) error {
	if v.size == len(v.data) {
		if err := v.grow(); err != nil {
			return err
		}
	}
	v.data[v.size] = value
	v.size++
	return nil
}

// AppendTake moves *src into the sequence. The source is left at the zero
// value and must not be expected to hold its old content afterwards. This
// avoids copying element-internal storage around when building a sequence
// in place.
func (v *Vec[T]) AppendTake(src *T) error {
	if v.size == len(v.data) {
		if err := v.grow(); err != nil {
			return err
		}
	}
	v.data[v.size] = aex.Take(src)
	v.size++
	return nil
}

// RemoveLast destroys the last live element and shortens the sequence by
// one. Removing from an empty sequence is a no-op, not an error.
func (v *Vec[T]) RemoveLast() {
	if v.size == 0 {
		return
	}
	v.size--
	clear(v.data[v.size : v.size+1])
}

// Clear destroys all live elements and resets the length to 0. The backing
// block is retained for reuse; capacity is unchanged.
func (v *Vec[T]) Clear() {
	clear(v.data[:v.size])
	v.size = 0
}

// At returns the element at index i, with bounds checking against the live
// length.
func (v *Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, v.size)
	}
	return v.data[i], nil
}

// Set replaces the element at index i, with bounds checking against the
// live length.
func (v *Vec[T]) Set(i int, value T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, v.size)
	}
	v.data[i] = value
	return nil
}

// Get returns the element at index i without checking against the live
// length. It exists for hot paths; access at or beyond Len is undefined by
// contract.
func (v *Vec[T]) Get(i int) T {
	return v.data[i]
}

// Ref returns a pointer to the slot at index i without checking against the
// live length. The pointer is invalidated by the next reallocation.
func (v *Vec[T]) Ref(i int) *T {
	return &v.data[i]
}

// Reserve sets the capacity to exactly n slots. Reserving below the live
// length is refused with ErrShrinkBelowLen and mutates nothing; live
// elements are never truncated. Reserving the current capacity is a no-op.
func (v *Vec[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
	}
	if n == len(v.data) {
		return nil
	}
	return v.realloc(n)
}

// grow computes the next capacity step: amortized ~1.5x growth plus a
// constant to bootstrap from empty and very small blocks.
func (v *Vec[T]) grow() error {
	newCap := len(v.data) + len(v.data)/2 + 2
	if newCap <= len(v.data) {
		return fmt.Errorf("%w: cannot grow beyond %d slots", ErrTooLarge, len(v.data))
	}
	return v.realloc(newCap)
}

// realloc moves the sequence to a fresh block of newCap slots.
//
// Protocol: allocate the new block, move the live elements in ascending
// order, release the moved-from slots of the old block, then swap in block
// and capacity. Nothing is mutated before the new block is fully populated,
// so a failed reallocation leaves the sequence in its previous state.
func (v *Vec[T]) realloc(newCap int) error {
	if newCap < v.size {
		return fmt.Errorf("%w: capacity %d, length %d", ErrShrinkBelowLen, newCap, v.size)
	}
	block := make([]T, newCap)
	n := copy(block, v.data[:v.size])
	assert(n == v.size, "realloc: live elements not fully moved")
	clear(v.data[:v.size]) // old block must not retain references
	v.data = block
	return nil
}
