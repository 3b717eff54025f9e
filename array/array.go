// Package array provides a fixed sequence: a contiguous container whose
// size and capacity coincide for its entire lifetime. Every slot is live
// from construction on, so there is no notion of appending or removing;
// the surface is pure element access.
package array

import "fmt"

// Array is a fixed sequence of n elements. The zero value is an empty
// array; Front and Back are undefined on it.
//
// Access returning a pointer grants both read and write access to the
// underlying slot.
type Array[T any] struct {
	data []T
}

// New creates an array of n zero-valued elements.
func New[T any](n int) (Array[T], error) {
	if n <= 0 {
		return Array[T]{}, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return Array[T]{data: make([]T, n)}, nil
}

// Of creates an array holding copies of the given items.
func Of[T any](items ...T) Array[T] {
	data := make([]T, len(items))
	copy(data, items)
	return Array[T]{data: data}
}

// Len returns the number of elements. The array is always full, so the
// length is also the capacity.
func (a Array[T]) Len() int {
	return len(a.data)
}

// Front returns a pointer to the first element.
func (a Array[T]) Front() *T {
	return &a.data[0]
}

// Back returns a pointer to the last element.
func (a Array[T]) Back() *T {
	return &a.data[len(a.data)-1]
}

// At returns a pointer to the element at index i, with bounds checking.
func (a Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= len(a.data) {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, len(a.data))
	}
	return &a.data[i], nil
}

// Get returns the element at index i. No bounds checking is performed.
func (a Array[T]) Get(i int) T {
	return a.data[i]
}

// Ref returns a pointer to the element at index i. No bounds checking is
// performed.
func (a Array[T]) Ref(i int) *T {
	return &a.data[i]
}
