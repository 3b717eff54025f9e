package aex

// Take transfers ownership of *src to the caller. The source is left at the
// zero value: valid, but holding no content the caller may rely on
// afterwards. This is the moved-from contract the containers build on.
func Take[T any](src *T) T {
	var zero T
	v := *src
	*src = zero
	return v
}

// Swap exchanges the values behind a and b without an intermediate heap
// allocation.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}

// Fill sets every element of dst to v.
func Fill[T any](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}
