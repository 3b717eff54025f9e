package vec

import "testing"

func BenchmarkAppend(b *testing.B) {
	for n := 0; n < b.N; n++ {
		v := New[int]()
		for i := 0; i < 1024; i++ {
			_ = v.Append(i)
		}
	}
}

func BenchmarkAppendPreallocated(b *testing.B) {
	for n := 0; n < b.N; n++ {
		v, _ := WithCapacity[int](1024)
		for i := 0; i < 1024; i++ {
			_ = v.Append(i)
		}
	}
}

func BenchmarkUncheckedAccess(b *testing.B) {
	v, _ := WithCapacity[int](1024)
	for i := 0; i < 1024; i++ {
		_ = v.Append(i)
	}
	b.ResetTimer()
	sum := 0
	for n := 0; n < b.N; n++ {
		for i := 0; i < v.Len(); i++ {
			sum += v.Get(i)
		}
	}
	_ = sum
}
