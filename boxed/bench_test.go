package boxed_test

import (
	"testing"

	"github.com/hasbyte1/go-boxed/boxed"
)

func BenchmarkTo(b *testing.B) {
	box := boxed.Of("benchmark")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		boxed.To(box, func(s string) int { return len(s) })
	}
}

func BenchmarkFlatMap(b *testing.B) {
	box := boxed.Of(1024)
	half := func(n int) boxed.Box[int] { return boxed.Of(n / 2) }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		boxed.FlatMap(box, half)
	}
}

func BenchmarkListGet(b *testing.B) {
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i
	}
	l := boxed.ListOf(items)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Get()
	}
}
