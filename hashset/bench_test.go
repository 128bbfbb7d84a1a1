package hashset

import (
	"fmt"
	"testing"
)

func BenchmarkSet(b *testing.B) {
	var (
		dataI [256]int
		dataS [256]string
	)
	for i := 0; i < 256; i++ {
		dataI[i] = i * 7919
		dataS[i] = fmt.Sprint(i)
	}

	b.Run("Add+Contains+Remove Set[int]", func(b *testing.B) {
		s, _ := New[int](10)

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = s.Add(dataI[i&255])
			s.Contains(dataI[i&255])
			s.Remove(dataI[i&255])
		}
	})

	b.Run("Add+Contains+Remove MapSet[int]", func(b *testing.B) {
		s := NewMapSet[int](1 << 10)

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = s.Add(dataI[i&255])
			s.Contains(dataI[i&255])
			s.Remove(dataI[i&255])
		}
	})

	b.Run("Add Set[string]", func(b *testing.B) {
		s, _ := New[string](10)

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = s.Add(dataS[i&255])
		}
	})

	b.Run("Add MapSet[string]", func(b *testing.B) {
		s := NewMapSet[string](1 << 10)

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = s.Add(dataS[i&255])
		}
	})
}
