package vector

import (
	"strconv"
	"testing"
)

func BenchmarkPushBack(b *testing.B) {
	sizes := []int{16, 256, 4096, 65536}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for bi := 0; bi < b.N; bi++ {
				v := New[int]()
				for i := 0; i < n; i++ {
					_ = v.PushBack(i)
				}
			}
		})
	}
}

func BenchmarkPushBackReserved(b *testing.B) {
	sizes := []int{16, 256, 4096, 65536}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for bi := 0; bi < b.N; bi++ {
				v := New[int]()
				_ = v.Reserve(n)
				for i := 0; i < n; i++ {
					_ = v.PushBack(i)
				}
			}
		})
	}
}

func BenchmarkPushBackManaged(b *testing.B) {
	tr := Traits[int]{
		Copy:    func(x int) (int, error) { return x, nil },
		Move:    func(src *int) int { v := *src; *src = 0; return v },
		Destroy: func(x *int) { *x = 0 },
	}
	sizes := []int{16, 256, 4096}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for bi := 0; bi < b.N; bi++ {
				v := NewTraits(tr)
				for i := 0; i < n; i++ {
					_ = v.PushBack(i)
				}
			}
		})
	}
}

func BenchmarkInsertFront(b *testing.B) {
	sizes := []int{16, 256, 1024}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for bi := 0; bi < b.N; bi++ {
				v := New[int]()
				for i := 0; i < n; i++ {
					_, _ = v.Insert(0, i)
				}
			}
		})
	}
}

func BenchmarkCopyFromPooled(b *testing.B) {
	src := New[int]()
	for i := 0; i < 1024; i++ {
		_ = src.PushBack(i)
	}
	p := NewPool[int]()

	b.ReportAllocs()
	b.ResetTimer()

	for bi := 0; bi < b.N; bi++ {
		v := p.Get()
		_ = v.CopyFrom(src)
		p.Put(v)
	}
}
