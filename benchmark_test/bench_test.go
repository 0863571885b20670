package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/picdesk"
	"github.com/hupe1980/picdesk/section"
	"github.com/hupe1980/picdesk/testutil"
)

var sizes = []int{100, 1_000, 10_000}

func BenchmarkLoad(b *testing.B) {
	for _, n := range sizes {
		sources := testutil.Sources(n)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			ix, err := picdesk.New[int](identity, multiSection(picdesk.DefaultSectionLengths)...)
			if err != nil {
				b.Fatal(err)
			}
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := ix.Load(ctx, sources); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAssign(b *testing.B) {
	policy := section.Policy{Lengths: rng.Lengths(1_000, 1, 50)}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := section.Assign(n, policy); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkItemAt(b *testing.B) {
	ix := newIndex(b, 10_000, multiSection(rng.Lengths(200, 10, 90))...)
	paths := make([]picdesk.IndexPath, 1024)
	for i := range paths {
		paths[i] = randomPath(ix, false)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ix.ItemAt(paths[i%len(paths)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRemoveInsert(b *testing.B) {
	for _, n := range sizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			ix := newIndex(b, n, multiSection(picdesk.DefaultSectionLengths)...)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				it, err := ix.RemoveAt(randomPath(ix, false))
				if err != nil {
					b.Fatal(err)
				}
				if err := ix.InsertAt(it, randomPath(ix, true)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMoveTo(b *testing.B) {
	ix := newIndex(b, 10_000, multiSection(picdesk.DefaultSectionLengths)...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ix.MoveTo(randomPath(ix, false), randomPath(ix, true)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRemoveByKeys(b *testing.B) {
	sources := testutil.Sources(10_000)
	keys := make([]string, 0, 500)
	for i := 0; i < len(sources); i += 20 {
		keys = append(keys, sources[i])
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ix := newIndex(b, len(sources), multiSection(picdesk.DefaultSectionLengths)...)
		b.StartTimer()

		if got := ix.RemoveByKeys(keys...); got != len(keys) {
			b.Fatalf("removed %d, want %d", got, len(keys))
		}
	}
}
