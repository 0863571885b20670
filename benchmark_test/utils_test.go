package benchmark_test

import (
	"context"
	"testing"

	"github.com/hupe1980/picdesk"
	"github.com/hupe1980/picdesk/testutil"
)

// Use deterministic RNG for reproducible benchmarks
var rng = testutil.NewRNG(42)

var identity = picdesk.MaterializerFunc[int](func(_ context.Context, source string) (picdesk.Item[int], error) {
	return picdesk.Item[int]{Key: source, Data: len(source)}, nil
})

func newIndex(b *testing.B, n int, opts ...picdesk.Option) *picdesk.Index[int] {
	b.Helper()
	ix, err := picdesk.New[int](identity, opts...)
	if err != nil {
		b.Fatal(err)
	}
	if err := ix.Load(context.Background(), testutil.Sources(n)); err != nil {
		b.Fatal(err)
	}
	return ix
}

func multiSection(lengths []int) []picdesk.Option {
	return []picdesk.Option{
		picdesk.WithSingleSectionMode(false),
		picdesk.WithSectionLengths(lengths...),
	}
}

// randomPath picks a readable path; insert allows one past the end.
func randomPath(ix *picdesk.Index[int], insert bool) picdesk.IndexPath {
	for {
		s := rng.Intn(ix.SectionCount())
		n, _ := ix.ItemCount(s)
		if insert {
			return picdesk.Path(s, rng.Intn(n+1))
		}
		if n > 0 {
			return picdesk.Path(s, rng.Intn(n))
		}
	}
}
