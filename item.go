package picdesk

import (
	"context"
	"fmt"
)

// Item is one entry of the index.
//
// Key identifies the item externally (usually its source location). The
// index compares keys but never interprets Data.
type Item[T any] struct {
	Key  string
	Data T
}

// IndexPath addresses an item by section and section-local position.
//
// An IndexPath is only meaningful for the section table it was derived
// from. Resolve fresh paths after every mutation.
type IndexPath struct {
	Section int
	Item    int
}

// Path is shorthand for IndexPath{Section: section, Item: item}.
func Path(section, item int) IndexPath {
	return IndexPath{Section: section, Item: item}
}

// Compare orders index paths by section, then by item.
// It returns -1, 0 or +1.
func (p IndexPath) Compare(other IndexPath) int {
	switch {
	case p.Section < other.Section:
		return -1
	case p.Section > other.Section:
		return 1
	case p.Item < other.Item:
		return -1
	case p.Item > other.Item:
		return 1
	default:
		return 0
	}
}

func (p IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", p.Section, p.Item)
}

// Scanner lists candidate sources in a directory.
//
// Filtering (regular files, hidden entries, media type) is the scanner's job.
type Scanner interface {
	Scan(ctx context.Context, dir string) ([]string, error)
}

// Materializer turns a source location into an Item.
//
// A failed materialization is not fatal for a load: the source is dropped.
type Materializer[T any] interface {
	Materialize(ctx context.Context, source string) (Item[T], error)
}

// MaterializerFunc adapts a function to the Materializer interface.
type MaterializerFunc[T any] func(ctx context.Context, source string) (Item[T], error)

// Materialize implements Materializer.
func (f MaterializerFunc[T]) Materialize(ctx context.Context, source string) (Item[T], error) {
	return f(ctx, source)
}
