// Package picdesk provides a sectioned ordered-collection index.
//
// An Index keeps a flat, ordered list of items and presents it as a
// sequence of contiguous sections, the way a grid or list view groups its
// cells. Every section has an offset into the flat list and a length. The
// index keeps that bookkeeping consistent across bulk loads, inserts,
// removals and moves, and rejects index paths that do not address the
// current layout.
//
// # Quick Start
//
//	store := blobstore.NewLocalStore("/home/me")
//	m, err := imagefile.NewMaterializer(store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ix, err := picdesk.New[imagefile.ImageFile](m,
//	    picdesk.WithScanner(scan.New(store)),
//	    picdesk.WithSingleSectionMode(false),
//	    picdesk.WithSectionLengths(7, 5, 10),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ix.LoadFromDirectory(ctx, "Pictures"); err != nil {
//	    log.Fatal(err)
//	}
//	for s := 0; s < ix.SectionCount(); s++ {
//	    n, _ := ix.ItemCount(s)
//	    fmt.Println("section", s, "holds", n, "images")
//	}
//
// # Index Paths
//
// An IndexPath is only valid for the layout it was read from. After any
// mutation callers must derive fresh paths; using a stale path is
// undefined behavior.
//
// # Concurrency
//
// An Index is not safe for concurrent use. All calls are expected from one
// owning goroutine; callers needing shared access must serialize them.
package picdesk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/picdesk/internal/store"
	"github.com/hupe1980/picdesk/section"
	"golang.org/x/sync/errgroup"
)

// Index is a flat ordered item list exposed as contiguous sections.
type Index[T any] struct {
	items *store.Store[Item[T]]
	table section.Table

	config Config
	// lengths is the working copy of config.SectionLengths. Single-item
	// mutations patch it so Load(ctx, nil) reproduces the live layout.
	lengths []int
	// multi records whether the current table was built in multi-section mode.
	multi bool

	materializer Materializer[T]
	scanner      Scanner
	concurrency  int
	metrics      MetricsCollector
	logger       *Logger
}

// New creates an empty index. The item store and the section table stay
// empty until the first Load.
//
// m materializes sources passed to Load; it may be nil if the index is only
// populated through InsertAt.
func New[T any](m Materializer[T], optFns ...Option) (*Index[T], error) {
	opts := applyOptions(optFns)
	if err := opts.config.Validate(); err != nil {
		return nil, err
	}

	return &Index[T]{
		items:        store.New(func(it Item[T]) string { return it.Key }),
		config:       opts.config,
		lengths:      append([]int(nil), opts.config.SectionLengths...),
		materializer: m,
		scanner:      opts.scanner,
		concurrency:  opts.concurrency,
		metrics:      opts.metricsCollector,
		logger:       opts.logger,
	}, nil
}

// Config returns a copy of the current section configuration.
func (ix *Index[T]) Config() Config {
	return ix.config.clone()
}

// SetConfig replaces the section configuration. It takes effect on the next
// Load; the current layout is left unchanged.
func (ix *Index[T]) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ix.config = cfg.clone()
	ix.lengths = append([]int(nil), cfg.SectionLengths...)
	return nil
}

// SetSingleSectionMode toggles single-section mode for the next Load.
func (ix *Index[T]) SetSingleSectionMode(single bool) {
	ix.config.SingleSection = single
}

// Load replaces the items with the materialized sources and rebuilds the
// section table.
//
// Sources that fail to materialize are dropped. A nil sources slice keeps
// the current items and only recomputes the sections; an empty non-nil slice
// clears the index. On error the index is left unchanged.
func (ix *Index[T]) Load(ctx context.Context, sources []string) (err error) {
	start := time.Now()
	dropped := 0
	defer func() {
		ix.metrics.RecordLoad(ix.items.Len(), dropped, ix.table.Len(), time.Since(start), err)
		ix.logger.LogLoad(ctx, ix.items.Len(), dropped, ix.table.Len(), err)
	}()

	replace := sources != nil
	n := ix.items.Len()
	lengths := ix.lengths

	var entries []Item[T]
	if replace {
		if ix.materializer == nil {
			return ErrNoMaterializer
		}
		entries, dropped, err = ix.materialize(ctx, sources)
		if err != nil {
			return err
		}
		n = len(entries)
		lengths = ix.config.SectionLengths
	}

	table, err := section.Assign(n, section.Policy{
		Lengths:       lengths,
		SingleSection: ix.config.SingleSection,
		Remainder:     ix.config.Remainder,
	})
	if err != nil {
		return err
	}

	if replace {
		ix.items.Replace(entries)
		ix.lengths = append([]int(nil), ix.config.SectionLengths...)
	}
	ix.table = table
	ix.multi = !ix.config.SingleSection
	ix.checkInvariants("load")
	return nil
}

func (ix *Index[T]) materialize(ctx context.Context, sources []string) ([]Item[T], int, error) {
	results := make([]Item[T], len(sources))
	ok := make([]bool, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.concurrency)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			item, err := ix.materializer.Materialize(gctx, src)
			if err != nil {
				if cerr := gctx.Err(); cerr != nil {
					return cerr
				}
				ix.logger.DebugContext(gctx, "source dropped", "source", src, "error", err)
				return nil
			}
			results[i] = item
			ok[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	entries := results[:0]
	for i, item := range results {
		if ok[i] {
			entries = append(entries, item)
		}
	}
	return entries, len(sources) - len(entries), nil
}

// LoadFromDirectory scans dir with the configured Scanner and loads the
// result.
//
// When the scan fails the sections are recomputed over the current items,
// as for Load(ctx, nil), and the failure is returned as a *ScanError.
func (ix *Index[T]) LoadFromDirectory(ctx context.Context, dir string) error {
	if ix.scanner == nil {
		return ErrNoScanner
	}

	sources, err := ix.scanner.Scan(ctx, dir)
	ix.logger.WithDir(dir).LogScan(ctx, len(sources), err)
	if err != nil {
		scanErr := &ScanError{Dir: dir, cause: err}
		if lerr := ix.Load(ctx, nil); lerr != nil {
			return errors.Join(scanErr, lerr)
		}
		return scanErr
	}
	if sources == nil {
		sources = []string{}
	}
	return ix.Load(ctx, sources)
}

// Len returns the total number of items.
func (ix *Index[T]) Len() int { return ix.items.Len() }

// SectionCount returns the number of sections in the current layout.
func (ix *Index[T]) SectionCount() int { return ix.table.Len() }

// ItemCount returns the number of items in section s.
func (ix *Index[T]) ItemCount(s int) (int, error) {
	d, err := ix.table.At(s)
	if err != nil {
		return 0, translateError(err)
	}
	return d.Length, nil
}

// ItemAt returns the item addressed by p.
func (ix *Index[T]) ItemAt(p IndexPath) (Item[T], error) {
	pos, err := ix.table.Resolve(p.Section, p.Item)
	if err != nil {
		return Item[T]{}, pathError("item", p, err)
	}
	item, err := ix.items.At(pos)
	return item, pathError("item", p, err)
}

// Items returns a copy of all items in store order.
func (ix *Index[T]) Items() []Item[T] { return ix.items.All() }

// Sections returns a copy of the section descriptors.
func (ix *Index[T]) Sections() []section.Descriptor { return ix.table.Descriptors() }

// Layout returns the length of every section in the current layout.
func (ix *Index[T]) Layout() []int { return ix.table.Lengths() }

// PathOf returns the index path of the first item with the given key.
func (ix *Index[T]) PathOf(key string) (IndexPath, bool) {
	pos := ix.items.IndexOf(key)
	if pos < 0 {
		return IndexPath{}, false
	}
	s, item, err := ix.table.Locate(pos)
	if err != nil {
		return IndexPath{}, false
	}
	return IndexPath{Section: s, Item: item}, true
}

// RemoveByKeys removes every item whose key is in keys and returns how many
// were removed. Keys without a matching item are ignored.
func (ix *Index[T]) RemoveByKeys(keys ...string) int {
	start := time.Now()
	positions := ix.items.Positions(keys...)

	removed := 0
	var err error
	// Descending order keeps the remaining positions valid.
	it := positions.ReverseIterator()
	for it.HasNext() {
		pos := int(it.Next())
		var s int
		s, _, err = ix.table.Locate(pos)
		if err != nil {
			err = fmt.Errorf("remove position %d: %w", pos, translateError(err))
			break
		}
		if _, err = ix.items.Remove(pos); err != nil {
			break
		}
		if err = ix.table.Shrink(s); err != nil {
			break
		}
		ix.patchPolicy(s, -1)
		removed++
	}

	ix.checkInvariants("remove")
	ix.metrics.RecordRemove(removed, time.Since(start), err)
	ix.logger.LogRemove(context.Background(), removed, err)
	return removed
}

// RemoveAt removes and returns the item addressed by p.
func (ix *Index[T]) RemoveAt(p IndexPath) (Item[T], error) {
	start := time.Now()
	item, err := ix.removeAt(p)

	removed := 0
	if err == nil {
		removed = 1
	}
	ix.metrics.RecordRemove(removed, time.Since(start), err)
	ix.logger.LogRemove(context.Background(), removed, err)
	return item, err
}

func (ix *Index[T]) removeAt(p IndexPath) (Item[T], error) {
	pos, err := ix.table.Resolve(p.Section, p.Item)
	if err != nil {
		return Item[T]{}, pathError("remove", p, err)
	}
	item, err := ix.items.Remove(pos)
	if err != nil {
		return Item[T]{}, pathError("remove", p, err)
	}
	if err := ix.table.Shrink(p.Section); err != nil {
		return Item[T]{}, pathError("remove", p, err)
	}
	ix.patchPolicy(p.Section, -1)
	ix.checkInvariants("remove")
	return item, nil
}

// InsertAt inserts item at p. p.Item may equal the section's length, which
// appends to the section.
func (ix *Index[T]) InsertAt(item Item[T], p IndexPath) error {
	start := time.Now()
	err := ix.insertAt(item, p)
	ix.metrics.RecordInsert(time.Since(start), err)
	ix.logger.LogInsert(context.Background(), item.Key, p, err)
	return err
}

func (ix *Index[T]) insertAt(item Item[T], p IndexPath) error {
	pos, err := ix.table.ResolveInsert(p.Section, p.Item)
	if err != nil {
		return pathError("insert", p, err)
	}
	if err := ix.items.Insert(pos, item); err != nil {
		return pathError("insert", p, err)
	}
	if err := ix.table.Grow(p.Section); err != nil {
		return pathError("insert", p, err)
	}
	ix.patchPolicy(p.Section, +1)
	ix.checkInvariants("insert")
	return nil
}

// MoveTo moves the item at from so that it ends up at to.
//
// Both paths are read against the layout before the move. When to lies
// after from in the flat order, the removal shifts the destination left by
// one and the item is inserted at (to.Section, to.Item-1). A destination at
// the head of a later section stays at (to.Section, 0), so the item becomes
// the first of that section. Moving an item onto itself is a no-op.
func (ix *Index[T]) MoveTo(from, to IndexPath) (err error) {
	start := time.Now()
	defer func() {
		ix.metrics.RecordMove(time.Since(start), err)
		ix.logger.LogMove(context.Background(), from, to, err)
	}()

	absFrom, err := ix.table.Resolve(from.Section, from.Item)
	if err != nil {
		return pathError("move", from, err)
	}
	absTo, err := ix.table.ResolveInsert(to.Section, to.Item)
	if err != nil {
		return pathError("move", to, err)
	}

	dest := to
	if absTo > absFrom && to.Item > 0 {
		dest.Item--
	}

	item, err := ix.removeAt(from)
	if err != nil {
		return err
	}
	if err := ix.insertAt(item, dest); err != nil {
		// Put the item back where it came from.
		if rerr := ix.insertAt(item, from); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	return nil
}

func (ix *Index[T]) patchPolicy(s, delta int) {
	if !ix.multi || s >= len(ix.lengths) {
		return
	}
	ix.lengths[s] = max(ix.lengths[s]+delta, 0)
}

func (ix *Index[T]) checkInvariants(op string) {
	if err := ix.table.Validate(ix.items.Len()); err != nil {
		invariantViolated(ix.logger, op, err)
	}
}
