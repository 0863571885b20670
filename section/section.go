// Package section implements the section bookkeeping behind a picdesk index.
//
// A Table partitions the flat positions [0, n) of an item store into
// contiguous sections. Each section is described by its Offset (absolute
// position of its first item) and its Length. The table is rebuilt by Assign
// on bulk loads and patched in place by Grow and Shrink on single-item
// mutations.
//
// The invariants maintained by every exported operation are:
//
//   - Offset(0) == 0
//   - Offset(i) == Offset(i-1) + Length(i-1)
//   - Offset(last) + Length(last) == n
package section

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOutOfRange is returned when a section index or a section-local item
// index does not address a position in the current table.
var ErrOutOfRange = errors.New("section: index out of range")

// Descriptor locates one section inside the flat item store.
type Descriptor struct {
	Offset int
	Length int
}

// End returns the absolute position one past the last item of the section.
func (d Descriptor) End() int { return d.Offset + d.Length }

func (d Descriptor) String() string {
	return fmt.Sprintf("(%d,%d)", d.Offset, d.Length)
}

// Table is an ordered sequence of section descriptors.
//
// The zero value is an empty table with no sections.
type Table struct {
	sections []Descriptor
}

// NewTable returns a table holding a copy of the given descriptors.
// It does not validate them; use Validate for that.
func NewTable(descriptors ...Descriptor) Table {
	return Table{sections: append([]Descriptor(nil), descriptors...)}
}

// Len returns the number of sections.
func (t *Table) Len() int { return len(t.sections) }

// Total returns the number of items covered by the table.
func (t *Table) Total() int {
	if len(t.sections) == 0 {
		return 0
	}
	return t.sections[len(t.sections)-1].End()
}

// At returns the descriptor of section s.
func (t *Table) At(s int) (Descriptor, error) {
	if s < 0 || s >= len(t.sections) {
		return Descriptor{}, fmt.Errorf("%w: section %d of %d", ErrOutOfRange, s, len(t.sections))
	}
	return t.sections[s], nil
}

// Descriptors returns a copy of all descriptors in section order.
func (t *Table) Descriptors() []Descriptor {
	return append([]Descriptor(nil), t.sections...)
}

// Lengths returns the length of every section in section order.
func (t *Table) Lengths() []int {
	lengths := make([]int, len(t.sections))
	for i, d := range t.sections {
		lengths[i] = d.Length
	}
	return lengths
}

// Resolve maps a section-local item index to an absolute position.
// The item must address an existing item: 0 <= item < Length(s).
func (t *Table) Resolve(s, item int) (int, error) {
	d, err := t.At(s)
	if err != nil {
		return 0, err
	}
	if item < 0 || item >= d.Length {
		return 0, fmt.Errorf("%w: item %d in section %d of length %d", ErrOutOfRange, item, s, d.Length)
	}
	return d.Offset + item, nil
}

// ResolveInsert maps a section-local insertion point to an absolute position.
// Unlike Resolve, item may equal Length(s), which appends to the section.
func (t *Table) ResolveInsert(s, item int) (int, error) {
	d, err := t.At(s)
	if err != nil {
		return 0, err
	}
	if item < 0 || item > d.Length {
		return 0, fmt.Errorf("%w: insert point %d in section %d of length %d", ErrOutOfRange, item, s, d.Length)
	}
	return d.Offset + item, nil
}

// Locate returns the section owning the absolute position pos and the
// section-local index of pos within it. Empty sections never own a position.
func (t *Table) Locate(pos int) (s, item int, err error) {
	if pos < 0 || pos >= t.Total() {
		return 0, 0, fmt.Errorf("%w: position %d of %d", ErrOutOfRange, pos, t.Total())
	}
	s = sort.Search(len(t.sections), func(i int) bool {
		return t.sections[i].End() > pos
	})
	return s, pos - t.sections[s].Offset, nil
}

// Grow records one item inserted into section s: its length grows by one
// and every later section shifts right by one.
func (t *Table) Grow(s int) error {
	return t.adjust(s, +1)
}

// Shrink records one item removed from section s: its length shrinks by one
// and every later section shifts left by one.
func (t *Table) Shrink(s int) error {
	d, err := t.At(s)
	if err != nil {
		return err
	}
	if d.Length == 0 {
		return fmt.Errorf("%w: section %d is empty", ErrOutOfRange, s)
	}
	return t.adjust(s, -1)
}

func (t *Table) adjust(s, delta int) error {
	if s < 0 || s >= len(t.sections) {
		return fmt.Errorf("%w: section %d of %d", ErrOutOfRange, s, len(t.sections))
	}
	t.sections[s].Length += delta
	for i := s + 1; i < len(t.sections); i++ {
		t.sections[i].Offset += delta
	}
	return nil
}

// Validate checks the partition invariants against an item count n.
func (t *Table) Validate(n int) error {
	next := 0
	for i, d := range t.sections {
		if d.Length < 0 {
			return fmt.Errorf("section %d has negative length %d", i, d.Length)
		}
		if d.Offset != next {
			return fmt.Errorf("section %d starts at %d, expected %d", i, d.Offset, next)
		}
		next = d.End()
	}
	if next != n {
		return fmt.Errorf("sections cover %d items, store holds %d", next, n)
	}
	return nil
}

// Equal reports whether two tables hold the same descriptors.
func (t *Table) Equal(other *Table) bool {
	if len(t.sections) != len(other.sections) {
		return false
	}
	for i := range t.sections {
		if t.sections[i] != other.sections[i] {
			return false
		}
	}
	return true
}

func (t *Table) String() string {
	return fmt.Sprint(t.sections)
}
