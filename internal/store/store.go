// Package store holds the flat, ordered item sequence behind an index.
//
// Items are addressed by position. Key lookup is a secondary scan that
// reports matching positions as a roaring bitmap.
package store

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrOutOfRange is returned for positions outside the store.
var ErrOutOfRange = errors.New("store: position out of range")

// Store is an ordered sequence of entries.
// It is not safe for concurrent use.
type Store[E any] struct {
	entries []E
	key     func(E) string
}

// New creates an empty store. key extracts the identity of an entry.
func New[E any](key func(E) string) *Store[E] {
	return &Store[E]{key: key}
}

// Len returns the number of entries.
func (s *Store[E]) Len() int { return len(s.entries) }

// At returns the entry at pos.
func (s *Store[E]) At(pos int) (E, error) {
	if pos < 0 || pos >= len(s.entries) {
		var zero E
		return zero, fmt.Errorf("%w: %d of %d", ErrOutOfRange, pos, len(s.entries))
	}
	return s.entries[pos], nil
}

// All returns a copy of the entries in order.
func (s *Store[E]) All() []E {
	return append([]E(nil), s.entries...)
}

// Replace discards the current entries and takes ownership of entries.
func (s *Store[E]) Replace(entries []E) {
	s.entries = entries
}

// Insert places e at pos, shifting later entries right.
// pos may equal Len, which appends.
func (s *Store[E]) Insert(pos int, e E) error {
	if pos < 0 || pos > len(s.entries) {
		return fmt.Errorf("%w: insert at %d of %d", ErrOutOfRange, pos, len(s.entries))
	}
	var zero E
	s.entries = append(s.entries, zero)
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = e
	return nil
}

// Remove deletes and returns the entry at pos.
func (s *Store[E]) Remove(pos int) (E, error) {
	e, err := s.At(pos)
	if err != nil {
		return e, err
	}
	copy(s.entries[pos:], s.entries[pos+1:])
	var zero E
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return e, nil
}

// Positions returns the positions of every entry whose key is in keys.
func (s *Store[E]) Positions(keys ...string) *roaring.Bitmap {
	positions := roaring.New()
	if len(keys) == 0 {
		return positions
	}
	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}
	for i, e := range s.entries {
		if _, ok := wanted[s.key(e)]; ok {
			positions.Add(uint32(i))
		}
	}
	return positions
}

// IndexOf returns the position of the first entry with the given key, or -1.
func (s *Store[E]) IndexOf(key string) int {
	for i, e := range s.entries {
		if s.key(e) == key {
			return i
		}
	}
	return -1
}
