package picdesk

import (
	"errors"
	"fmt"

	"github.com/hupe1980/picdesk/internal/store"
	"github.com/hupe1980/picdesk/section"
)

var (
	// ErrOutOfRange is returned when a section index or index path does not
	// address the current section table. The index is never clamped.
	ErrOutOfRange = errors.New("index out of range")

	// ErrPolicyUnderflow is returned by Load when the configured section
	// lengths do not cover every item and the remainder mode rejects it.
	ErrPolicyUnderflow = section.ErrPolicyUnderflow

	// ErrInvalidPolicy is returned for section length policies that cannot be applied.
	ErrInvalidPolicy = section.ErrInvalidPolicy

	// ErrNoMaterializer is returned by Load when sources are given but the
	// index has no Materializer.
	ErrNoMaterializer = errors.New("no materializer configured")

	// ErrNoScanner is returned by LoadFromDirectory when no Scanner is configured.
	ErrNoScanner = errors.New("no scanner configured")
)

// IndexPathError records a failed operation on an index path.
//
// The original underlying error can be accessed via errors.Unwrap.
type IndexPathError struct {
	Op    string
	Path  IndexPath
	cause error
}

func (e *IndexPathError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Op, e.Path, e.cause)
}

func (e *IndexPathError) Unwrap() error { return e.cause }

// ScanError indicates that the directory scan collaborator failed.
//
// The original underlying error can be accessed via errors.Unwrap.
type ScanError struct {
	Dir   string
	cause error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %q: %v", e.Dir, e.cause)
}

func (e *ScanError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, section.ErrOutOfRange) || errors.Is(err, store.ErrOutOfRange) {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	return err
}

func pathError(op string, p IndexPath, err error) error {
	if err == nil {
		return nil
	}
	return &IndexPathError{Op: op, Path: p, cause: translateError(err)}
}
