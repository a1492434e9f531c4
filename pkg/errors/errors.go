// Package errors provides structured error reporting for collectionkit.
//
// Section operations never return errors for failed lookups. Recoverable
// failures are described by a [CollectionError] and sent to an [Handler];
// contract violations panic with a [BoundsError].
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrItemNotFound is wrapped by lookup errors for items absent from a section.
var ErrItemNotFound = errors.New("item not found in section")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLookup indicates an item identity lookup that found nothing.
	KindLookup
	// KindBounds indicates an index outside the valid range.
	KindBounds
	// KindConfig indicates an invalid configuration or replay script.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindLookup:
		return "lookup"
	case KindBounds:
		return "bounds"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// CollectionError represents a recoverable failure inside a section operation.
type CollectionError struct {
	// Op is the operation that failed (e.g., "section.RemoveItem").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Section is the identifier of the section involved, if any.
	Section string
	// Item is the identifier of the item involved, if any.
	Item string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CollectionError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("%s [%s] section=%s: %v", e.Op, e.Kind, e.Section, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// BoundsError is the panic value for reads or inserts outside a section's
// valid index range. Count is the number of items at the time of the call.
type BoundsError struct {
	Op    string
	Index int
	Count int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Count)
}

// Is lets errors.Is match any BoundsError against a zero-value target.
func (e *BoundsError) Is(target error) bool {
	_, ok := target.(*BoundsError)
	return ok
}

// Handler receives errors reported by collectionkit.
type Handler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *CollectionError)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(err *CollectionError)

// HandleError calls f(err).
func (f HandlerFunc) HandleError(err *CollectionError) {
	f(err)
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
