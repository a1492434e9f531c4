// Package item defines the identity contract shared by everything that can be
// placed in a section.
//
// Items are compared by identifier only. Two values with identical content but
// different identifiers are distinct; two values with the same identifier are
// the same logical item regardless of their concrete type:
//
//	type Post struct {
//	    item.Identity
//	    Title string
//	}
//
//	a := Post{Identity: item.WithID("p1"), Title: "Hello"}
//	b := Post{Identity: item.WithID("p1"), Title: "Edited"}
//	item.Equal(a, b) // true
package item

import (
	"reflect"

	"github.com/google/uuid"
)

// Item is an identity-bearing unit of content displayed within a section.
type Item interface {
	// Identifier returns a stable identifier, unique per logical item.
	Identifier() string
}

// NewIdentifier returns a fresh process-unique identifier.
// Callers must not depend on its format.
func NewIdentifier() string {
	return uuid.NewString()
}

// IsNil reports whether it is nil or holds a nil pointer, map, slice, func,
// chan or interface value. Identifier is never called on such items.
func IsNil(it Item) bool {
	if it == nil {
		return true
	}
	switch v := reflect.ValueOf(it); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Equal reports whether a and b are the same logical item.
// Two nil items are equal; a nil item never equals a non-nil one. Typed nil
// pointers count as nil.
func Equal(a, b Item) bool {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	return a.Identifier() == b.Identifier()
}

// IndexOf returns the index of the first element of items equal to it, or -1.
func IndexOf(items []Item, it Item) int {
	for i, candidate := range items {
		if Equal(candidate, it) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element of items is equal to it.
func Contains(items []Item, it Item) bool {
	return IndexOf(items, it) >= 0
}

// Identity is an embeddable Item implementation.
type Identity struct {
	ID string
}

// New returns an Identity with a freshly generated identifier.
func New() Identity {
	return Identity{ID: NewIdentifier()}
}

// WithID returns an Identity wrapping a caller-supplied identifier.
func WithID(id string) Identity {
	return Identity{ID: id}
}

// Identifier implements Item.
func (i Identity) Identifier() string {
	return i.ID
}

func (i Identity) String() string {
	return i.ID
}
