// Package section implements the section/item ownership model.
//
// A section owns an ordered sequence of items plus optional header and footer
// items and opaque layout metadata. Every index-changing mutation on an
// [Ordered] section publishes a [notify.Mutation] on the channel the section
// was constructed with, so the rendering side never has to compute indices:
//
//	ch := notify.NewChannel("feed")
//	s := section.NewOrdered(ch)
//	s.Append(a)             // insert [0]
//	s.AppendAll(b, c)       // insert [1 2]
//	s.RemoveAt(1)           // delete [1]
//	s.Insert(d, 0)          // insert [0]
//
// # Error Asymmetry
//
// Reading outside the valid range (Item) or inserting outside it panics with
// an [errors.BoundsError]: returning an arbitrary item would corrupt whatever
// is rendered. Removing at an out-of-range index is a silent no-op that
// returns false, which tolerates removals racing with data changes. Removing
// an item that is not present is reported to the section's [errors.Handler]
// and otherwise ignored. No failure is ever published on the channel.
//
// # Concurrency
//
// Sections have no internal locking. Callers must serialize access to a
// given section.
package section

import (
	"github.com/go-drift/collectionkit/pkg/item"
	"github.com/go-drift/collectionkit/pkg/layout"
)

// Section is the capability contract every section variant satisfies.
type Section interface {
	// Identifier returns the process-unique identifier assigned at construction.
	Identifier() string

	HeaderItem() item.Item
	SetHeaderItem(it item.Item)
	FooterItem() item.Item
	SetFooterItem(it item.Item)

	Layout() layout.SectionLayout
	SetLayout(l layout.SectionLayout)

	// NumberOfItems returns the count of main-sequence items, excluding
	// header and footer.
	NumberOfItems() int
	// Item returns the item at index. It panics with *errors.BoundsError when
	// index is outside [0, NumberOfItems()).
	Item(index int) item.Item
	// Contains reports whether an item equal to it is in the sequence.
	Contains(it item.Item) bool
	// Index returns the first index holding an item equal to it.
	Index(it item.Item) (int, bool)
	// IsEmpty reports whether NumberOfItems() == 0.
	IsEmpty() bool

	// Clear removes every item without publishing index notifications.
	// Follow it with Reload.
	Clear()
	// Reload publishes a section-scope reload. It never mutates items.
	Reload()
}

// Equal reports whether a and b are the same section.
func Equal(a, b Section) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Identifier() == b.Identifier()
}
