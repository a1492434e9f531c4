package section

import "github.com/go-drift/collectionkit/pkg/notify"

// Expandable is an Ordered section that also stores collapsed/expanded state
// for the rendering layer.
//
// The state is advisory. NumberOfItems and Item always address the full
// sequence; deciding which indices are visible while collapsed is the
// renderer's job, using IsExpanded and CollapsedItemsCount.
type Expandable struct {
	*Ordered

	collapsedItemsCount int
	expanded            bool
}

var _ Section = (*Expandable)(nil)

// NewExpandable creates an empty, collapsed section that shows
// collapsedItemsCount items while collapsed.
func NewExpandable(ch *notify.Channel, collapsedItemsCount int, opts ...Option) *Expandable {
	e := &Expandable{Ordered: newOrdered(ch, opts)}
	e.self = e
	e.SetCollapsedItemsCount(collapsedItemsCount)
	return e
}

// CollapsedItemsCount returns how many items to show while collapsed.
func (e *Expandable) CollapsedItemsCount() int { return e.collapsedItemsCount }

// SetCollapsedItemsCount sets how many items to show while collapsed.
// Negative values are stored as zero.
func (e *Expandable) SetCollapsedItemsCount(n int) {
	e.collapsedItemsCount = max(n, 0)
}

// IsExpanded reports whether the section is expanded.
func (e *Expandable) IsExpanded() bool { return e.expanded }

// SetExpanded sets the expansion state. It publishes nothing; callers that
// want the change rendered follow it with Reload.
func (e *Expandable) SetExpanded(expanded bool) { e.expanded = expanded }

// Toggle flips the expansion state and returns the new value.
func (e *Expandable) Toggle() bool {
	e.expanded = !e.expanded
	return e.expanded
}
