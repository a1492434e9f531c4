package section

import (
	"fmt"
	"slices"

	"github.com/go-drift/collectionkit/pkg/errors"
	"github.com/go-drift/collectionkit/pkg/item"
	"github.com/go-drift/collectionkit/pkg/layout"
	"github.com/go-drift/collectionkit/pkg/notify"
)

// Ordered is the array-backed Section. All index arguments refer to display
// order.
type Ordered struct {
	id       string
	items    []item.Item
	header   item.Item
	footer   item.Item
	layout   layout.SectionLayout
	channel  *notify.Channel
	reporter errors.Handler

	// self is the outermost section value, so notifications from an embedded
	// Ordered reference the embedding variant.
	self Section
}

var _ Section = (*Ordered)(nil)

// NewOrdered creates an empty section publishing on ch. A nil ch publishes
// nowhere.
func NewOrdered(ch *notify.Channel, opts ...Option) *Ordered {
	s := newOrdered(ch, opts)
	s.self = s
	return s
}

func newOrdered(ch *notify.Channel, opts []Option) *Ordered {
	s := &Ordered{
		id:      item.NewIdentifier(),
		layout:  layout.DefaultSectionLayout(),
		channel: ch,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Identifier implements Section.
func (s *Ordered) Identifier() string { return s.id }

// HeaderItem returns the header item, or nil.
func (s *Ordered) HeaderItem() item.Item { return s.header }

// SetHeaderItem replaces the header item. Pass nil to remove it.
func (s *Ordered) SetHeaderItem(it item.Item) { s.header = it }

// FooterItem returns the footer item, or nil.
func (s *Ordered) FooterItem() item.Item { return s.footer }

// SetFooterItem replaces the footer item. Pass nil to remove it.
func (s *Ordered) SetFooterItem(it item.Item) { s.footer = it }

// Layout returns the section's layout metadata.
func (s *Ordered) Layout() layout.SectionLayout { return s.layout }

// SetLayout replaces the section's layout metadata.
func (s *Ordered) SetLayout(l layout.SectionLayout) { s.layout = l }

// Channel returns the channel this section publishes on.
func (s *Ordered) Channel() *notify.Channel { return s.channel }

// NumberOfItems implements Section.
func (s *Ordered) NumberOfItems() int { return len(s.items) }

// IsEmpty implements Section.
func (s *Ordered) IsEmpty() bool { return len(s.items) == 0 }

// Item implements Section.
func (s *Ordered) Item(index int) item.Item {
	if index < 0 || index >= len(s.items) {
		panic(&errors.BoundsError{Op: "section.Item", Index: index, Count: len(s.items)})
	}
	return s.items[index]
}

// Items returns a copy of the item sequence.
func (s *Ordered) Items() []item.Item {
	return slices.Clone(s.items)
}

// Contains implements Section.
func (s *Ordered) Contains(it item.Item) bool {
	return item.Contains(s.items, it)
}

// Index implements Section.
func (s *Ordered) Index(it item.Item) (int, bool) {
	i := item.IndexOf(s.items, it)
	return i, i >= 0
}

// Append adds it at the end and publishes an insert at the new last index.
func (s *Ordered) Append(it item.Item) {
	s.items = append(s.items, it)
	s.publish(notify.ActionInsert, []int{len(s.items) - 1})
}

// AppendAll adds items at the end as one contiguous run and publishes a
// single insert covering every newly occupied index.
func (s *Ordered) AppendAll(items ...item.Item) {
	if len(items) == 0 {
		return
	}
	start := len(s.items)
	s.items = append(s.items, items...)
	indices := make([]int, len(items))
	for i := range indices {
		indices[i] = start + i
	}
	s.publish(notify.ActionInsert, indices)
}

// Insert places it at index, shifting later items right. index may equal
// NumberOfItems(). Any other out-of-range index panics.
func (s *Ordered) Insert(it item.Item, index int) {
	if index < 0 || index > len(s.items) {
		panic(&errors.BoundsError{Op: "section.Insert", Index: index, Count: len(s.items) + 1})
	}
	s.items = slices.Insert(s.items, index, it)
	s.publish(notify.ActionInsert, []int{index})
}

// InsertAll inserts items[i] at indices[i] in order, each against the
// sequence as grown by the previous insertions. Ascending indices are the
// only ordering with obvious results. One insert carrying indices is
// published. Mismatched lengths or an invalid index panic before anything is
// inserted.
func (s *Ordered) InsertAll(items []item.Item, indices []int) {
	if len(items) != len(indices) {
		panic(fmt.Errorf("section.InsertAll: %d items but %d indices", len(items), len(indices)))
	}
	if len(items) == 0 {
		return
	}
	for i, idx := range indices {
		if n := len(s.items) + i; idx < 0 || idx > n {
			panic(&errors.BoundsError{Op: "section.InsertAll", Index: idx, Count: n + 1})
		}
	}
	for i, it := range items {
		s.items = slices.Insert(s.items, indices[i], it)
	}
	s.publish(notify.ActionInsert, slices.Clone(indices))
}

// RemoveAt removes the item at index and publishes a delete. An index
// outside [0, NumberOfItems()) is a no-op that returns false.
func (s *Ordered) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items = slices.Delete(s.items, index, index+1)
	s.publish(notify.ActionDelete, []int{index})
	return true
}

// RemoveAllAt removes every listed position of the current sequence as one
// batch, so callers pass pre-removal positions without adjusting for drift.
// Out-of-range and repeated positions are skipped. A single delete carrying
// the remaining positions in argument order is published. It returns the
// number of items removed.
func (s *Ordered) RemoveAllAt(indices ...int) int {
	doomed := make(map[int]bool, len(indices))
	kept := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.items) || doomed[idx] {
			continue
		}
		doomed[idx] = true
		kept = append(kept, idx)
	}
	if len(kept) == 0 {
		return 0
	}
	s.items = s.withoutPositions(doomed)
	s.publish(notify.ActionDelete, kept)
	return len(kept)
}

// RemoveItem removes the first item equal to it. If none is present the
// miss is reported and false is returned.
func (s *Ordered) RemoveItem(it item.Item) bool {
	index, ok := s.Index(it)
	if !ok {
		s.reportMissing("section.RemoveItem", it)
		return false
	}
	return s.RemoveAt(index)
}

// RemoveItems looks up each item independently against the current sequence
// and removes every hit as one batch. Misses are reported one by one and
// skipped. Hits are published as a single delete of their pre-removal
// indices in argument order. It returns the number of items removed.
func (s *Ordered) RemoveItems(items ...item.Item) int {
	doomed := make(map[int]bool, len(items))
	indices := make([]int, 0, len(items))
	for _, it := range items {
		index := -1
		for i, candidate := range s.items {
			if !doomed[i] && item.Equal(candidate, it) {
				index = i
				break
			}
		}
		if index < 0 {
			s.reportMissing("section.RemoveItems", it)
			continue
		}
		doomed[index] = true
		indices = append(indices, index)
	}
	if len(indices) == 0 {
		return 0
	}
	s.items = s.withoutPositions(doomed)
	s.publish(notify.ActionDelete, indices)
	return len(indices)
}

// ReloadItem publishes an item-scope reload for it when it is in the
// sequence or is the header or footer. Otherwise the miss is reported and
// false is returned. A nil item is always a miss.
func (s *Ordered) ReloadItem(it item.Item) bool {
	if item.IsNil(it) {
		s.reportMissing("section.ReloadItem", it)
		return false
	}
	if !s.Contains(it) && !item.Equal(s.header, it) && !item.Equal(s.footer, it) {
		s.reportMissing("section.ReloadItem", it)
		return false
	}
	s.channel.PublishReload(notify.Reload{Subject: notify.SubjectItem, Object: it})
	return true
}

// Clear implements Section.
func (s *Ordered) Clear() {
	s.items = nil
}

// Reload implements Section.
func (s *Ordered) Reload() {
	s.channel.PublishReload(notify.Reload{Subject: notify.SubjectSection, Object: s.self})
}

func (s *Ordered) withoutPositions(doomed map[int]bool) []item.Item {
	out := make([]item.Item, 0, len(s.items)-len(doomed))
	for i, it := range s.items {
		if !doomed[i] {
			out = append(out, it)
		}
	}
	return out
}

func (s *Ordered) publish(action notify.Action, indices []int) {
	s.channel.PublishMutation(notify.Mutation{
		Section: s.self,
		Indices: indices,
		Action:  action,
	})
}

func (s *Ordered) reportMissing(op string, it item.Item) {
	id := ""
	if !item.IsNil(it) {
		id = it.Identifier()
	}
	errors.ReportTo(s.reporter, &errors.CollectionError{
		Op:      op,
		Kind:    errors.KindLookup,
		Section: s.id,
		Item:    id,
		Err:     errors.ErrItemNotFound,
	})
}
