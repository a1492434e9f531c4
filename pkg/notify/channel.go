// Package notify carries section change notifications to their subscribers.
//
// A [Channel] is created by whichever component composes sections and
// renderers and is handed to each section at construction. Publishing is
// synchronous: PublishMutation and PublishReload return only after every
// subscriber registered at the time of the call has run, in registration
// order. Notifications are never reordered, coalesced or deduplicated.
//
//	ch := notify.NewChannel("feed")
//	sub := ch.Subscribe(notify.Handler{
//	    OnMutation: func(m notify.Mutation) { applyIndexChanges(m) },
//	    OnReload:   func(r notify.Reload) { invalidate(r) },
//	})
//	defer sub.Cancel()
package notify

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Handler receives notifications from a Channel. Either callback may be nil.
type Handler struct {
	OnMutation func(Mutation)
	OnReload   func(Reload)
}

// Subscription represents an active registration on a Channel.
type Subscription struct {
	channel  *Channel
	handler  Handler
	canceled atomic.Bool
}

// Cancel stops delivery to this subscription. It is safe to call more than
// once and from within a handler.
func (s *Subscription) Cancel() {
	if s.canceled.CompareAndSwap(false, true) {
		s.channel.removeSubscription(s)
	}
}

// IsCanceled returns true if this subscription has been canceled.
func (s *Subscription) IsCanceled() bool {
	return s.canceled.Load()
}

// Channel is a publish/subscribe registry for section notifications.
// The subscriber list is guarded by a mutex; delivery happens on the
// publishing goroutine.
type Channel struct {
	name          string
	subscriptions []*Subscription
	mu            sync.Mutex
}

// NewChannel creates a channel with the given name.
func NewChannel(name string) *Channel {
	return &Channel{name: name}
}

// Name returns the channel name.
func (c *Channel) Name() string {
	return c.name
}

// Subscribe registers h and returns its subscription.
func (c *Channel) Subscribe(h Handler) *Subscription {
	sub := &Subscription{channel: c, handler: h}
	c.mu.Lock()
	c.subscriptions = append(c.subscriptions, sub)
	c.mu.Unlock()
	return sub
}

// Len returns the number of active subscriptions.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscriptions)
}

func (c *Channel) removeSubscription(sub *Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.subscriptions {
		if s == sub {
			c.subscriptions = slices.Delete(c.subscriptions, i, i+1)
			return
		}
	}
}

func (c *Channel) snapshot() []*Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.subscriptions)
}

// PublishMutation delivers m to every subscriber. Each subscriber gets its
// own copy of m.Indices, so editing it in a handler affects no one else.
// Calling it on a nil channel is a no-op.
func (c *Channel) PublishMutation(m Mutation) {
	if c == nil {
		return
	}
	indices := slices.Clone(m.Indices)
	for _, sub := range c.snapshot() {
		if !sub.IsCanceled() && sub.handler.OnMutation != nil {
			delivered := m
			delivered.Indices = slices.Clone(indices)
			sub.handler.OnMutation(delivered)
		}
	}
}

// PublishReload delivers r to every subscriber. Calling it on a nil channel
// is a no-op.
func (c *Channel) PublishReload(r Reload) {
	if c == nil {
		return
	}
	for _, sub := range c.snapshot() {
		if !sub.IsCanceled() && sub.handler.OnReload != nil {
			sub.handler.OnReload(r)
		}
	}
}

// ReloadCollection publishes a collection-scope reload. Subscribers should
// re-render everything and drop index batches received since the last one.
func (c *Channel) ReloadCollection() {
	c.PublishReload(Reload{Subject: SubjectCollection})
}
