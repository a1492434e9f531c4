package notify

import "sync"

// Event is one recorded notification. Exactly one of Mutation or Reload is set.
type Event struct {
	Mutation *Mutation
	Reload   *Reload
}

func (e Event) String() string {
	switch {
	case e.Mutation != nil:
		return e.Mutation.String()
	case e.Reload != nil:
		return e.Reload.String()
	default:
		return "<empty>"
	}
}

// Recorder subscribes to a Channel and keeps every notification in delivery
// order.
type Recorder struct {
	sub    *Subscription
	mu     sync.Mutex
	events []Event
}

// NewRecorder subscribes a new Recorder to c.
func NewRecorder(c *Channel) *Recorder {
	r := &Recorder{}
	r.sub = c.Subscribe(Handler{
		OnMutation: func(m Mutation) {
			m.Indices = append([]int(nil), m.Indices...)
			r.append(Event{Mutation: &m})
		},
		OnReload: func(rl Reload) {
			r.append(Event{Reload: &rl})
		},
	})
	return r
}

func (r *Recorder) append(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Mutations returns the recorded mutations, skipping reloads.
func (r *Recorder) Mutations() []Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Mutation
	for _, e := range r.events {
		if e.Mutation != nil {
			out = append(out, *e.Mutation)
		}
	}
	return out
}

// Reloads returns the recorded reloads, skipping mutations.
func (r *Recorder) Reloads() []Reload {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Reload
	for _, e := range r.events {
		if e.Reload != nil {
			out = append(out, *e.Reload)
		}
	}
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset discards recorded events but keeps the subscription.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// Close cancels the underlying subscription.
func (r *Recorder) Close() {
	r.sub.Cancel()
}
