package errors

import (
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *CollectionError) {
	ReportTo(nil, err)
}

// ReportTo sends an error to h, falling back to the global handler when h is nil.
func ReportTo(h Handler, err *CollectionError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h == nil {
		h = getHandler()
	}
	if h != nil {
		h.HandleError(err)
	}
}

// Collector is a Handler that keeps every reported error in order.
// It is safe for concurrent use.
type Collector struct {
	mu   sync.Mutex
	errs []*CollectionError
}

// HandleError records err.
func (c *Collector) HandleError(err *CollectionError) {
	c.mu.Lock()
	c.errs = append(c.errs, err)
	c.mu.Unlock()
}

// Errors returns a copy of the recorded errors.
func (c *Collector) Errors() []*CollectionError {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*CollectionError, len(c.errs))
	copy(out, c.errs)
	return out
}

// Len returns the number of recorded errors.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs)
}

// Reset discards all recorded errors.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.errs = nil
	c.mu.Unlock()
}
