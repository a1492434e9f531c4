package section

import (
	"github.com/go-drift/collectionkit/pkg/errors"
	"github.com/go-drift/collectionkit/pkg/item"
	"github.com/go-drift/collectionkit/pkg/layout"
)

// Option configures a section at construction.
type Option func(*Ordered)

// WithHeader sets the header item.
func WithHeader(it item.Item) Option {
	return func(s *Ordered) { s.header = it }
}

// WithFooter sets the footer item.
func WithFooter(it item.Item) Option {
	return func(s *Ordered) { s.footer = it }
}

// WithLayout replaces the default layout metadata.
func WithLayout(l layout.SectionLayout) Option {
	return func(s *Ordered) { s.layout = l }
}

// WithItems seeds the section with items. Seeding publishes nothing; the
// section has not been shown yet.
func WithItems(items ...item.Item) Option {
	return func(s *Ordered) { s.items = append(s.items, items...) }
}

// WithReporter routes this section's lookup errors to h instead of the
// process-wide handler.
func WithReporter(h errors.Handler) Option {
	return func(s *Ordered) { s.reporter = h }
}
