package script

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-drift/collectionkit/pkg/errors"
	"github.com/go-drift/collectionkit/pkg/item"
	"github.com/go-drift/collectionkit/pkg/layout"
	"github.com/go-drift/collectionkit/pkg/notify"
	"github.com/go-drift/collectionkit/pkg/section"
)

// StepError is returned when a step violates a section contract.
type StepError struct {
	Step  int
	Op    string
	Value any
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Op, e.Value)
}

// Runner applies a script to freshly built sections that share one channel
// and writes every notification to an io.Writer as it is delivered.
type Runner struct {
	out     io.Writer
	layout  layout.SectionLayout
	channel *notify.Channel
	logger  *slog.Logger

	sections map[string]*section.Ordered
	expand   map[string]*section.Expandable
	names    map[string]string
	order    []string
	step     int
}

// NewRunner creates a runner writing to out. Sections are created with l as
// their layout metadata and publish on ch.
func NewRunner(out io.Writer, ch *notify.Channel, l layout.SectionLayout, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		out:      out,
		layout:   l,
		channel:  ch,
		logger:   logger,
		sections: make(map[string]*section.Ordered),
		expand:   make(map[string]*section.Expandable),
		names:    make(map[string]string),
	}
}

// Run builds the script's sections, applies every step in order and prints
// the final contents. It stops at the first contract violation.
func (r *Runner) Run(s *Script) error {
	sub := r.channel.Subscribe(notify.Handler{
		OnMutation: func(m notify.Mutation) {
			fmt.Fprintf(r.out, "[%d] %s: %s %v\n", r.step, r.sectionName(m.Section), m.Action, m.Indices)
		},
		OnReload: func(rl notify.Reload) {
			fmt.Fprintf(r.out, "[%d] reload %s%s\n", r.step, rl.Subject, r.objectName(rl))
		},
	})
	defer sub.Cancel()

	for _, spec := range s.Sections {
		r.build(spec)
	}
	for i, step := range s.Steps {
		r.step = i
		r.logger.Debug("applying step", "step", i, "op", step.Op, "section", step.Section)
		if err := r.apply(step); err != nil {
			return err
		}
	}
	r.printState()
	return nil
}

func (r *Runner) build(spec SectionSpec) {
	opts := []section.Option{
		section.WithLayout(r.layout),
		section.WithItems(toItems(spec.Items)...),
		section.WithReporter(errors.HandlerFunc(func(err *errors.CollectionError) {
			fmt.Fprintf(r.out, "[%d] %s: error %s: %v (%s)\n", r.step, spec.Name, err.Op, err.Err, err.Item)
		})),
	}
	if spec.Header != "" {
		opts = append(opts, section.WithHeader(item.WithID(spec.Header)))
	}
	if spec.Footer != "" {
		opts = append(opts, section.WithFooter(item.WithID(spec.Footer)))
	}

	var ordered *section.Ordered
	if spec.Kind == KindExpandable {
		e := section.NewExpandable(r.channel, spec.CollapsedItemsCount, opts...)
		r.expand[spec.Name] = e
		ordered = e.Ordered
	} else {
		ordered = section.NewOrdered(r.channel, opts...)
	}
	r.sections[spec.Name] = ordered
	r.names[ordered.Identifier()] = spec.Name
	r.order = append(r.order, spec.Name)
}

func (r *Runner) apply(step Step) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &StepError{Step: r.step, Op: step.Op, Value: v}
		}
	}()

	if step.Op == OpReloadCollection {
		r.channel.ReloadCollection()
		return nil
	}

	s := r.sections[step.Section]
	items := toItems(step.Items)
	switch step.Op {
	case OpAppend:
		for _, it := range items {
			s.Append(it)
		}
	case OpAppendAll:
		s.AppendAll(items...)
	case OpInsert:
		s.Insert(items[0], step.Indices[0])
	case OpInsertAll:
		s.InsertAll(items, step.Indices)
	case OpRemoveAt:
		s.RemoveAt(step.Indices[0])
	case OpRemoveAllAt:
		s.RemoveAllAt(step.Indices...)
	case OpRemoveItem:
		s.RemoveItem(items[0])
	case OpRemoveItems:
		s.RemoveItems(items...)
	case OpClear:
		s.Clear()
	case OpReload:
		s.Reload()
	case OpReloadItem:
		s.ReloadItem(items[0])
	case OpExpand:
		r.expand[step.Section].SetExpanded(true)
	case OpCollapse:
		r.expand[step.Section].SetExpanded(false)
	default:
		return invalid(fmt.Sprintf("steps[%d]", r.step), fmt.Sprintf("unknown op %q", step.Op))
	}
	return nil
}

func (r *Runner) printState() {
	for _, name := range r.order {
		s := r.sections[name]
		fmt.Fprintf(r.out, "%s: [%s]", name, strings.Join(identifiers(s.Items()), " "))
		if e, ok := r.expand[name]; ok {
			fmt.Fprintf(r.out, " expanded=%t collapsed_items_count=%d", e.IsExpanded(), e.CollapsedItemsCount())
		}
		fmt.Fprintln(r.out)
	}
}

func (r *Runner) sectionName(src notify.Source) string {
	if src == nil {
		return "?"
	}
	if name, ok := r.names[src.Identifier()]; ok {
		return name
	}
	return src.Identifier()
}

func (r *Runner) objectName(rl notify.Reload) string {
	switch obj := rl.Object.(type) {
	case section.Section:
		return " " + r.sectionName(obj)
	case item.Item:
		return " " + obj.Identifier()
	default:
		return ""
	}
}

func toItems(ids []string) []item.Item {
	out := make([]item.Item, len(ids))
	for i, id := range ids {
		out[i] = item.WithID(id)
	}
	return out
}

func identifiers(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Identifier()
	}
	return out
}
