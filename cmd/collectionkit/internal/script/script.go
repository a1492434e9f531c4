// Package script parses replay scripts: a set of named sections and a list
// of mutation steps to apply to them.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/collectionkit/pkg/errors"
)

// Section kinds.
const (
	KindOrdered    = "ordered"
	KindExpandable = "expandable"
)

// Step operations.
const (
	OpAppend           = "append"
	OpAppendAll        = "append_all"
	OpInsert           = "insert"
	OpInsertAll        = "insert_all"
	OpRemoveAt         = "remove_at"
	OpRemoveAllAt      = "remove_all_at"
	OpRemoveItem       = "remove_item"
	OpRemoveItems      = "remove_items"
	OpClear            = "clear"
	OpReload           = "reload"
	OpReloadItem       = "reload_item"
	OpExpand           = "expand"
	OpCollapse         = "collapse"
	OpReloadCollection = "reload_collection"
)

// Script is a decoded replay script.
type Script struct {
	Sections []SectionSpec `yaml:"sections"`
	Steps    []Step        `yaml:"steps"`
}

// SectionSpec declares one section.
type SectionSpec struct {
	Name                string   `yaml:"name"`
	Kind                string   `yaml:"kind,omitempty"`
	CollapsedItemsCount int      `yaml:"collapsed_items_count,omitempty"`
	Header              string   `yaml:"header,omitempty"`
	Footer              string   `yaml:"footer,omitempty"`
	Items               []string `yaml:"items,omitempty"`
}

// Step is one operation applied to a section.
type Step struct {
	Section string   `yaml:"section,omitempty"`
	Op      string   `yaml:"op"`
	Items   []string `yaml:"items,omitempty"`
	Indices []int    `yaml:"indices,omitempty"`
}

// arity describes the arguments an op requires. -1 means "one or more".
type arity struct {
	items, indices int
	expandable     bool
	noSection      bool
}

var ops = map[string]arity{
	OpAppend:           {items: -1},
	OpAppendAll:        {items: -1},
	OpInsert:           {items: 1, indices: 1},
	OpInsertAll:        {items: -1, indices: -1},
	OpRemoveAt:         {indices: 1},
	OpRemoveAllAt:      {indices: -1},
	OpRemoveItem:       {items: 1},
	OpRemoveItems:      {items: -1},
	OpClear:            {},
	OpReload:           {},
	OpReloadItem:       {items: 1},
	OpExpand:           {expandable: true},
	OpCollapse:         {expandable: true},
	OpReloadCollection: {noSection: true},
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks section declarations and step arguments.
func (s *Script) Validate() error {
	kinds := make(map[string]string, len(s.Sections))
	for i := range s.Sections {
		sec := &s.Sections[i]
		if sec.Name == "" {
			return invalid(fmt.Sprintf("sections[%d]", i), "missing name")
		}
		if _, dup := kinds[sec.Name]; dup {
			return invalid(fmt.Sprintf("sections[%d]", i), fmt.Sprintf("duplicate section %q", sec.Name))
		}
		if sec.Kind == "" {
			sec.Kind = KindOrdered
		}
		if sec.Kind != KindOrdered && sec.Kind != KindExpandable {
			return invalid(fmt.Sprintf("sections[%d]", i), fmt.Sprintf("unknown kind %q", sec.Kind))
		}
		kinds[sec.Name] = sec.Kind
	}

	for i, step := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		a, ok := ops[step.Op]
		if !ok {
			return invalid(field, fmt.Sprintf("unknown op %q", step.Op))
		}
		if !a.noSection {
			kind, ok := kinds[step.Section]
			if !ok {
				return invalid(field, fmt.Sprintf("unknown section %q", step.Section))
			}
			if a.expandable && kind != KindExpandable {
				return invalid(field, fmt.Sprintf("%s needs an expandable section, %q is %s", step.Op, step.Section, kind))
			}
		}
		if err := checkCount(field+".items", a.items, len(step.Items)); err != nil {
			return err
		}
		if err := checkCount(field+".indices", a.indices, len(step.Indices)); err != nil {
			return err
		}
		if step.Op == OpInsertAll && len(step.Items) != len(step.Indices) {
			return invalid(field, "insert_all needs one index per item")
		}
	}
	return nil
}

func checkCount(field string, want, got int) error {
	switch {
	case want == -1 && got == 0:
		return invalid(field, "at least one value required")
	case want >= 0 && got != want:
		return invalid(field, fmt.Sprintf("want %d values, got %d", want, got))
	}
	return nil
}

func invalid(field, msg string) error {
	return &errors.CollectionError{
		Op:   "script." + field,
		Kind: errors.KindConfig,
		Err:  errors.New(msg),
	}
}
