package notify

import (
	"fmt"
	"strconv"
	"strings"
)

// Subject names the scope a notification applies to.
type Subject int

const (
	// SubjectItem scopes a notification to items within a section.
	SubjectItem Subject = iota
	// SubjectSection scopes a notification to a whole section.
	SubjectSection
	// SubjectCollection scopes a notification to every section.
	SubjectCollection
)

// String returns a human-readable representation of the subject.
func (s Subject) String() string {
	switch s {
	case SubjectItem:
		return "item"
	case SubjectSection:
		return "section"
	case SubjectCollection:
		return "collection"
	default:
		return fmt.Sprintf("Subject(%d)", int(s))
	}
}

// Action is the kind of index change carried by a Mutation.
type Action int

const (
	// ActionInsert means items now occupy the given post-mutation indices.
	ActionInsert Action = iota
	// ActionDelete means items were removed from the given pre-removal indices.
	ActionDelete
)

// String returns a human-readable representation of the action.
func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Source is the sender of a Mutation. Sections satisfy it.
type Source interface {
	Identifier() string
}

// Mutation describes an insert or delete just applied to a section.
type Mutation struct {
	// Section is the section that changed.
	Section Source
	// Indices are post-mutation positions for inserts and pre-removal
	// positions for deletes.
	Indices []int
	// Action is the change that was applied.
	Action Action
}

// Subject always returns SubjectItem.
func (m Mutation) Subject() Subject {
	return SubjectItem
}

func (m Mutation) String() string {
	id := ""
	if m.Section != nil {
		id = m.Section.Identifier()
	}
	return fmt.Sprintf("%s %s section=%s indices=%s", m.Subject(), m.Action, id, formatIndices(m.Indices))
}

// Reload signals that everything about Object must be recomputed.
// Object is a section for SubjectSection, an item for SubjectItem and nil for
// SubjectCollection.
type Reload struct {
	Subject Subject
	Object  any
}

func (r Reload) String() string {
	if src, ok := r.Object.(Source); ok {
		return fmt.Sprintf("reload %s object=%s", r.Subject, src.Identifier())
	}
	return fmt.Sprintf("reload %s", r.Subject)
}

func formatIndices(indices []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, idx := range indices {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(idx))
	}
	sb.WriteByte(']')
	return sb.String()
}
