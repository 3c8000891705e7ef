// Package form implements the poll and community creation workflows: the
// bounded field list backing repeatable inputs, declarative validation,
// the channel search state machine, and the submission controller.
package form

import "github.com/google/uuid"

// Field is one row of a FieldList. The ID is generated once on append and
// never changes, so consumers can bind UI state to a row independently of
// its position in the list.
type Field[R any] struct {
	ID  string
	Row R
}

// FieldList is an ordered, bounded list of rows with stable per-row
// identity. All mutating operations keep min <= len <= max; operations that
// would violate the bounds are silent no-ops.
type FieldList[R any] struct {
	fields []Field[R]
	min    int
	max    int
}

// NewFieldList creates a FieldList bounded by [min, max], seeded with min
// default rows.
func NewFieldList[R any](min, max int, defaultRow R) *FieldList[R] {
	l := &FieldList[R]{min: min, max: max}
	for i := 0; i < min; i++ {
		l.fields = append(l.fields, Field[R]{ID: uuid.New().String(), Row: defaultRow})
	}
	return l
}

// Append adds a row with a freshly generated id. Returns false without
// modifying the list when it is already at max capacity.
func (l *FieldList[R]) Append(row R) bool {
	if len(l.fields) >= l.max {
		return false
	}
	l.fields = append(l.fields, Field[R]{ID: uuid.New().String(), Row: row})
	return true
}

// Remove deletes the row with the given id, preserving the relative order
// of the remainder. Returns false when the list is at min capacity or the
// id is unknown.
func (l *FieldList[R]) Remove(id string) bool {
	if len(l.fields) <= l.min {
		return false
	}
	for i, f := range l.fields {
		if f.ID == id {
			l.fields = append(l.fields[:i], l.fields[i+1:]...)
			return true
		}
	}
	return false
}

// Update replaces the row content for the given id without changing its id
// or position. Returns false when the id is unknown.
func (l *FieldList[R]) Update(id string, row R) bool {
	for i := range l.fields {
		if l.fields[i].ID == id {
			l.fields[i].Row = row
			return true
		}
	}
	return false
}

// Fields returns the rows in order. The returned slice is shared with the
// list and must not be mutated by callers.
func (l *FieldList[R]) Fields() []Field[R] {
	return l.fields
}

// Len returns the current number of rows.
func (l *FieldList[R]) Len() int {
	return len(l.fields)
}

// CanAppend reports whether a row can be added. The UI hides the add
// affordance when this is false.
func (l *FieldList[R]) CanAppend() bool {
	return len(l.fields) < l.max
}

// CanRemove reports whether a row can be removed. The UI hides the remove
// affordance when this is false.
func (l *FieldList[R]) CanRemove() bool {
	return len(l.fields) > l.min
}
