// Package forms holds the form-side helpers the view layer uses before
// submission: the ordered string-list editor and the job post form encoder.
package forms

import (
	"errors"
	"strings"
)

// ErrEmptyItem is returned when an added item is empty after trimming.
var ErrEmptyItem = errors.New("item must not be empty")

// ListEditor manages one ordered string list (requirements or
// responsibilities) as local form state. Duplicates are allowed and removal
// is by positional index, so identical entries stay independently removable.
type ListEditor struct {
	items []string
}

// NewListEditor seeds an editor with existing items, e.g. when editing a post.
func NewListEditor(items []string) *ListEditor {
	e := &ListEditor{}
	e.items = append(e.items, items...)
	return e
}

// Add trims whitespace and appends the item. Empty strings are rejected.
func (e *ListEditor) Add(item string) error {
	item = strings.TrimSpace(item)
	if item == "" {
		return ErrEmptyItem
	}
	e.items = append(e.items, item)
	return nil
}

// RemoveAt deletes the item at index i. Out-of-range indexes are errors.
func (e *ListEditor) RemoveAt(i int) error {
	if i < 0 || i >= len(e.items) {
		return errors.New("index out of range")
	}
	e.items = append(e.items[:i], e.items[i+1:]...)
	return nil
}

// Items returns a copy of the current list in order.
func (e *ListEditor) Items() []string {
	out := make([]string, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the number of items.
func (e *ListEditor) Len() int {
	return len(e.items)
}
