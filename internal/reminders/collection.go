// Package reminders holds the in-memory reminder collection and the
// operations the shells call into. Nothing here performs I/O.
package reminders

import (
	"github.com/idilsaglam/reminders/internal/model"
)

// Collection is an ordered list of reminders. Positions are stable: the
// collection only grows, so index i always addresses the same reminder.
//
// A Collection is not safe for concurrent use.
type Collection struct {
	items []*model.Reminder
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{}
}

// Add appends a new incomplete reminder.
func (c *Collection) Add(description, tag string) {
	c.items = append(c.items, model.NewReminder(description, tag))
}

// Get returns a copy of the reminder at index.
func (c *Collection) Get(index int) (model.Reminder, error) {
	if !c.IsIndexValid(index) {
		return model.Reminder{}, &IndexError{Index: index, Size: c.Size()}
	}
	return *c.items[index], nil
}

// IsIndexValid reports whether index addresses a reminder.
func (c *Collection) IsIndexValid(index int) bool {
	if c.Size() == 0 {
		return false
	}
	return index >= 0 && index < c.Size()
}

// Size is the number of reminders added so far.
func (c *Collection) Size() int {
	return len(c.items)
}

// Modify replaces the description of the reminder at index. Invalid
// indices are ignored.
func (c *Collection) Modify(index int, description string) {
	if !c.IsIndexValid(index) {
		return
	}
	c.items[index].SetDescription(description)
}

// ToggleCompletion flips the completion state of the reminder at index.
// Invalid indices are ignored.
func (c *Collection) ToggleCompletion(index int) {
	if !c.IsIndexValid(index) {
		return
	}
	c.items[index].ToggleCompletion()
}

// All returns a snapshot of every reminder in collection order.
func (c *Collection) All() []model.Reminder {
	return c.copies(c.indices())
}

// Stats counts completed and pending reminders.
func (c *Collection) Stats() (done, pending int) {
	for _, r := range c.items {
		if r.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (c *Collection) indices() []int {
	out := make([]int, len(c.items))
	for i := range c.items {
		out[i] = i
	}
	return out
}

func (c *Collection) copies(indices []int) []model.Reminder {
	out := make([]model.Reminder, 0, len(indices))
	for _, i := range indices {
		out = append(out, *c.items[i])
	}
	return out
}
