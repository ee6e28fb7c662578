package reminders

import (
	"github.com/idilsaglam/reminders/internal/model"
)

// Search returns the reminders matching keyword, tag matches first.
//
// Tags and descriptions are both matched by case-folded substring. Reminders
// whose tag matches come first in collection order, followed by reminders
// that only matched on their description. No reminder appears twice. An
// empty keyword matches everything.
func (c *Collection) Search(keyword string) []model.Reminder {
	return c.copies(c.SearchIndices(keyword))
}

// SearchIndices is Search expressed as collection positions.
func (c *Collection) SearchIndices(keyword string) []int {
	folded := Fold(keyword)
	byTag := c.matching(folded, func(r *model.Reminder) string { return r.Tag })
	byDescription := c.matching(folded, func(r *model.Reminder) string { return r.Description })

	seen := make(map[int]bool, len(byTag))
	out := make([]int, 0, len(byTag)+len(byDescription))
	for _, phase := range [][]int{byTag, byDescription} {
		for _, i := range phase {
			if seen[i] {
				continue
			}
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}

func (c *Collection) matching(foldedKeyword string, field func(*model.Reminder) string) []int {
	var out []int
	for i, r := range c.items {
		if containsFolded(field(r), foldedKeyword) {
			out = append(out, i)
		}
	}
	return out
}

// GroupByTag buckets reminders by case-folded tag. Within a bucket the
// reminders keep collection order.
func (c *Collection) GroupByTag() map[string][]model.Reminder {
	groups := make(map[string][]model.Reminder)
	for _, r := range c.items {
		tag := Fold(r.Tag)
		groups[tag] = append(groups[tag], *r)
	}
	return groups
}

// Tags lists the distinct case-folded tags in the order they first occur,
// which is the order renderers print GroupByTag buckets in.
func (c *Collection) Tags() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range c.items {
		tag := Fold(r.Tag)
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// GroupIndices is GroupByTag expressed as collection positions.
func (c *Collection) GroupIndices() map[string][]int {
	groups := make(map[string][]int)
	for i, r := range c.items {
		tag := Fold(r.Tag)
		groups[tag] = append(groups[tag], i)
	}
	return groups
}
