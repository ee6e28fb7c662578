package model

// Reminder is the domain model for a single note: what to remember, the tag
// it is filed under and whether it has been done.
type Reminder struct {
	Description string `json:"description"`
	Tag         string `json:"tag"`
	Completed   bool   `json:"completed"`
}

// NewReminder returns an incomplete reminder. Neither field is validated;
// blank input is rejected by whoever collects it.
func NewReminder(description, tag string) *Reminder {
	return &Reminder{Description: description, Tag: tag}
}

// ToggleCompletion flips the reminder between incomplete and complete.
func (r *Reminder) ToggleCompletion() {
	r.Completed = !r.Completed
}

// SetDescription replaces the description wholesale.
func (r *Reminder) SetDescription(text string) {
	r.Description = text
}
