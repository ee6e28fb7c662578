package reminders

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned by Get when the position is out of range.
var ErrInvalidIndex = errors.New("invalid index")

// IndexError records which position was requested and how many reminders
// the collection held at the time.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: have %d, got %d", ErrInvalidIndex, e.Size, e.Index)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }
