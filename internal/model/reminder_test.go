package model

import "testing"

func TestNewReminderStartsIncomplete(t *testing.T) {
	r := NewReminder("Buy milk", "shopping")
	if r.Completed {
		t.Fatalf("expected new reminder to be incomplete")
	}
	if r.Description != "Buy milk" || r.Tag != "shopping" {
		t.Fatalf("got %+v, want description and tag preserved", r)
	}
}

func TestNewReminderAcceptsEmptyText(t *testing.T) {
	r := NewReminder("", "")
	if r.Description != "" || r.Tag != "" {
		t.Fatalf("got %+v, want empty fields", r)
	}
}

func TestToggleCompletionIsInvolution(t *testing.T) {
	r := NewReminder("Call mom", "family")
	r.ToggleCompletion()
	if !r.Completed {
		t.Fatalf("expected completed after first toggle")
	}
	r.ToggleCompletion()
	if r.Completed {
		t.Fatalf("expected incomplete after second toggle")
	}
}

func TestSetDescriptionReplaces(t *testing.T) {
	r := NewReminder("Buy milk", "shopping")
	r.ToggleCompletion()
	r.SetDescription("Buy oat milk")
	if r.Description != "Buy oat milk" {
		t.Errorf("description = %q, want %q", r.Description, "Buy oat milk")
	}
	if r.Tag != "shopping" || !r.Completed {
		t.Errorf("tag/completed changed: %+v", r)
	}
}
