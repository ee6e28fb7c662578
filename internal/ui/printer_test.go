package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idilsaglam/reminders/internal/model"
)

func newTestPrinter(theme string) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewPrinter(&out, &errOut, theme, ColorNever), &out, &errOut
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 4, 8, "░░░░░░░░   0%"},
		{2, 4, 8, "████░░░░  50%"},
		{4, 4, 8, "████████ 100%"},
		{0, 0, 2, "░░░░░   0%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestEntriesNumbersFromOne(t *testing.T) {
	es := Entries([]model.Reminder{{Description: "a"}, {Description: "b"}})
	if es[0].Position != 1 || es[1].Position != 2 {
		t.Fatalf("positions = %d, %d, want 1, 2", es[0].Position, es[1].Position)
	}
}

func TestRemindersListing(t *testing.T) {
	p, out, _ := newTestPrinter("mono")
	p.Reminders("Reminders", []Entry{
		{Position: 1, Reminder: model.Reminder{Description: "Buy milk", Tag: "shopping"}},
		{Position: 2, Reminder: model.Reminder{Description: "Call mom", Tag: "family", Completed: true}},
	})

	got := out.String()
	for _, want := range []string{"1.", "[ ]", "Buy milk", "#shopping", "2.", "[x]", "Call mom", "Total 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("mono output contains escape codes:\n%s", got)
	}
}

func TestGroupedKeepsTagOrder(t *testing.T) {
	p, out, _ := newTestPrinter("classic")
	groups := map[string][]Entry{
		"shopping": {
			{Position: 1, Reminder: model.Reminder{Description: "Buy milk", Tag: "shopping"}},
			{Position: 3, Reminder: model.Reminder{Description: "Buy eggs", Tag: "Shopping"}},
		},
		"family": {
			{Position: 2, Reminder: model.Reminder{Description: "Call mom", Tag: "family"}},
		},
	}
	p.Grouped([]string{"shopping", "family"}, groups)

	got := out.String()
	shopping := strings.Index(got, "#shopping")
	family := strings.Index(got, "#family")
	if shopping < 0 || family < 0 || shopping > family {
		t.Fatalf("sections out of order:\n%s", got)
	}
	milk := strings.Index(got, "Buy milk")
	eggs := strings.Index(got, "Buy eggs")
	if milk < shopping || eggs < milk || eggs > family {
		t.Fatalf("shopping reminders misplaced:\n%s", got)
	}
	if !strings.Contains(got, "3.") {
		t.Errorf("expected collection position 3 in output:\n%s", got)
	}
}

func TestGroupedUntagged(t *testing.T) {
	p, out, _ := newTestPrinter("mono")
	p.Grouped([]string{""}, map[string][]Entry{
		"": {{Position: 1, Reminder: model.Reminder{Description: "loose end"}}},
	})
	if !strings.Contains(out.String(), "#(untagged)") {
		t.Errorf("expected untagged section:\n%s", out.String())
	}
}

func TestSearchResultsEmpty(t *testing.T) {
	p, out, _ := newTestPrinter("mono")
	p.SearchResults("zebra", nil)
	if !strings.Contains(out.String(), `No reminders match "zebra"`) {
		t.Errorf("output = %q", out.String())
	}
}

func TestFailWritesToErrOut(t *testing.T) {
	p, out, errOut := newTestPrinter("mono")
	p.Fail("boom")
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if got := errOut.String(); got != "error: boom\n" {
		t.Errorf("stderr = %q, want %q", got, "error: boom\n")
	}
}

func TestNewThemeFallsBackToClassic(t *testing.T) {
	p, _, _ := newTestPrinter("unknown")
	if p.Theme().Name != "classic" {
		t.Errorf("theme = %q, want classic", p.Theme().Name)
	}
	if p.Theme().Box(true) != "☑" || p.Theme().Box(false) != "☐" {
		t.Errorf("unexpected classic boxes")
	}
}
