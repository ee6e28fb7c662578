// Package ui renders reminders and status messages for the menu shell.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uitable"

	"github.com/idilsaglam/reminders/internal/model"
)

// maxDescriptionWidth truncates long descriptions in listings.
const maxDescriptionWidth = 60

// Entry is a reminder together with its 1-based position in the collection,
// the number users type to address it.
type Entry struct {
	Position int
	Reminder model.Reminder
}

// Entries numbers reminders by their 1-based position.
func Entries(rs []model.Reminder) []Entry {
	out := make([]Entry, len(rs))
	for i, r := range rs {
		out[i] = Entry{Position: i + 1, Reminder: r}
	}
	return out
}

// Printer writes themed output. Failures go to errOut.
type Printer struct {
	out, errOut io.Writer
	r           *lipgloss.Renderer
	theme       Theme
}

// NewPrinter returns a Printer for the named theme.
func NewPrinter(out, errOut io.Writer, theme string, mode ColorMode) *Printer {
	r := NewRenderer(out, theme, mode)
	return &Printer{out: out, errOut: errOut, r: r, theme: NewTheme(theme, r)}
}

// Theme returns the printer's theme.
func (p *Printer) Theme() Theme { return p.theme }

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.out, p.theme.Success.Render(p.theme.SymOK+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.errOut, p.theme.Error.Render(p.theme.SymFail+" "+msg))
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.out, p.theme.Pending.Render(p.theme.SymWarn+" "+msg))
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.theme.Muted.Render(msg))
}

// Panel draws a framed box.
func (p *Printer) Panel(lines []string) {
	fmt.Fprintln(p.out, p.theme.PanelString(p.r, lines))
}

// Menu draws the numbered main menu.
func (p *Printer) Menu(title string, items []string) {
	lines := []string{p.theme.Title.Render(title), ""}
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%s %s", p.theme.Accent.Render(fmt.Sprintf("[%d]", i+1)), it))
	}
	p.Panel(lines)
}

// Reminders draws a flat, numbered listing.
func (p *Printer) Reminders(title string, entries []Entry) {
	lines := []string{p.header(title, entries), ""}
	lines = append(lines, p.rows(entries)...)
	p.Panel(lines)
}

// Grouped draws one section per tag, in the order given by tags.
func (p *Printer) Grouped(tags []string, groups map[string][]Entry) {
	var all []Entry
	for _, tag := range tags {
		all = append(all, groups[tag]...)
	}
	done, _ := count(all)

	lines := []string{
		p.header("Reminders", all),
		p.theme.Muted.Render(ProgressBar(done, len(all), 28)),
	}
	for _, tag := range tags {
		name := tag
		if name == "" {
			name = "(untagged)"
		}
		lines = append(lines, "", p.theme.Accent.Render(fmt.Sprintf("#%s", name)))
		lines = append(lines, p.rows(groups[tag])...)
	}
	p.Panel(lines)
}

// SearchResults draws the reminders matching keyword.
func (p *Printer) SearchResults(keyword string, entries []Entry) {
	if len(entries) == 0 {
		p.Warn(fmt.Sprintf("No reminders match %q", keyword))
		return
	}
	p.Reminders(fmt.Sprintf("Results for %q", keyword), entries)
}

func (p *Printer) header(title string, entries []Entry) string {
	done, pending := count(entries)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		p.theme.Title.Render(title),
		p.theme.Success.Render(p.theme.SymOK), done,
		p.theme.Pending.Render("•"), pending,
		p.theme.Accent.Render("Total"), len(entries),
	)
}

// rows lays entries out with uitable, then styles each line by state. Cells
// are kept plain so column widths are computed on visible text.
func (p *Printer) rows(entries []Entry) []string {
	if len(entries) == 0 {
		return []string{p.theme.Muted.Render("(none)")}
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = maxDescriptionWidth
	for _, e := range entries {
		tag := "#" + e.Reminder.Tag
		if e.Reminder.Tag == "" {
			tag = ""
		}
		tbl.AddRow(fmt.Sprintf("%d.", e.Position), p.theme.Box(e.Reminder.Completed), e.Reminder.Description, tag)
	}
	tbl.RightAlign(0)

	lines := strings.Split(strings.TrimRight(tbl.String(), "\n"), "\n")
	for i := range lines {
		if i < len(entries) && entries[i].Reminder.Completed {
			lines[i] = p.theme.Done.Render(lines[i])
		}
	}
	return lines
}

func count(entries []Entry) (done, pending int) {
	for _, e := range entries {
		if e.Reminder.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
