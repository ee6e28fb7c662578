package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// Styles are bound to the renderer the theme was built for.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending, Done, Selected lipgloss.Style

	BoxUnchecked, BoxChecked string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
	SymOK, SymFail, SymWarn  string
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{"classic", "neon", "mono"}

// NewTheme builds the named theme for r. Unknown names fall back to classic.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	s := r.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        s().Faint(true),
			Accent:       s().Foreground(lipgloss.Color("14")),
			Success:      s().Foreground(lipgloss.Color("10")),
			Error:        s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      s().Foreground(lipgloss.Color("11")),
			Done:         s().Faint(true).Strikethrough(true),
			Selected:     s().Bold(true).Reverse(true),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			SymOK:        "✔",
			SymFail:      "✖",
			SymWarn:      "⚠",
		}
	case "mono":
		return Theme{
			Name:         "mono",
			Title:        s(),
			Muted:        s(),
			Accent:       s(),
			Success:      s(),
			Error:        s(),
			Pending:      s(),
			Done:         s(),
			Selected:     s(),
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			Border:       lipgloss.ASCIIBorder(),
			BorderColor:  lipgloss.NoColor{},
			SymOK:        "ok",
			SymFail:      "error:",
			SymWarn:      "!",
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        s().Bold(true),
			Muted:        s().Faint(true),
			Accent:       s().Foreground(lipgloss.Color("12")),
			Success:      s().Foreground(lipgloss.Color("42")),
			Error:        s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      s().Foreground(lipgloss.Color("214")),
			Done:         s().Faint(true).Strikethrough(true),
			Selected:     s().Bold(true).Reverse(true),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("8"),
			SymOK:        "✔",
			SymFail:      "✖",
			SymWarn:      "⚠",
		}
	}
}

// Box returns the checkbox glyph for a completion state.
func (t Theme) Box(completed bool) string {
	if completed {
		return t.BoxChecked
	}
	return t.BoxUnchecked
}
