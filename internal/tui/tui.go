// Package tui is the full-screen Bubble Tea front end over a reminder
// collection.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/reminders"
	"github.com/idilsaglam/reminders/internal/ui"
)

type mode int

const (
	browsing mode = iota
	addingDescription
	addingTag
	editing
	searching
)

// listItem adapts a reminder to bubbles/list.Item. index is its position in
// the collection.
type listItem struct {
	index    int
	reminder model.Reminder
}

func (i listItem) Title() string       { return i.reminder.Description }
func (i listItem) Description() string { return i.reminder.Tag }
func (i listItem) FilterValue() string { return i.reminder.Description }

// itemDelegate renders one reminder per line.
type itemDelegate struct {
	theme ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := d.theme
	box := t.Muted.Render(t.BoxUnchecked)
	text := it.reminder.Description
	if it.reminder.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	tag := ""
	if it.reminder.Tag != "" {
		tag = " " + t.Accent.Render("#"+it.reminder.Tag)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s%s", prefix, t.Muted.Render(fmt.Sprintf("%2d.", it.index+1)), box, text, tag)
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	searchBind = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	groupBind  = key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group by tag"))
)

// Model is the Bubble Tea model for the reminder list.
type Model struct {
	list      list.Model
	reminders *reminders.Collection
	theme     ui.Theme
	log       *zap.Logger

	mode     mode
	ti       textinput.Model
	inputErr string

	// pendingDescription holds the first answer of the two-step add.
	pendingDescription string
	editIndex          int

	// keyword is the active search; empty means no search.
	keyword  string
	filtered bool
	grouped  bool

	width, height int
}

// New returns a model over c.
func New(c *reminders.Collection, theme ui.Theme, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	l := list.New(nil, itemDelegate{theme: theme}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Muted
	l.Styles.PaginationStyle = theme.Muted
	l.SetStatusBarItemName("reminder", "reminders")
	bindings := func() []key.Binding {
		return []key.Binding{toggleBind, addBind, editBind, searchBind, groupBind}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		list:      l,
		reminders: c,
		theme:     theme,
		log:       log,
		ti:        ti,
		width:     80,
		height:    24,
	}
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until the user
// quits.
func Run(c *reminders.Collection, theme string, log *zap.Logger) error {
	m := New(c, ui.NewTheme(theme, lipgloss.DefaultRenderer()), log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// refresh rebuilds the visible items from the collection.
func (m *Model) refresh() {
	var indices []int
	switch {
	case m.filtered:
		indices = m.reminders.SearchIndices(m.keyword)
	case m.grouped:
		groups := m.reminders.GroupIndices()
		for _, tag := range m.reminders.Tags() {
			indices = append(indices, groups[tag]...)
		}
	default:
		for i := 0; i < m.reminders.Size(); i++ {
			indices = append(indices, i)
		}
	}

	all := m.reminders.All()
	items := make([]list.Item, 0, len(indices))
	for _, i := range indices {
		items = append(items, listItem{index: i, reminder: all[i]})
	}
	m.list.SetItems(items)

	done, pending := m.reminders.Stats()
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.theme.Title.Render("Reminders"),
		m.theme.Success.Render(m.theme.SymOK), done,
		m.theme.Pending.Render("•"), pending,
		m.theme.Accent.Render("Total"), m.reminders.Size(),
	)
	if m.filtered {
		title += "  " + m.theme.Muted.Render(fmt.Sprintf("search: %q", m.keyword))
	}
	m.list.Title = title
}

func (m *Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

func (m *Model) startInput(next mode, value, placeholder string) tea.Cmd {
	m.mode = next
	m.inputErr = ""
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Placeholder = placeholder
	return m.ti.Focus()
}

func (m *Model) stopInput() {
	m.mode = browsing
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.list.SetSize(m.width-4, m.height-4)
		return m, nil
	}
	if m.mode != browsing {
		return m.updateInput(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			if m.filtered {
				m.keyword, m.filtered = "", false
				m.refresh()
				return m, nil
			}
			return m, tea.Quit
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if it, ok := m.selected(); ok {
				m.reminders.ToggleCompletion(it.index)
				m.log.Debug("reminder toggled", zap.Int("index", it.index))
				m.refresh()
			}
			return m, nil
		case "a":
			return m, m.startInput(addingDescription, "", "What do you want to remember?")
		case "e":
			if it, ok := m.selected(); ok {
				m.editIndex = it.index
				return m, m.startInput(editing, it.reminder.Description, "New description...")
			}
			return m, nil
		case "/":
			return m, m.startInput(searching, m.keyword, "Search tags and descriptions...")
		case "g":
			m.grouped = !m.grouped
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.stopInput()
			return m, nil
		case "enter":
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.ti.Value())
	switch m.mode {
	case addingDescription:
		if value == "" {
			m.inputErr = "Description cannot be empty"
			return m, nil
		}
		m.pendingDescription = value
		return m, m.startInput(addingTag, "", "Tag...")
	case addingTag:
		if value == "" {
			m.inputErr = "Tag cannot be empty"
			return m, nil
		}
		m.reminders.Add(m.pendingDescription, value)
		m.log.Debug("reminder added", zap.String("tag", value), zap.Int("size", m.reminders.Size()))
		m.pendingDescription = ""
	case editing:
		if value == "" {
			m.inputErr = "Description cannot be empty"
			return m, nil
		}
		m.reminders.Modify(m.editIndex, value)
		m.log.Debug("reminder modified", zap.Int("index", m.editIndex))
	case searching:
		m.keyword = value
		m.filtered = true
		m.log.Debug("search", zap.String("keyword", value))
	}
	m.stopInput()
	m.refresh()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	listHeight := m.height - 4
	if m.mode != browsing {
		listHeight = m.height - 7
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)

	content := m.list.View()
	if m.mode != browsing {
		title := map[mode]string{
			addingDescription: "New reminder",
			addingTag:         "Tag for " + fmt.Sprintf("%q", m.pendingDescription),
			editing:           "Edit reminder",
			searching:         "Search",
		}[m.mode]
		if m.inputErr != "" {
			title += " - " + m.theme.Error.Render(m.inputErr)
		}
		bar := lipgloss.NewStyle().Border(m.theme.Border).BorderForeground(m.theme.BorderColor).Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return m.theme.PanelString(lipgloss.DefaultRenderer(), []string{content})
}
