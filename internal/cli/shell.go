// Package cli is the console front end: the cobra command tree and the
// interactive menu shell that drives the reminder collection.
package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/reminders"
	"github.com/idilsaglam/reminders/internal/ui"
)

const (
	menuShow = iota + 1
	menuSearch
	menuAdd
	menuModify
	menuToggle
	menuExit
)

var menuItems = []string{
	"Show all reminders",
	"Search reminders",
	"Add a reminder",
	"Modify a reminder",
	"Toggle completion",
	"Exit",
}

var digits = regexp.MustCompile(`^\d+$`)

var (
	errBlank       = errors.New("input cannot be blank: please try again")
	errNotPositive = errors.New("input must be a positive number from the list of reminders: please try again")
	errNotListed   = errors.New("input must be a number from the list of reminders: please try again")
	errMenuItem    = fmt.Errorf("sorry, input is not a valid menu item (1-%d)", len(menuItems))
)

// Shell is the looping text menu.
type Shell struct {
	reminders *reminders.Collection
	prompt    Prompter
	print     *ui.Printer
	log       *zap.Logger
	confirm   bool
}

// NewShell returns a shell over c. When confirm is set every answer is
// echoed back for a y/n confirmation.
func NewShell(c *reminders.Collection, p Prompter, pr *ui.Printer, log *zap.Logger, confirm bool) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{reminders: c, prompt: p, print: pr, log: log, confirm: confirm}
}

// Run loops over the main menu until the user exits. Aborting a prompt
// (Ctrl-C, EOF) exits cleanly.
func (s *Shell) Run() error {
	err := s.loop()
	if errors.Is(err, ErrAborted) {
		err = nil
	}
	if err != nil {
		return err
	}
	s.print.Info("Exited application")
	s.log.Info("session ended", zap.Int("size", s.reminders.Size()))
	return nil
}

func (s *Shell) loop() error {
	for {
		choice, err := s.menu()
		if err != nil {
			return err
		}
		s.log.Debug("menu", zap.Int("choice", choice))

		switch choice {
		case menuShow:
			s.show()
		case menuSearch:
			err = s.search()
		case menuAdd:
			err = s.add()
		case menuModify:
			err = s.modify()
		case menuToggle:
			err = s.toggle()
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) menu() (int, error) {
	if err := s.prompt.Pause("Hit [Enter] key to see the main menu"); err != nil {
		return 0, err
	}
	s.print.Menu("Reminders", menuItems)
	answer, err := s.prompt.Ask("Choose a [Number] followed by [Enter]", validateMenu)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(answer))
}

func validateMenu(input string) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < menuShow || n > menuExit {
		return errMenuItem
	}
	return nil
}

func (s *Shell) show() {
	if s.reminders.Size() == 0 {
		s.print.Warn("You have no reminders")
		return
	}
	all := s.reminders.All()
	groups := make(map[string][]ui.Entry)
	for tag, indices := range s.reminders.GroupIndices() {
		groups[tag] = entriesAt(all, indices)
	}
	s.print.Grouped(s.reminders.Tags(), groups)
}

func (s *Shell) search() error {
	if s.reminders.Size() == 0 {
		s.print.Warn("You have no reminders")
		return nil
	}
	keyword, err := s.choice("search keyword", false)
	if err != nil {
		return err
	}
	indices := s.reminders.SearchIndices(keyword)
	s.log.Debug("search", zap.String("keyword", keyword), zap.Int("matches", len(indices)))
	s.print.SearchResults(keyword, entriesAt(s.reminders.All(), indices))
	return nil
}

func (s *Shell) add() error {
	description, err := s.choice("reminder", false)
	if err != nil {
		return err
	}
	tag, err := s.choice("tag", false)
	if err != nil {
		return err
	}
	s.reminders.Add(description, tag)
	s.log.Debug("reminder added", zap.String("tag", tag), zap.Int("size", s.reminders.Size()))
	s.print.OK("Reminder added")
	return nil
}

func (s *Shell) modify() error {
	if s.reminders.Size() == 0 {
		s.print.Warn("You have no reminders")
		return nil
	}
	s.print.Reminders("Reminders", ui.Entries(s.reminders.All()))
	index, err := s.index("reminder to modify")
	if err != nil {
		return err
	}
	description, err := s.choice("new reminder description", false)
	if err != nil {
		return err
	}
	s.reminders.Modify(index, description)
	s.log.Debug("reminder modified", zap.Int("index", index))
	s.print.OK("Reminder modified")
	return nil
}

func (s *Shell) toggle() error {
	if s.reminders.Size() == 0 {
		s.print.Warn("You have no reminders")
		return nil
	}
	s.print.Reminders("Reminders", ui.Entries(s.reminders.All()))
	index, err := s.index("reminder to toggle")
	if err != nil {
		return err
	}
	s.reminders.ToggleCompletion(index)
	s.log.Debug("reminder toggled", zap.Int("index", index))
	s.print.OK("Reminder completion toggled")
	return nil
}

// index asks for a 1-based position and returns it 0-based.
func (s *Shell) index(question string) (int, error) {
	answer, err := s.choice(question, true)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// choice asks question until the answer validates and, with confirmation
// on, until the user accepts it.
func (s *Shell) choice(question string, indexRequired bool) (string, error) {
	validate := func(input string) error {
		return s.validate(input, indexRequired)
	}
	for {
		answer, err := s.prompt.Ask(fmt.Sprintf("Enter a %s here", question), validate)
		if err != nil {
			return "", err
		}
		if !s.confirm {
			return answer, nil
		}
		ok, err := s.prompt.Confirm(fmt.Sprintf("You entered %s: '%s', is it correct? y/n", question, answer))
		if err != nil {
			return "", err
		}
		if ok {
			return answer, nil
		}
		s.print.Info("Please try typing it again")
	}
}

func (s *Shell) validate(input string, indexRequired bool) error {
	if input == "" {
		return errBlank
	}
	if !indexRequired {
		return nil
	}
	if !digits.MatchString(input) {
		return errNotPositive
	}
	n, err := strconv.Atoi(input)
	if err != nil || !s.reminders.IsIndexValid(n-1) {
		return errNotListed
	}
	return nil
}

func entriesAt(all []model.Reminder, indices []int) []ui.Entry {
	out := make([]ui.Entry, 0, len(indices))
	for _, i := range indices {
		out = append(out, ui.Entry{Position: i + 1, Reminder: all[i]})
	}
	return out
}
