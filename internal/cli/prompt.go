package cli

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned by a Prompter when the user hits Ctrl-C or closes
// stdin. The shell treats it as a request to exit.
var ErrAborted = errors.New("aborted")

// Prompter reads answers from the user.
type Prompter interface {
	// Pause waits for the user to hit enter.
	Pause(label string) error
	// Ask keeps asking until validate accepts the answer.
	Ask(label string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

var yesNo = regexp.MustCompile(`^[YNyn]$`)

var errYesNo = errors.New("please enter either y/n")

// TermPrompter is the promptui-backed Prompter used on a real terminal.
type TermPrompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewTermPrompter wires promptui to in and out.
func NewTermPrompter(in io.Reader, out io.Writer) *TermPrompter {
	return &TermPrompter{Stdin: io.NopCloser(in), Stdout: nopWriteCloser{out}}
}

func (p *TermPrompter) Pause(label string) error {
	prompt := promptui.Prompt{
		Label:       label,
		HideEntered: true,
		Mask:        ' ',
		Stdin:       p.Stdin,
		Stdout:      p.Stdout,
	}
	_, err := prompt.Run()
	return translate(err)
}

func (p *TermPrompter) Ask(label string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: promptui.ValidateFunc(validate),
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}
	answer, err := prompt.Run()
	return answer, translate(err)
}

func (p *TermPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if !yesNo.MatchString(input) {
				return errYesNo
			}
			return nil
		},
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}
	answer, err := prompt.Run()
	if err != nil {
		return false, translate(err)
	}
	return strings.ToLower(answer) == "y", nil
}

func translate(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
