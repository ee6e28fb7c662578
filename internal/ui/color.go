package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode picks how the renderer decides on colour output.
type ColorMode int

const (
	// ColorAuto colours only when the writer is a terminal.
	ColorAuto ColorMode = iota
	// ColorNever strips all styling.
	ColorNever
)

// NewRenderer returns a lipgloss renderer for w honouring mode. The mono
// theme always renders without colour.
func NewRenderer(w io.Writer, theme string, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if mode == ColorNever || strings.EqualFold(theme, "mono") {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
