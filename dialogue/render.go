// Package dialogue contains the terminal presentation of the containers
// demonstration: styled output and user prompts.
package dialogue

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Renderer prints demonstration output. Styling is applied only when the
// renderer was created for a terminal.
type Renderer struct {
	w      io.Writer
	styled bool
}

// NewRenderer returns a Renderer writing to f. Output is styled when f is a
// terminal and plain is false.
func NewRenderer(f *os.File, plain bool) *Renderer {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return NewRendererTo(f, tty && !plain)
}

// NewRendererTo returns a Renderer writing to w.
func NewRendererTo(w io.Writer, styled bool) *Renderer {
	return &Renderer{w: w, styled: styled}
}

// Interactive reports whether output is styled, i.e. a person is watching.
func (r *Renderer) Interactive() bool {
	return r.styled
}

func (r *Renderer) render(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// Section prints a numbered section heading.
func (r *Renderer) Section(n int, title string) {
	fmt.Fprintf(r.w, "\n%s\n", r.render(sectionStyle, fmt.Sprintf("%d. %s", n, title)))
}

// Step prints the description of the operation about to be shown.
func (r *Renderer) Step(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "%s\n", r.render(stepStyle, ">> "+fmt.Sprintf(format, args...)))
}

// Value prints a labelled result.
func (r *Renderer) Value(label string, v interface{}) {
	fmt.Fprintf(r.w, " - %s %s\n", r.render(labelStyle, label+":"), r.render(valueStyle, fmt.Sprint(v)))
}

// Error prints a labelled failure.
func (r *Renderer) Error(label string, err error) {
	fmt.Fprintf(r.w, " !! %s %s\n", r.render(labelStyle, label+":"), r.render(errorStyle, err.Error()))
}

// Banner prints a top level heading.
func (r *Renderer) Banner(title string) {
	fmt.Fprintf(r.w, "%s\n", r.render(titleStyle, "=== "+title+" ==="))
}
