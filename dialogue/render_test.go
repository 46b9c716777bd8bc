package dialogue

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestPlainRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererTo(&buf, false)
	assert.Check(t, !r.Interactive())

	r.Banner("demo")
	r.Section(1, "Constructors")
	r.Step("creating %s", "list")
	r.Value("Length", 3)
	r.Error("At(10)", errors.New("index 10 out of range [0:3]"))

	expected := strings.Join([]string{
		"=== demo ===",
		"",
		"1. Constructors",
		">> creating list",
		" - Length: 3",
		" !! At(10): index 10 out of range [0:3]",
		"",
	}, "\n")
	assert.Equal(t, buf.String(), expected)
}

func TestStyledRendererKeepsText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererTo(&buf, true)
	assert.Check(t, r.Interactive())
	r.Value("Contents", "1 <-> 2")
	assert.Check(t, is.Contains(buf.String(), "Contents:"))
	assert.Check(t, is.Contains(buf.String(), "1 <-> 2"))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel(t *testing.T) {
	var m tea.Model = model{question: "continue?", accept: true}

	m, cmd := m.Update(key("j"))
	assert.Check(t, is.Nil(cmd))
	assert.Check(t, !m.(model).accept)
	assert.Check(t, is.Contains(m.View(), "> No"))

	m, _ = m.Update(key("up"))
	assert.Check(t, m.(model).accept)
	assert.Check(t, is.Contains(m.View(), "> Yes"))

	m, cmd = m.Update(key("enter"))
	assert.Check(t, cmd != nil)
	assert.Check(t, m.(model).accept)

	m, cmd = m.Update(key("q"))
	assert.Check(t, cmd != nil)
	assert.Check(t, !m.(model).accept)
}
