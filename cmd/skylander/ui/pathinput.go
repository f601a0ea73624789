package ui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pathInput is a textinput for local file paths with ~ expansion, shared
// by the recorder and the aruco scanner.
type pathInput struct {
	in textinput.Model
}

func newPathInput(placeholder string) pathInput {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 300
	in.Width = InputWidth
	return pathInput{in: in}
}

func (p *pathInput) Focus() tea.Cmd {
	p.in.Focus()
	return textinput.Blink
}

func (p *pathInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.in, cmd = p.in.Update(msg)
	return cmd
}

// Value returns the entered path with a leading ~ expanded.
func (p pathInput) Value() string {
	v := strings.TrimSpace(p.in.Value())
	if strings.HasPrefix(v, "~"+string(os.PathSeparator)) || v == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			v = filepath.Join(home, strings.TrimPrefix(v, "~"))
		}
	}
	return v
}

func (p pathInput) View(st Styles) string {
	box := st.InputBox
	if p.in.Focused() {
		box = st.InputFocus
	}
	return box.Render(p.in.View())
}
