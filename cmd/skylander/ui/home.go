package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// homeScreen is the signed-in landing view: two cards plus profile and
// logout actions.
type homeScreen struct {
	app      *App
	id       int
	selected int
	width    int
	height   int
}

var homeCards = []struct {
	title string
	hint  string
}{
	{"Register New Location", "enroll a coordinate, address, and video"},
	{"View Location Status", "review your submissions"},
}

func newHomeScreen(app *App) *homeScreen {
	return &homeScreen{app: app, id: app.newScreenID()}
}

func (s *homeScreen) ID() int { return s.id }

func (s *homeScreen) Init() tea.Cmd { return nil }

func (s *homeScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "right", "tab":
			s.selected = 1 - s.selected
		case "enter":
			if s.selected == 0 {
				return push(newRegisterLocationScreen(s.app))
			}
			return push(newStatusScreen(s.app))
		case "p":
			return push(newProfileScreen(s.app))
		case "q":
			return s.logout()
		}
	}
	return nil
}

// logout clears the session and returns to the start screen.
func (s *homeScreen) logout() tea.Cmd {
	app := s.app
	return func() tea.Msg {
		_ = app.Session.Clear()
		return resetMsg{s: newStartScreen(app)}
	}
}

func (s *homeScreen) View() string {
	st := s.app.Styles

	var cards []string
	for i, c := range homeCards {
		style := st.Card
		if i == s.selected {
			style = style.BorderForeground(st.Theme.Accent)
		}
		cards = append(cards, style.Width(30).Render(
			st.Value.Render(c.title)+"\n"+st.Muted.Render(c.hint),
		))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		st.Header.Width(s.width).Render("SKYLANDER"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards[0], "  ", cards[1]),
		"",
		st.Footer.Render("[enter] open  [tab] switch  [p] profile  [q] log out"),
	)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, body)
}

func (s *homeScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}
