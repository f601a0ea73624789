package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// adminHomeScreen is the landing view for administrator accounts.
type adminHomeScreen struct {
	app      *App
	id       int
	selected int
	width    int
	height   int
}

var adminCards = []struct {
	title string
	hint  string
}{
	{"Review Enrollments", "browse and review submitted locations"},
	{"ArUco Scanner", "detect marker ids from a still image"},
}

func newAdminHomeScreen(app *App) *adminHomeScreen {
	return &adminHomeScreen{app: app, id: app.newScreenID()}
}

func (s *adminHomeScreen) ID() int { return s.id }

func (s *adminHomeScreen) Init() tea.Cmd { return nil }

func (s *adminHomeScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "right", "tab":
			s.selected = 1 - s.selected
		case "enter":
			if s.selected == 0 {
				return push(newAdminListScreen(s.app))
			}
			return push(newArucoScannerScreen(s.app))
		case "p":
			return push(newProfileScreen(s.app))
		case "q":
			app := s.app
			return func() tea.Msg {
				_ = app.Session.Clear()
				return resetMsg{s: newStartScreen(app)}
			}
		}
	}
	return nil
}

func (s *adminHomeScreen) View() string {
	st := s.app.Styles

	var cards []string
	for i, c := range adminCards {
		style := st.Card
		if i == s.selected {
			style = style.BorderForeground(st.Theme.Accent)
		}
		cards = append(cards, style.Width(32).Render(
			st.Value.Render(c.title)+"\n"+st.Muted.Render(c.hint),
		))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		st.Header.Width(s.width).Render("SKYLANDER ADMIN"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards[0], "  ", cards[1]),
		"",
		st.Footer.Render("[enter] open  [tab] switch  [p] profile  [q] log out"),
	)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, body)
}

func (s *adminHomeScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}
