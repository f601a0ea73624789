package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skylander/internal/session"
	"skylander/internal/types"
)

// startScreen is the welcome view. At mount it checks the session store:
// an existing session skips straight to the home screen (admin variant for
// admin accounts); otherwise the user picks Log in or Create account.
type startScreen struct {
	app      *App
	id       int
	selected int // 0 = log in, 1 = create account
	width    int
	height   int
}

// sessionCheckedMsg reports the mount-time session probe.
type sessionCheckedMsg struct {
	id   int
	sess *session.Session
}

func (m sessionCheckedMsg) ScreenID() int { return m.id }

func newStartScreen(app *App) *startScreen {
	return &startScreen{app: app, id: app.newScreenID()}
}

func (s *startScreen) ID() int { return s.id }

func (s *startScreen) Init() tea.Cmd {
	app, id := s.app, s.id
	return func() tea.Msg {
		sess, err := app.Session.Load()
		if err != nil {
			// No session (or an unreadable one) lands on the picker.
			return sessionCheckedMsg{id: id}
		}
		return sessionCheckedMsg{id: id, sess: sess}
	}
}

func (s *startScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case sessionCheckedMsg:
		if msg.sess == nil {
			return nil
		}
		if msg.sess.User.IsAdmin() {
			return resetTo(newAdminHomeScreen(s.app))
		}
		return resetTo(newHomeScreen(s.app))

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "down", "tab", "left", "right":
			s.selected = 1 - s.selected
		case "enter":
			if s.selected == 0 {
				return push(newLoginScreen(s.app))
			}
			return push(newRegisterScreen(s.app))
		case "l":
			return push(newLoginScreen(s.app))
		case "r":
			return push(newRegisterScreen(s.app))
		case "q":
			return tea.Quit
		}
	}
	return nil
}

func (s *startScreen) View() string {
	st := s.app.Styles

	buttons := []string{"Log in", "Create an account"}
	var rendered []string
	for i, b := range buttons {
		style := st.Button
		if i == s.selected {
			style = st.ButtonFocus
		}
		rendered = append(rendered, style.Render(b))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		Logo(st),
		st.Title.Render("Welcome to SkyLander"),
		st.Subtitle.Render("Crowdsourced geolocation enrollment"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, rendered[0], "  ", rendered[1]),
		"",
		st.Footer.Render("[enter] select  [tab] switch  [q] quit"),
	)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, body)
}

func (s *startScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}

// homeFor returns the right landing screen for a user's role.
func homeFor(app *App, u types.User) screen {
	if u.IsAdmin() {
		return newAdminHomeScreen(app)
	}
	return newHomeScreen(app)
}
