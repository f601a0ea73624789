package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skylander/internal/api"
	"skylander/internal/logging"
	"skylander/internal/validate"
)

// loginScreen collects email and password, validates inline, and trades
// them for a session. Success resets the stack to the home screen; failure
// shows the server message and leaves the session store untouched.
type loginScreen struct {
	app    *App
	id     int
	email  textinput.Model
	pass   textinput.Model
	errs   [2]string // inline validation errors per field
	focus  int
	admin  bool // login with the admin role
	busy   bool
	spin   spinner.Model
	width  int
	height int
}

// loginDoneMsg carries the login outcome back to the screen.
type loginDoneMsg struct {
	id    int
	creds *api.Credentials
	err   error
}

func (m loginDoneMsg) ScreenID() int { return m.id }

func newLoginScreen(app *App) *loginScreen {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 120
	email.Width = InputWidth
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.CharLimit = 120
	pass.Width = InputWidth
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &loginScreen{app: app, id: app.newScreenID(), email: email, pass: pass, spin: sp}
}

func (s *loginScreen) ID() int { return s.id }

func (s *loginScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *loginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginDoneMsg:
		s.busy = false
		if msg.err != nil {
			return alert("Login Failed", alertText(msg.err, "Invalid credentials."))
		}
		if err := s.app.Session.Save(msg.creds.User, msg.creds.Token); err != nil {
			return alert("Error", "Could not persist your session: "+err.Error())
		}
		logging.Info(logging.CategorySession, "login as %s (%s)", msg.creds.User.Email, msg.creds.User.Role)
		return resetTo(homeFor(s.app, msg.creds.User))

	case spinner.TickMsg:
		if s.busy {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return cmd
		}
		return nil

	case tea.KeyMsg:
		if s.busy {
			return nil
		}
		switch msg.String() {
		case "esc":
			return pop()
		case "tab", "down":
			s.setFocus((s.focus + 1) % 2)
			return nil
		case "shift+tab", "up":
			s.setFocus((s.focus + 1) % 2)
			return nil
		case "ctrl+a":
			// Hidden toggle for administrator login.
			s.admin = !s.admin
			return nil
		case "enter":
			if s.focus == 0 {
				s.setFocus(1)
				return nil
			}
			return s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focus == 0 {
		s.email, cmd = s.email.Update(msg)
	} else {
		s.pass, cmd = s.pass.Update(msg)
	}
	return cmd
}

func (s *loginScreen) setFocus(i int) {
	s.focus = i
	if i == 0 {
		s.email.Focus()
		s.pass.Blur()
	} else {
		s.email.Blur()
		s.pass.Focus()
	}
}

// submit runs the field validators; only a clean form reaches the network.
func (s *loginScreen) submit() tea.Cmd {
	s.errs[0] = validate.Email(s.email.Value())
	s.errs[1] = validate.Password(s.pass.Value())
	if s.errs[0] != "" || s.errs[1] != "" {
		return nil
	}

	s.busy = true
	role := "user"
	if s.admin {
		role = "admin"
	}
	app, id := s.app, s.id
	email, pass := s.email.Value(), s.pass.Value()
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		creds, err := app.API.Login(context.Background(), email, pass, role)
		return loginDoneMsg{id: id, creds: creds, err: err}
	})
}

func (s *loginScreen) View() string {
	st := s.app.Styles

	title := "Welcome back"
	if s.admin {
		title = "Administrator login"
	}

	rows := []string{
		st.Title.Render(title),
		renderField(st, "Email", s.email, s.focus == 0, s.errs[0]),
		renderField(st, "Password", s.pass, s.focus == 1, s.errs[1]),
		"",
	}
	if s.busy {
		rows = append(rows, s.spin.View()+" Signing in...")
	} else {
		rows = append(rows, st.ButtonFocus.Render("Log in"))
	}
	rows = append(rows, "", st.Footer.Render("[enter] submit  [tab] next field  [esc] back"))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, st.Card.Render(body))
}

func (s *loginScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}

// renderField draws one labelled input with its inline validation error.
func renderField(st Styles, label string, in textinput.Model, focused bool, errText string) string {
	box := st.InputBox
	if focused {
		box = st.InputFocus
	}
	out := st.Label.Render(label) + "\n" + box.Render(in.View())
	if errText != "" {
		out += "\n" + st.FieldError.Render(errText)
	}
	return out
}

// alertText prefers the server-provided message and falls back to a
// generic one.
func alertText(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if apiErr, ok := err.(*api.Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
