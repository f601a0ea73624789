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

const (
	regFieldName = iota
	regFieldEmail
	regFieldPhone
	regFieldPassword
	regFieldCount
)

// registerScreen collects the signup form. After a successful
// registration it logs the new account straight in, mirroring the original
// flow, and resets the stack to the home screen.
type registerScreen struct {
	app    *App
	id     int
	inputs [regFieldCount]textinput.Model
	errs   [regFieldCount]string
	focus  int
	busy   bool
	spin   spinner.Model
	width  int
	height int
}

// registerDoneMsg carries the register-then-login outcome.
type registerDoneMsg struct {
	id    int
	creds *api.Credentials
	err   error
}

func (m registerDoneMsg) ScreenID() int { return m.id }

func newRegisterScreen(app *App) *registerScreen {
	s := &registerScreen{app: app, id: app.newScreenID()}

	labels := [regFieldCount]string{"Full name", "Email", "Phone number", "Password"}
	for i := range s.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 120
		in.Width = InputWidth
		s.inputs[i] = in
	}
	s.inputs[regFieldPassword].EchoMode = textinput.EchoPassword
	s.inputs[regFieldPassword].EchoCharacter = '•'
	s.inputs[regFieldName].Focus()

	s.spin = spinner.New()
	s.spin.Spinner = spinner.Dot
	return s
}

func (s *registerScreen) ID() int { return s.id }

func (s *registerScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *registerScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case registerDoneMsg:
		s.busy = false
		if msg.err != nil {
			return alert("Registration Failed", alertText(msg.err, "An error occurred."))
		}
		if err := s.app.Session.Save(msg.creds.User, msg.creds.Token); err != nil {
			return alert("Error", "Could not persist your session: "+err.Error())
		}
		logging.Info(logging.CategorySession, "registered %s", msg.creds.User.Email)
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
			s.setFocus((s.focus + 1) % regFieldCount)
			return nil
		case "shift+tab", "up":
			s.setFocus((s.focus + regFieldCount - 1) % regFieldCount)
			return nil
		case "enter":
			if s.focus < regFieldCount-1 {
				s.setFocus(s.focus + 1)
				return nil
			}
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s *registerScreen) setFocus(i int) {
	s.inputs[s.focus].Blur()
	s.focus = i
	s.inputs[s.focus].Focus()
}

func (s *registerScreen) submit() tea.Cmd {
	s.errs[regFieldName] = validate.Name(s.inputs[regFieldName].Value())
	s.errs[regFieldEmail] = validate.Email(s.inputs[regFieldEmail].Value())
	s.errs[regFieldPhone] = validate.Phone(s.inputs[regFieldPhone].Value())
	s.errs[regFieldPassword] = validate.Password(s.inputs[regFieldPassword].Value())
	for _, e := range s.errs {
		if e != "" {
			return nil
		}
	}

	s.busy = true
	app, id := s.app, s.id
	name := s.inputs[regFieldName].Value()
	email := s.inputs[regFieldEmail].Value()
	phone := s.inputs[regFieldPhone].Value()
	pass := s.inputs[regFieldPassword].Value()

	return tea.Batch(s.spin.Tick, func() tea.Msg {
		ctx := context.Background()
		if _, err := app.API.Register(ctx, name, email, pass, phone); err != nil {
			return registerDoneMsg{id: id, err: err}
		}
		// Registration succeeded; log in with the fresh credentials.
		creds, err := app.API.Login(ctx, email, pass, "user")
		return registerDoneMsg{id: id, creds: creds, err: err}
	})
}

func (s *registerScreen) View() string {
	st := s.app.Styles
	labels := [regFieldCount]string{"Full name", "Email", "Phone number", "Password"}

	rows := []string{st.Title.Render("Create an account")}
	for i, in := range s.inputs {
		rows = append(rows, renderField(st, labels[i], in, s.focus == i, s.errs[i]))
	}
	rows = append(rows, "")
	if s.busy {
		rows = append(rows, s.spin.View()+" Creating your account...")
	} else {
		rows = append(rows, st.ButtonFocus.Render("Sign up"))
	}
	rows = append(rows, "", st.Footer.Render("[enter] submit  [tab] next field  [esc] back"))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, st.Card.Render(body))
}

func (s *registerScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}
