package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skylander/internal/logging"
	"skylander/internal/session"
	"skylander/internal/types"
	"skylander/internal/validate"
)

const (
	profFieldName = iota
	profFieldEmail
	profFieldPhone
	profFieldCount
)

// profileScreen edits the cached account. It prefills from the session
// store at mount; a successful server update rewrites the store so the
// cached user matches what the server now holds.
type profileScreen struct {
	app    *App
	id     int
	user   types.User
	inputs [profFieldCount]textinput.Model
	errs   [profFieldCount]string
	focus  int
	loaded bool
	busy   bool
	spin   spinner.Model
	width  int
	height int
}

// profileLoadedMsg delivers the cached user.
type profileLoadedMsg struct {
	id   int
	sess *session.Session
	err  error
}

func (m profileLoadedMsg) ScreenID() int { return m.id }

// profileSavedMsg carries the update outcome.
type profileSavedMsg struct {
	id   int
	user types.User
	err  error
}

func (m profileSavedMsg) ScreenID() int { return m.id }

func newProfileScreen(app *App) *profileScreen {
	s := &profileScreen{app: app, id: app.newScreenID()}
	placeholders := [profFieldCount]string{"Full Name", "Email", "Phone Number"}
	for i := range s.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 120
		in.Width = InputWidth
		s.inputs[i] = in
	}
	s.spin = spinner.New()
	s.spin.Spinner = spinner.Dot
	return s
}

func (s *profileScreen) ID() int { return s.id }

func (s *profileScreen) Init() tea.Cmd {
	app, id := s.app, s.id
	return func() tea.Msg {
		sess, err := app.Session.Load()
		return profileLoadedMsg{id: id, sess: sess, err: err}
	}
}

func (s *profileScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			return resetTo(newLoginScreen(s.app))
		}
		s.user = msg.sess.User
		s.inputs[profFieldName].SetValue(s.user.Name)
		s.inputs[profFieldEmail].SetValue(s.user.Email)
		s.inputs[profFieldPhone].SetValue(s.user.PhoneNo)
		s.inputs[profFieldName].Focus()
		s.loaded = true
		return textinput.Blink

	case profileSavedMsg:
		s.busy = false
		if msg.err != nil {
			return alert("Error", alertText(msg.err, "Failed to update profile"))
		}
		s.user = msg.user
		logging.Info(logging.CategorySession, "profile updated for %s", msg.user.Email)
		return alert("Success", "Profile updated successfully")

	case spinner.TickMsg:
		if s.busy {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return cmd
		}
		return nil

	case tea.KeyMsg:
		if !s.loaded || s.busy {
			return nil
		}
		switch msg.String() {
		case "esc":
			return pop()
		case "tab", "down":
			s.setFocus((s.focus + 1) % profFieldCount)
			return nil
		case "shift+tab", "up":
			s.setFocus((s.focus + profFieldCount - 1) % profFieldCount)
			return nil
		case "enter":
			if s.focus < profFieldCount-1 {
				s.setFocus(s.focus + 1)
				return nil
			}
			return s.submit()
		}
	}

	if !s.loaded {
		return nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s *profileScreen) setFocus(i int) {
	s.inputs[s.focus].Blur()
	s.focus = i
	s.inputs[s.focus].Focus()
}

func (s *profileScreen) submit() tea.Cmd {
	s.errs[profFieldName] = validate.Name(s.inputs[profFieldName].Value())
	s.errs[profFieldEmail] = validate.Email(s.inputs[profFieldEmail].Value())
	s.errs[profFieldPhone] = validate.Phone(s.inputs[profFieldPhone].Value())
	for _, e := range s.errs {
		if e != "" {
			return nil
		}
	}

	updated := s.user
	updated.Name = s.inputs[profFieldName].Value()
	updated.Email = s.inputs[profFieldEmail].Value()
	updated.PhoneNo = s.inputs[profFieldPhone].Value()

	s.busy = true
	app, id := s.app, s.id
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		sess, err := app.Session.Load()
		if err != nil {
			return profileSavedMsg{id: id, err: err}
		}
		if _, err := app.API.UpdateProfile(context.Background(), updated); err != nil {
			return profileSavedMsg{id: id, err: err}
		}
		// Keep the cached user in step with the server.
		if err := app.Session.Save(updated, sess.Token); err != nil {
			return profileSavedMsg{id: id, err: err}
		}
		return profileSavedMsg{id: id, user: updated}
	})
}

func (s *profileScreen) View() string {
	st := s.app.Styles

	if !s.loaded {
		return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, "Loading profile...")
	}

	avatar := st.ButtonFocus.Render(" " + s.user.Initial() + " ")
	labels := [profFieldCount]string{"Full Name", "Email", "Phone Number"}

	rows := []string{
		st.Title.Render("Edit Profile"),
		avatar,
		"",
	}
	for i, in := range s.inputs {
		rows = append(rows, renderField(st, labels[i], in, s.focus == i, s.errs[i]))
	}
	rows = append(rows, "")
	if s.busy {
		rows = append(rows, s.spin.View()+" Saving...")
	} else {
		rows = append(rows, st.ButtonFocus.Render("Save changes"))
	}
	rows = append(rows, "", st.Footer.Render("[enter] save  [tab] next field  [esc] back"))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, st.Card.Render(body))
}

func (s *profileScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}
