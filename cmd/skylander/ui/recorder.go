package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skylander/internal/logging"
	"skylander/internal/media"
)

// recorderScreen is the capture step of the enrollment flow. The device
// camera belongs to the platform; here the user points the form at a
// recorded capture file on disk, which is probed before it is attached.
// A short tutorial shows first, matching the original modal.
type recorderScreen struct {
	app      *App
	id       int
	tutorial bool
	path     pathInput
	errText  string
	width    int
	height   int
}

func newRecorderScreen(app *App) *recorderScreen {
	return &recorderScreen{
		app:      app,
		id:       app.newScreenID(),
		tutorial: true,
		path:     newPathInput("Path to recorded video (e.g. ~/captures/site.mp4)"),
	}
}

func (s *recorderScreen) ID() int { return s.id }

func (s *recorderScreen) Init() tea.Cmd { return nil }

func (s *recorderScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.path.Update(msg)
	}

	if s.tutorial {
		switch key.String() {
		case "enter", " ":
			s.tutorial = false
			return s.path.Focus()
		case "esc":
			return pop()
		}
		return nil
	}

	switch key.String() {
	case "esc":
		return pop()
	case "enter":
		capture, err := media.Probe(s.path.Value())
		if err != nil {
			s.errText = err.Error()
			return nil
		}
		logging.Info(logging.CategoryMedia, "probed capture %s (%d bytes)", capture.Path, capture.Size)
		return popWith(capturedMedia{Path: capture.Path})
	}
	return s.path.Update(msg)
}

func (s *recorderScreen) View() string {
	st := s.app.Styles

	if s.tutorial {
		body := lipgloss.JoinVertical(lipgloss.Left,
			st.ModalTitle.Render("Record a verification video"),
			"Walk slowly around the location and keep the",
			"whole site in frame. Ten seconds is enough.",
			"",
			st.Muted.Render("[enter] continue  [esc] cancel"),
		)
		return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, st.Modal.Render(body))
	}

	rows := []string{
		st.Title.Render("Attach Recording"),
		s.path.View(st),
	}
	if s.errText != "" {
		rows = append(rows, st.FieldError.Render(s.errText))
	}
	rows = append(rows, "", st.Footer.Render("[enter] attach  [esc] cancel"))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, st.Card.Render(body))
}

func (s *recorderScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}
