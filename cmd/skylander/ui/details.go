package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skylander/internal/api"
	"skylander/internal/logging"
	"skylander/internal/session"
	"skylander/internal/types"
)

// detailsParams carries the picked point from the coordinate screen.
type detailsParams struct {
	Coordinate types.Coordinate
	Address    string
	HasPoint   bool
}

// capturedMedia is the result a recorder screen pops back with.
type capturedMedia struct {
	Path string
}

const (
	detailRowAddress = iota
	detailRowCoordinate
	detailRowMedia
	detailRowSubmit
	detailRowCount
)

// detailsScreen is the enrollment form: address and coordinate are
// editable text, media comes back from the recorder screen, and submit
// requires all three before any network call happens.
type detailsScreen struct {
	app        *App
	id         int
	address    textinput.Model
	coordinate textinput.Model
	mediaPath  string

	focus      int
	submitting bool
	spin       spinner.Model
	width      int
	height     int
}

// enrollmentDoneMsg carries the upload outcome.
type enrollmentDoneMsg struct {
	id  int
	err error
}

func (m enrollmentDoneMsg) ScreenID() int { return m.id }

func newDetailsScreen(app *App, p detailsParams) *detailsScreen {
	address := textinput.New()
	address.Placeholder = "Select Location"
	address.CharLimit = 250
	address.Width = InputWidth
	address.SetValue(p.Address)
	address.Focus()

	coordinate := textinput.New()
	coordinate.Placeholder = "e.g. 2.981566, 101.667885"
	coordinate.CharLimit = 60
	coordinate.Width = InputWidth
	if p.HasPoint {
		coordinate.SetValue(p.Coordinate.String())
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &detailsScreen{
		app:        app,
		id:         app.newScreenID(),
		address:    address,
		coordinate: coordinate,
		spin:       sp,
	}
}

func (s *detailsScreen) ID() int { return s.id }

func (s *detailsScreen) Init() tea.Cmd {
	return textinput.Blink
}

// OnResult attaches the capture popped back from the recorder screen.
func (s *detailsScreen) OnResult(result interface{}) tea.Cmd {
	if cap, ok := result.(capturedMedia); ok {
		s.mediaPath = cap.Path
		logging.Info(logging.CategoryMedia, "attached capture %s", cap.Path)
	}
	return nil
}

func (s *detailsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case enrollmentDoneMsg:
		s.submitting = false
		if msg.err != nil {
			return alert("Submission Failed", alertText(msg.err, "An error occurred. Please try again."))
		}
		// Unwind past the coordinate picker to the pending list; its
		// reload picks up the new row.
		return popTo(func(top screen) bool {
			_, ok := top.(*registerLocationScreen)
			return ok
		})

	case spinner.TickMsg:
		if s.submitting {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return cmd
		}
		return nil

	case tea.KeyMsg:
		if s.submitting {
			return nil
		}
		switch msg.String() {
		case "esc":
			return pop()
		case "tab", "down":
			s.setFocus((s.focus + 1) % detailRowCount)
			return nil
		case "shift+tab", "up":
			s.setFocus((s.focus + detailRowCount - 1) % detailRowCount)
			return nil
		case "ctrl+d":
			// Delete the attached media, staying on the form.
			s.mediaPath = ""
			return nil
		case "enter":
			switch s.focus {
			case detailRowMedia:
				return push(newRecorderScreen(s.app))
			case detailRowSubmit:
				return s.submit()
			default:
				s.setFocus(s.focus + 1)
				return nil
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case detailRowAddress:
		s.address, cmd = s.address.Update(msg)
	case detailRowCoordinate:
		s.coordinate, cmd = s.coordinate.Update(msg)
	}
	return cmd
}

func (s *detailsScreen) setFocus(i int) {
	s.address.Blur()
	s.coordinate.Blur()
	s.focus = i
	switch i {
	case detailRowAddress:
		s.address.Focus()
	case detailRowCoordinate:
		s.coordinate.Focus()
	}
}

// submit validates the form; only a complete one builds the multipart
// request. Success is HTTP 201 and navigates back to the pending list.
func (s *detailsScreen) submit() tea.Cmd {
	if s.address.Value() == "" {
		return alert("Missing Address", "Please select or enter the location address.")
	}
	coord, err := types.ParseCoordinate(s.coordinate.Value())
	if err != nil {
		return alert("Invalid Coordinate", err.Error())
	}
	if s.mediaPath == "" {
		return alert("Missing Video", "Please record a verification video before submitting.")
	}

	s.submitting = true
	app, id := s.app, s.id
	addr, mediaPath := s.address.Value(), s.mediaPath
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		sess, err := app.Session.Load()
		if err != nil {
			return enrollmentDoneMsg{id: id, err: session.ErrNoSession}
		}
		_, err = app.API.AddLocation(context.Background(), api.AddLocationRequest{
			UserID:     sess.User.ID,
			Address:    addr,
			Coordinate: coord,
			MediaPath:  mediaPath,
		})
		return enrollmentDoneMsg{id: id, err: err}
	})
}

func (s *detailsScreen) View() string {
	st := s.app.Styles

	mediaLine := st.Muted.Render("none attached, press enter to record")
	if s.mediaPath != "" {
		mediaLine = st.Success.Render(s.mediaPath) + st.Muted.Render("  (ctrl+d to remove)")
	}
	mediaRow := st.Label.Render("Record Video") + "\n" + mediaLine
	if s.focus == detailRowMedia {
		mediaRow = st.InputFocus.Render(mediaRow)
	}

	submitLabel := st.Button.Render("Submit")
	if s.focus == detailRowSubmit {
		submitLabel = st.ButtonFocus.Render("Submit")
	}

	rows := []string{
		st.Title.Render("Add New Location"),
		renderField(st, "Address", s.address, s.focus == detailRowAddress, ""),
		renderField(st, "Coordinate", s.coordinate, s.focus == detailRowCoordinate, ""),
		mediaRow,
		"",
	}
	if s.submitting {
		rows = append(rows, s.spin.View()+" Uploading enrollment...")
	} else {
		rows = append(rows, submitLabel)
	}
	rows = append(rows, "", st.Footer.Render("[tab] next row  [enter] activate  [esc] back"))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, st.Card.Render(body))
}

func (s *detailsScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}
