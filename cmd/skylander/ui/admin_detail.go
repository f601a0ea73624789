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
)

// detailParams identifies the enrollment an admin is reviewing.
type detailParams struct {
	LocationID types.FlexID
}

// reviewStage is which overlay, if any, sits above the detail view.
type reviewStage int

const (
	stageViewing reviewStage = iota
	stageReviewModal
	stageArucoModal
)

// adminDetailScreen shows one enrollment with its media URL and offers
// the review modal. Approve leads to the marker-id modal (typed or
// scanned); Reject and Cancel close the modal. None of the actions calls
// a status-update endpoint; the observed API has none, so the entered
// marker id is only held on screen.
type adminDetailScreen struct {
	app      *App
	id       int
	params   detailParams
	location *types.Location

	stage      reviewStage
	reviewPick int // 0 approve, 1 reject, 2 cancel
	arucoInput textinput.Model
	enteredID  string

	loading bool
	spin    spinner.Model
	width   int
	height  int
}

// locationDetailMsg delivers the fetched enrollment.
type locationDetailMsg struct {
	id  int
	loc *types.Location
	err error
}

func (m locationDetailMsg) ScreenID() int { return m.id }

// scannedMarkers is popped back by the scanner screen.
type scannedMarkers struct {
	IDs []string
}

func newAdminDetailScreen(app *App, p detailParams) *adminDetailScreen {
	in := textinput.New()
	in.Placeholder = "Enter Aruco ID"
	in.CharLimit = 16
	in.Width = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &adminDetailScreen{
		app:        app,
		id:         app.newScreenID(),
		params:     p,
		arucoInput: in,
		spin:       sp,
		loading:    true,
	}
}

func (s *adminDetailScreen) ID() int { return s.id }

func (s *adminDetailScreen) Init() tea.Cmd {
	app, id, locID := s.app, s.id, s.params.LocationID
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		if _, err := app.Session.Load(); err != nil {
			return locationDetailMsg{id: id, err: session.ErrNoSession}
		}
		loc, err := app.API.LocationDetail(context.Background(), locID)
		return locationDetailMsg{id: id, loc: loc, err: err}
	})
}

// OnResult fills the marker input from a completed scan.
func (s *adminDetailScreen) OnResult(result interface{}) tea.Cmd {
	if scan, ok := result.(scannedMarkers); ok && len(scan.IDs) > 0 {
		s.arucoInput.SetValue(scan.IDs[0])
		s.stage = stageArucoModal
	}
	return nil
}

func (s *adminDetailScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case locationDetailMsg:
		s.loading = false
		if msg.err == session.ErrNoSession {
			return resetTo(newLoginScreen(s.app))
		}
		if msg.err != nil {
			return tea.Batch(pop(), alert("Error", alertText(msg.err, "Location not found")))
		}
		s.location = msg.loc
		return nil

	case spinner.TickMsg:
		if s.loading {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return cmd
		}
		return nil

	case tea.KeyMsg:
		switch s.stage {
		case stageReviewModal:
			return s.updateReviewModal(msg)
		case stageArucoModal:
			return s.updateArucoModal(msg)
		}
		switch msg.String() {
		case "esc":
			return pop()
		case "enter", "v":
			if s.location != nil {
				s.stage = stageReviewModal
				s.reviewPick = 0
			}
		}
	}
	return nil
}

func (s *adminDetailScreen) updateReviewModal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "shift+tab":
		s.reviewPick = (s.reviewPick + 2) % 3
	case "right", "tab":
		s.reviewPick = (s.reviewPick + 1) % 3
	case "esc":
		s.stage = stageViewing
	case "enter":
		switch s.reviewPick {
		case 0: // Approve requires a marker id first.
			s.stage = stageArucoModal
			return s.arucoInput.Focus()
		case 1: // Reject only closes the modal; no endpoint to call.
			s.stage = stageViewing
			logging.Info(logging.CategoryUI, "reject closed review for location %s", s.params.LocationID)
		default:
			s.stage = stageViewing
		}
	}
	return nil
}

func (s *adminDetailScreen) updateArucoModal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.stage = stageViewing
		s.arucoInput.Blur()
		return nil
	case "ctrl+s":
		// Scan a still image instead of typing the id.
		return push(newArucoScannerScreen(s.app))
	case "enter":
		s.enteredID = s.arucoInput.Value()
		s.stage = stageViewing
		s.arucoInput.Blur()
		logging.Info(logging.CategoryUI, "marker id %q entered for location %s", s.enteredID, s.params.LocationID)
		return nil
	}
	var cmd tea.Cmd
	s.arucoInput, cmd = s.arucoInput.Update(msg)
	return cmd
}

func (s *adminDetailScreen) View() string {
	st := s.app.Styles

	if s.loading || s.location == nil {
		return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, s.spin.View()+" Loading location details...")
	}

	loc := s.location
	arucoShown := loc.ArucoLabel()
	if s.enteredID != "" {
		arucoShown = s.enteredID + st.Muted.Render(" (not submitted)")
	}

	detail := lipgloss.JoinVertical(lipgloss.Left,
		detailRow(st, "Location Address", loc.Address),
		detailRow(st, "Enrolled by", loc.EnrolledBy),
		detailRow(st, "Person email", loc.EnrolledEmail),
		detailRow(st, "Location Coordinate", loc.Coordinate().String()),
		detailRow(st, "Status", st.StatusStyle(loc.Status).Render(loc.Status.String())),
		detailRow(st, "Aruco ID", arucoShown),
		detailRow(st, "Verification video", s.app.API.MediaURL(loc.MediaFileName)),
	)

	base := st.Header.Width(s.width).Render("Location Details") + "\n\n" +
		st.Content.Render(detail) + "\n" +
		st.ButtonFocus.Render("Review") + "\n\n" +
		st.Footer.Render("[enter] review  [esc] back")

	switch s.stage {
	case stageReviewModal:
		return s.overlay(base, s.renderReviewModal())
	case stageArucoModal:
		return s.overlay(base, s.renderArucoModal())
	}
	return base
}

func (s *adminDetailScreen) renderReviewModal() string {
	st := s.app.Styles
	options := []string{"Approve", "Reject", "Cancel"}
	var rendered []string
	for i, o := range options {
		style := st.Button
		if i == s.reviewPick {
			style = st.ButtonFocus
		}
		rendered = append(rendered, style.Render(o))
	}
	return st.Modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		st.ModalTitle.Render("What action would you like to take?"),
		st.Muted.Render("You can approve, reject, or cancel this enrollment."),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, rendered[0], " ", rendered[1], " ", rendered[2]),
	))
}

func (s *adminDetailScreen) renderArucoModal() string {
	st := s.app.Styles
	return st.Modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		st.ModalTitle.Render("Enter Aruco ID"),
		st.InputFocus.Render(s.arucoInput.View()),
		"",
		st.Muted.Render("[enter] submit  [ctrl+s] scan image  [esc] cancel"),
	))
}

func (s *adminDetailScreen) overlay(_, modal string) string {
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, modal)
}

func detailRow(st Styles, label, value string) string {
	if value == "" {
		value = st.Muted.Render("-")
	}
	return st.Label.Render(label) + "\n" + st.Value.Render(value) + "\n"
}

func (s *adminDetailScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}
