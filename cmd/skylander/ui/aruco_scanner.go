package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// arucoScannerScreen sends a still image to the companion detection
// server and shows the marker ids it found. When the screen was pushed
// from the review flow, quitting with a result pops it back so the detail
// screen can prefill the marker id.
type arucoScannerScreen struct {
	app     *App
	id      int
	path    pathInput
	markers []string
	scanned bool
	errText string
	busy    bool
	spin    spinner.Model
	width   int
	height  int
}

// markersDetectedMsg delivers the detection outcome.
type markersDetectedMsg struct {
	id      int
	markers []string
	err     error
}

func (m markersDetectedMsg) ScreenID() int { return m.id }

func newArucoScannerScreen(app *App) *arucoScannerScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &arucoScannerScreen{
		app:  app,
		id:   app.newScreenID(),
		path: newPathInput("Path to marker photo (e.g. ~/captures/marker.jpg)"),
		spin: sp,
	}
}

func (s *arucoScannerScreen) ID() int { return s.id }

func (s *arucoScannerScreen) Init() tea.Cmd {
	return s.path.Focus()
}

func (s *arucoScannerScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case markersDetectedMsg:
		s.busy = false
		s.scanned = true
		if msg.err != nil {
			s.errText = msg.err.Error()
			s.markers = nil
			return nil
		}
		s.errText = ""
		s.markers = msg.markers
		return nil

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
			if s.scanned && len(s.markers) > 0 {
				return popWith(scannedMarkers{IDs: s.markers})
			}
			return pop()
		case "enter":
			return s.scan()
		}
	}
	return s.path.Update(msg)
}

func (s *arucoScannerScreen) scan() tea.Cmd {
	imagePath := s.path.Value()
	if imagePath == "" {
		s.errText = "Enter the path to a captured photo first."
		return nil
	}
	s.busy = true
	app, id := s.app, s.id
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		markers, err := app.Detect.Detect(context.Background(), imagePath)
		return markersDetectedMsg{id: id, markers: markers, err: err}
	})
}

func (s *arucoScannerScreen) View() string {
	st := s.app.Styles

	rows := []string{
		st.Title.Render("ArUco Marker Scanner"),
		s.path.View(st),
		"",
	}
	switch {
	case s.busy:
		rows = append(rows, s.spin.View()+" Detecting markers...")
	case s.errText != "":
		rows = append(rows, st.Error.Render(s.errText))
	case s.scanned && len(s.markers) == 0:
		rows = append(rows, st.Muted.Render("No markers detected."))
	case s.scanned:
		rows = append(rows, st.Success.Render("Detected Markers: "+strings.Join(s.markers, ", ")))
	}
	rows = append(rows, "", st.Footer.Render("[enter] scan  [esc] back"))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, st.Card.Render(body))
}

func (s *arucoScannerScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}
