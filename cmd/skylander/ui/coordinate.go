package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skylander/internal/geocode"
	"skylander/internal/types"
)

// coordinateScreen is the map-picker stand-in: the point pans with the
// arrow keys, free-text search recenters it through Nominatim, and reverse
// geocoding fills the address line. Confirming pushes the details form
// with the picked point.
type coordinateScreen struct {
	app     *App
	id      int
	point   types.Coordinate
	address string

	search    textinput.Model
	searching bool
	busy      bool
	busyWhat  string
	spin      spinner.Model
	width     int
	height    int
}

// placesFoundMsg delivers a search result set.
type placesFoundMsg struct {
	id     int
	places []geocode.Place
	err    error
}

func (m placesFoundMsg) ScreenID() int { return m.id }

// addressFoundMsg delivers a reverse-geocoding result.
type addressFoundMsg struct {
	id      int
	address string
	err     error
}

func (m addressFoundMsg) ScreenID() int { return m.id }

func newCoordinateScreen(app *App) *coordinateScreen {
	search := textinput.New()
	search.Placeholder = "Search a place..."
	search.CharLimit = 120
	search.Width = SearchWidth

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &coordinateScreen{
		app:    app,
		id:     app.newScreenID(),
		point:  types.Coordinate{Latitude: app.Cfg.HomeLat, Longitude: app.Cfg.HomeLon},
		search: search,
		spin:   sp,
	}
}

func (s *coordinateScreen) ID() int { return s.id }

func (s *coordinateScreen) Init() tea.Cmd { return nil }

func (s *coordinateScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case placesFoundMsg:
		s.busy = false
		if msg.err != nil {
			return alert("Error", "Failed to fetch location. Please check your internet connection.")
		}
		if len(msg.places) == 0 {
			return alert("Not Found", "Location not found. Try a different search.")
		}
		best := msg.places[0]
		s.point = best.Coordinate
		s.address = best.DisplayName
		return nil

	case addressFoundMsg:
		s.busy = false
		if msg.err != nil {
			s.address = "Unable to fetch address"
			return nil
		}
		s.address = msg.address
		return nil

	case spinner.TickMsg:
		if s.busy {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return cmd
		}
		return nil

	case tea.KeyMsg:
		if s.searching {
			switch msg.String() {
			case "enter":
				s.searching = false
				s.search.Blur()
				return s.runSearch(s.search.Value())
			case "esc":
				s.searching = false
				s.search.Blur()
				return nil
			}
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return cmd
		}

		switch msg.String() {
		case "up":
			s.pan(PanStepFine, 0)
		case "down":
			s.pan(-PanStepFine, 0)
		case "left":
			s.pan(0, -PanStepFine)
		case "right":
			s.pan(0, PanStepFine)
		case "shift+up":
			s.pan(PanStepCoarse, 0)
		case "shift+down":
			s.pan(-PanStepCoarse, 0)
		case "shift+left":
			s.pan(0, -PanStepCoarse)
		case "shift+right":
			s.pan(0, PanStepCoarse)
		case "/":
			s.searching = true
			s.search.Focus()
			return textinput.Blink
		case "c":
			// Recenter on the configured home point, the stand-in for the
			// device GPS fix.
			s.point = types.Coordinate{Latitude: s.app.Cfg.HomeLat, Longitude: s.app.Cfg.HomeLon}
			s.address = ""
		case "r":
			return s.runReverse()
		case "enter":
			return push(newDetailsScreen(s.app, detailsParams{
				Coordinate: s.point,
				Address:    s.address,
				HasPoint:   true,
			}))
		case "esc":
			return pop()
		}
	}
	return nil
}

// pan nudges the picked point, clamped to valid ranges.
func (s *coordinateScreen) pan(dLat, dLon float64) {
	s.point.Latitude += dLat
	s.point.Longitude += dLon
	if s.point.Latitude > 90 {
		s.point.Latitude = 90
	}
	if s.point.Latitude < -90 {
		s.point.Latitude = -90
	}
	if s.point.Longitude > 180 {
		s.point.Longitude = -180 + (s.point.Longitude - 180)
	}
	if s.point.Longitude < -180 {
		s.point.Longitude = 180 + (s.point.Longitude + 180)
	}
}

func (s *coordinateScreen) runSearch(query string) tea.Cmd {
	s.busy = true
	s.busyWhat = "Searching..."
	app, id := s.app, s.id
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		places, err := app.Geo.Search(context.Background(), query)
		return placesFoundMsg{id: id, places: places, err: err}
	})
}

func (s *coordinateScreen) runReverse() tea.Cmd {
	s.busy = true
	s.busyWhat = "Looking up address..."
	app, id := s.app, s.id
	lat, lon := s.point.Latitude, s.point.Longitude
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		addr, err := app.Geo.Reverse(context.Background(), lat, lon)
		return addressFoundMsg{id: id, address: addr, err: err}
	})
}

func (s *coordinateScreen) View() string {
	st := s.app.Styles

	out := st.Header.Width(s.width).Render("Pick Location Coordinate") + "\n\n"
	out += renderSearchBar(st, s.search, s.searching) + "\n\n"

	crosshair := st.Title.Render("   ┼\n  (•)\n")
	panel := lipgloss.JoinVertical(lipgloss.Left,
		crosshair,
		fmt.Sprintf("%s %s", st.Label.Render("Latitude: "), st.Value.Render(fmt.Sprintf("%.6f", s.point.Latitude))),
		fmt.Sprintf("%s %s", st.Label.Render("Longitude:"), st.Value.Render(fmt.Sprintf("%.6f", s.point.Longitude))),
		fmt.Sprintf("%s %s", st.Label.Render("Address:  "), st.Value.Render(orMuted(st, s.address, "press r to look up"))),
	)
	out += st.Card.Render(panel) + "\n"

	if s.busy {
		out += "\n" + s.spin.View() + " " + s.busyWhat + "\n"
	}

	out += "\n" + st.Footer.Render("[arrows] pan  [shift+arrows] pan fast  [/] search  [c] my location  [r] address  [enter] add this location  [esc] back")
	return out
}

func orMuted(st Styles, v, placeholder string) string {
	if v == "" {
		return st.Muted.Render(placeholder)
	}
	return v
}

func (s *coordinateScreen) SetSize(w, h int) {
	s.width, s.height = w, h
}
