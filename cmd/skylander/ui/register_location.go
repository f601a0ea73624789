package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skylander/internal/session"
	"skylander/internal/types"
)

// registerLocationScreen lists the current user's pending enrollments and
// is the entry point for adding a new one.
type registerLocationScreen struct {
	app    *App
	id     int
	table  table.Model
	search textinput.Model

	locations []types.Location // pending only
	filtered  []types.Location

	searching bool
	loading   bool
	spin      spinner.Model
	width     int
	height    int
}

// pendingLoadedMsg delivers the user's pending locations.
type pendingLoadedMsg struct {
	id   int
	locs []types.Location
	err  error
}

func (m pendingLoadedMsg) ScreenID() int { return m.id }

func newRegisterLocationScreen(app *App) *registerLocationScreen {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Address", Width: 44},
			{Title: "Coordinate", Width: 24},
			{Title: "Status", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(TableMinRows),
	)

	search := textinput.New()
	search.Placeholder = "Search by address..."
	search.CharLimit = 80
	search.Width = SearchWidth

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &registerLocationScreen{
		app:     app,
		id:      app.newScreenID(),
		table:   t,
		search:  search,
		spin:    sp,
		loading: true,
	}
}

func (s *registerLocationScreen) ID() int { return s.id }

func (s *registerLocationScreen) Init() tea.Cmd {
	s.loading = true
	app, id := s.app, s.id
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		sess, err := app.Session.Load()
		if err != nil {
			return pendingLoadedMsg{id: id, err: session.ErrNoSession}
		}
		locs, err := app.API.ListLocationsByUser(context.Background(), sess.User.ID)
		if err != nil {
			return pendingLoadedMsg{id: id, err: err}
		}
		return pendingLoadedMsg{id: id, locs: types.FilterByStatus(locs, types.StatusPending)}
	})
}

func (s *registerLocationScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pendingLoadedMsg:
		s.loading = false
		if msg.err == session.ErrNoSession {
			return resetTo(newLoginScreen(s.app))
		}
		if msg.err != nil {
			return alert("Error", alertText(msg.err, "An error occurred while fetching locations"))
		}
		s.locations = msg.locs
		s.applyFilter()
		return nil

	case spinner.TickMsg:
		if s.loading {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return cmd
		}
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "/":
			s.searching = !s.searching
			if s.searching {
				s.search.Focus()
			} else {
				s.search.Blur()
			}
			return nil
		case "esc":
			if s.searching {
				s.searching = false
				s.search.Blur()
				return nil
			}
			return pop()
		case "a":
			if !s.searching {
				return push(newCoordinateScreen(s.app))
			}
		case "enter":
			if s.searching {
				s.searching = false
				s.search.Blur()
				return nil
			}
		}
	}

	var cmd tea.Cmd
	if s.searching {
		s.search, cmd = s.search.Update(msg)
		s.applyFilter()
	} else {
		s.table, cmd = s.table.Update(msg)
	}
	return cmd
}

// applyFilter recomputes rows from the live search text.
func (s *registerLocationScreen) applyFilter() {
	s.filtered = types.FilterByAddress(s.locations, s.search.Value())
	rows := make([]table.Row, 0, len(s.filtered))
	for _, l := range s.filtered {
		rows = append(rows, table.Row{l.Address, l.Coordinate().String(), l.Status.String()})
	}
	s.table.SetRows(rows)
}

func (s *registerLocationScreen) View() string {
	st := s.app.Styles

	out := st.Header.Width(s.width).Render("Register Location") + "\n\n"
	out += renderSearchBar(st, s.search, s.searching) + "\n\n"
	out += st.Muted.Render("Pending registered location") + "\n"

	switch {
	case s.loading:
		out += "\n" + s.spin.View() + " Loading your locations..."
	case len(s.filtered) == 0:
		out += "\n" + st.Muted.Render("No locations found")
	default:
		out += st.Content.Render(s.table.View())
	}

	out += "\n" + st.Footer.Render("[a] add location  [/] search  [esc] back")
	return out
}

func (s *registerLocationScreen) SetSize(w, h int) {
	s.width, s.height = w, h
	s.table.SetWidth(w - 4)
	s.table.SetHeight(tableHeight(h))
}

// renderSearchBar draws the shared search input with focus styling.
func renderSearchBar(st Styles, in textinput.Model, focused bool) string {
	box := st.InputBox
	if focused {
		box = st.InputFocus
	}
	return box.Render(in.View())
}
