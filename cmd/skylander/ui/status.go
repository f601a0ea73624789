package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skylander/internal/session"
	"skylander/internal/types"
)

// statusScreen shows every enrollment the current user has submitted,
// whatever its review state, with live address search.
type statusScreen struct {
	app    *App
	id     int
	table  table.Model
	search textinput.Model

	locations []types.Location
	filtered  []types.Location

	searching bool
	loading   bool
	spin      spinner.Model
	width     int
	height    int
}

// statusLoadedMsg delivers the user's locations.
type statusLoadedMsg struct {
	id   int
	locs []types.Location
	err  error
}

func (m statusLoadedMsg) ScreenID() int { return m.id }

func newStatusScreen(app *App) *statusScreen {
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

	return &statusScreen{
		app:     app,
		id:      app.newScreenID(),
		table:   t,
		search:  search,
		spin:    sp,
		loading: true,
	}
}

func (s *statusScreen) ID() int { return s.id }

func (s *statusScreen) Init() tea.Cmd {
	app, id := s.app, s.id
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		sess, err := app.Session.Load()
		if err != nil {
			return statusLoadedMsg{id: id, err: session.ErrNoSession}
		}
		locs, err := app.API.ListLocationsByUser(context.Background(), sess.User.ID)
		return statusLoadedMsg{id: id, locs: locs, err: err}
	})
}

func (s *statusScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case statusLoadedMsg:
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

func (s *statusScreen) applyFilter() {
	s.filtered = types.FilterByAddress(s.locations, s.search.Value())
	rows := make([]table.Row, 0, len(s.filtered))
	for _, l := range s.filtered {
		rows = append(rows, table.Row{l.Address, l.Coordinate().String(), l.Status.String()})
	}
	s.table.SetRows(rows)
}

func (s *statusScreen) View() string {
	st := s.app.Styles

	out := st.Header.Width(s.width).Render("Location Status") + "\n\n"
	out += renderSearchBar(st, s.search, s.searching) + "\n\n"

	switch {
	case s.loading:
		out += s.spin.View() + " Loading your locations..."
	case len(s.filtered) == 0:
		out += st.Muted.Render("No locations found")
	default:
		out += st.Content.Render(s.table.View())
		if len(s.filtered) != len(s.locations) {
			out += "\n" + st.Muted.Render(fmt.Sprintf("Showing %d of %d locations", len(s.filtered), len(s.locations)))
		}
	}

	out += "\n" + st.Footer.Render("[/] search  [esc] back")
	return out
}

func (s *statusScreen) SetSize(w, h int) {
	s.width, s.height = w, h
	s.table.SetWidth(w - 4)
	s.table.SetHeight(tableHeight(h))
}
