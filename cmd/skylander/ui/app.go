package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skylander/cmd/skylander/config"
	"skylander/internal/api"
	"skylander/internal/aruco"
	"skylander/internal/geocode"
	"skylander/internal/logging"
	"skylander/internal/session"
)

// App is the explicit context handed to every screen constructor: session
// store, API clients, and configuration. No screen reaches for globals.
type App struct {
	Session session.Store
	API     *api.Client
	Geo     *geocode.Client
	Detect  *aruco.Detector
	Cfg     config.Config
	Styles  Styles

	nextID int
}

// NewApp wires the screen context from configuration.
func NewApp(cfg config.Config, store session.Store) *App {
	return &App{
		Session: store,
		API:     api.New(cfg.APIBaseURL),
		Geo:     geocode.New(cfg.NominatimURL),
		Detect:  aruco.New(cfg.DetectURL),
		Cfg:     cfg,
		Styles:  NewStyles(ThemeByName(cfg.Theme)),
	}
}

// newScreenID hands out screen identities used to drop stale async
// responses after navigation.
func (a *App) newScreenID() int {
	a.nextID++
	return a.nextID
}

// screen is one user-facing view. Screens are pointer models in the page
// style: Update returns commands, View renders, SetSize reacts to the
// terminal.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(w, h int)
	ID() int
}

// resultReceiver is implemented by screens that accept a value handed back
// from a screen they pushed (a picked coordinate, a recorded capture).
type resultReceiver interface {
	OnResult(result interface{}) tea.Cmd
}

// screenMsg is implemented by async messages owned by a specific screen.
// The root drops any such message whose owner is no longer on top, so a
// late response cannot update a screen the user has left.
type screenMsg interface {
	ScreenID() int
}

// Navigation messages, emitted by screens as commands.
type (
	pushMsg  struct{ s screen }
	popMsg   struct{ result interface{} }
	popToMsg struct{ match func(screen) bool }
	resetMsg struct{ s screen }

	// alertMsg shows a modal alert above the current screen.
	alertMsg struct {
		title string
		body  string
	}
)

func push(s screen) tea.Cmd {
	return func() tea.Msg { return pushMsg{s: s} }
}

func pop() tea.Cmd {
	return func() tea.Msg { return popMsg{} }
}

func popWith(result interface{}) tea.Cmd {
	return func() tea.Msg { return popMsg{result: result} }
}

// popTo unwinds the stack until match accepts the top screen, then
// re-runs that screen's Init so its data reflects whatever the popped
// screens changed.
func popTo(match func(screen) bool) tea.Cmd {
	return func() tea.Msg { return popToMsg{match: match} }
}

func resetTo(s screen) tea.Cmd {
	return func() tea.Msg { return resetMsg{s: s} }
}

func alert(title, body string) tea.Cmd {
	return func() tea.Msg { return alertMsg{title: title, body: body} }
}

// Model is the root Bubble Tea model: a stack of screens plus the alert
// overlay. Only the top screen receives messages.
type Model struct {
	app    *App
	stack  []screen
	alert  *alertMsg
	width  int
	height int
	ready  bool
}

// NewModel builds the root model with the start screen on the stack.
func NewModel(app *App) Model {
	return Model{app: app, stack: []screen{newStartScreen(app)}}
}

// Top returns the active screen.
func (m Model) Top() screen {
	return m.stack[len(m.stack)-1]
}

// Depth returns the navigation stack depth.
func (m Model) Depth() int { return len(m.stack) }

// Init starts the top screen.
func (m Model) Init() tea.Cmd {
	return m.Top().Init()
}

// Update routes messages: navigation and alerts are handled here, sizing
// fans out to every screen, and everything else goes to the top screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		for _, s := range m.stack {
			s.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		// The alert overlay swallows keys until dismissed.
		if m.alert != nil {
			switch msg.String() {
			case "enter", "esc", " ":
				m.alert = nil
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case alertMsg:
		logging.Info(logging.CategoryUI, "alert: %s: %s", msg.title, msg.body)
		cp := msg
		m.alert = &cp
		return m, nil

	case pushMsg:
		msg.s.SetSize(m.width, m.height)
		m.stack = append(m.stack, msg.s)
		logging.Info(logging.CategoryUI, "push screen %T", msg.s)
		return m, msg.s.Init()

	case popMsg:
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		logging.Info(logging.CategoryUI, "pop -> %T", m.Top())
		var cmds []tea.Cmd
		if msg.result != nil {
			if recv, ok := m.Top().(resultReceiver); ok {
				cmds = append(cmds, recv.OnResult(msg.result))
			}
		}
		return m, tea.Batch(cmds...)

	case popToMsg:
		for len(m.stack) > 1 && !msg.match(m.Top()) {
			m.stack = m.stack[:len(m.stack)-1]
		}
		logging.Info(logging.CategoryUI, "unwind -> %T", m.Top())
		return m, m.Top().Init()

	case resetMsg:
		msg.s.SetSize(m.width, m.height)
		m.stack = []screen{msg.s}
		logging.Info(logging.CategoryUI, "reset -> %T", msg.s)
		return m, msg.s.Init()
	}

	// Async responses addressed to a screen that is no longer on top are
	// stale; drop them instead of mutating a view the user cannot see.
	if sm, ok := msg.(screenMsg); ok {
		if sm.ScreenID() != m.Top().ID() {
			logging.Warn(logging.CategoryUI, "dropping stale message %T for screen %d", msg, sm.ScreenID())
			return m, nil
		}
	}

	return m, m.Top().Update(msg)
}

// View renders the top screen with the alert overlay, if any.
func (m Model) View() string {
	if !m.ready {
		return "Loading SkyLander..."
	}
	view := m.Top().View()
	if m.alert != nil {
		return m.renderAlert(view)
	}
	return view
}

func (m Model) renderAlert(under string) string {
	s := m.app.Styles
	w := lipgloss.Width(m.alert.body) + 8
	if w < ModalMinWidth {
		w = ModalMinWidth
	}
	box := s.Modal.Width(w).Render(
		s.ModalTitle.Render(m.alert.title) + "\n" +
			m.alert.body + "\n\n" +
			s.Muted.Render("[enter] dismiss"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
