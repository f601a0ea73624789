package ui

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"skylander/cmd/skylander/config"
	"skylander/internal/api"
	"skylander/internal/session"
	"skylander/internal/types"
)

// newTestApp builds an App over an in-memory session store. The endpoint
// URLs point nowhere; tests that exercise the network substitute their
// own clients.
func newTestApp() *App {
	cfg := config.DefaultConfig()
	cfg.APIBaseURL = "http://127.0.0.1:0"
	return NewApp(cfg, session.NewMemStore())
}

// drive feeds a message through the root model and follows the produced
// navigation and screen messages the way the Bubble Tea runtime would.
// Cursor-blink and tick messages are dropped so the loop settles.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for guard := 0; len(queue) > 0; guard++ {
		if guard > 100 {
			t.Fatal("message loop did not settle")
		}
		next, cmd := m.Update(queue[0])
		m = next.(Model)
		queue = queue[1:]
		for _, produced := range collect(cmd) {
			switch produced.(type) {
			case pushMsg, popMsg, popToMsg, resetMsg, alertMsg:
				queue = append(queue, produced)
			default:
				if _, ok := produced.(screenMsg); ok {
					queue = append(queue, produced)
				}
			}
		}
	}
	return m
}

// collect runs a command tree and gathers the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func sized(app *App) Model {
	m := NewModel(app)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func TestStartScreenWithoutSessionShowsPicker(t *testing.T) {
	app := newTestApp()
	m := sized(app)

	m = drive(t, m, sessionCheckedMsg{id: m.Top().ID()})
	if m.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", m.Depth())
	}
	view := m.View()
	if !strings.Contains(view, "Welcome to SkyLander") {
		t.Errorf("picker view missing welcome: %q", view)
	}
}

func TestStartScreenRedirectsByRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{name: "user", role: types.RoleUser, want: "Register New Location"},
		{name: "admin", role: types.RoleAdmin, want: "Review Enrollments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			if err := app.Session.Save(types.User{Name: "X", Email: "x@example.com", Role: tt.role}, "tok"); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			m := sized(app)

			// The mount-time session probe fires from Init.
			m = drive(t, m, m.Top().Init()())
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("home view for %s missing %q", tt.role, tt.want)
			}
		})
	}
}

func TestStaleScreenMessageIsDropped(t *testing.T) {
	app := newTestApp()
	m := sized(app)
	staleID := m.Top().ID()

	// Navigate away from the start screen.
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	if m.Depth() != 2 {
		t.Fatalf("depth = %d, want 2 after pushing login", m.Depth())
	}

	// A session probe addressed to the abandoned start screen must not
	// navigate anywhere.
	m = drive(t, m, sessionCheckedMsg{id: staleID, sess: &session.Session{
		User: types.User{Role: types.RoleAdmin},
	}})
	if m.Depth() != 2 {
		t.Errorf("stale message changed the stack: depth = %d", m.Depth())
	}
	if !strings.Contains(m.View(), "Welcome back") {
		t.Errorf("stale message replaced the login view")
	}
}

func TestAlertOverlaySwallowsKeysUntilDismissed(t *testing.T) {
	app := newTestApp()
	m := sized(app)

	m = drive(t, m, alertMsg{title: "Not Found", body: "Location not found."})
	if !strings.Contains(m.View(), "Not Found") {
		t.Fatalf("alert not rendered")
	}

	// A normal key is swallowed while the alert is up.
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	if m.Depth() != 1 {
		t.Errorf("key leaked through alert: depth = %d", m.Depth())
	}
	if !strings.Contains(m.View(), "Not Found") {
		t.Errorf("alert dismissed by a non-dismiss key")
	}

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if strings.Contains(m.View(), "Not Found") {
		t.Errorf("enter did not dismiss the alert")
	}
}

func TestPopHandsResultToReceiver(t *testing.T) {
	app := newTestApp()
	m := sized(app)

	details := newDetailsScreen(app, detailsParams{})
	m = drive(t, m, pushMsg{s: details})
	m = drive(t, m, pushMsg{s: newRecorderScreen(app)})

	m = drive(t, m, popMsg{result: capturedMedia{Path: "/tmp/clip.mp4"}})
	if m.Top() != screen(details) {
		t.Fatalf("pop did not land on the details screen")
	}
	if details.mediaPath != "/tmp/clip.mp4" {
		t.Errorf("mediaPath = %q, want the popped capture", details.mediaPath)
	}
}

func TestSuccessfulSubmitReturnsToPendingList(t *testing.T) {
	// The list is empty until the enrollment lands; only a reload after
	// the submit can surface the new row.
	var loads atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if loads.Add(1) == 1 {
			fmt.Fprint(w, `{"data":[]}`)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":9,"locationAddress":"123 Main St","latitude":"1.234560","longitude":"103.456780","status":"pending"}]}`)
	}))
	defer srv.Close()

	transport := &http.Transport{}
	t.Cleanup(transport.CloseIdleConnections)

	app := newTestApp()
	app.API = api.New(srv.URL, api.WithHTTPClient(&http.Client{Transport: transport}))
	if err := app.Session.Save(types.User{ID: "7", Role: types.RoleUser}, "tok"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	m := sized(app)

	// Enrollment path: pending list -> coordinate picker -> details form.
	details := newDetailsScreen(app, detailsParams{})
	m = drive(t, m, pushMsg{s: newRegisterLocationScreen(app)})
	m = drive(t, m, pushMsg{s: newCoordinateScreen(app)})
	m = drive(t, m, pushMsg{s: details})

	m = drive(t, m, enrollmentDoneMsg{id: details.id})
	if _, ok := m.Top().(*registerLocationScreen); !ok {
		t.Fatalf("after successful submit, top screen = %T, want *registerLocationScreen", m.Top())
	}
	if m.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.Depth())
	}
	if !strings.Contains(m.View(), "123 Main St") {
		t.Errorf("pending list did not reload the new enrollment")
	}
}

func TestPopNeverUnderflows(t *testing.T) {
	app := newTestApp()
	m := sized(app)
	m = drive(t, m, popMsg{})
	if m.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.Depth())
	}
}
