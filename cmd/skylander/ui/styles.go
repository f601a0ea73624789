// Package ui implements the SkyLander interactive screens: styling,
// navigation, and one page model per user-facing view.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skylander/internal/types"
)

// Color palette drawn from the SkyLander brand blues plus the three review
// status colors.
var (
	// Light mode colors (default)
	LightBackground = lipgloss.Color("#f9f9f9")
	LightForeground = lipgloss.Color("#333333")
	LightPrimary    = lipgloss.Color("#083A75") // SkyLander navy
	LightAccent     = lipgloss.Color("#0056b3") // action blue
	LightSecondary  = lipgloss.Color("#e1e4e8")
	LightMuted      = lipgloss.Color("#888888")
	LightBorder     = lipgloss.Color("#dddddd")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#10192b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#4d8fe0")
	DarkAccent     = lipgloss.Color("#6ba6ef")
	DarkSecondary  = lipgloss.Color("#1e2a3d")
	DarkMuted      = lipgloss.Color("#6b7a94")
	DarkBorder     = lipgloss.Color("#2a3850")
	DarkCard       = lipgloss.Color("#1a2536")

	// Review status colors (same in both modes)
	PendingColor  = lipgloss.Color("#FFA500")
	ApprovedColor = lipgloss.Color("#2e8b57")
	RejectedColor = lipgloss.Color("#e53935")

	Destructive = lipgloss.Color("#e53935")
	Info        = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName resolves a configured theme name, falling back to terminal
// detection when the name is unknown.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses dark mode from COLORFGBG, the same heuristic most
// terminal apps use, and defaults to light.
func DetectTheme() Theme {
	colorTerm := os.Getenv("COLORFGBG")
	if colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	if os.Getenv("SKYLANDER_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds every styled component the screens share.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style
	Card    lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style

	// Interactive
	Button       lipgloss.Style
	ButtonFocus  lipgloss.Style
	InputBox     lipgloss.Style
	InputFocus   lipgloss.Style
	FieldError   lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Overlays
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
}

// NewStyles creates a Styles instance for the theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(1, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Value: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Button: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Secondary).
			Padding(0, 3),

		ButtonFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Padding(0, 3).
			Bold(true),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		FieldError: lipgloss.NewStyle().
			Foreground(Destructive),

		Success: lipgloss.NewStyle().
			Foreground(ApprovedColor).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Modal: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Accent),

		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// StatusStyle maps a review status onto its display style. Total over the
// enum: unknown statuses render muted instead of crashing a list row.
func (s Styles) StatusStyle(st types.Status) lipgloss.Style {
	switch st {
	case types.StatusPending:
		return lipgloss.NewStyle().Foreground(PendingColor).Bold(true)
	case types.StatusApproved:
		return lipgloss.NewStyle().Foreground(ApprovedColor).Bold(true)
	case types.StatusRejected:
		return lipgloss.NewStyle().Foreground(RejectedColor).Bold(true)
	default:
		return s.Muted
	}
}

// Logo returns the SkyLander banner.
func Logo(s Styles) string {
	logo := `
  ___ _        _                    _
 / __| |___  _| |   __ _ _ _  __| |___ _ _
 \__ \ / / || | |__/ _` + "`" + ` | ' \/ _` + "`" + ` / -_) '_|
 |___/_\_\\_, |____\__,_|_||_\__,_\___|_|
          |__/
`
	return s.Title.Render(logo)
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	return lipgloss.NewStyle().Foreground(s.Theme.Border).Render(strings.Repeat("─", width))
}
