// Package ui implements the shelfctl terminal interface: one list page per
// catalog entity, a modal create/edit form, a confirmation dialog and a
// toast stack, composed under a single root model.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors
	LightBackground = lipgloss.Color("#f6f4ef")
	LightForeground = lipgloss.Color("#2b2118")
	LightPrimary    = lipgloss.Color("#7a4e2d")
	LightAccent     = lipgloss.Color("#b08968")
	LightMuted      = lipgloss.Color("#9c9287")
	LightBorder     = lipgloss.Color("#d8cfc2")
	LightCard       = lipgloss.Color("#fffdf8")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#1e1a16")
	DarkForeground = lipgloss.Color("#ede4d8")
	DarkPrimary    = lipgloss.Color("#d9a066")
	DarkAccent     = lipgloss.Color("#8a6a4f")
	DarkMuted      = lipgloss.Color("#7d7468")
	DarkBorder     = lipgloss.Color("#3a332c")
	DarkCard       = lipgloss.Color("#2a241e")

	// Semantic colors, same in both modes
	SuccessColor = lipgloss.Color("#7cb342")
	ErrorColor   = lipgloss.Color("#e05252")
	WarningColor = lipgloss.Color("#f0b429")
	InfoColor    = lipgloss.Color("#4a9fd4")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
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
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName maps the config value to a theme, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the styled components.
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// List page
	SelectedRow lipgloss.Style
	ErrorPanel  lipgloss.Style
	SearchHint  lipgloss.Style

	// Modals
	ModalBox       lipgloss.Style
	FieldLabel     lipgloss.Style
	FieldFocused   lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// NewStyles creates the styled components for a theme.
func NewStyles(theme Theme) Styles {
	toast := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#ffffff"))

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(SuccessColor),
		Error:   lipgloss.NewStyle().Foreground(ErrorColor),
		Warning: lipgloss.NewStyle().Foreground(WarningColor),
		Info:    lipgloss.NewStyle().Foreground(InfoColor),

		TabActive: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary).
			Bold(true).
			Padding(0, 2),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		SelectedRow: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Accent),

		ErrorPanel: lipgloss.NewStyle().
			Foreground(ErrorColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2),

		SearchHint: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Background(theme.Card).
			Padding(1, 2),

		FieldLabel: lipgloss.NewStyle().
			Foreground(theme.Muted),

		FieldFocused: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		ButtonActive: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary).
			Bold(true).
			Padding(0, 3),

		ButtonInactive: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Border).
			Padding(0, 3),

		ToastSuccess: toast.Background(SuccessColor),
		ToastError:   toast.Background(ErrorColor),
		ToastWarning: toast.Background(WarningColor),
		ToastInfo:    toast.Background(InfoColor),
	}
}

// DefaultStyles returns dark-theme styles.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
