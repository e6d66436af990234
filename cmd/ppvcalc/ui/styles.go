// Package ui provides the visual styling and reusable components for
// the ppvcalc interactive screen, with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. The semantic cell colors are shared between modes.
var (
	// Light mode colors (default)
	LightBackground = lipgloss.Color("#f6f7f8")
	LightForeground = lipgloss.Color("#16324f") // deep slate blue
	LightPrimary    = lipgloss.Color("#16324f")
	LightAccent     = lipgloss.Color("#2a9d8f") // clinical teal
	LightMuted      = lipgloss.Color("#8a99a8")
	LightBorder     = lipgloss.Color("#d8dee4")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#101820")
	DarkForeground = lipgloss.Color("#e8edf2")
	DarkPrimary    = lipgloss.Color("#2a9d8f")
	DarkAccent     = lipgloss.Color("#5fd0c0")
	DarkMuted      = lipgloss.Color("#5c6b7a")
	DarkBorder     = lipgloss.Color("#2b3a49")
	DarkCard       = lipgloss.Color("#18222e")

	// Confusion-cell colors (same in both modes)
	TruePositive  = lipgloss.Color("#2a9d8f") // correct, diseased
	TrueNegative  = lipgloss.Color("#8ab17d") // correct, healthy
	FalsePositive = lipgloss.Color("#e9c46a") // false alarm
	FalseNegative = lipgloss.Color("#e76f51") // missed case

	Undefined = lipgloss.Color("#e53935") // "n/a" readouts
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

// DetectTheme picks a theme from the terminal environment, defaulting
// to light mode.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; ANSI background indexes
	// 0-6 and 8 indicate a dark terminal.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("PPVCALC_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeByName resolves a configured theme name, falling back to
// environment detection for anything unrecognized.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components for the screen.
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Parameter rows
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Value        lipgloss.Style
	Editing      lipgloss.Style

	// Result panel
	ResultPanel lipgloss.Style
	ResultValue lipgloss.Style
	NotANumber  lipgloss.Style

	// Count cards
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardCount lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
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

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Width(LabelWidth),

		LabelFocused: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Width(LabelWidth),

		Value: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Editing: lipgloss.NewStyle().
			Foreground(theme.Accent),

		ResultPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2),

		ResultValue: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		NotANumber: lipgloss.NewStyle().
			Foreground(Undefined).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Align(lipgloss.Center),

		CardTitle: lipgloss.NewStyle().
			Bold(true),

		CardCount: lipgloss.NewStyle().
			Foreground(theme.Foreground),
	}
}

// DefaultStyles returns styles with the environment-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		return ""
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
