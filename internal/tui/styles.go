// Package tui is the terminal browser for admin tables. A Browser
// hosts one tablekit controller and renders it with bubbles/table;
// every data decision (paging, search, selection, staleness) stays in
// the controller
package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette for the browser
type Theme struct {
	Primary lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
}

// DefaultTheme returns the default salesops theme
func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.AdaptiveColor{Light: "#1a73e8", Dark: "#8ab4f8"},
		Muted:   lipgloss.AdaptiveColor{Light: "#80868b", Dark: "#6e7681"},
		Error:   lipgloss.AdaptiveColor{Light: "#d93025", Dark: "#f28b82"},
		Accent:  lipgloss.AdaptiveColor{Light: "#1e8e3e", Dark: "#81c995"},
	}
}

// Styles holds the styled components for the browser
type Styles struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
	Marker  lipgloss.Style
	Spinner lipgloss.Style
}

// NewStyles builds the style set from a theme
func NewStyles(theme Theme) *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Status:  lipgloss.NewStyle().Foreground(theme.Muted),
		Error:   lipgloss.NewStyle().Foreground(theme.Error),
		Help:    lipgloss.NewStyle().Foreground(theme.Muted),
		Marker:  lipgloss.NewStyle().Foreground(theme.Accent),
		Spinner: lipgloss.NewStyle().Foreground(theme.Primary),
	}
}
