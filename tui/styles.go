// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#8BC34A") // Lime Green
	Accent      = lipgloss.Color("#2196F3") // Blue
	Muted       = lipgloss.Color("#6b7280")
	Destructive = lipgloss.Color("#e53935") // Red
	Border      = lipgloss.Color("#2a3850")
)

// Styles holds the lipgloss styles for both renderers
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Button     lipgloss.Style
	ButtonBusy lipgloss.Style
	Step       lipgloss.Style
	StepNumber lipgloss.Style
	Error      lipgloss.Style
	Result     lipgloss.Style
	Help       lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Label:      lipgloss.NewStyle().Foreground(Muted),
		Value:      lipgloss.NewStyle().Bold(true),
		Button:     lipgloss.NewStyle().Bold(true).Foreground(Primary),
		ButtonBusy: lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Step:       lipgloss.NewStyle().PaddingLeft(2),
		StepNumber: lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Error:      lipgloss.NewStyle().Foreground(Destructive),
		Result: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(Muted),
	}
}
