package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header      *lipgloss.Style
	Footer      *lipgloss.Style
	Terrain     *lipgloss.Style
	Structure   *lipgloss.Style
	Impassable  *lipgloss.Style
	CursorTile  *lipgloss.Style
	MenuItem    *lipgloss.Style
	MenuCurrent *lipgloss.Style
	Utterance   *lipgloss.Style
	Cue         *lipgloss.Style
	Error       *lipgloss.Style
	Info        *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Terrain: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Structure: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
	),
	Impassable: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	CursorTile: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	MenuCurrent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Utterance: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Cue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
