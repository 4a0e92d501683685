package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Label            *lipgloss.Style
	Field            *lipgloss.Style
	FieldFocused     *lipgloss.Style
	FieldDisabled    *lipgloss.Style
	FieldPlaceholder *lipgloss.Style
	Menu             *lipgloss.Style
	Item             *lipgloss.Style
	ItemIndicator    *lipgloss.Style
	FocusedIndicator *lipgloss.Style
	FocusedItem      *lipgloss.Style
	HoveredItem      *lipgloss.Style
	DisabledItem     *lipgloss.Style
	SelectedMark     *lipgloss.Style
	Button           *lipgloss.Style
	ButtonFocused    *lipgloss.Style
	Error            *lipgloss.Style
	Info             *lipgloss.Style
	Footer           *lipgloss.Style
}

var defaultStyles = Styles{
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Field: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
	),
	FieldFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).
			Padding(0, 1),
	),
	FieldDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
			Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("236")).
			Padding(0, 1),
	),
	FieldPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Menu: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	FocusedIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	FocusedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	HoveredItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
	),
	SelectedMark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 2),
	),
	ButtonFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 2),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
