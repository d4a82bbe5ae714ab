package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	// Input Box Style for the chat prompt
	StyleInputBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	// Components
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)
)

// Theme holds the dialog styles for one color scheme.
type Theme struct {
	Header  lipgloss.Style
	User    lipgloss.Style // bubble for what the user typed
	Bot     lipgloss.Style // bubble for feedback
	Error   lipgloss.Style // bubble for error feedback
	Input   lipgloss.Style
	Subtle  lipgloss.Style
	Speaker lipgloss.Style
}

func bubble(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}

// NewTheme returns the theme for name ("color" or "plain"). Unknown names
// fall back to color.
func NewTheme(name string) Theme {
	if name == "plain" {
		plain := lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).Padding(0, 1)
		return Theme{
			Header:  lipgloss.NewStyle().Bold(true),
			User:    plain,
			Bot:     plain,
			Error:   plain,
			Input:   plain,
			Subtle:  lipgloss.NewStyle(),
			Speaker: lipgloss.NewStyle().Bold(true),
		}
	}
	return Theme{
		Header:  StyleHeader,
		User:    bubble(ColorSuccess),
		Bot:     bubble(ColorPrimary),
		Error:   bubble(ColorError).Foreground(ColorError),
		Input:   StyleInputBox,
		Subtle:  StyleSubtle,
		Speaker: StylePrimary.Bold(true),
	}
}

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
