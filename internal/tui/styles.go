package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/plantdeck/internal/urls"
	"github.com/muurk/plantdeck/internal/version"
)

// Application branding
const (
	AppName = "PLANTDECK"
	Tagline = "house plant catalog"
)

// Layout constants
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	// outer border (2) on each axis
	containerPadding = 4
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

var (
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	PromptStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true).
			Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Outlined button: the unselected category
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	// Contained button: the selected category
	SelectedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(PrimaryColor).
				Padding(0, 1)
)

// SelectedMarker prefixes the selected category label
const SelectedMarker = "✓ "

// RenderButton renders one category button. Focus only changes the border.
func RenderButton(label string, selected, focused bool) string {
	style := ButtonStyle
	if selected {
		style = SelectedButtonStyle
		label = SelectedMarker + label
	}
	if focused {
		style = style.BorderForeground(HighlightColor)
	}
	return style.Render(label)
}

// RenderError renders an error message
func RenderError(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

// RenderPrompt renders the idle prompt
func RenderPrompt(text string) string {
	return PromptStyle.Render(text)
}

// BuildHeaderContent creates header content with app name and version
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + version.Version)

	right := SubtleStyle.Render(Tagline + " · " + strings.TrimPrefix(urls.Repository, "https://"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return SubtleStyle.Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-terminal frame:
// header, content, footer, outer border.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-containerPadding).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-containerPadding).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - containerPadding)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// chromeHeight is the number of rows the container uses around the content
func chromeHeight(footerText string) int {
	// outer border (2), header line + rule (2), footer rule (1) + help lines
	return 5 + lipgloss.Height(footerText)
}
