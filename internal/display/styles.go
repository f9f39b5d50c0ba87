package display

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the emulated screen
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - screen bezel
	SuccessColor = lipgloss.Color("#43BF6D") // Green - accept screen, check mark
	ErrorColor   = lipgloss.Color("#FF5555") // Red - reject screen
	MutedColor   = lipgloss.Color("#626262") // Gray - indicators, help
	TextColor    = lipgloss.Color("#FFFFFF") // White - content
)

// Indicator glyphs
const (
	ArrowLeft   = "◀"
	ArrowRight  = "▶"
	CheckMark   = "✓"
	CrossMark   = "✗"
	PressedMark = "•"
)

// Layout constants
const (
	MinTerminalWidth = 40
	MaxContentWidth  = 100
)

var (
	// TitleStyle is for the header row
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// ContentStyle is for page lines
	ContentStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// AcceptStyle is for the accept choice label
	AcceptStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// RejectStyle is for the reject choice label
	RejectStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// IndicatorStyle is for arrows on the bottom row
	IndicatorStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// CheckStyle is for the check mark on the last page
	CheckStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)
)

// ScreenStyle returns the bezel around the emulated screen
func ScreenStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 1)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
