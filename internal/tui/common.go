package tui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user leaves a view without confirming.
var ErrCanceled = errors.New("canceled")

// Color palette matching existing fatih/color usage
var (
	// ColorGreen for success indicators
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for tags and metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for warnings and highlights
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorOrange for the list cursor
	ColorOrange = lipgloss.AdaptiveColor{Light: "#D75F00", Dark: "#FF8700"}

	// ColorRed for errors and destructive prompts
	ColorRed = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

	// Teal shades for frames, selection marks and tag pills
	ColorTeal      = lipgloss.AdaptiveColor{Light: "#008787", Dark: "#00AFAF"}
	ColorTealLight = lipgloss.AdaptiveColor{Light: "#005F5F", Dark: "#5FD7D7"}
	ColorTealDim   = lipgloss.AdaptiveColor{Light: "#D7FFFF", Dark: "#005F5F"}
)

// Reusable styles
var (
	// StyleNormal is the base style for regular text
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for selected items
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleSuccess is for confirmations
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleError is for validation and action errors
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleTag is for book tags
	StyleTag = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHelp is for help text and hints
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader is for section headers
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleBorder is for borders and separators
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)
