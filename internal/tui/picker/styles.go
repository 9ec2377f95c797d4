package picker

import "github.com/charmbracelet/lipgloss"

// chipColors maps option palette tags to terminal colors.
var chipColors = map[string]lipgloss.AdaptiveColor{
	"blue":   {Light: "#005FD7", Dark: "#5FAFFF"},
	"green":  {Light: "#00AF00", Dark: "#00D700"},
	"purple": {Light: "#8700AF", Dark: "#AF87FF"},
	"red":    {Light: "#D70000", Dark: "#FF5F5F"},
	"orange": {Light: "#D75F00", Dark: "#FF8700"},
	"yellow": {Light: "#AF8700", Dark: "#FFD700"},
	"gray":   {Light: "#767676", Dark: "#A8A8A8"},
	"pink":   {Light: "#D7005F", Dark: "#FF87D7"},
}

var (
	colorDim       = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	colorHighlight = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	stylePlaceholder = lipgloss.NewStyle().Foreground(colorDim)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleCursor      = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	styleCreate      = lipgloss.NewStyle().Foreground(chipColors["green"])
	styleCaretFocus  = lipgloss.NewStyle().Foreground(colorHighlight)
)

// ChipStyle returns the style used to render an option with the given
// palette color.
func ChipStyle(color string) lipgloss.Style {
	c, ok := chipColors[color]
	if !ok {
		c = chipColors["gray"]
	}
	return lipgloss.NewStyle().Foreground(c)
}
