package tui

import (
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(cardWidth)
)

const cardWidth = 24

// noteColors is the palette offered by the colour picker, in display order.
var noteColors = []string{
	models.DefaultColor, "red", "orange", "yellow", "green", "teal",
	"blue", "purple", "pink", "brown", "gray",
}

var colorSwatches = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#f28b82"),
	"orange": lipgloss.Color("#fbbc04"),
	"yellow": lipgloss.Color("#fff475"),
	"green":  lipgloss.Color("#ccff90"),
	"teal":   lipgloss.Color("#a7ffeb"),
	"blue":   lipgloss.Color("#aecbfa"),
	"purple": lipgloss.Color("#d7aefb"),
	"pink":   lipgloss.Color("#fdcfe8"),
	"brown":  lipgloss.Color("#e6c9a8"),
	"gray":   lipgloss.Color("#e8eaed"),
}

// themeStyle returns the base page style for theme.
func themeStyle(theme models.Theme) lipgloss.Style {
	if theme == models.ThemeDark {
		return appStyle.Foreground(lipgloss.Color("#e8eaed")).Background(lipgloss.Color("#202124"))
	}
	return appStyle
}

// noteStyle tints s with the swatch of color. Unknown, default and
// transparent colours leave s unchanged.
func noteStyle(s lipgloss.Style, color string) lipgloss.Style {
	if swatch, ok := colorSwatches[color]; ok {
		return s.BorderForeground(swatch)
	}
	return s
}

func colorIndex(color string) int {
	for i, c := range noteColors {
		if c == color {
			return i
		}
	}
	return 0
}
