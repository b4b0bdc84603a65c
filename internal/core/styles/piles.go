package styles

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
)

// PileColor is the background/text pair used for a well-known pile name.
type PileColor struct {
	Background string
	Text       string
}

// pileColors is keyed by lowercased pile name. Piles not listed keep the
// card's default colors.
var pileColors = map[string]PileColor{
	"black":     {Background: "#1a1a1a", Text: "#ffffff"},
	"blue":      {Background: "#3273dc", Text: "#ffffff"},
	"green":     {Background: "#23d160", Text: "#ffffff"},
	"red":       {Background: "#ff3860", Text: "#ffffff"},
	"white":     {Background: "#f5f5f5", Text: "#363636"},
	"artifacts": {Background: "#8b4513", Text: "#ffffff"},
	"gold":      {Background: "#ffd700", Text: "#363636"},
}

// LookupPileColor returns the colors for a pile name, ignoring case.
func LookupPileColor(name string) (PileColor, bool) {
	c, ok := pileColors[strings.ToLower(name)]
	return c, ok
}

// PileRowStyle returns the style for a pile row in a pack card. The zero
// style is returned for names without a known color.
func PileRowStyle(name string) lipgloss.Style {
	c, ok := LookupPileColor(name)
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Background)).
		Foreground(lipgloss.Color(c.Text))
}
