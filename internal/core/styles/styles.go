// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	TextPrimaryBoldStyle lipgloss.Style
	TextForegroundStyle  lipgloss.Style
	TextMutedStyle       lipgloss.Style
	TextSuccessStyle     lipgloss.Style
	TextWarningStyle     lipgloss.Style
	TextErrorStyle       lipgloss.Style

	// Pack card styles.
	CardStyle              lipgloss.Style
	CardSelectedStyle      lipgloss.Style
	CardHeaderStyle        lipgloss.Style
	CardHeaderCheckedStyle lipgloss.Style
	CardSlotStyle          lipgloss.Style
	CardDoneButtonStyle    lipgloss.Style
	CardDeleteStyle        lipgloss.Style
	CardTableBorderStyle   lipgloss.Style

	// Review screen chrome.
	ZoomTagStyle  lipgloss.Style
	StatusStyle   lipgloss.Style
	HelpStyle     lipgloss.Style
	EmptyStyle    lipgloss.Style
	TitleBarStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface)
	CardSelectedStyle = CardStyle.
		BorderForeground(ColorPrimary)
	CardHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	CardHeaderCheckedStyle = lipgloss.NewStyle().
		Background(ColorSuccess).
		Foreground(ColorBackground).
		Bold(true)
	CardSlotStyle = lipgloss.NewStyle().Bold(true)
	CardDoneButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorForeground)
	CardDeleteStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorMuted)
	CardTableBorderStyle = lipgloss.NewStyle().Foreground(ColorSurface)

	ZoomTagStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSecondary).
		Foreground(ColorBackground)
	StatusStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	EmptyStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	TitleBarStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
