package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// UI constants
const (
	FontSizeCount float32 = 34.0 // Count readout
	HeadingSize   float32 = 22.0

	ButtonGap     = 10
	SectionGap    = 24
	EntryMinWidth = 220
)

var (
	// AccentColor is used for buttons and the count readout.
	AccentColor = color.NRGBA{R: 0x3d, G: 0x8b, B: 0xfd, A: 0xff}
)

// CustomTheme overrides the accent colour and heading size of the default theme.
type CustomTheme struct {
	fyne.Theme
	accent color.Color
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme(accent color.Color) fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme(), accent: accent}
}

// Color returns the accent colour for primary elements and defers to the default theme otherwise.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return t.accent
	}
	return t.Theme.Color(name, variant)
}

// Size returns a larger heading size.
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameHeadingText {
		return HeadingSize
	}
	return t.Theme.Size(name)
}
