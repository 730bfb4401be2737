package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// TrackerTheme is a compact theme. Items that need attention are drawn with
// ColorNameError, so that colour is kept a strong red in both variants.
type TrackerTheme struct{}

var _ fyne.Theme = (*TrackerTheme)(nil)

// AlertColor is the text colour of expired and urgent rows
var AlertColor = color.RGBA{R: 211, G: 47, B: 47, A: 255}

var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:        3,
	theme.SizeNameInnerPadding:   6,
	theme.SizeNameLineSpacing:    2,
	theme.SizeNameScrollBar:      12,
	theme.SizeNameText:           13,
	theme.SizeNameHeadingText:    16,
	theme.SizeNameSubHeadingText: 13,
	theme.SizeNameCaptionText:    10,
	theme.SizeNameInputRadius:    3,
}

// NewTrackerTheme creates the application theme
func NewTrackerTheme() fyne.Theme {
	return &TrackerTheme{}
}

// Color returns theme colors
func (t *TrackerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return AlertColor
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 56, G: 142, B: 60, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 24, B: 24, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 247, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *TrackerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TrackerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *TrackerTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return theme.DefaultTheme().Size(name)
}
