package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DesignerTheme provides a custom theme for the application.
type DesignerTheme struct{}

var _ fyne.Theme = (*DesignerTheme)(nil)

// Drawing colors shared by the canvas. Kept with the theme so the palette
// lives in one place.
var (
	ColorWallFill   = color.NRGBA{R: 0xF2, G: 0xEC, B: 0xE2, A: 0xFF} // plaster
	ColorFrame      = color.NRGBA{R: 0xC8, G: 0xA8, B: 0x78, A: 0xFF} // painted rail/stile
	ColorTrim       = color.NRGBA{R: 0xA8, G: 0x84, B: 0x5C, A: 0xFF} // cap/base moldings
	ColorPanelFill  = color.NRGBA{R: 0xE6, G: 0xDC, B: 0xC8, A: 0xFF} // panel field
	ColorMoldingLn  = color.NRGBA{R: 0x7A, G: 0x5C, B: 0x3A, A: 0xFF} // panel molding outline
	ColorOutline    = color.NRGBA{R: 0x3C, G: 0x32, B: 0x28, A: 0xFF}
	ColorDimension  = color.NRGBA{R: 0x2B, G: 0x57, B: 0x8A, A: 0xFF} // arrows and labels
	ColorBackground = color.NRGBA{R: 0xFB, G: 0xF9, B: 0xF4, A: 0xFF}
)

func (t *DesignerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x7A, G: 0x5C, B: 0x3A, A: 0xFF} // Walnut
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xC8, G: 0xA8, B: 0x78, A: 0x80} // Oak highlight
	case theme.ColorNameScrollBar:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF} // Visible gray scrollbar
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *DesignerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *DesignerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *DesignerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameScrollBar:
		return 16 // Wider scrollbar for easier grabbing
	case theme.SizeNameScrollBarSmall:
		return 12
	default:
		return theme.DefaultTheme().Size(name)
	}
}
