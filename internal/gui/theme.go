package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	// SetupWindowSize fits the setup form without scrolling
	SetupWindowSize = fyne.NewSize(420, 460)

	ColorPrimary    = color.NRGBA{R: 198, G: 124, B: 52, A: 255}  // Copper
	ColorBackground = color.NRGBA{R: 28, G: 24, B: 20, A: 255}    // Dark earth
	ColorSuccess    = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
	ColorError      = color.NRGBA{R: 244, G: 67, B: 54, A: 255}
)

// Theme is the setup window's dark theme
type Theme struct{}

func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorPrimary
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameError:
		return ColorError
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	default:
		return theme.DefaultTheme().Size(name)
	}
}
