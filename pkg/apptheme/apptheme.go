package apptheme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Picker specific color names.
const (
	ColorNameIndicator    fyne.ThemeColorName = "pickerIndicator"
	ColorNameIndicatorRim fyne.ThemeColorName = "pickerIndicatorRim"
	ColorNameInvalidField fyne.ThemeColorName = "pickerInvalidField"
)

// make a new theme called PickerTheme
type PickerTheme struct{}

var _ fyne.Theme = PickerTheme{}

// the picker colors
func (PickerTheme) Color(c fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	switch c {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	case theme.ColorNameError, ColorNameInvalidField:
		return color.NRGBA{R: 0xf4, G: 0x43, B: 0x36, A: 0xff}
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0xa7, G: 0x2c, B: 0xd4, A: 0x7f}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x95, G: 0xdd, B: 0xe9, A: 0xff}
	case ColorNameIndicator:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x00}
	case ColorNameIndicatorRim:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	default:
		return theme.DefaultTheme().Color(c, theme.VariantDark)
	}
}

func (PickerTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (PickerTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

// the picker sizes, tighter than the default so the fields fit in one row
func (PickerTheme) Size(s fyne.ThemeSizeName) float32 {
	switch s {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 4
	case theme.SizeNameText:
		return 12
	case theme.SizeNameInputBorder:
		return 1
	default:
		return theme.DefaultTheme().Size(s)
	}
}

// ThemeColor looks up a color of t in the dark variant the picker is drawn in.
func ThemeColor(t fyne.Theme, name fyne.ThemeColorName) color.Color {
	if t == nil {
		t = PickerTheme{}
	}
	return t.Color(name, theme.VariantDark)
}
