package swatchbutton

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// SwatchButton is a flat color square. A primary tap and a secondary tap
// (right click or long press) are separate actions.
type SwatchButton struct {
	widget.BaseWidget
	Rect         *canvas.Rectangle
	size         fyne.Size
	onTapped     func()
	onRightClick func()
}

// NewSwatchButton creates a swatch of the given color and size
func NewSwatchButton(c color.Color, size fyne.Size) *SwatchButton {
	b := &SwatchButton{size: size}
	b.ExtendBaseWidget(b)
	b.Rect = canvas.NewRectangle(c)
	b.Rect.StrokeColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	b.Rect.StrokeWidth = 1
	b.Rect.CornerRadius = 2
	b.Rect.SetMinSize(size)
	return b
}

// SetOnTapped sets the function to be called when the swatch is tapped
func (b *SwatchButton) SetOnTapped(f func()) {
	b.onTapped = f
}

// SetOnRightClick sets the function to be called on a secondary tap
func (b *SwatchButton) SetOnRightClick(f func()) {
	b.onRightClick = f
}

// SetColor repaints the swatch
func (b *SwatchButton) SetColor(c color.Color) {
	b.Rect.FillColor = c
	b.Rect.Refresh()
}

// Color returns the painted color
func (b *SwatchButton) Color() color.Color {
	return b.Rect.FillColor
}

func (b *SwatchButton) Tapped(_ *fyne.PointEvent) {
	if b.onTapped != nil {
		b.onTapped()
	}
}

func (b *SwatchButton) TappedSecondary(_ *fyne.PointEvent) {
	if b.onRightClick != nil {
		b.onRightClick()
	}
}

func (b *SwatchButton) MinSize() fyne.Size {
	return b.size
}

func (b *SwatchButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.Rect)
}
