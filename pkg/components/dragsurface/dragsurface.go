package dragsurface

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// DragSurface is a fixed size area with layered backgrounds and a movable
// indicator. It reports pointer down, drag and release with positions
// relative to itself, also while the pointer is outside it.
type DragSurface struct {
	widget.BaseWidget
	Indicator *canvas.Rectangle

	size    fyne.Size
	content *fyne.Container

	onDown func(x, y float32)
	onMove func(x, y float32)
	onUp   func()
}

// NewDragSurface stacks layers (bottom first) at size and puts an indicator
// of indicatorSize on top.
func NewDragSurface(size, indicatorSize fyne.Size, layers ...fyne.CanvasObject) *DragSurface {
	s := &DragSurface{size: size}
	s.ExtendBaseWidget(s)

	s.Indicator = canvas.NewRectangle(color.Transparent)
	s.Indicator.StrokeColor = color.White
	s.Indicator.StrokeWidth = 1
	s.Indicator.Resize(indicatorSize)

	for _, l := range layers {
		l.Resize(size)
		l.Move(fyne.NewPos(0, 0))
	}
	s.content = container.NewWithoutLayout(append(layers, s.Indicator)...)
	return s
}

// SetOnDown sets the function called on pointer down
func (s *DragSurface) SetOnDown(f func(x, y float32)) {
	s.onDown = f
}

// SetOnMove sets the function called for every drag step
func (s *DragSurface) SetOnMove(f func(x, y float32)) {
	s.onMove = f
}

// SetOnUp sets the function called when the pointer is released
func (s *DragSurface) SetOnUp(f func()) {
	s.onUp = f
}

// MoveIndicator places the indicator's top-left corner.
func (s *DragSurface) MoveIndicator(x, y int) {
	pos := fyne.NewPos(float32(x), float32(y))
	if s.Indicator.Position() == pos {
		return
	}
	s.Indicator.Move(pos)
	canvas.Refresh(s.Indicator)
}

func (s *DragSurface) MouseDown(me *desktop.MouseEvent) {
	if me.Button != desktop.MouseButtonPrimary && me.Button != 0 {
		return
	}
	if s.onDown != nil {
		s.onDown(me.Position.X, me.Position.Y)
	}
}

func (s *DragSurface) MouseUp(_ *desktop.MouseEvent) {
	if s.onUp != nil {
		s.onUp()
	}
}

func (s *DragSurface) Dragged(ev *fyne.DragEvent) {
	if s.onMove != nil {
		s.onMove(ev.Position.X, ev.Position.Y)
	}
}

func (s *DragSurface) DragEnd() {
	if s.onUp != nil {
		s.onUp()
	}
}

func (s *DragSurface) MinSize() fyne.Size {
	return s.size
}

func (s *DragSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}
