// Package pickerwindow draws a picker.Picker in a fyne window and feeds the
// window's pointer, keyboard and tap events back into it.
package pickerwindow

import (
	"image"
	"image/color"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"colorpicker/pkg/apptheme"
	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/components/dragsurface"
	"colorpicker/pkg/components/swatchbutton"
	"colorpicker/pkg/fieldsync"
	"colorpicker/pkg/gradient"
	"colorpicker/pkg/options"
	"colorpicker/pkg/picker"
	"colorpicker/pkg/selectors"
)

const swatchSize = 16

type Window struct {
	picker *picker.Picker
	win    fyne.Window

	hueBar     *dragsurface.DragSurface
	plane      *dragsurface.DragSurface
	planeBase  *canvas.Rectangle
	current    *canvas.Rectangle
	last       *swatchbutton.SwatchButton
	entries    [fieldsync.FieldCount]*fieldEntry
	hexStatus  *canvas.Text
	swatchGrid *fyne.Container
	swatches   []*swatchbutton.SwatchButton
	shown      []string
	addButton  *widget.Button
	accept     *widget.Button
	cancel     *widget.Button

	syncing     bool
	unsubscribe func()
}

// New builds the picker window for p. The window stays hidden until Show.
func New(a fyne.App, p *picker.Picker) *Window {
	w := &Window{picker: p, win: a.NewWindow("Pick a color")}
	opts := p.Options()

	w.hueBar = newHueBar(opts.HueBar)
	w.hueBar.SetOnDown(w.pointer(selectors.SurfaceHue, p.PointerDown))
	w.hueBar.SetOnMove(w.pointer(selectors.SurfaceHue, p.PointerMove))
	w.hueBar.SetOnUp(p.PointerUp)

	w.planeBase = canvas.NewRectangle(color.NRGBA{R: 0xff, A: 0xff})
	w.plane = dragsurface.NewDragSurface(
		geometrySize(opts.Plane),
		fyne.NewSize(float32(opts.Plane.SelectorWidth), float32(opts.Plane.SelectorHeight)),
		w.planeBase,
		canvas.NewHorizontalGradient(color.White, color.Transparent),
		canvas.NewVerticalGradient(color.Transparent, color.Black),
	)
	w.plane.Indicator.CornerRadius = float32(opts.Plane.SelectorWidth) / 2
	w.plane.SetOnDown(w.pointer(selectors.SurfacePlane, p.PointerDown))
	w.plane.SetOnMove(w.pointer(selectors.SurfacePlane, p.PointerMove))
	w.plane.SetOnUp(p.PointerUp)

	w.current = canvas.NewRectangle(color.Black)
	w.current.SetMinSize(fyne.NewSize(48, 24))
	w.last = swatchbutton.NewSwatchButton(color.Black, fyne.NewSize(48, 24))
	w.last.SetOnTapped(func() { p.RestoreLast() })

	fields := container.New(layout.NewFormLayout())
	for _, f := range fieldsync.Fields {
		e := newFieldEntry(f)
		e.OnChanged = w.fieldChanged(e)
		e.onBlur = w.fieldBlurred(e)
		w.entries[f] = e
		fields.Add(widget.NewLabel(label(f)))
		fields.Add(e)
	}
	w.hexStatus = canvas.NewText("", apptheme.ThemeColor(nil, apptheme.ColorNameInvalidField))
	w.hexStatus.TextSize = 10

	w.swatchGrid = container.NewGridWrap(fyne.NewSize(swatchSize, swatchSize))
	w.addButton = widget.NewButton("+", func() { p.AddSwatch() })
	w.accept = widget.NewButton("OK", p.Accept)
	w.accept.Importance = widget.HighImportance
	w.cancel = widget.NewButton("Cancel", p.Cancel)

	preview := container.NewHBox(w.current, w.last)
	side := container.NewVBox(preview, fields, w.hexStatus)
	top := container.NewHBox(w.plane, w.hueBar, side)
	bottom := container.NewBorder(nil, nil, nil, w.addButton, w.swatchGrid)
	buttons := container.NewHBox(layout.NewSpacer(), w.cancel, w.accept)

	w.win.SetContent(container.NewPadded(container.NewVBox(top, bottom, buttons)))
	w.win.SetFixedSize(true)
	w.win.SetCloseIntercept(p.Cancel)
	w.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			p.Cancel()
		case fyne.KeyReturn, fyne.KeyEnter:
			p.Accept()
		}
	})

	w.unsubscribe = p.Subscribe(w.Render)
	w.Render(p.Snapshot())
	return w
}

// Show opens the picker with the color initial produces and shows the window.
func (w *Window) Show(initial options.ColorFunc, cb picker.Callbacks) {
	w.picker.Open(initial, cb)
	w.win.Show()
}

// Window returns the underlying fyne window.
func (w *Window) Window() fyne.Window {
	return w.win
}

// Close detaches the window from the picker and closes it.
func (w *Window) Close() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
	w.win.SetCloseIntercept(nil)
	w.win.Close()
}

// Render draws a snapshot. It is registered with the picker and runs after
// every change.
func (w *Window) Render(s picker.Snapshot) {
	w.hueBar.MoveIndicator(s.HueIndicator.X, s.HueIndicator.Y)
	w.plane.MoveIndicator(s.PlaneIndicator.X, s.PlaneIndicator.Y)
	w.planeBase.FillColor = color.NRGBA{
		R: uint8(s.PlaneBackground.R),
		G: uint8(s.PlaneBackground.G),
		B: uint8(s.PlaneBackground.B),
		A: 0xff,
	}
	w.planeBase.Refresh()

	w.current.FillColor = s.Current.NRGBA()
	w.current.Refresh()
	w.last.SetColor(s.Last.NRGBA())

	w.syncing = true
	for _, f := range fieldsync.Fields {
		if w.entries[f].Text != s.Fields[f] {
			w.entries[f].SetText(s.Fields[f])
		}
	}
	w.syncing = false

	if s.HexInvalid {
		w.hexStatus.Text = "invalid hex"
	} else {
		w.hexStatus.Text = ""
	}
	w.hexStatus.Refresh()

	w.renderSwatches(s.Swatches)
	if s.PaletteFull {
		w.addButton.Disable()
	} else {
		w.addButton.Enable()
	}

	if !s.Open {
		w.win.Hide()
	}
}

func (w *Window) renderSwatches(hexes []string) {
	if slices.Equal(hexes, w.shown) {
		return
	}
	w.shown = slices.Clone(hexes)
	w.swatchGrid.RemoveAll()
	w.swatches = w.swatches[:0]
	for i, hex := range hexes {
		c, err := colorutils.HexToColor(hex)
		if err != nil {
			continue
		}
		idx := i
		b := swatchbutton.NewSwatchButton(c, fyne.NewSize(swatchSize, swatchSize))
		b.SetOnTapped(func() { w.picker.SelectSwatch(idx) })
		b.SetOnRightClick(func() { w.picker.RemoveSwatch(idx) })
		w.swatches = append(w.swatches, b)
		w.swatchGrid.Add(b)
	}
	w.swatchGrid.Refresh()
}

func (w *Window) fieldChanged(e *fieldEntry) func(string) {
	return func(text string) {
		if w.syncing {
			return
		}
		shown := w.picker.FieldChanged(e.field, text)
		if shown != e.Text {
			w.syncing = true
			e.SetText(shown)
			w.syncing = false
		}
	}
}

func (w *Window) fieldBlurred(e *fieldEntry) func() {
	return func() {
		shown := w.picker.FieldBlurred(e.field, e.Text)
		if shown != e.Text {
			w.syncing = true
			e.SetText(shown)
			w.syncing = false
		}
	}
}

func (w *Window) pointer(surface selectors.Surface, fn func(selectors.Surface, float64, float64)) func(x, y float32) {
	return func(x, y float32) {
		fn(surface, float64(x), float64(y))
	}
}

func newHueBar(g options.Geometry) *dragsurface.DragSurface {
	ramp := canvas.NewRaster(func(width, height int) image.Image {
		return gradient.HueRamp(width, height)
	})
	return dragsurface.NewDragSurface(
		geometrySize(g),
		fyne.NewSize(float32(g.SelectorWidth), float32(g.SelectorHeight)),
		ramp,
	)
}

func geometrySize(g options.Geometry) fyne.Size {
	return fyne.NewSize(float32(g.Width), float32(g.Height))
}
