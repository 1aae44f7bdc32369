package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/options"
	"colorpicker/pkg/picker"
	"colorpicker/pkg/pickerwindow"
)

type mainWindow struct {
	fyne.Window
	picker  *picker.Picker
	pickerW *pickerwindow.Window
	preview *canvas.Rectangle
	label   *widget.Label
	chosen  colorutils.Color
	pick    *widget.Button
}

func newMainWindow(a fyne.App, opts *options.Options, cfg config, appLogger *log.Logger) *mainWindow {
	m := &mainWindow{
		Window: a.NewWindow("Color Picker"),
		picker: picker.New(opts, appLogger),
		chosen: opts.Initial(),
	}
	m.pickerW = pickerwindow.New(a, m.picker)

	m.preview = canvas.NewRectangle(m.chosen.NRGBA())
	m.preview.SetMinSize(fyne.NewSize(128, 64))
	m.preview.CornerRadius = 5
	m.label = widget.NewLabel(m.chosen.String())

	m.pick = widget.NewButton("Pick color", func() {
		m.pickerW.Show(options.Static(m.chosen), picker.Callbacks{
			OnChange: m.show,
			OnCancel: func() { m.show(m.chosen) },
			OnAccept: func(c colorutils.Color) {
				m.chosen = c
				m.show(c)
				if cfg.export == "" {
					return
				}
				if err := exportColor(cfg.export, c, m.picker.Swatches(), opts, cfg.exportPassword); err != nil {
					appLogger.Println(err)
					dialog.ShowError(err, m.Window)
					return
				}
				appLogger.Println("exported", c, "to", cfg.export)
			},
		})
	})

	m.SetContent(container.NewPadded(container.NewVBox(m.preview, m.label, m.pick)))
	m.SetMaster()
	m.Resize(fyne.NewSize(240, 160))
	return m
}

func (m *mainWindow) show(c colorutils.Color) {
	m.preview.FillColor = c.NRGBA()
	m.preview.Refresh()
	m.label.SetText(c.String())
}
