// Package picker is one color picker instance: it owns the selection state,
// both selectors, the text fields and the swatch palette, runs the open /
// accept / cancel lifecycle and fans every change out to the renderers as a
// single Snapshot.
//
// A Picker is driven from one goroutine, the one delivering input events.
package picker

import (
	"log"

	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/fieldsync"
	"colorpicker/pkg/logger"
	"colorpicker/pkg/options"
	"colorpicker/pkg/palette"
	"colorpicker/pkg/selection"
	"colorpicker/pkg/selectors"
)

// Callbacks are the host's hooks for one open session. Nil hooks are skipped.
type Callbacks struct {
	OnAccept func(colorutils.Color)
	OnCancel func()
	OnChange func(colorutils.Color)
}

// Snapshot is everything a render surface needs to draw the picker.
type Snapshot struct {
	Open            bool
	Current         colorutils.Color
	Last            colorutils.Color
	HueIndicator    selectors.Point
	PlaneIndicator  selectors.Point
	PlaneBackground colorutils.RGB
	Fields          [fieldsync.FieldCount]string
	HexInvalid      bool
	Swatches        []string
	PaletteFull     bool
}

// Renderer draws a snapshot.
type Renderer func(Snapshot)

type Picker struct {
	opts    *options.Options
	logger  *log.Logger
	state   *selection.State
	tracker *selectors.Tracker
	fields  *fieldsync.Sync
	palette *palette.Palette

	open      bool
	callbacks Callbacks

	renderers []renderer
	nextID    int
	stopState func()
}

type renderer struct {
	id int
	fn Renderer
}

// New creates a closed picker. A nil opts uses the defaults and a nil logger
// discards output.
func New(opts *options.Options, appLogger *log.Logger) *Picker {
	if opts == nil {
		opts = options.Options{}.InitDefault()
	}
	opts.Normalize()

	state := selection.New(opts.Initial())
	p := &Picker{
		opts:    opts,
		logger:  logger.OrDiscard(appLogger),
		state:   state,
		tracker: selectors.NewTracker(state, opts.HueSelector(), opts.PlaneSelector()),
		palette: palette.New(opts.MaxFields, opts.Swatches...),
	}
	p.fields = fieldsync.New(state)
	p.stopState = state.Subscribe(p.stateChanged)
	return p
}

// Dispose detaches the picker from its state. The picker must not be used
// afterwards.
func (p *Picker) Dispose() {
	p.fields.Close()
	if p.stopState != nil {
		p.stopState()
		p.stopState = nil
	}
	p.renderers = nil
}

// Subscribe registers a renderer and returns a function that removes it.
func (p *Picker) Subscribe(fn Renderer) func() {
	p.nextID++
	id := p.nextID
	p.renderers = append(p.renderers, renderer{id: id, fn: fn})
	return func() {
		for i, r := range p.renderers {
			if r.id == id {
				p.renderers = append(p.renderers[:i:i], p.renderers[i+1:]...)
				return
			}
		}
	}
}

// Open shows the picker with the color produced by initial, or the
// configured color when initial is nil. Current and last both become it.
func (p *Picker) Open(initial options.ColorFunc, cb Callbacks) {
	c := p.opts.Initial()
	if initial != nil {
		c = initial()
	}
	p.callbacks = cb
	p.open = true
	if !p.state.Reset(c) {
		p.logger.Printf("picker rejected initial color %+v, using black", c)
	}
	p.logger.Println("picker open:", p.state.Current())
}

// Accept commits the current color, reports it and closes. It does nothing
// when the picker is closed.
func (p *Picker) Accept() {
	if !p.open {
		return
	}
	p.tracker.PointerUp()
	p.open = false
	p.state.Commit()
	c := p.state.Last()
	p.logger.Println("picker accept:", c)
	if p.callbacks.OnAccept != nil {
		p.callbacks.OnAccept(c)
	}
}

// Cancel restores the last color, reports the cancel and closes. It does
// nothing when the picker is closed.
func (p *Picker) Cancel() {
	if !p.open {
		return
	}
	p.tracker.PointerUp()
	p.open = false
	p.state.RollbackToLast()
	p.logger.Println("picker cancel:", p.state.Current())
	if p.callbacks.OnCancel != nil {
		p.callbacks.OnCancel()
	}
}

// RestoreLast makes the last color current again without closing.
func (p *Picker) RestoreLast() bool {
	return p.state.UpdateFromRGB(p.state.Last().RGB)
}

// IsOpen reports whether the picker is shown.
func (p *Picker) IsOpen() bool {
	return p.open
}

// Current returns the color being edited.
func (p *Picker) Current() colorutils.Color {
	return p.state.Current()
}

// Last returns the last committed color.
func (p *Picker) Last() colorutils.Color {
	return p.state.Last()
}

// SetColor applies a color literal as an edit.
func (p *Picker) SetColor(literal string) bool {
	c, ok := colorutils.Parse(literal)
	if !ok {
		p.logger.Println("picker rejected color:", literal)
		return false
	}
	return p.state.UpdateFromRGB(c.RGB)
}

// Options returns the picker's configuration.
func (p *Picker) Options() *options.Options {
	return p.opts
}

// Snapshot returns the picker as it should currently be drawn.
func (p *Picker) Snapshot() Snapshot {
	cur := p.state.Current()
	hue := p.tracker.Hue()
	plane := p.tracker.Plane()
	return Snapshot{
		Open:            p.open,
		Current:         cur,
		Last:            p.state.Last(),
		HueIndicator:    hue.Indicator(cur.HSV.H),
		PlaneIndicator:  plane.Indicator(cur.HSV.S, cur.HSV.V),
		PlaneBackground: selectors.Background(cur.HSV.H),
		Fields:          p.fields.Texts(),
		HexInvalid:      p.fields.HexInvalid(),
		Swatches:        p.palette.Swatches(),
		PaletteFull:     p.palette.Full(),
	}
}

func (p *Picker) stateChanged(ch selection.Change) {
	p.publish()
	switch ch.Source {
	case selection.SourceRGB, selection.SourceHSV, selection.SourceHex, selection.SourceRollback:
		if p.callbacks.OnChange != nil {
			p.callbacks.OnChange(ch.Current)
		}
	}
}

func (p *Picker) publish() {
	if len(p.renderers) == 0 {
		return
	}
	snap := p.Snapshot()
	renderers := append([]renderer(nil), p.renderers...)
	for _, r := range renderers {
		r.fn(snap)
	}
}
