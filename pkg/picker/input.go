package picker

import (
	"colorpicker/pkg/fieldsync"
	"colorpicker/pkg/selectors"
)

// PointerDown starts a drag on surface at a surface-relative position.
func (p *Picker) PointerDown(surface selectors.Surface, x, y float64) {
	p.tracker.PointerDown(surface, x, y)
}

// PointerMove continues a drag. Coordinates are relative to surface even
// when the pointer has left it.
func (p *Picker) PointerMove(surface selectors.Surface, x, y float64) {
	p.tracker.PointerMove(surface, x, y)
}

// PointerUp ends any drag. Deliver it wherever the pointer is released.
func (p *Picker) PointerUp() {
	p.tracker.PointerUp()
}

// Dragging reports whether surface is being dragged.
func (p *Picker) Dragging(surface selectors.Surface) bool {
	return p.tracker.Dragging(surface)
}

// SetGeometry changes the selector sizes, e.g. after the surface was laid out
// at a different size than configured.
func (p *Picker) SetGeometry(hue selectors.Linear, plane selectors.Planar) {
	p.tracker.SetGeometry(hue, plane)
	p.publish()
}

// FieldChanged applies an edit of field f and returns the text the field must
// show. Edits the state rejects are still published so the invalid flag is
// drawn.
func (p *Picker) FieldChanged(f fieldsync.Field, raw string) string {
	text, applied := p.fields.Change(f, raw)
	if !applied {
		p.publish()
	}
	return text
}

// FieldBlurred rewrites field f from the current color when it loses focus.
func (p *Picker) FieldBlurred(f fieldsync.Field, raw string) string {
	wasInvalid := p.fields.HexInvalid()
	text := p.fields.Blur(f, raw)
	if text != raw || wasInvalid != p.fields.HexInvalid() {
		p.publish()
	}
	return text
}

// AddSwatch saves the current color in the palette. It returns false when
// the palette is full.
func (p *Picker) AddSwatch() bool {
	return p.AddSwatchHex(p.state.Current().Hex)
}

// AddSwatchHex saves hex in the palette.
func (p *Picker) AddSwatchHex(hex string) bool {
	if !p.palette.Add(hex) {
		return false
	}
	p.publish()
	return true
}

// SelectSwatch makes the swatch at index i the current color.
func (p *Picker) SelectSwatch(i int) bool {
	hex, ok := p.palette.At(i)
	if !ok {
		return false
	}
	return p.state.UpdateFromHex(hex)
}

// RemoveSwatch deletes the swatch at index i.
func (p *Picker) RemoveSwatch(i int) bool {
	if !p.palette.Remove(i) {
		return false
	}
	p.publish()
	return true
}

// Swatches returns the saved swatches in order.
func (p *Picker) Swatches() []string {
	return p.palette.Swatches()
}
