// Package palette keeps the picker's saved swatches.
package palette

import (
	"colorpicker/pkg/colorutils"
)

// DefaultCapacity is the number of swatches a palette holds unless configured.
const DefaultCapacity = 18

// Palette is an insertion ordered, capacity bounded list of hex swatches.
// Swatches are values: they never follow later edits of the current color.
type Palette struct {
	capacity int
	swatches []string
}

// New returns a palette holding up to capacity swatches, seeded with initial.
// A capacity below one means DefaultCapacity.
func New(capacity int, initial ...string) *Palette {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	p := &Palette{capacity: capacity}
	for _, hex := range initial {
		p.Add(hex)
	}
	return p
}

// Add appends hex. Invalid hex, or a full palette, drops it and returns false.
func (p *Palette) Add(hex string) bool {
	if len(p.swatches) >= p.capacity {
		return false
	}
	c, ok := colorutils.FromHex(hex)
	if !ok {
		return false
	}
	p.swatches = append(p.swatches, c.Hex)
	return true
}

// Remove deletes the swatch at index i.
func (p *Palette) Remove(i int) bool {
	if i < 0 || i >= len(p.swatches) {
		return false
	}
	p.swatches = append(p.swatches[:i], p.swatches[i+1:]...)
	return true
}

// At returns the swatch at index i.
func (p *Palette) At(i int) (string, bool) {
	if i < 0 || i >= len(p.swatches) {
		return "", false
	}
	return p.swatches[i], true
}

// Len returns the number of swatches.
func (p *Palette) Len() int {
	return len(p.swatches)
}

// Cap returns the capacity.
func (p *Palette) Cap() int {
	return p.capacity
}

// Full reports whether Add would drop its argument.
func (p *Palette) Full() bool {
	return len(p.swatches) >= p.capacity
}

// SetCapacity changes the capacity. Swatches beyond a lowered capacity are
// kept; only further adds are refused.
func (p *Palette) SetCapacity(capacity int) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	p.capacity = capacity
}

// Swatches returns a copy of the swatches in order.
func (p *Palette) Swatches() []string {
	return append([]string(nil), p.swatches...)
}
