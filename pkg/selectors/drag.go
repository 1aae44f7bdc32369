package selectors

import (
	"colorpicker/pkg/colorutils"
)

// Surface identifies a selector that receives pointer input.
type Surface int

const (
	SurfaceHue Surface = iota
	SurfacePlane
)

func (s Surface) String() string {
	switch s {
	case SurfaceHue:
		return "hue"
	case SurfacePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// HSVUpdater is the part of the selection state the selectors write through.
type HSVUpdater interface {
	Current() colorutils.Color
	UpdateFromHSV(colorutils.HSV) bool
}

// Tracker implements the drag protocol shared by both selectors.
//
// Move events must be delivered in arrival order with coordinates relative
// to the surface the drag started on, including when the pointer has left
// it. Up must be delivered wherever the pointer is released.
type Tracker struct {
	state HSVUpdater
	hue   Linear
	plane Planar

	hueDragging   bool
	planeDragging bool
}

// NewTracker returns a Tracker writing to state.
func NewTracker(state HSVUpdater, hue Linear, plane Planar) *Tracker {
	return &Tracker{state: state, hue: hue, plane: plane}
}

// SetGeometry replaces both surfaces' geometry.
func (t *Tracker) SetGeometry(hue Linear, plane Planar) {
	t.hue = hue
	t.plane = plane
}

// Hue returns the hue bar geometry.
func (t *Tracker) Hue() Linear {
	return t.hue
}

// Plane returns the plane geometry.
func (t *Tracker) Plane() Planar {
	return t.plane
}

// PointerDown arms surface and applies the down position immediately.
func (t *Tracker) PointerDown(surface Surface, x, y float64) bool {
	switch surface {
	case SurfaceHue:
		t.hueDragging = true
	case SurfacePlane:
		t.planeDragging = true
	default:
		return false
	}
	return t.apply(surface, x, y)
}

// PointerMove applies the position if surface is being dragged.
func (t *Tracker) PointerMove(surface Surface, x, y float64) bool {
	if !t.Dragging(surface) {
		return false
	}
	return t.apply(surface, x, y)
}

// PointerUp ends every drag, whichever surface started it.
func (t *Tracker) PointerUp() {
	t.hueDragging = false
	t.planeDragging = false
}

// Dragging reports whether surface is armed.
func (t *Tracker) Dragging(surface Surface) bool {
	switch surface {
	case SurfaceHue:
		return t.hueDragging
	case SurfacePlane:
		return t.planeDragging
	}
	return false
}

func (t *Tracker) apply(surface Surface, x, y float64) bool {
	hsv := t.state.Current().HSV
	if surface == SurfaceHue {
		hsv.H = t.hue.Decode(y)
	} else {
		hsv.S, hsv.V = t.plane.Decode(x, y)
	}
	return t.state.UpdateFromHSV(hsv)
}
