// Package selectors maps pointer coordinates on the hue bar and the
// saturation/value plane to color components, and components back to
// indicator positions.
package selectors

import (
	"math"

	"colorpicker/pkg/colorutils"
)

// Point is an indicator position relative to its surface.
type Point struct {
	X, Y int
}

// Stop is one color stop of the hue bar ramp. Offset runs from 0 at the top
// of the bar to 1 at the bottom.
type Stop struct {
	Offset float64
	Hue    float64
	Color  colorutils.RGB
}

// HueStops is the ramp drawn behind the hue bar: red, magenta, blue, cyan,
// green, yellow, red. Stop i sits at the offset DecodeHue maps to its hue.
var HueStops = []Stop{
	{0, 360, colorutils.RGB{R: 255, G: 0, B: 0}},
	{1.0 / 6, 300, colorutils.RGB{R: 255, G: 0, B: 255}},
	{2.0 / 6, 240, colorutils.RGB{R: 0, G: 0, B: 255}},
	{3.0 / 6, 180, colorutils.RGB{R: 0, G: 255, B: 255}},
	{4.0 / 6, 120, colorutils.RGB{R: 0, G: 255, B: 0}},
	{5.0 / 6, 60, colorutils.RGB{R: 255, G: 255, B: 0}},
	{1, 0, colorutils.RGB{R: 255, G: 0, B: 0}},
}

// DecodeHue maps an offset along a bar of the given length to a hue.
// Offsets grow downward while hue grows upward; out of range offsets clamp.
func DecodeHue(offset, length float64) float64 {
	if length <= 0 {
		return 0
	}
	return clamp((length-offset)/length*360, 360)
}

// EncodeHue is the inverse of DecodeHue, rounded to a whole pixel.
func EncodeHue(hue, length float64) int {
	return int(math.Round((360 - hue) / 360 * length))
}

// DecodeSV maps a point inside a width x height plane to saturation and
// value. y grows downward, value grows upward.
func DecodeSV(x, y, width, height float64) (s, v float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	s = clamp(x/width*100, 100)
	v = clamp((height-y)/height*100, 100)
	return s, v
}

// EncodeSV is the inverse of DecodeSV.
func EncodeSV(s, v, width, height float64) (x, y int) {
	x = int(math.Round(s / 100 * width))
	y = int(math.Round((100 - v) / 100 * height))
	return x, y
}

// Linear is the geometry of the vertical hue bar and its indicator.
type Linear struct {
	Width, Height                 int
	SelectorWidth, SelectorHeight int
}

// Decode returns the hue under a pointer offset along the bar.
func (l Linear) Decode(offset float64) float64 {
	return DecodeHue(offset, float64(l.Height))
}

// Encode returns the offset along the bar for hue.
func (l Linear) Encode(hue float64) int {
	return EncodeHue(hue, float64(l.Height))
}

// Indicator returns the top-left corner of the indicator for hue. The
// indicator is centred across the bar and on the hue's offset.
func (l Linear) Indicator(hue float64) Point {
	offsetX := (l.SelectorWidth - l.Width) / 2
	offsetY := l.SelectorHeight / 2
	return Point{X: -offsetX, Y: l.Encode(hue) - offsetY}
}

// Planar is the geometry of the saturation/value plane and its indicator.
type Planar struct {
	Width, Height                 int
	SelectorWidth, SelectorHeight int
}

// Decode returns saturation and value under a pointer position.
func (p Planar) Decode(x, y float64) (s, v float64) {
	return DecodeSV(x, y, float64(p.Width), float64(p.Height))
}

// Encode returns the plane position for s and v.
func (p Planar) Encode(s, v float64) Point {
	x, y := EncodeSV(s, v, float64(p.Width), float64(p.Height))
	return Point{X: x, Y: y}
}

// Indicator returns the top-left corner of the indicator centred on s, v.
func (p Planar) Indicator(s, v float64) Point {
	pt := p.Encode(s, v)
	return Point{X: pt.X - p.SelectorWidth/2, Y: pt.Y - p.SelectorHeight/2}
}

// Background is the plane's base color: the hue at full saturation and value.
// The white and black gradients are layered over it.
func Background(hue float64) colorutils.RGB {
	rgb, ok := colorutils.HSVToRGB(colorutils.HSV{H: hue, S: 100, V: 100})
	if !ok {
		return colorutils.RGB{R: 255}
	}
	return rgb
}

func clamp(v, max float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
