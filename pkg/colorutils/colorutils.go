// Package colorutils holds the picker's color model: one color kept in three
// synchronized forms (RGB, HSV and Hex) plus the validators and converters
// between them.
//
// Converters never panic and never return errors. Input that fails the
// matching validator yields ok == false and a zero value that callers must
// not use.
package colorutils

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGB is an additive color with integer channels in [0,255].
type RGB struct {
	R, G, B int
}

// HSV is hue in degrees [0,360] and saturation/value in percent [0,100].
// Components keep sub-integer precision so dragging stays smooth.
type HSV struct {
	H, S, V float64
}

// Rounded returns the HSV with every component rounded for display.
func (hsv HSV) Rounded() HSV {
	return HSV{math.Round(hsv.H), math.Round(hsv.S), math.Round(hsv.V)}
}

// Color is one point in color space in all three serializations.
type Color struct {
	RGB RGB
	HSV HSV
	Hex string
}

// Black is the default color of a new picker.
var Black = Color{Hex: "000"}

// IsRGB reports whether every channel lies in [0,255].
func IsRGB(rgb RGB) bool {
	return inRange(rgb.R, 255) && inRange(rgb.G, 255) && inRange(rgb.B, 255)
}

// IsHSV reports whether H is in [0,360] and S, V are in [0,100].
func IsHSV(hsv HSV) bool {
	return inRangeF(hsv.H, 360) && inRangeF(hsv.S, 100) && inRangeF(hsv.V, 100)
}

// IsHex reports whether s is a 3 or 6 digit hex string. Case is ignored and
// one leading '#' is allowed.
func IsHex(s string) bool {
	hex := NormalizeHex(s)
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return false
		}
	}
	return true
}

// NormalizeHex strips a leading '#' and lowercases s. It does not validate.
func NormalizeHex(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "#"))
}

// RGBToHSV converts rgb to HSV at full precision.
//
// The sector is picked by comparing the max channel against the min first,
// then r, g and b. Grays therefore always get hue 0.
func RGBToHSV(rgb RGB) (HSV, bool) {
	if !IsRGB(rgb) {
		return HSV{}, false
	}
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255
	v := math.Max(math.Max(r, g), b)
	m := math.Min(math.Min(r, g), b)

	var h float64
	switch v {
	case m:
		h = 0
	case r:
		h = 60 * (0 + (g-b)/(v-m))
	case g:
		h = 60 * (2 + (b-r)/(v-m))
	case b:
		h = 60 * (4 + (r-g)/(v-m))
	}
	if h < 0 {
		h += 360
	}

	s := 0.0
	if v != 0 {
		s = (v - m) / v
	}
	return HSV{H: h, S: s * 100, V: v * 100}, true
}

// HSVToRGB converts hsv to RGB using the six sector decomposition. A hue of
// 360 lands in the same sector as 0.
func HSVToRGB(hsv HSV) (RGB, bool) {
	if !IsHSV(hsv) {
		return RGB{}, false
	}
	h := hsv.H / 60
	s := hsv.S / 100
	v := hsv.V / 100
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	default:
		r, g, b = v, t, p
	}
	return RGB{channel(r), channel(g), channel(b)}, true
}

// HexToRGB parses a 3 or 6 digit hex string. Shorthand digits are doubled.
func HexToRGB(s string) (RGB, bool) {
	if !IsHex(s) {
		return RGB{}, false
	}
	hex := NormalizeHex(s)
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	var ch [3]int
	for i := range ch {
		n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = int(n)
	}
	return RGB{ch[0], ch[1], ch[2]}, true
}

// RGBToHex formats rgb as lowercase hex, collapsed to 3 digits when every
// channel is a doubled digit ("aabbcc" becomes "abc").
func RGBToHex(rgb RGB) (string, bool) {
	if !IsRGB(rgb) {
		return "", false
	}
	hex := fmt.Sprintf("%02x%02x%02x", rgb.R, rgb.G, rgb.B)
	if hex[0] == hex[1] && hex[2] == hex[3] && hex[4] == hex[5] {
		hex = string([]byte{hex[0], hex[2], hex[4]})
	}
	return hex, true
}

// ExpandHex returns the 6 digit form of a valid hex string.
func ExpandHex(s string) (string, bool) {
	rgb, ok := HexToRGB(s)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02x%02x%02x", rgb.R, rgb.G, rgb.B), true
}

// FromRGB builds a Color from rgb.
func FromRGB(rgb RGB) (Color, bool) {
	hsv, ok := RGBToHSV(rgb)
	if !ok {
		return Color{}, false
	}
	hex, _ := RGBToHex(rgb)
	return Color{RGB: rgb, HSV: hsv, Hex: hex}, true
}

// FromHSV builds a Color from hsv. The supplied HSV is kept as given, so a
// hue of 360 stays 360 and the hue indicator does not jump to the bottom.
func FromHSV(hsv HSV) (Color, bool) {
	rgb, ok := HSVToRGB(hsv)
	if !ok {
		return Color{}, false
	}
	hex, _ := RGBToHex(rgb)
	return Color{RGB: rgb, HSV: hsv, Hex: hex}, true
}

// FromHex builds a Color from a hex string. The stored hex is canonical.
func FromHex(s string) (Color, bool) {
	rgb, ok := HexToRGB(s)
	if !ok {
		return Color{}, false
	}
	return FromRGB(rgb)
}

// Normalize rebuilds c so its three forms agree. A color whose HSV converts
// to its RGB keeps that HSV; a color carrying only one form is built from
// it; anything else is rebuilt from its RGB. ok is false when nothing usable
// is left.
func Normalize(c Color) (Color, bool) {
	if c.RGB == (RGB{}) && c.HSV == (HSV{}) && c.Hex != "" {
		return FromHex(c.Hex)
	}
	if fromHSV, ok := FromHSV(c.HSV); ok && fromHSV.RGB == c.RGB {
		return fromHSV, true
	}
	if c.RGB == (RGB{}) {
		return FromHSV(c.HSV)
	}
	return FromRGB(c.RGB)
}

// Parse reads a color literal: "#abc", "aabbcc", "rgb(1,2,3)", "hsv(1,2,3)"
// or a bare "1,2,3" triple taken as RGB.
func Parse(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case IsHex(lower):
		return FromHex(lower)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		n, ok := parseTriple(lower[4 : len(lower)-1])
		if !ok {
			return Color{}, false
		}
		return fromRGBFloats(n)
	case strings.HasPrefix(lower, "hsv(") && strings.HasSuffix(lower, ")"):
		n, ok := parseTriple(lower[4 : len(lower)-1])
		if !ok {
			return Color{}, false
		}
		return FromHSV(HSV{n[0], n[1], n[2]})
	default:
		n, ok := parseTriple(lower)
		if !ok {
			return Color{}, false
		}
		return fromRGBFloats(n)
	}
}

// Equal reports whether two colors denote the same RGB point.
func (c Color) Equal(o Color) bool {
	return c.RGB == o.RGB
}

// String returns the color as "#" followed by its canonical hex.
func (c Color) String() string {
	return "#" + c.Hex
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c.RGB.R), G: uint8(c.RGB.G), B: uint8(c.RGB.B), A: 0xff}
}

// HexToColor converts a hex string to an opaque color.Color.
func HexToColor(hex string) (color.Color, error) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return nil, fmt.Errorf("invalid hex color %q", hex)
	}
	return color.NRGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 0xff}, nil
}

func fromRGBFloats(n [3]float64) (Color, bool) {
	for _, v := range n {
		if v != math.Trunc(v) {
			return Color{}, false
		}
	}
	return FromRGB(RGB{int(n[0]), int(n[1]), int(n[2])})
}

func parseTriple(s string) ([3]float64, bool) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return out, false
		}
		out[i] = v
	}
	return out, true
}

func channel(x float64) int {
	return int(math.Round(x * 255))
}

func inRange(v, max int) bool {
	return v >= 0 && v <= max
}

func inRangeF(v, max float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= max
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}
