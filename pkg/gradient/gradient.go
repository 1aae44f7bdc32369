// Package gradient rasterises the picker's backgrounds: the hue ramp, the
// saturation/value plane and the swatch strip. Render surfaces may draw these
// themselves; the images here follow the same stops and layering.
package gradient

import (
	"image"
	"image/color"
	"math"

	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/selectors"

	"golang.org/x/image/draw"
)

// HueRamp draws the vertical hue bar, interpolating between
// selectors.HueStops from top to bottom.
func HueRamp(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	for y := 0; y < height; y++ {
		c := rampAt(rowOffset(y, height))
		draw.Draw(img, image.Rect(0, y, width, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}

// Plane draws the saturation/value plane for hue: the fully saturated hue,
// then a white to transparent gradient left to right, then a transparent to
// black gradient top to bottom.
func Plane(hue float64, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	base := selectors.Background(hue)
	bounds := img.Bounds()
	draw.Draw(img, bounds, image.NewUniform(rgbColor(base)), image.Point{}, draw.Src)
	draw.Draw(img, bounds, whiteOverlay(width, height), image.Point{}, draw.Over)
	draw.Draw(img, bounds, blackOverlay(width, height), image.Point{}, draw.Over)
	return img
}

// SwatchStrip draws swatches side by side as cell x cell squares. Invalid
// swatches are skipped.
func SwatchStrip(swatches []string, cell int) *image.NRGBA {
	var cols []color.Color
	for _, hex := range swatches {
		if c, err := colorutils.HexToColor(hex); err == nil {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 || cell <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	src := image.NewNRGBA(image.Rect(0, 0, len(cols), 1))
	for i, c := range cols {
		src.Set(i, 0, c)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, len(cols)*cell, cell))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Sheet lays out the plane for hue at planeWidth x planeHeight, the hue bar
// to its right at the plane's height with a gap of barWidth/2, and the swatch
// strip underneath.
func Sheet(hue float64, swatches []string, planeWidth, planeHeight, barWidth int) *image.NRGBA {
	gap := barWidth / 2
	plane := Plane(hue, planeWidth, planeHeight)
	bar := HueRamp(barWidth, planeHeight)
	strip := SwatchStrip(swatches, barWidth)

	width := planeWidth + gap + barWidth
	if sw := strip.Bounds().Dx(); sw > width {
		width = sw
	}
	height := planeHeight
	if strip.Bounds().Dy() > 0 {
		height += gap + strip.Bounds().Dy()
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, plane.Bounds(), plane, image.Point{}, draw.Src)
	draw.Draw(img, bar.Bounds().Add(image.Pt(planeWidth+gap, 0)), bar, image.Point{}, draw.Src)
	draw.Draw(img, strip.Bounds().Add(image.Pt(0, planeHeight+gap)), strip, image.Point{}, draw.Src)
	return img
}

// rampAt interpolates the hue stops linearly at offset t in [0,1].
func rampAt(t float64) color.NRGBA {
	stops := selectors.HueStops
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset && i < len(stops)-1 {
			continue
		}
		f := (t - a.Offset) / (b.Offset - a.Offset)
		return color.NRGBA{
			R: lerp(a.Color.R, b.Color.R, f),
			G: lerp(a.Color.G, b.Color.G, f),
			B: lerp(a.Color.B, b.Color.B, f),
			A: 0xff,
		}
	}
	return rgbColor(stops[0].Color)
}

func whiteOverlay(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		a := uint8(math.Round(255 * (1 - rowOffset(x, width))))
		draw.Draw(img, image.Rect(x, 0, x+1, height), image.NewUniform(color.NRGBA{255, 255, 255, a}), image.Point{}, draw.Src)
	}
	return img
}

func blackOverlay(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		a := uint8(math.Round(255 * rowOffset(y, height)))
		draw.Draw(img, image.Rect(0, y, width, y+1), image.NewUniform(color.NRGBA{0, 0, 0, a}), image.Point{}, draw.Src)
	}
	return img
}

// rowOffset maps pixel i of n to [0,1] so the first and last pixels hit the
// gradient's end stops.
func rowOffset(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func lerp(a, b int, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

func rgbColor(rgb colorutils.RGB) color.NRGBA {
	return color.NRGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 0xff}
}
