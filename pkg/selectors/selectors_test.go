package selectors

import (
	"testing"

	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHue(t *testing.T) {
	assert.Equal(t, 360.0, DecodeHue(0, 256))
	assert.Equal(t, 0.0, DecodeHue(256, 256))
	assert.Equal(t, 180.0, DecodeHue(128, 256))
	assert.Equal(t, 360.0, DecodeHue(-40, 256), "above the bar clamps")
	assert.Equal(t, 0.0, DecodeHue(900, 256), "below the bar clamps")
	assert.Equal(t, 0.0, DecodeHue(10, 0))
}

func TestEncodeHue(t *testing.T) {
	assert.Equal(t, 0, EncodeHue(360, 256))
	assert.Equal(t, 256, EncodeHue(0, 256))
	assert.Equal(t, 128, EncodeHue(180, 256))
	for off := 0; off <= 256; off++ {
		assert.Equal(t, off, EncodeHue(DecodeHue(float64(off), 256), 256))
	}
}

func TestDecodeEncodeSV(t *testing.T) {
	s, v := DecodeSV(0, 0, 200, 100)
	assert.Equal(t, 0.0, s)
	assert.Equal(t, 100.0, v)

	s, v = DecodeSV(200, 100, 200, 100)
	assert.Equal(t, 100.0, s)
	assert.Equal(t, 0.0, v)

	s, v = DecodeSV(-5, 500, 200, 100)
	assert.Equal(t, 0.0, s)
	assert.Equal(t, 0.0, v)

	s, v = DecodeSV(50, 25, 200, 100)
	assert.Equal(t, 25.0, s)
	assert.Equal(t, 75.0, v)

	x, y := EncodeSV(25, 75, 200, 100)
	assert.Equal(t, 50, x)
	assert.Equal(t, 25, y)
}

func TestIndicators(t *testing.T) {
	bar := Linear{Width: 20, Height: 256, SelectorWidth: 30, SelectorHeight: 6}
	assert.Equal(t, Point{X: -5, Y: -3}, bar.Indicator(360))
	assert.Equal(t, Point{X: -5, Y: 253}, bar.Indicator(0))

	plane := Planar{Width: 256, Height: 256, SelectorWidth: 10, SelectorHeight: 10}
	assert.Equal(t, Point{X: -5, Y: -5}, plane.Indicator(0, 100))
	assert.Equal(t, Point{X: 251, Y: 251}, plane.Indicator(100, 0))
	assert.Equal(t, Point{X: 128, Y: 64}, plane.Encode(50, 75))
}

func TestHueStopsMatchDecode(t *testing.T) {
	require.Len(t, HueStops, 7)
	const length = 360.0
	for i, stop := range HueStops {
		assert.InDelta(t, stop.Hue, DecodeHue(stop.Offset*length, length), 1e-9, "stop %d", i)
		rgb, ok := colorutils.HSVToRGB(colorutils.HSV{H: stop.Hue, S: 100, V: 100})
		require.True(t, ok)
		assert.Equal(t, stop.Color, rgb, "stop %d", i)
		if i > 0 {
			assert.Greater(t, stop.Offset, HueStops[i-1].Offset)
		}
	}
}

func TestBackground(t *testing.T) {
	assert.Equal(t, colorutils.RGB{R: 0, G: 255, B: 0}, Background(120))
	assert.Equal(t, colorutils.RGB{R: 255, G: 0, B: 0}, Background(360))
}

func newTracker(t *testing.T, hsv colorutils.HSV) (*Tracker, *selection.State) {
	t.Helper()
	c, ok := colorutils.FromHSV(hsv)
	require.True(t, ok)
	state := selection.New(c)
	tr := NewTracker(state,
		Linear{Width: 20, Height: 256, SelectorWidth: 30, SelectorHeight: 6},
		Planar{Width: 200, Height: 100, SelectorWidth: 10, SelectorHeight: 10})
	return tr, state
}

func TestHueDragPreservesSV(t *testing.T) {
	tr, state := newTracker(t, colorutils.HSV{H: 10, S: 40, V: 60})

	assert.True(t, tr.PointerDown(SurfaceHue, 7, 128))
	assert.Equal(t, colorutils.HSV{H: 180, S: 40, V: 60}, state.Current().HSV)

	assert.True(t, tr.PointerMove(SurfaceHue, 7, 256))
	assert.Equal(t, 0.0, state.Current().HSV.H)

	assert.True(t, tr.PointerMove(SurfaceHue, 7, -100), "moves outside the bar keep dragging")
	assert.Equal(t, 360.0, state.Current().HSV.H)
	assert.Equal(t, 40.0, state.Current().HSV.S)
	assert.Equal(t, 60.0, state.Current().HSV.V)
}

func TestPlaneDragPreservesHue(t *testing.T) {
	tr, state := newTracker(t, colorutils.HSV{H: 200, S: 0, V: 0})

	tr.PointerDown(SurfacePlane, 100, 50)
	assert.Equal(t, colorutils.HSV{H: 200, S: 50, V: 50}, state.Current().HSV)

	tr.PointerMove(SurfacePlane, 0, 100)
	assert.Equal(t, colorutils.HSV{H: 200, S: 0, V: 0}, state.Current().HSV, "hue must survive passing through black")

	tr.PointerMove(SurfacePlane, 500, -500)
	assert.Equal(t, colorutils.HSV{H: 200, S: 100, V: 100}, state.Current().HSV)
}

func TestMoveWithoutDownIsIgnored(t *testing.T) {
	tr, state := newTracker(t, colorutils.HSV{H: 10, S: 40, V: 60})
	var notified int
	state.Subscribe(func(selection.Change) { notified++ })

	assert.False(t, tr.PointerMove(SurfaceHue, 0, 0))
	assert.False(t, tr.PointerMove(SurfacePlane, 0, 0))
	assert.Zero(t, notified)
}

func TestPointerUpDisarmsBoth(t *testing.T) {
	tr, state := newTracker(t, colorutils.HSV{H: 10, S: 40, V: 60})
	tr.PointerDown(SurfaceHue, 0, 0)
	tr.PointerDown(SurfacePlane, 0, 0)
	assert.True(t, tr.Dragging(SurfaceHue))
	assert.True(t, tr.Dragging(SurfacePlane))

	tr.PointerUp()
	assert.False(t, tr.Dragging(SurfaceHue))
	assert.False(t, tr.Dragging(SurfacePlane))

	before := state.Current()
	tr.PointerMove(SurfacePlane, 150, 20)
	assert.Equal(t, before, state.Current())
}

func TestSurfaceString(t *testing.T) {
	assert.Equal(t, "hue", SurfaceHue.String())
	assert.Equal(t, "plane", SurfacePlane.String())
	assert.False(t, (&Tracker{}).PointerDown(Surface(7), 0, 0))
}
