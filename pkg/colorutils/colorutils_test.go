package colorutils

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	assert.True(t, IsRGB(RGB{0, 128, 255}))
	assert.False(t, IsRGB(RGB{300, 0, 0}), "channel above 255 accepted")
	assert.False(t, IsRGB(RGB{0, -1, 0}), "negative channel accepted")

	assert.True(t, IsHSV(HSV{360, 100, 100}))
	assert.True(t, IsHSV(HSV{0, 0, 0}))
	assert.False(t, IsHSV(HSV{361, 0, 0}))
	assert.False(t, IsHSV(HSV{0, 100.5, 0}))
	assert.False(t, IsHSV(HSV{math.NaN(), 0, 0}))
	assert.False(t, IsHSV(HSV{0, 0, math.Inf(1)}))

	for _, s := range []string{"abc", "ABC", "#abc", "aabbcc", "#AaBbCc", "000"} {
		assert.True(t, IsHex(s), "hex %q rejected", s)
	}
	for _, s := range []string{"", "ab", "abcd", "gggggg", "##abc", "abcabca", " abc"} {
		assert.False(t, IsHex(s), "hex %q accepted", s)
	}
}

// exhaustiveStep walks every value, or every seventh one with -short.
func exhaustiveStep() int {
	if testing.Short() {
		return 7
	}
	return 1
}

func TestRGBHSVRoundTrip(t *testing.T) {
	step := exhaustiveStep()
	for r := 0; r <= 255; r += step {
		for g := 0; g <= 255; g += step {
			for b := 0; b <= 255; b += step {
				in := RGB{r, g, b}
				hsv, ok := RGBToHSV(in)
				if !ok {
					t.Fatalf("rgb2hsv rejected %v", in)
				}
				out, ok := HSVToRGB(hsv)
				if !ok {
					t.Fatalf("hsv2rgb rejected %v from %v", hsv, in)
				}
				if abs(out.R-in.R) > 1 || abs(out.G-in.G) > 1 || abs(out.B-in.B) > 1 {
					t.Fatalf("round trip %v -> %v -> %v", in, hsv, out)
				}
			}
		}
	}
}

func TestRoundedHSVRoundTrip(t *testing.T) {
	// Primary and secondary colors survive display rounding exactly.
	for _, in := range []RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {255, 255, 0}, {0, 255, 255}, {255, 0, 255}, {255, 255, 255}, {0, 0, 0}} {
		hsv, _ := RGBToHSV(in)
		out, ok := HSVToRGB(hsv.Rounded())
		require.True(t, ok)
		assert.Equal(t, in, out)
	}
}

func TestHexRoundTrip(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 0x010203
	}
	for i := 0; i < 0x1000000; i += step {
		h := fmt.Sprintf("%06x", i)
		rgb, ok := HexToRGB(h)
		if !ok {
			t.Fatalf("hex2rgb rejected %s", h)
		}
		back, _ := RGBToHex(rgb)
		expanded, ok := ExpandHex(back)
		if !ok || h != expanded {
			t.Fatalf("hex %s came back as %s", h, back)
		}
	}
	back, _ := RGBToHex(RGB{0x12, 0x34, 0x56})
	assert.Equal(t, "123456", back)
}

func TestAchromatic(t *testing.T) {
	hsv, ok := RGBToHSV(RGB{128, 128, 128})
	require.True(t, ok)
	assert.Equal(t, 0.0, hsv.H)
	assert.Equal(t, 0.0, hsv.S)
	assert.InDelta(t, 50, hsv.V, 0.5)
	assert.Equal(t, HSV{0, 0, 50}, hsv.Rounded())

	hsv, _ = RGBToHSV(RGB{0, 0, 0})
	assert.Equal(t, HSV{}, hsv, "black must not divide by zero")
}

func TestSectors(t *testing.T) {
	cases := map[RGB]HSV{
		{255, 0, 0}:   {0, 100, 100},
		{255, 255, 0}: {60, 100, 100},
		{0, 255, 0}:   {120, 100, 100},
		{0, 255, 255}: {180, 100, 100},
		{0, 0, 255}:   {240, 100, 100},
		{255, 0, 255}: {300, 100, 100},
		{255, 0, 128}: {330, 100, 100},
	}
	for in, want := range cases {
		hsv, ok := RGBToHSV(in)
		require.True(t, ok)
		assert.Equal(t, want, hsv.Rounded(), "rgb %v", in)
	}
}

func TestHueWrap(t *testing.T) {
	a, ok := HSVToRGB(HSV{360, 100, 100})
	require.True(t, ok)
	b, _ := HSVToRGB(HSV{0, 100, 100})
	assert.Equal(t, b, a)
	assert.Equal(t, RGB{255, 0, 0}, a)
}

func TestHexShorthand(t *testing.T) {
	short, ok := HexToRGB("abc")
	require.True(t, ok)
	long, _ := HexToRGB("aabbcc")
	assert.Equal(t, long, short)
	assert.Equal(t, RGB{170, 187, 204}, short)

	upper, ok := HexToRGB("#AABBCC")
	require.True(t, ok)
	assert.Equal(t, short, upper)
}

func TestHexCanonicalization(t *testing.T) {
	hex, ok := RGBToHex(RGB{170, 187, 204})
	require.True(t, ok)
	assert.Equal(t, "abc", hex)

	hex, _ = RGBToHex(RGB{170, 187, 205})
	assert.Equal(t, "aabbcd", hex)

	hex, _ = RGBToHex(RGB{1, 2, 3})
	assert.Equal(t, "010203", hex)
}

func TestConvertersRejectInvalidInput(t *testing.T) {
	_, ok := RGBToHSV(RGB{300, 0, 0})
	assert.False(t, ok)
	_, ok = HSVToRGB(HSV{400, 0, 0})
	assert.False(t, ok)
	_, ok = HexToRGB("xyz")
	assert.False(t, ok)
	_, ok = RGBToHex(RGB{0, 0, 256})
	assert.False(t, ok)
	_, ok = FromHex("12")
	assert.False(t, ok)
}

func TestFromConstructors(t *testing.T) {
	c, ok := FromRGB(RGB{10, 20, 30})
	require.True(t, ok)
	assert.Equal(t, "0a141e", c.Hex)

	c, ok = FromHSV(HSV{360, 100, 100})
	require.True(t, ok)
	assert.Equal(t, 360.0, c.HSV.H, "supplied hue must be kept")
	assert.Equal(t, "f00", c.Hex)

	c, ok = FromHex("#AABBCC")
	require.True(t, ok)
	assert.Equal(t, "abc", c.Hex)
	assert.Equal(t, RGB{170, 187, 204}, c.RGB)
}

func TestParse(t *testing.T) {
	cases := map[string]RGB{
		"#abc":             {170, 187, 204},
		"FF0000":           {255, 0, 0},
		"rgb(10, 20, 30)":  {10, 20, 30},
		"10,20,30":         {10, 20, 30},
		"hsv(120,100,100)": {0, 255, 0},
		" HSV(0,0,100) ":   {255, 255, 255},
	}
	for in, want := range cases {
		c, ok := Parse(in)
		require.True(t, ok, "literal %q", in)
		assert.Equal(t, want, c.RGB, "literal %q", in)
	}
	for _, in := range []string{"", "rgb(1,2)", "rgb(1.5,2,3)", "hsv(0,0,101)", "red", "1,2,x"} {
		_, ok := Parse(in)
		assert.False(t, ok, "literal %q accepted", in)
	}
}

func TestColorHelpers(t *testing.T) {
	c, _ := FromRGB(RGB{1, 2, 3})
	assert.Equal(t, "#010203", c.String())
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, c.NRGBA())
	assert.True(t, c.Equal(Color{RGB: RGB{1, 2, 3}}))
	assert.Equal(t, "000", Black.Hex)

	col, err := HexToColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, col)
	_, err = HexToColor("nope")
	assert.Error(t, err)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestNormalize(t *testing.T) {
	full, _ := FromHSV(HSV{H: 360, S: 100, V: 100})
	got, ok := Normalize(full)
	require.True(t, ok)
	assert.Equal(t, full, got, "consistent colors keep their HSV")

	got, ok = Normalize(Color{RGB: RGB{10, 20, 30}})
	require.True(t, ok)
	assert.Equal(t, "0a141e", got.Hex)
	assert.InDelta(t, 210, got.HSV.H, 1e-9)

	got, ok = Normalize(Color{HSV: HSV{H: 120, S: 100, V: 100}})
	require.True(t, ok)
	assert.Equal(t, RGB{0, 255, 0}, got.RGB)

	got, ok = Normalize(Color{Hex: "ABC"})
	require.True(t, ok)
	assert.Equal(t, RGB{0xaa, 0xbb, 0xcc}, got.RGB)

	got, ok = Normalize(Color{RGB: RGB{1, 2, 3}, HSV: HSV{H: 90, S: 10, V: 10}, Hex: "fff"})
	require.True(t, ok)
	assert.Equal(t, "010203", got.Hex, "mismatched forms follow RGB")

	_, ok = Normalize(Color{RGB: RGB{R: 300}, Hex: "zzz"})
	assert.False(t, ok)
	_, ok = Normalize(Color{Hex: "zzz"})
	assert.False(t, ok)
}
