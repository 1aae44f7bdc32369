package options

import (
	"fmt"

	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/palette"
	"colorpicker/pkg/selectors"

	"github.com/BurntSushi/toml"
)

// ColorFunc computes the initial color each time the picker opens.
type ColorFunc func() colorutils.Color

// Geometry is the size of a selector surface and of its indicator.
type Geometry struct {
	Width          int `toml:"width"`
	Height         int `toml:"height"`
	SelectorWidth  int `toml:"selector_width"`
	SelectorHeight int `toml:"selector_height"`
}

type Options struct {
	Color     string    `toml:"color"` // hex, rgb(...) or hsv(...) literal
	ColorFunc ColorFunc `toml:"-"`     // overrides Color when set
	MaxFields int       `toml:"max_fields"`
	Swatches  []string  `toml:"swatches"`
	HueBar    Geometry  `toml:"hue_bar"`
	Plane     Geometry  `toml:"sv_plane"`

	Profiling       bool   `toml:"profiling"`
	ProfilingServer string `toml:"profiling_server"`
}

var (
	defaultHueBar = Geometry{Width: 20, Height: 256, SelectorWidth: 30, SelectorHeight: 6}
	defaultPlane  = Geometry{Width: 256, Height: 256, SelectorWidth: 12, SelectorHeight: 12}
)

func (opts Options) InitDefault() *Options {
	return &Options{
		Color:           "000",
		MaxFields:       palette.DefaultCapacity,
		Swatches:        []string{"fff", "000"},
		HueBar:          defaultHueBar,
		Plane:           defaultPlane,
		Profiling:       false,
		ProfilingServer: "http://localhost:4040",
	}
}

// LoadFile reads a TOML config file over the defaults.
func LoadFile(path string) (*Options, error) {
	opts := Options{}.InitDefault()
	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, fmt.Errorf("error decoding config %s: %w", path, err)
	}
	opts.Normalize()
	return opts, nil
}

// Decode reads TOML config text over the defaults.
func Decode(data string) (*Options, error) {
	opts := Options{}.InitDefault()
	if _, err := toml.Decode(data, opts); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	opts.Normalize()
	return opts, nil
}

// Normalize replaces unusable values with defaults.
func (opts *Options) Normalize() {
	if opts.MaxFields < 1 {
		opts.MaxFields = palette.DefaultCapacity
	}
	opts.HueBar = opts.HueBar.orDefault(defaultHueBar)
	opts.Plane = opts.Plane.orDefault(defaultPlane)
}

// Initial returns the color a picker opens with. An unparsable literal falls
// back to black.
func (opts *Options) Initial() colorutils.Color {
	if opts.ColorFunc != nil {
		return opts.ColorFunc()
	}
	if c, ok := colorutils.Parse(opts.Color); ok {
		return c
	}
	return colorutils.Black
}

// HueSelector returns the hue bar geometry.
func (opts *Options) HueSelector() selectors.Linear {
	g := opts.HueBar.orDefault(defaultHueBar)
	return selectors.Linear{Width: g.Width, Height: g.Height, SelectorWidth: g.SelectorWidth, SelectorHeight: g.SelectorHeight}
}

// PlaneSelector returns the saturation/value plane geometry.
func (opts *Options) PlaneSelector() selectors.Planar {
	g := opts.Plane.orDefault(defaultPlane)
	return selectors.Planar{Width: g.Width, Height: g.Height, SelectorWidth: g.SelectorWidth, SelectorHeight: g.SelectorHeight}
}

// Static returns a ColorFunc that always yields c.
func Static(c colorutils.Color) ColorFunc {
	return func() colorutils.Color { return c }
}

// Literal returns a ColorFunc for a color literal, falling back to black.
func Literal(s string) ColorFunc {
	c, ok := colorutils.Parse(s)
	if !ok {
		c = colorutils.Black
	}
	return Static(c)
}

func (g Geometry) orDefault(def Geometry) Geometry {
	if g.Width <= 0 || g.Height <= 0 {
		g.Width, g.Height = def.Width, def.Height
	}
	if g.SelectorWidth < 0 {
		g.SelectorWidth = def.SelectorWidth
	}
	if g.SelectorHeight < 0 {
		g.SelectorHeight = def.SelectorHeight
	}
	return g
}
