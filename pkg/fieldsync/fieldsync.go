// Package fieldsync binds the picker's seven text inputs (R, G, B, H, S, V
// and Hex) to the selection state.
//
// Text is sanitized before it is interpreted, and nothing that fails
// validation ever reaches the state. An emptied field is left empty while it
// has focus and is only filled in with zero on blur.
package fieldsync

import (
	"math"
	"strconv"
	"strings"

	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/selection"
)

// Field identifies one text input.
type Field int

const (
	FieldR Field = iota
	FieldG
	FieldB
	FieldH
	FieldS
	FieldV
	FieldHex
)

// FieldCount is the number of text inputs.
const FieldCount = 7

// Fields lists every field in display order.
var Fields = [FieldCount]Field{FieldR, FieldG, FieldB, FieldH, FieldS, FieldV, FieldHex}

var fieldNames = [FieldCount]string{"r", "g", "b", "h", "s", "v", "hex"}

func (f Field) String() string {
	if f < 0 || int(f) >= FieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// Max is the largest value a numeric field accepts.
func (f Field) Max() int {
	switch f {
	case FieldR, FieldG, FieldB:
		return 255
	case FieldH:
		return 360
	case FieldS, FieldV:
		return 100
	}
	return 0
}

// MaxLen is the input length limit the field is rendered with.
func (f Field) MaxLen() int {
	if f == FieldHex {
		return 6
	}
	return 3
}

// ParseField maps a field name ("r", "hex", ...) back to its Field.
func ParseField(name string) (Field, bool) {
	for i, n := range fieldNames {
		if n == strings.ToLower(name) {
			return Field(i), true
		}
	}
	return 0, false
}

// State is what the fields read and write.
type State interface {
	Current() colorutils.Color
	UpdateFromRGB(colorutils.RGB) bool
	UpdateFromHSV(colorutils.HSV) bool
	UpdateFromHex(string) bool
	Subscribe(selection.Listener) func()
}

// Sync holds the text of every field and the hex validity flag.
type Sync struct {
	state       State
	texts       [FieldCount]string
	hexInvalid  bool
	editing     Field
	editText    string
	isEditing   bool
	unsubscribe func()
}

// New binds a Sync to state and fills the fields from its current color.
func New(state State) *Sync {
	s := &Sync{state: state}
	s.fill(state.Current())
	s.unsubscribe = state.Subscribe(func(ch selection.Change) {
		s.fill(ch.Current)
	})
	return s
}

// Close stops following the state.
func (s *Sync) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Text returns the text currently shown in f.
func (s *Sync) Text(f Field) string {
	if f < 0 || int(f) >= FieldCount {
		return ""
	}
	return s.texts[f]
}

// Texts returns the text of every field.
func (s *Sync) Texts() [FieldCount]string {
	return s.texts
}

// HexInvalid reports whether the hex field holds non-empty invalid text.
func (s *Sync) HexInvalid() bool {
	return s.hexInvalid
}

// Change handles an edit of f. It returns the sanitized text the field must
// show and whether the state accepted an update.
func (s *Sync) Change(f Field, raw string) (string, bool) {
	if f == FieldHex {
		return s.changeHex(raw)
	}
	if f < 0 || f >= FieldHex {
		return raw, false
	}

	text := digitsOnly(raw)
	value := 0
	if text != "" {
		n, err := strconv.Atoi(text)
		if err != nil || n >= f.Max() {
			n = f.Max()
			text = strconv.Itoa(n)
		}
		value = n
	}

	cur := s.state.Current()
	var applied bool
	s.begin(f, text)
	switch f {
	case FieldR:
		applied = s.state.UpdateFromRGB(colorutils.RGB{R: value, G: cur.RGB.G, B: cur.RGB.B})
	case FieldG:
		applied = s.state.UpdateFromRGB(colorutils.RGB{R: cur.RGB.R, G: value, B: cur.RGB.B})
	case FieldB:
		applied = s.state.UpdateFromRGB(colorutils.RGB{R: cur.RGB.R, G: cur.RGB.G, B: value})
	case FieldH:
		applied = s.state.UpdateFromHSV(colorutils.HSV{H: float64(value), S: cur.HSV.S, V: cur.HSV.V})
	case FieldS:
		applied = s.state.UpdateFromHSV(colorutils.HSV{H: cur.HSV.H, S: float64(value), V: cur.HSV.V})
	case FieldV:
		applied = s.state.UpdateFromHSV(colorutils.HSV{H: cur.HSV.H, S: cur.HSV.S, V: float64(value)})
	}
	s.end()
	return text, applied
}

// Blur handles f losing focus. The field is rewritten from the current
// color: an emptied field shows "0" ("000" for hex) and text the state never
// accepted, such as an invalid hex, is dropped.
func (s *Sync) Blur(f Field, raw string) string {
	if f < 0 || int(f) >= FieldCount {
		return raw
	}
	text := fieldText(f, s.state.Current())
	s.texts[f] = text
	if f == FieldHex {
		s.hexInvalid = false
	}
	return text
}

func (s *Sync) changeHex(raw string) (string, bool) {
	text := hexDigitsOnly(raw)
	if text != "" && !colorutils.IsHex(text) {
		s.hexInvalid = true
		s.texts[FieldHex] = text
		return text, false
	}

	hex := text
	if hex == "" {
		hex = "000"
	}
	s.hexInvalid = false
	s.begin(FieldHex, text)
	applied := s.state.UpdateFromHex(hex)
	s.end()
	return text, applied
}

// begin marks f as the field being typed into, so the refresh fired by the
// state update keeps the user's text in it.
func (s *Sync) begin(f Field, text string) {
	s.editing = f
	s.editText = text
	s.isEditing = true
	s.texts[f] = text
}

func (s *Sync) end() {
	s.isEditing = false
}

func (s *Sync) fill(c colorutils.Color) {
	for _, f := range Fields {
		s.texts[f] = fieldText(f, c)
	}
	s.hexInvalid = false
	if s.isEditing {
		s.texts[s.editing] = s.editText
	}
}

func fieldText(f Field, c colorutils.Color) string {
	switch f {
	case FieldR:
		return strconv.Itoa(c.RGB.R)
	case FieldG:
		return strconv.Itoa(c.RGB.G)
	case FieldB:
		return strconv.Itoa(c.RGB.B)
	case FieldH:
		return strconv.Itoa(int(math.Round(c.HSV.H)))
	case FieldS:
		return strconv.Itoa(int(math.Round(c.HSV.S)))
	case FieldV:
		return strconv.Itoa(int(math.Round(c.HSV.V)))
	}
	return c.Hex
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func hexDigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			return r
		}
		return -1
	}, s)
}
