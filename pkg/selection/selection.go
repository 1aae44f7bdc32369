// Package selection owns the picker's current and last committed colors.
//
// State is the single source of truth every view reads from. All mutation
// happens on the caller's goroutine and listeners run before the mutating
// call returns, so there is no locking: one State belongs to one picker.
package selection

import (
	"colorpicker/pkg/colorutils"
)

// Source tells listeners what produced a change.
type Source int

const (
	SourceReset Source = iota
	SourceRGB
	SourceHSV
	SourceHex
	SourceCommit
	SourceRollback
)

func (s Source) String() string {
	switch s {
	case SourceReset:
		return "reset"
	case SourceRGB:
		return "rgb"
	case SourceHSV:
		return "hsv"
	case SourceHex:
		return "hex"
	case SourceCommit:
		return "commit"
	case SourceRollback:
		return "rollback"
	default:
		return "unknown"
	}
}

// Change is the payload of a state changed notification.
type Change struct {
	Current colorutils.Color
	Last    colorutils.Color
	Source  Source
}

// Listener receives every change.
type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

// State holds the current and last colors.
type State struct {
	current colorutils.Color
	last    colorutils.Color

	subs   []subscription
	nextID int
}

// New returns a State whose current and last colors are both initial. An
// inconsistent initial color is normalized and an unusable one becomes black.
func New(initial colorutils.Color) *State {
	c, _ := normalize(initial)
	return &State{current: c, last: c}
}

// Current returns the color reflecting in-progress edits.
func (s *State) Current() colorutils.Color {
	return s.current
}

// Last returns the most recently committed color.
func (s *State) Last() colorutils.Color {
	return s.last
}

// Subscribe registers fn and returns a function that removes it.
// Listeners run in subscription order.
func (s *State) Subscribe(fn Listener) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// UpdateFromRGB replaces the current color. Invalid input is ignored and
// reported with false; nothing is notified.
func (s *State) UpdateFromRGB(rgb colorutils.RGB) bool {
	c, ok := colorutils.FromRGB(rgb)
	if !ok {
		return false
	}
	s.setCurrent(c, SourceRGB)
	return true
}

// UpdateFromHSV replaces the current color, keeping the HSV as supplied.
func (s *State) UpdateFromHSV(hsv colorutils.HSV) bool {
	c, ok := colorutils.FromHSV(hsv)
	if !ok {
		return false
	}
	s.setCurrent(c, SourceHSV)
	return true
}

// UpdateFromHex replaces the current color from a 3 or 6 digit hex string.
func (s *State) UpdateFromHex(hex string) bool {
	c, ok := colorutils.FromHex(hex)
	if !ok {
		return false
	}
	s.setCurrent(c, SourceHex)
	return true
}

// Commit makes the current color the last color.
func (s *State) Commit() {
	s.last = s.current
	s.notify(SourceCommit)
}

// RollbackToLast discards in-progress edits.
func (s *State) RollbackToLast() {
	s.setCurrent(s.last, SourceRollback)
}

// Reset sets both current and last to c, rebuilt so its forms agree. It
// reports false when c was unusable and black was stored instead.
func (s *State) Reset(c colorutils.Color) bool {
	c, ok := normalize(c)
	s.current = c
	s.last = c
	s.notify(SourceReset)
	return ok
}

func (s *State) setCurrent(c colorutils.Color, src Source) {
	s.current = c
	s.notify(src)
}

func normalize(c colorutils.Color) (colorutils.Color, bool) {
	n, ok := colorutils.Normalize(c)
	if !ok {
		return colorutils.Black, false
	}
	return n, true
}

func (s *State) notify(src Source) {
	ch := Change{Current: s.current, Last: s.last, Source: src}
	// copy so a listener may unsubscribe while being called
	subs := append([]subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(ch)
	}
}
