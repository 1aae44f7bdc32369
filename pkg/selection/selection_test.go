package selection

import (
	"testing"

	"colorpicker/pkg/colorutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, rgb colorutils.RGB) (*State, *[]Change) {
	t.Helper()
	c, ok := colorutils.FromRGB(rgb)
	require.True(t, ok)
	s := New(c)
	var got []Change
	s.Subscribe(func(ch Change) { got = append(got, ch) })
	return s, &got
}

func TestUpdateRecomputesAllForms(t *testing.T) {
	s, got := newState(t, colorutils.RGB{})

	require.True(t, s.UpdateFromRGB(colorutils.RGB{R: 170, G: 187, B: 204}))
	assert.Equal(t, "abc", s.Current().Hex)
	assert.Equal(t, colorutils.HSV{H: 210, S: 17, V: 80}, s.Current().HSV.Rounded())

	require.True(t, s.UpdateFromHSV(colorutils.HSV{H: 120, S: 100, V: 100}))
	assert.Equal(t, colorutils.RGB{R: 0, G: 255, B: 0}, s.Current().RGB)
	assert.Equal(t, "0f0", s.Current().Hex)

	require.True(t, s.UpdateFromHex("#FF0000"))
	assert.Equal(t, colorutils.RGB{R: 255, G: 0, B: 0}, s.Current().RGB)
	assert.Equal(t, colorutils.HSV{H: 0, S: 100, V: 100}, s.Current().HSV)

	require.Len(t, *got, 3)
	assert.Equal(t, SourceRGB, (*got)[0].Source)
	assert.Equal(t, SourceHSV, (*got)[1].Source)
	assert.Equal(t, SourceHex, (*got)[2].Source)
	assert.Equal(t, s.Current(), (*got)[2].Current, "notification must carry the full new state")
}

func TestInvalidUpdateIsNoop(t *testing.T) {
	s, got := newState(t, colorutils.RGB{R: 10, G: 20, B: 30})
	before := s.Current()

	assert.False(t, s.UpdateFromRGB(colorutils.RGB{R: 300, G: 0, B: 0}))
	assert.False(t, s.UpdateFromHSV(colorutils.HSV{H: 10, S: 101, V: 0}))
	assert.False(t, s.UpdateFromHex("zzz"))

	assert.Equal(t, before, s.Current())
	assert.Empty(t, *got, "rejected updates must not notify")
}

func TestUpdateFromOwnHexIsIdempotent(t *testing.T) {
	for _, rgb := range []colorutils.RGB{{R: 10, G: 20, B: 30}, {R: 170, G: 187, B: 204}, {R: 255, G: 255, B: 255}, {R: 0, G: 0, B: 0}, {R: 255, G: 0, B: 128}} {
		s, _ := newState(t, rgb)
		before := s.Current()
		require.True(t, s.UpdateFromHex(before.Hex))
		assert.Equal(t, before, s.Current())
	}
}

func TestCommitAndRollback(t *testing.T) {
	s, got := newState(t, colorutils.RGB{R: 10, G: 20, B: 30})
	original := s.Current()

	s.UpdateFromRGB(colorutils.RGB{R: 40, G: 50, B: 60})
	assert.Equal(t, original, s.Last(), "editing must not touch last")

	s.RollbackToLast()
	assert.Equal(t, original, s.Current())

	s.UpdateFromRGB(colorutils.RGB{R: 40, G: 50, B: 60})
	s.Commit()
	assert.Equal(t, colorutils.RGB{R: 40, G: 50, B: 60}, s.Last().RGB)
	assert.Equal(t, SourceCommit, (*got)[len(*got)-1].Source)
}

func TestReset(t *testing.T) {
	s, got := newState(t, colorutils.RGB{R: 10, G: 20, B: 30})
	s.Reset(colorutils.Black)
	assert.Equal(t, colorutils.Black, s.Current())
	assert.Equal(t, colorutils.Black, s.Last())
	require.Len(t, *got, 1)
	assert.Equal(t, SourceReset, (*got)[0].Source)
}

func TestResetRebuildsInconsistentColor(t *testing.T) {
	s, got := newState(t, colorutils.RGB{R: 10, G: 20, B: 30})

	assert.True(t, s.Reset(colorutils.Color{RGB: colorutils.RGB{R: 10, G: 20, B: 30}}))
	want, _ := colorutils.FromRGB(colorutils.RGB{R: 10, G: 20, B: 30})
	assert.Equal(t, want, s.Current())
	assert.Equal(t, want, s.Last())

	assert.True(t, s.Reset(colorutils.Color{HSV: colorutils.HSV{H: 360, S: 100, V: 100}}))
	assert.Equal(t, colorutils.HSV{H: 360, S: 100, V: 100}, s.Current().HSV, "supplied HSV is kept")
	assert.Equal(t, "f00", s.Current().Hex)

	assert.True(t, s.Reset(colorutils.Color{Hex: "#0F0"}))
	assert.Equal(t, colorutils.RGB{G: 255}, s.Current().RGB)

	assert.False(t, s.Reset(colorutils.Color{RGB: colorutils.RGB{R: 300}, Hex: "zzz"}))
	assert.Equal(t, colorutils.Black, s.Current())
	assert.Equal(t, colorutils.Black, s.Last())
	assert.Len(t, *got, 4, "every reset notifies")
}

func TestNewNormalizesInitial(t *testing.T) {
	s := New(colorutils.Color{RGB: colorutils.RGB{R: -1}})
	assert.Equal(t, colorutils.Black, s.Current())
}

func TestUnsubscribe(t *testing.T) {
	s := New(colorutils.Black)
	var a, b int
	stopA := s.Subscribe(func(Change) { a++ })
	s.Subscribe(func(Change) { b++ })

	s.UpdateFromHex("fff")
	stopA()
	stopA()
	s.UpdateFromHex("000")

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "hex", SourceHex.String())
	assert.Equal(t, "rollback", SourceRollback.String())
	assert.Equal(t, "unknown", Source(99).String())
}
