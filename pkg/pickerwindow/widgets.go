package pickerwindow

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"colorpicker/pkg/fieldsync"
)

// fieldEntry is one of the seven text inputs. It reports focus loss so an
// emptied field can be filled in.
type fieldEntry struct {
	widget.Entry
	field  fieldsync.Field
	onBlur func()
}

func newFieldEntry(f fieldsync.Field) *fieldEntry {
	e := &fieldEntry{field: f}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder(placeholder(f))
	return e
}

// FocusGained selects the whole text so typing replaces it.
func (e *fieldEntry) FocusGained() {
	e.Entry.FocusGained()
	e.TypedShortcut(&fyne.ShortcutSelectAll{})
}

func (e *fieldEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onBlur != nil {
		e.onBlur()
	}
}

func placeholder(f fieldsync.Field) string {
	if f == fieldsync.FieldHex {
		return "000000"
	}
	return "0"
}

func label(f fieldsync.Field) string {
	switch f {
	case fieldsync.FieldR:
		return "R"
	case fieldsync.FieldG:
		return "G"
	case fieldsync.FieldB:
		return "B"
	case fieldsync.FieldH:
		return "H"
	case fieldsync.FieldS:
		return "S"
	case fieldsync.FieldV:
		return "V"
	}
	return "#"
}
