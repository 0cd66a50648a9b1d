package field

import "unicode/utf8"

// Control is the text input a Field drives. Positions are rune offsets.
type Control interface {
	Value() string
	SetValue(value string)
	Selection() (start, end int)
	SetSelection(start, end int)
}

// TextBuffer is an in-memory Control for hosts that own their own rendering,
// such as terminal UIs, and for tests.
type TextBuffer struct {
	text     []rune
	selStart int
	selEnd   int
	// OnSet runs after SetValue, the way a browser fires an input event
	// when a script rewrites a field.
	OnSet func()
}

// NewTextBuffer returns a buffer holding value with the caret at its end.
func NewTextBuffer(value string) *TextBuffer {
	b := &TextBuffer{text: []rune(value)}
	b.selStart, b.selEnd = len(b.text), len(b.text)
	return b
}

func (b *TextBuffer) Value() string {
	return string(b.text)
}

// SetValue replaces the text and keeps the selection inside it.
func (b *TextBuffer) SetValue(value string) {
	b.text = []rune(value)
	b.SetSelection(b.selStart, b.selEnd)
	if b.OnSet != nil {
		b.OnSet()
	}
}

func (b *TextBuffer) Selection() (int, int) {
	return b.selStart, b.selEnd
}

// SetSelection clamps both ends to the text.
func (b *TextBuffer) SetSelection(start, end int) {
	n := len(b.text)
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	b.selStart, b.selEnd = start, end
}

// Type replaces the selection with s, as a keystroke or paste would.
func (b *TextBuffer) Type(s string) {
	out := make([]rune, 0, len(b.text)+utf8.RuneCountInString(s))
	out = append(out, b.text[:b.selStart]...)
	out = append(out, []rune(s)...)
	out = append(out, b.text[b.selEnd:]...)
	pos := b.selStart + utf8.RuneCountInString(s)
	b.text = out
	b.selStart, b.selEnd = pos, pos
}

// DeleteBackward removes the selection or the rune before the caret.
func (b *TextBuffer) DeleteBackward() {
	if b.selStart == b.selEnd {
		if b.selStart == 0 {
			return
		}
		b.selStart--
	}
	b.remove()
}

// DeleteForward removes the selection or the rune after the caret.
func (b *TextBuffer) DeleteForward() {
	if b.selStart == b.selEnd {
		if b.selEnd == len(b.text) {
			return
		}
		b.selEnd++
	}
	b.remove()
}

// MoveCaret collapses the selection at pos.
func (b *TextBuffer) MoveCaret(pos int) {
	b.SetSelection(pos, pos)
}

func (b *TextBuffer) remove() {
	b.text = append(b.text[:b.selStart:b.selStart], b.text[b.selEnd:]...)
	b.selEnd = b.selStart
}
