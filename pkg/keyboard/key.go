package keyboard

import "unicode/utf8"

// Key names shared by hosts.
const (
	Backspace  = "Backspace"
	Delete     = "Delete"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	Home       = "Home"
	End        = "End"
	Tab        = "Tab"
	Escape     = "Escape"
	Enter      = "Enter"
	Shift      = "Shift"
	Control    = "Control"
	Alt        = "Alt"
	Meta       = "Meta"
	CapsLock   = "CapsLock"
)

// Key is a single keydown event.
type Key struct {
	Name  string
	Ctrl  bool
	Meta  bool
	Alt   bool
	Shift bool
}

// Char returns the printable rune of a single character key.
func (k Key) Char() (rune, bool) {
	if utf8.RuneCountInString(k.Name) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(k.Name)
	return r, true
}

// IsDigit reports whether k types an ASCII digit.
func (k Key) IsDigit() bool {
	r, ok := k.Char()
	return ok && r >= '0' && r <= '9'
}

// Chord reports whether Ctrl or Meta is held.
func (k Key) Chord() bool {
	return k.Ctrl || k.Meta
}

// Modified reports whether Alt, Ctrl or Meta is held. Shift alone does not
// count.
func (k Key) Modified() bool {
	return k.Alt || k.Ctrl || k.Meta
}
