package rangeinput

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Separator divides the two dates of a range.
const Separator = " - "

var separatorLen = utf8.RuneCountInString(Separator)

// Edit is a value rewrite with the caret position to restore.
type Edit struct {
	Value  string
	Cursor int
}

// IsValidRange reports whether start does not come after end. Open ends are
// always valid.
func IsValidRange(start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return !start.After(*end)
}

// Backspace removes the whole range separator when the selection is collapsed
// right after it. ok is false when the keystroke should fall through to the
// default single character delete.
func Backspace(value string, selStart, selEnd int) (Edit, bool) {
	if selStart != selEnd || selStart < separatorLen {
		return Edit{}, false
	}
	runes := []rune(value)
	if selStart > len(runes) {
		return Edit{}, false
	}
	if string(runes[selStart-separatorLen:selStart]) != Separator {
		return Edit{}, false
	}
	out := string(runes[:selStart-separatorLen]) + string(runes[selStart:])
	return Edit{Value: out, Cursor: selStart - separatorLen}, true
}

// SanitizePaste keeps only the digits of pasted text. ok is false when nothing
// numeric remains and the paste should be cancelled.
func SanitizePaste(text string) (string, bool) {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// Insert replaces the selection [selStart, selEnd) of value with text.
func Insert(value string, selStart, selEnd int, text string) Edit {
	runes := []rune(value)
	selStart = clampInt(selStart, 0, len(runes))
	selEnd = clampInt(selEnd, selStart, len(runes))
	out := string(runes[:selStart]) + text + string(runes[selEnd:])
	return Edit{Value: out, Cursor: selStart + utf8.RuneCountInString(text)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
