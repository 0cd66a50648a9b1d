package dateformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Parse converts a typed value into a date at midnight in loc (UTC when loc is
// nil). Values with groups still short of digits, including placeholder
// characters, fail with ErrIncomplete; anything else that is not a calendar
// day fails with ErrInvalidValue.
func Parse(value string, layout Layout, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, ErrIncomplete
	}

	parts, ok := layout.Split(trimmed)
	if !ok {
		if CountDigits(trimmed) < layout.DigitCount() {
			return time.Time{}, ErrIncomplete
		}
		return time.Time{}, fmt.Errorf("%w: %q does not match %s", ErrInvalidValue, value, layout.Raw)
	}

	var day, month, year int
	for i, tok := range layout.Tokens {
		n, err := parseGroup(parts[i], tok)
		if errors.Is(err, ErrIncomplete) {
			return time.Time{}, err
		}
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidValue, value, err)
		}
		switch tok.Kind {
		case Day:
			day = n
		case Month:
			month = n
		case Year:
			year = n
		}
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d out of range", ErrInvalidValue, month)
	}
	if day < 1 || day > DaysIn(time.Month(month), year) {
		return time.Time{}, fmt.Errorf("%w: day %d out of range", ErrInvalidValue, day)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

func parseGroup(part string, tok Token) (int, error) {
	digits, letters := 0, 0
	for _, r := range part {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	if letters > 0 {
		return 0, fmt.Errorf("letter in %c group %q", rune(tok.Kind), part)
	}
	// anything else left in the group is a placeholder slot
	if digits < minWidth(tok) || digits != len(part) {
		return 0, ErrIncomplete
	}

	switch {
	case tok.Kind == Year && tok.Width == 2:
		if len(part) != 2 && len(part) != 4 {
			return 0, fmt.Errorf("year group %q must hold 2 or 4 digits", part)
		}
	case tok.Width == 1:
		if len(part) > 2 {
			return 0, fmt.Errorf("%c group %q too long", rune(tok.Kind), part)
		}
	default:
		if len(part) != tok.Width {
			return 0, fmt.Errorf("%c group %q must hold %d digits", rune(tok.Kind), part, tok.Width)
		}
	}

	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, err
	}
	if tok.Kind == Year && len(part) == 2 {
		n += 2000
	}
	return n, nil
}

func minWidth(tok Token) int {
	if tok.Width == 1 {
		return 1
	}
	return tok.Width
}

// Format renders t with layout. Parse(Format(t)) yields t's calendar day.
func Format(t time.Time, layout Layout) string {
	var b strings.Builder
	for i, tok := range layout.Tokens {
		if i > 0 && layout.Separator != 0 {
			b.WriteRune(layout.Separator)
		}
		var n int
		switch tok.Kind {
		case Day:
			n = t.Day()
		case Month:
			n = int(t.Month())
		case Year:
			n = t.Year()
			if tok.Width == 2 {
				n %= 100
			}
		}
		b.WriteString(pad(n, tok.Width))
	}
	return b.String()
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
