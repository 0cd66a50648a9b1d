package dateformat

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// TokenKind identifies the calendar component a digit group holds.
type TokenKind rune

const (
	Day   TokenKind = 'D'
	Month TokenKind = 'M'
	Year  TokenKind = 'Y'
)

// Token is a contiguous run of the same format letter.
type Token struct {
	Kind  TokenKind
	Width int
}

// Layout is the parsed form of a format string.
type Layout struct {
	Raw       string
	Separator rune
	Tokens    []Token
}

// ParseLayout parses format into a Layout. Letters are case-insensitive; a
// format may omit separators entirely (`DDMMYYYY`) but may not mix different
// separator characters.
func ParseLayout(format string) (Layout, error) {
	trimmed := strings.TrimSpace(format)
	if trimmed == "" {
		return Layout{}, fmt.Errorf("%w: empty format", ErrInvalidLayout)
	}

	layout := Layout{Raw: trimmed}
	seen := make(map[TokenKind]bool, 3)
	var current *Token
	lastWasSeparator := false

	for i, r := range trimmed {
		if unicode.IsLetter(r) {
			kind := TokenKind(unicode.ToUpper(r))
			switch kind {
			case Day, Month, Year:
			default:
				return Layout{}, fmt.Errorf("%w: unknown token %q at %d", ErrInvalidLayout, r, i)
			}
			if current != nil && current.Kind == kind && !lastWasSeparator {
				current.Width++
				continue
			}
			if seen[kind] {
				return Layout{}, fmt.Errorf("%w: token %q repeats", ErrInvalidLayout, r)
			}
			seen[kind] = true
			layout.Tokens = append(layout.Tokens, Token{Kind: kind, Width: 1})
			current = &layout.Tokens[len(layout.Tokens)-1]
			lastWasSeparator = false
			continue
		}

		if unicode.IsDigit(r) {
			return Layout{}, fmt.Errorf("%w: digit %q in format", ErrInvalidLayout, r)
		}
		if layout.Separator != 0 && layout.Separator != r {
			return Layout{}, fmt.Errorf("%w: mixed separators %q and %q", ErrInvalidLayout, layout.Separator, r)
		}
		if current == nil || lastWasSeparator {
			return Layout{}, fmt.Errorf("%w: separator %q must sit between groups", ErrInvalidLayout, r)
		}
		layout.Separator = r
		lastWasSeparator = true
	}

	if lastWasSeparator {
		return Layout{}, fmt.Errorf("%w: trailing separator", ErrInvalidLayout)
	}
	for _, tok := range layout.Tokens {
		if err := checkWidth(tok); err != nil {
			return Layout{}, err
		}
	}
	if layout.Separator == 0 {
		// groups can only be told apart by width when nothing separates them
		for _, tok := range layout.Tokens {
			if tok.Width == 1 {
				return Layout{}, fmt.Errorf("%w: single-digit group without separator", ErrInvalidLayout)
			}
		}
	}
	// Keep Raw canonical so rendered placeholders follow the parsed tokens.
	layout.Raw = layout.String()
	return layout, nil
}

// MustParseLayout is ParseLayout for package-level constants.
func MustParseLayout(format string) Layout {
	layout, err := ParseLayout(format)
	if err != nil {
		panic(err)
	}
	return layout
}

func checkWidth(tok Token) error {
	switch tok.Kind {
	case Year:
		if tok.Width != 2 && tok.Width != 4 {
			return fmt.Errorf("%w: year group must be YY or YYYY", ErrInvalidLayout)
		}
	default:
		if tok.Width < 1 || tok.Width > 2 {
			return fmt.Errorf("%w: %c group must be one or two letters", ErrInvalidLayout, rune(tok.Kind))
		}
	}
	return nil
}

// String renders the canonical upper-case format.
func (l Layout) String() string {
	var b strings.Builder
	for i, tok := range l.Tokens {
		if i > 0 && l.Separator != 0 {
			b.WriteRune(l.Separator)
		}
		b.WriteString(strings.Repeat(string(rune(tok.Kind)), tok.Width))
	}
	return b.String()
}

// DigitCount reports how many digit slots the layout holds.
func (l Layout) DigitCount() int {
	total := 0
	for _, tok := range l.Tokens {
		total += tok.Width
	}
	return total
}

// ExpandedDigitCount is DigitCount with a two-digit year widened to four.
func (l Layout) ExpandedDigitCount() int {
	if l.HasShortYear() {
		return l.DigitCount() + 2
	}
	return l.DigitCount()
}

// HasShortYear reports whether the year group is `YY`.
func (l Layout) HasShortYear() bool {
	for _, tok := range l.Tokens {
		if tok.Kind == Year && tok.Width == 2 {
			return true
		}
	}
	return false
}

// Len is the character length of a fully typed value.
func (l Layout) Len() int {
	n := l.DigitCount()
	if l.Separator != 0 && len(l.Tokens) > 1 {
		n += len(l.Tokens) - 1
	}
	return n
}

// IsSeparator reports whether r is the layout separator.
func (l Layout) IsSeparator(r rune) bool {
	return l.Separator != 0 && r == l.Separator
}

// Index returns the position of kind in the token order, or -1.
func (l Layout) Index(kind TokenKind) int {
	for i, tok := range l.Tokens {
		if tok.Kind == kind {
			return i
		}
	}
	return -1
}

// Split cuts value into one string per token. Layouts with a separator split
// on it; separator-less layouts slice by group width. ok is false when the part
// count does not match the token count.
func (l Layout) Split(value string) ([]string, bool) {
	if l.Separator != 0 {
		parts := strings.Split(value, string(l.Separator))
		return parts, len(parts) == len(l.Tokens)
	}

	digits := []rune(value)
	parts := make([]string, 0, len(l.Tokens))
	offset := 0
	expanded := len(digits) == l.ExpandedDigitCount() && l.HasShortYear()
	for _, tok := range l.Tokens {
		width := tok.Width
		if tok.Kind == Year && expanded {
			width = 4
		}
		if offset+width > len(digits) {
			return nil, false
		}
		parts = append(parts, string(digits[offset:offset+width]))
		offset += width
	}
	return parts, offset == len(digits)
}

// CountDigits counts ASCII digits in s.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// IsComplete reports whether s holds exactly the number of digits the layout
// expects, regardless of calendar validity. A short-year layout is also
// complete with a four digit year.
func IsComplete(s string, layout Layout) bool {
	n := CountDigits(s)
	if n == 0 {
		return false
	}
	return n == layout.DigitCount() || (layout.HasShortYear() && n == layout.ExpandedDigitCount())
}

// DaysIn returns the number of days in month of year.
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
