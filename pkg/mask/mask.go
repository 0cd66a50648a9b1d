package mask

import (
	"github.com/goliatone/go-datefield/pkg/dateformat"
)

// DefaultPlaceholder fills digit slots that have not been typed yet.
const DefaultPlaceholder = '_'

// Result is the formatted value and the caret position to restore.
type Result struct {
	Formatted string
	Cursor    int
}

type options struct {
	cursor      int
	hasCursor   bool
	placeholder rune
	final       bool
}

// Option configures FormatInput.
type Option func(*options)

// WithCursor passes the caret position observed in raw.
func WithCursor(pos int) Option {
	return func(o *options) {
		o.cursor = pos
		o.hasCursor = true
	}
}

// WithPlaceholder overrides the placeholder rune.
func WithPlaceholder(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.placeholder = r
		}
	}
}

// WithFinal marks the value as settled (the field lost focus). A two-digit
// year group typed with exactly two digits then renders without the
// four-slot expansion.
func WithFinal() Option {
	return func(o *options) {
		o.final = true
	}
}

// FormatInput strips everything but digits from raw and lays them out in the
// groups of format, padding missing slots with the placeholder. It never
// fails: an unparseable format returns raw unchanged.
func FormatInput(raw, format string, opts ...Option) Result {
	o := options{placeholder: DefaultPlaceholder}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	layout, err := dateformat.ParseLayout(format)
	if err != nil {
		return Result{Formatted: raw, Cursor: fallbackCursor(o, raw)}
	}
	return formatLayout(raw, layout, o)
}

// FormatLayout is FormatInput for an already parsed layout.
func FormatLayout(raw string, layout dateformat.Layout, opts ...Option) Result {
	o := options{placeholder: DefaultPlaceholder}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if len(layout.Tokens) == 0 {
		return Result{Formatted: raw, Cursor: fallbackCursor(o, raw)}
	}
	return formatLayout(raw, layout, o)
}

func formatLayout(raw string, layout dateformat.Layout, o options) Result {
	runes := []rune(raw)
	cursor := clamp(o.cursor, 0, len(runes))

	digits := make([]rune, 0, len(runes))
	digitsBefore := -1
	for i, r := range runes {
		if o.hasCursor && i == cursor {
			digitsBefore = len(digits)
		}
		if isDigit(r) {
			digits = append(digits, r)
		}
	}
	if digitsBefore < 0 {
		digitsBefore = len(digits)
	}

	if len(digits) == 0 {
		return Result{}
	}

	expand := layout.HasShortYear() && !(o.final && len(digits) == layout.DigitCount())
	limit := layout.DigitCount()
	if expand {
		limit = layout.ExpandedDigitCount()
	}
	if len(digits) > limit {
		digits = digits[:limit]
	}

	out := make([]rune, 0, layout.Len()+2)
	positions := make([]int, len(digits))
	next := 0
	for i, tok := range layout.Tokens {
		if i > 0 && layout.Separator != 0 {
			out = append(out, layout.Separator)
		}
		width := tok.Width
		if tok.Kind == dateformat.Year && width == 2 && expand {
			width = 4
		}
		for slot := 0; slot < width; slot++ {
			if next < len(digits) {
				positions[next] = len(out)
				out = append(out, digits[next])
				next++
				continue
			}
			out = append(out, o.placeholder)
		}
	}

	if !o.hasCursor {
		return Result{Formatted: string(out), Cursor: len(out)}
	}

	typed := len(digits)
	if digitsBefore > typed {
		digitsBefore = typed
	}

	var pos int
	if digitsBefore < typed {
		pos = positions[digitsBefore]
	} else {
		pos = positions[typed-1] + 1
		if pos < len(out) && layout.IsSeparator(out[pos]) {
			pos++
		}
	}
	return Result{Formatted: string(out), Cursor: clamp(pos, 0, len(out))}
}

func fallbackCursor(o options, raw string) int {
	n := len([]rune(raw))
	if !o.hasCursor {
		return n
	}
	return clamp(o.cursor, 0, n)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
