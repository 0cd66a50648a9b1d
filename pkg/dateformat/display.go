package dateformat

import "strings"

type displayOptions struct {
	day, month, year rune
}

// DisplayOption customizes DisplayFormat.
type DisplayOption func(*displayOptions)

// WithLetters selects the placeholder letters shown for each token kind.
// Zero runes keep the default for that kind.
func WithLetters(day, month, year rune) DisplayOption {
	return func(o *displayOptions) {
		if day != 0 {
			o.day = day
		}
		if month != 0 {
			o.month = month
		}
		if year != 0 {
			o.year = year
		}
	}
}

// DisplayFormat maps a token format to the placeholder users see, e.g.
// `DD/MM/YYYY` becomes `JJ/MM/AAAA`. Characters other than format letters are
// copied as-is, so an unparseable format degrades gracefully.
func DisplayFormat(format string, opts ...DisplayOption) string {
	o := displayOptions{day: 'J', month: 'M', year: 'A'}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var b strings.Builder
	b.Grow(len(format))
	for _, r := range format {
		switch r {
		case 'D', 'd':
			b.WriteRune(o.day)
		case 'M', 'm':
			b.WriteRune(o.month)
		case 'Y', 'y':
			b.WriteRune(o.year)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
