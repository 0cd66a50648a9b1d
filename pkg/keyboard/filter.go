package keyboard

import "regexp"

var controlKeys = map[string]bool{
	Backspace:  true,
	Delete:     true,
	ArrowLeft:  true,
	ArrowRight: true,
	ArrowUp:    true,
	ArrowDown:  true,
	Home:       true,
	End:        true,
	Tab:        true,
	Escape:     true,
	Enter:      true,
	Shift:      true,
	Control:    true,
	Alt:        true,
	Meta:       true,
	CapsLock:   true,
}

// Filter decides which keydown events reach a date field.
type Filter struct {
	allowed *regexp.Regexp
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// WithAllowedPattern accepts printable characters matching pattern instead of
// digits only. A nil pattern restores the default.
func WithAllowedPattern(pattern *regexp.Regexp) FilterOption {
	return func(f *Filter) {
		f.allowed = pattern
	}
}

// NewFilter returns a Filter accepting digits unless configured otherwise.
func NewFilter(opts ...FilterOption) *Filter {
	f := &Filter{}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Allow reports whether the default action of k should proceed. Ctrl and Meta
// chords always pass so copy, paste and undo keep working.
func (f *Filter) Allow(k Key) bool {
	if k.Chord() {
		return true
	}
	if controlKeys[k.Name] {
		return true
	}
	if _, ok := k.Char(); !ok {
		return false
	}
	if f != nil && f.allowed != nil {
		return f.allowed.MatchString(k.Name)
	}
	return k.IsDigit()
}

// IsControl reports whether name is one of the navigation or editing keys the
// filter always lets through.
func IsControl(name string) bool {
	return controlKeys[name]
}
