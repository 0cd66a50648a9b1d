package validation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/goliatone/go-datefield/pkg/dateformat"
)

var patternCache sync.Map // layout.Raw -> *regexp.Regexp

// ValidFormat reports whether value holds only digits and layout separators
// and matches the strict pattern of layout or, when given, returnLayout.
func ValidFormat(value string, layout dateformat.Layout, returnLayout *dateformat.Layout) bool {
	for _, r := range value {
		if r >= '0' && r <= '9' {
			continue
		}
		if layout.IsSeparator(r) {
			continue
		}
		if returnLayout != nil && returnLayout.IsSeparator(r) {
			continue
		}
		return false
	}

	if pattern(layout).MatchString(value) {
		return true
	}
	return returnLayout != nil && pattern(*returnLayout).MatchString(value)
}

func pattern(layout dateformat.Layout) *regexp.Regexp {
	if cached, ok := patternCache.Load(layout.Raw); ok {
		return cached.(*regexp.Regexp)
	}

	var b strings.Builder
	b.WriteString("^")
	for i, tok := range layout.Tokens {
		if i > 0 && layout.Separator != 0 {
			b.WriteString(regexp.QuoteMeta(string(layout.Separator)))
		}
		switch {
		case tok.Kind == dateformat.Year && tok.Width == 2:
			b.WriteString(`(?:\d{2}|\d{4})`)
		case tok.Width == 1:
			b.WriteString(`\d{1,2}`)
		default:
			b.WriteString(`\d{` + string(rune('0'+tok.Width)) + `}`)
		}
	}
	b.WriteString("$")

	compiled := regexp.MustCompile(b.String())
	patternCache.Store(layout.Raw, compiled)
	return compiled
}
