package validation

import (
	"time"

	"github.com/goliatone/go-datefield/pkg/dateformat"
	"github.com/goliatone/go-datefield/pkg/messages"
)

// Rule is a custom constraint on a parsed date. The set of rules is closed:
// NotBeforeDate, NotAfterDate, ExactDate and Custom.
type Rule interface {
	isRule()
}

// NotBeforeDate rejects dates earlier than Date. A nil Date means the bound is
// not known yet (e.g. it follows another field) and the rule is skipped.
type NotBeforeDate struct {
	Date    *time.Time
	Message string
}

// NotAfterDate rejects dates later than Date. A nil Date skips the rule.
type NotAfterDate struct {
	Date    *time.Time
	Message string
}

// ExactDate rejects any date other than Date. A nil Date skips the rule.
type ExactDate struct {
	Date    *time.Time
	Message string
}

// Custom delegates to Check. A nil Check skips the rule.
type Custom struct {
	Name    string
	Check   func(time.Time) bool
	Message string
}

func (NotBeforeDate) isRule() {}
func (NotAfterDate) isRule()  {}
func (ExactDate) isRule()     {}
func (Custom) isRule()        {}

// evaluate reports whether value satisfies rule. applied is false when the
// rule was skipped.
func evaluate(rule Rule, value time.Time, catalog messages.Catalog, layout dateformat.Layout) (message string, ok, applied bool) {
	switch r := rule.(type) {
	case NotBeforeDate:
		if r.Date == nil {
			return "", true, false
		}
		return pick(r.Message, catalog.NotBeforeMessage(*r.Date, layout)), dayOf(value) >= dayOf(*r.Date), true
	case *NotBeforeDate:
		if r == nil {
			return "", true, false
		}
		return evaluate(*r, value, catalog, layout)
	case NotAfterDate:
		if r.Date == nil {
			return "", true, false
		}
		return pick(r.Message, catalog.NotAfterMessage(*r.Date, layout)), dayOf(value) <= dayOf(*r.Date), true
	case *NotAfterDate:
		if r == nil {
			return "", true, false
		}
		return evaluate(*r, value, catalog, layout)
	case ExactDate:
		if r.Date == nil {
			return "", true, false
		}
		return pick(r.Message, catalog.ExactMessage(*r.Date, layout)), dayOf(value) == dayOf(*r.Date), true
	case *ExactDate:
		if r == nil {
			return "", true, false
		}
		return evaluate(*r, value, catalog, layout)
	case Custom:
		if r.Check == nil {
			return "", true, false
		}
		return pick(r.Message, r.Name), r.Check(value), true
	case *Custom:
		if r == nil {
			return "", true, false
		}
		return evaluate(*r, value, catalog, layout)
	default:
		return "", true, false
	}
}

// dayOf orders calendar days regardless of clock time or location.
func dayOf(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func pick(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
