package validation

import (
	"strings"
	"time"

	"github.com/goliatone/go-datefield/pkg/dateformat"
	"github.com/goliatone/go-datefield/pkg/mask"
	"github.com/goliatone/go-datefield/pkg/messages"
	"github.com/goliatone/go-datefield/pkg/rangeinput"
	"github.com/goliatone/go-datefield/pkg/render"
)

// Code classifies a validation issue.
type Code string

const (
	CodeRequired       Code = "required-empty"
	CodeInvalidFormat  Code = "invalid-format"
	CodeUnparseable    Code = "unparseable"
	CodeEndBeforeStart Code = "range-end-before-start"
	CodeCustomRule     Code = "custom-rule-violation"
)

// Severity separates blocking errors from warnings.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Issue is one finding of a validation pass.
type Issue struct {
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// State holds the messages a host renders.
type State struct {
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
	Successes []string `json:"successes,omitempty"`
}

// Result is the outcome of one validation pass. Valid and Issues are always
// computed; State is empty when error handling is disabled.
type Result struct {
	Valid      bool          `json:"valid"`
	Incomplete bool          `json:"incomplete,omitempty"`
	HasError   bool          `json:"hasError"`
	Dates      [2]*time.Time `json:"-"`
	Issues     []Issue       `json:"issues,omitempty"`
	State      State         `json:"state"`
}

// Validator runs validation passes for one field configuration. It is
// immutable once built and safe to share.
type Validator struct {
	layout        dateformat.Layout
	returnLayout  *dateformat.Layout
	returnFormat  string
	required      bool
	disableErrors bool
	rangeMode     bool
	rules         []Rule
	warningRules  []Rule
	catalog       messages.Catalog
	success       string
	loc           *time.Location
	placeholder   rune
}

// Option configures a Validator.
type Option func(*Validator)

// WithReturnFormat accepts values typed in an alternate output format as
// well.
func WithReturnFormat(format string) Option {
	return func(v *Validator) {
		v.returnFormat = strings.TrimSpace(format)
	}
}

// Required reports empty values once the user interacted with the field.
func Required(required bool) Option {
	return func(v *Validator) {
		v.required = required
	}
}

// DisableErrorHandling keeps computing validity but reports no messages.
func DisableErrorHandling(disabled bool) Option {
	return func(v *Validator) {
		v.disableErrors = disabled
	}
}

// WithRange validates `start - end` values.
func WithRange(enabled bool) Option {
	return func(v *Validator) {
		v.rangeMode = enabled
	}
}

// WithRules appends error rules.
func WithRules(rules ...Rule) Option {
	return func(v *Validator) {
		v.rules = append(v.rules, rules...)
	}
}

// WithWarningRules appends rules whose violations are reported as warnings.
func WithWarningRules(rules ...Rule) Option {
	return func(v *Validator) {
		v.warningRules = append(v.warningRules, rules...)
	}
}

// WithMessages replaces the message catalog.
func WithMessages(catalog messages.Catalog) Option {
	return func(v *Validator) {
		v.catalog = catalog
	}
}

// WithSuccessMessage reports message when a complete value passes.
func WithSuccessMessage(message string) Option {
	return func(v *Validator) {
		v.success = message
	}
}

// WithLocation sets the location of parsed dates.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// WithPlaceholder sets the rune the mask pads empty slots with. Values still
// holding it are incomplete.
func WithPlaceholder(r rune) Option {
	return func(v *Validator) {
		if r != 0 {
			v.placeholder = r
		}
	}
}

// New builds a Validator for format.
func New(format string, opts ...Option) (*Validator, error) {
	layout, err := dateformat.ParseLayout(format)
	if err != nil {
		return nil, err
	}
	v := &Validator{
		layout:      layout,
		catalog:     messages.Default(),
		loc:         time.UTC,
		placeholder: mask.DefaultPlaceholder,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	if v.returnFormat != "" {
		returnLayout, err := dateformat.ParseLayout(v.returnFormat)
		if err != nil {
			return nil, err
		}
		v.returnLayout = &returnLayout
	}
	return v, nil
}

// Layout returns the primary layout.
func (v *Validator) Layout() dateformat.Layout {
	return v.layout
}

// Complete reports whether every expected half of text holds its digits.
func (v *Validator) Complete(text string) bool {
	parts, ok := v.split(text)
	if !ok {
		return false
	}
	for _, part := range parts {
		if !v.complete(part) {
			return false
		}
	}
	return true
}

// complete reports whether part holds all its digits. A short year typed
// with two digits still shows the two open slots of the four-digit form
// until the value settles, so placeholder runes mean incomplete.
func (v *Validator) complete(part string) bool {
	return !strings.ContainsRune(part, v.placeholder) && dateformat.IsComplete(part, v.layout)
}

// Validate runs one pass over text. interacted gates the required message so
// untouched fields stay quiet.
func (v *Validator) Validate(text string, interacted bool) Result {
	res := Result{Valid: true}

	if v.isEmpty(text) {
		if v.required {
			res.Valid = false
			if interacted {
				res.Issues = append(res.Issues, Issue{Code: CodeRequired, Message: v.catalog.Required})
			}
		}
		return v.finish(res)
	}

	parts, ok := v.split(text)
	if !ok {
		res.Valid, res.Incomplete = false, true
		return v.finish(res)
	}
	for _, part := range parts {
		if !v.complete(part) {
			res.Valid, res.Incomplete = false, true
			return v.finish(res)
		}
	}

	invalidFormat := v.catalog.InvalidFormatMessage(v.layout.Raw)
	for _, part := range parts {
		if !ValidFormat(part, v.layout, v.returnLayout) {
			res.Valid = false
			res.Issues = append(res.Issues, Issue{Code: CodeInvalidFormat, Message: invalidFormat})
			return v.finish(res)
		}
	}

	var dates []time.Time
	for _, part := range parts {
		d, err := v.parse(part)
		if err != nil {
			res.Valid = false
			res.Issues = append(res.Issues, Issue{Code: CodeUnparseable, Message: invalidFormat})
			return v.finish(res)
		}
		dates = append(dates, d)
	}
	for i := range dates {
		res.Dates[i] = &dates[i]
	}

	for _, d := range dates {
		for _, rule := range v.rules {
			if message, ok, applied := evaluate(rule, d, v.catalog, v.layout); applied && !ok {
				res.Valid = false
				res.Issues = append(res.Issues, Issue{Code: CodeCustomRule, Message: message})
			}
		}
		for _, rule := range v.warningRules {
			if message, ok, applied := evaluate(rule, d, v.catalog, v.layout); applied && !ok {
				res.Issues = append(res.Issues, Issue{Code: CodeCustomRule, Severity: SeverityWarning, Message: message})
			}
		}
	}

	if v.rangeMode && !rangeinput.IsValidRange(res.Dates[0], res.Dates[1]) {
		res.Valid = false
		res.Issues = append(res.Issues, Issue{Code: CodeEndBeforeStart, Message: v.catalog.EndBeforeStart})
	}

	if res.Valid && v.success != "" {
		res.State.Successes = []string{v.success}
	}
	return v.finish(res)
}

func (v *Validator) finish(res Result) Result {
	var errs, warnings []string
	for _, issue := range res.Issues {
		if issue.Severity == SeverityWarning {
			warnings = append(warnings, issue.Message)
			continue
		}
		errs = append(errs, issue.Message)
	}
	res.State.Errors = render.MergeMessages(errs)
	res.State.Warnings = render.MergeMessages(warnings)
	res.State.Successes = render.MergeMessages(res.State.Successes)

	if v.disableErrors {
		res.State = State{}
	}
	res.HasError = len(res.State.Errors) > 0
	return res
}

func (v *Validator) isEmpty(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	return v.rangeMode && trimmed == strings.TrimSpace(rangeinput.Separator)
}

// split returns the halves validation looks at. ok is false for a range
// value that has no separator yet.
func (v *Validator) split(text string) ([]string, bool) {
	if !v.rangeMode {
		return []string{strings.TrimSpace(text)}, true
	}
	left, right, found := strings.Cut(text, rangeinput.Separator)
	if !found {
		return []string{strings.TrimSpace(text)}, false
	}
	return []string{strings.TrimSpace(left), strings.TrimSpace(right)}, true
}

func (v *Validator) parse(part string) (time.Time, error) {
	d, err := dateformat.Parse(part, v.layout, v.loc)
	if err == nil || v.returnLayout == nil {
		return d, err
	}
	if alt, altErr := dateformat.Parse(part, *v.returnLayout, v.loc); altErr == nil {
		return alt, nil
	}
	return d, err
}
