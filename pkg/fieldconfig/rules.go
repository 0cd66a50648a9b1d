package fieldconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/validation"
)

// Rule type names as they appear in definition files.
const (
	RuleNotBeforeDate = "notBeforeDate"
	RuleNotAfterDate  = "notAfterDate"
	RuleExactDate     = "exactDate"
	RuleCustom        = "custom"
)

// Check is a named predicate a custom rule can refer to.
type Check func(time.Time) bool

var builtinChecks = map[string]Check{
	"weekday": func(t time.Time) bool {
		return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
	},
	"weekend": func(t time.Time) bool {
		return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
	},
}

func knownRule(kind string) bool {
	switch kind {
	case RuleNotBeforeDate, RuleNotAfterDate, RuleExactDate, RuleCustom:
		return true
	default:
		return false
	}
}

type resolver struct {
	now    func() time.Time
	loc    *time.Location
	checks map[string]Check
}

// ResolveOption configures Definition.Config.
type ResolveOption func(*resolver)

// WithNow sets the clock `today` dates resolve against.
func WithNow(now func() time.Time) ResolveOption {
	return func(r *resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLocation sets the location of resolved dates.
func WithLocation(loc *time.Location) ResolveOption {
	return func(r *resolver) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithCheck registers a custom check by name. It shadows a built-in check of
// the same name.
func WithCheck(name string, check Check) ResolveOption {
	return func(r *resolver) {
		if check != nil {
			r.checks[name] = check
		}
	}
}

// Config converts d into a field configuration, resolving its rules into
// typed validation rules.
func (d Definition) Config(opts ...ResolveOption) (field.Config, error) {
	r := &resolver{
		now:    time.Now,
		loc:    time.UTC,
		checks: make(map[string]Check, len(builtinChecks)),
	}
	for name, check := range builtinChecks {
		r.checks[name] = check
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	rules, err := r.resolveAll(d.CustomRules)
	if err != nil {
		return field.Config{}, fmt.Errorf("fieldconfig: field %q: %w", d.Name, err)
	}
	warnings, err := r.resolveAll(d.CustomWarningRules)
	if err != nil {
		return field.Config{}, fmt.Errorf("fieldconfig: field %q: %w", d.Name, err)
	}

	return field.Config{
		Name:                 d.Name,
		Label:                d.Label,
		Format:               d.Format,
		ReturnFormat:         d.ReturnFormat,
		Required:             d.Required,
		DisableErrorHandling: d.DisableErrorHandling,
		Range:                d.Range,
		Locale:               d.Locale,
		SuccessMessage:       d.SuccessMessage,
		AutoClamp:            d.AutoClamp,
		AllowedPattern:       d.AllowedPattern,
		Rules:                rules,
		WarningRules:         warnings,
	}, nil
}

func (r *resolver) resolveAll(specs []RuleSpec) ([]validation.Rule, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]validation.Rule, 0, len(specs))
	for _, spec := range specs {
		rule, err := r.resolve(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, rule)
	}
	return out, nil
}

func (r *resolver) resolve(spec RuleSpec) (validation.Rule, error) {
	switch spec.Type {
	case RuleNotBeforeDate, RuleNotAfterDate, RuleExactDate:
		bound, err := r.date(spec.Options.Date)
		if err != nil {
			return nil, err
		}
		switch spec.Type {
		case RuleNotBeforeDate:
			return validation.NotBeforeDate{Date: bound, Message: spec.Options.Message}, nil
		case RuleNotAfterDate:
			return validation.NotAfterDate{Date: bound, Message: spec.Options.Message}, nil
		default:
			return validation.ExactDate{Date: bound, Message: spec.Options.Message}, nil
		}
	case RuleCustom:
		check, ok := r.checks[spec.Options.Check]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownCheck, spec.Options.Check)
		}
		return validation.Custom{Name: spec.Options.Check, Check: check, Message: spec.Options.Message}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownRule, spec.Type)
	}
}

// date resolves a rule date. An empty value yields a nil bound, which the
// validator skips.
func (r *resolver) date(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if rest, ok := strings.CutPrefix(value, "today"); ok {
		offset := 0
		if rest != "" {
			n, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("%w %q", ErrInvalidDate, value)
			}
			offset = n
		}
		now := r.now().In(r.loc)
		d := time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, r.loc)
		return &d, nil
	}
	d, err := time.ParseInLocation("2006-01-02", value, r.loc)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidDate, value)
	}
	return &d, nil
}
