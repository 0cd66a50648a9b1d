// Package prompt asks for dates on a line-oriented terminal.
package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/messages"
	"github.com/goliatone/go-datefield/pkg/render"
	"github.com/goliatone/go-datefield/pkg/validation"
)

// Theme carries optional prefixes for printed messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Prompter asks for dates on a line-oriented terminal. Each answer goes
// through the same field controller a keystroke-level host uses, so masking,
// clamping and validation behave identically.
type Prompter struct {
	driver      PromptDriver
	theme       Theme
	maxAttempts int
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(p *Prompter) {
		p.theme = theme
	}
}

// WithMaxAttempts bounds how many invalid answers are accepted before
// AskDate gives up. Zero means no limit.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		if n >= 0 {
			p.maxAttempts = n
		}
	}
}

// New returns a Prompter using survey on the process terminal by default.
func New(options ...Option) *Prompter {
	p := &Prompter{
		driver: NewSurveyDriver(),
		theme:  Theme{InfoPrefix: "  ", ErrorPrefix: "✗ "},
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// ChooseField asks which of names to fill in.
func (p *Prompter) ChooseField(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 {
		return "", ErrNoFields
	}
	if len(names) == 1 {
		return names[0], nil
	}
	idx, err := p.driver.Select(ctx, SelectConfig{Message: "Field", Options: names})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(names) {
		return "", fmt.Errorf("prompt: invalid selection %d", idx)
	}
	return names[idx], nil
}

// AskDate prompts until the answer is a valid date (or range) for cfg and
// returns the emitted model. An empty answer to an optional field yields the
// null model. Answers that only raise warnings need a confirmation.
func (p *Prompter) AskDate(ctx context.Context, cfg field.Config, initial field.Value) (field.Value, error) {
	buf := field.NewTextBuffer("")
	f, err := field.New(cfg, buf)
	if err != nil {
		return field.Null(), err
	}
	if err := f.SetModel(initial); err != nil {
		return field.Null(), err
	}
	catalog := messages.For(cfg.Locale)

	label := cfg.Label
	if label == "" {
		label = cfg.Name
	}
	message := fmt.Sprintf("%s (%s)", label, f.Placeholder())
	if cfg.Range {
		message = fmt.Sprintf("%s (%s - %s)", label, f.Placeholder(), f.Placeholder())
	}

	for attempt := 1; ; attempt++ {
		answer, err := p.driver.Input(ctx, InputConfig{
			Message: message,
			Default: f.Text(),
			Help:    "Digits only; separators are inserted for you.",
		})
		if err != nil {
			return field.Null(), err
		}

		f.Reset()
		if strings.TrimSpace(answer) != "" {
			f.HandleFocus()
			f.HandlePaste(answer)
		}
		f.HandleBlur()
		res := f.Result()

		switch {
		case res.Valid && len(res.State.Warnings) == 0:
			return f.Model(), nil
		case res.Valid:
			if err := p.info(ctx, p.theme.InfoPrefix, res.State.Warnings); err != nil {
				return field.Null(), err
			}
			keep, err := p.driver.Confirm(ctx, ConfirmConfig{Message: "Keep this date?", Default: true})
			if err != nil {
				return field.Null(), err
			}
			if keep {
				return f.Model(), nil
			}
		case res.Incomplete:
			if err := p.info(ctx, p.theme.ErrorPrefix, []string{catalog.InvalidFormatMessage(cfg.Format)}); err != nil {
				return field.Null(), err
			}
		default:
			if err := p.info(ctx, p.theme.ErrorPrefix, rejection(res, catalog, cfg.Format)); err != nil {
				return field.Null(), err
			}
		}

		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return field.Null(), ErrTooManyAttempts
		}
	}
}

// rejection returns the lines explaining why res was refused. A field with
// error handling disabled reports no messages, so the issues are used.
func rejection(res validation.Result, catalog messages.Catalog, format string) []string {
	if len(res.State.Errors) > 0 {
		return res.State.Errors
	}
	var lines []string
	for _, issue := range res.Issues {
		if issue.Severity == validation.SeverityError {
			lines = append(lines, issue.Message)
		}
	}
	if lines = render.MergeMessages(lines); len(lines) > 0 {
		return lines
	}
	return []string{catalog.InvalidFormatMessage(format)}
}

func (p *Prompter) info(ctx context.Context, prefix string, lines []string) error {
	for _, line := range lines {
		if err := p.driver.Info(ctx, prefix+line); err != nil {
			return err
		}
	}
	return nil
}
