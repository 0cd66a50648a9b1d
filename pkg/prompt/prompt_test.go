package prompt_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/messages"
	"github.com/goliatone/go-datefield/pkg/prompt"
	"github.com/goliatone/go-datefield/pkg/validation"
)

type stubDriver struct {
	answers  []string
	confirms []bool
	choice   int
	inputs   []prompt.InputConfig
	infos    []string
	err      error
}

func (s *stubDriver) Input(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	s.inputs = append(s.inputs, cfg)
	if s.err != nil {
		return "", s.err
	}
	if len(s.answers) == 0 {
		return "", errors.New("stub: no more answers")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *stubDriver) Confirm(ctx context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	if len(s.confirms) == 0 {
		return cfg.Default, nil
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

func (s *stubDriver) Select(ctx context.Context, cfg prompt.SelectConfig) (int, error) {
	return s.choice, nil
}

func (s *stubDriver) Info(ctx context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func newPrompter(driver *stubDriver, opts ...prompt.Option) *prompt.Prompter {
	opts = append([]prompt.Option{prompt.WithPromptDriver(driver), prompt.WithTheme(prompt.Theme{ErrorPrefix: "! ", InfoPrefix: "~ "})}, opts...)
	return prompt.New(opts...)
}

func TestAskDate_RetriesUntilValid(t *testing.T) {
	driver := &stubDriver{answers: []string{"0101", "", "15062024"}}
	p := newPrompter(driver)
	cfg := field.Config{Name: "birth", Label: "Birth date", Format: "DD/MM/YYYY", ReturnFormat: "YYYY-MM-DD", Required: true}

	got, err := p.AskDate(context.Background(), cfg, field.Null())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != field.Single("2024-06-15") {
		t.Fatalf("unexpected model %v", got)
	}

	want := []string{
		"! " + messages.Default().InvalidFormatMessage("DD/MM/YYYY"),
		"! " + messages.Default().Required,
	}
	if diff := cmp.Diff(want, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}
	if len(driver.inputs) != 3 {
		t.Fatalf("expected three prompts, got %d", len(driver.inputs))
	}
	if driver.inputs[0].Message != "Birth date (JJ/MM/AAAA)" {
		t.Fatalf("unexpected prompt message %q", driver.inputs[0].Message)
	}
}

func TestAskDate_ClampsImpossibleDay(t *testing.T) {
	driver := &stubDriver{answers: []string{"31/02/2023"}}
	got, err := newPrompter(driver).AskDate(context.Background(), field.Config{Name: "d", Format: "DD/MM/YYYY"}, field.Null())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != field.Single("28/02/2023") {
		t.Fatalf("expected clamped day, got %v", got)
	}
}

func TestAskDate_ExplainsWithErrorHandlingDisabled(t *testing.T) {
	driver := &stubDriver{answers: []string{"10/01/2024 - 01/01/2024", "01/01/2024 - 10/01/2024"}}
	cfg := field.Config{Name: "stay", Format: "DD/MM/YYYY", Range: true, DisableErrorHandling: true}

	got, err := newPrompter(driver).AskDate(context.Background(), cfg, field.Null())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != field.Pair("01/01/2024", "10/01/2024") {
		t.Fatalf("unexpected model %v", got)
	}
	if diff := cmp.Diff([]string{"! " + messages.Default().EndBeforeStart}, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}
}

func TestAskDate_Range(t *testing.T) {
	driver := &stubDriver{answers: []string{"01/01/2023", "01/01/2023 - 10/01/2023"}}
	cfg := field.Config{Name: "stay", Format: "DD/MM/YYYY", Range: true, Locale: "en"}

	got, err := newPrompter(driver).AskDate(context.Background(), cfg, field.Null())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != field.Pair("01/01/2023", "10/01/2023") {
		t.Fatalf("unexpected model %v", got)
	}
	if driver.inputs[1].Default != "01/01/2023 - " {
		t.Fatalf("retry should keep the half range, got %q", driver.inputs[1].Default)
	}
	if driver.inputs[0].Message != "stay (DD/MM/YYYY - DD/MM/YYYY)" {
		t.Fatalf("unexpected prompt message %q", driver.inputs[0].Message)
	}
}

func TestAskDate_WarningsNeedConfirmation(t *testing.T) {
	never := validation.Custom{Name: "never", Check: func(time.Time) bool { return false }, Message: "Unusual date."}
	driver := &stubDriver{answers: []string{"01012023", "02012023"}, confirms: []bool{false, true}}
	cfg := field.Config{Name: "d", Format: "DD/MM/YYYY", WarningRules: []validation.Rule{never}}

	got, err := newPrompter(driver).AskDate(context.Background(), cfg, field.Null())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != field.Single("02/01/2023") {
		t.Fatalf("unexpected model %v", got)
	}
	if diff := cmp.Diff([]string{"~ Unusual date.", "~ Unusual date."}, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}
}

func TestAskDate_EmptyOptional(t *testing.T) {
	driver := &stubDriver{answers: []string{"  "}}
	got, err := newPrompter(driver).AskDate(context.Background(), field.Config{Name: "d", Format: "DD/MM/YYYY"}, field.Single("01/01/2020"))
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !got.IsNull() {
		t.Fatalf("expected null model, got %v", got)
	}
	if driver.inputs[0].Default != "01/01/2020" {
		t.Fatalf("initial model should prefill the answer, got %q", driver.inputs[0].Default)
	}
}

func TestAskDate_Errors(t *testing.T) {
	driver := &stubDriver{answers: []string{"", ""}}
	cfg := field.Config{Name: "d", Format: "DD/MM/YYYY", Required: true}
	_, err := newPrompter(driver, prompt.WithMaxAttempts(2)).AskDate(context.Background(), cfg, field.Null())
	if !errors.Is(err, prompt.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if len(driver.infos) != 2 || !strings.HasSuffix(driver.infos[0], messages.Default().Required) {
		t.Fatalf("expected required messages, got %v", driver.infos)
	}

	aborted := &stubDriver{err: prompt.ErrAborted}
	if _, err := newPrompter(aborted).AskDate(context.Background(), cfg, field.Null()); !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	if _, err := newPrompter(&stubDriver{}).AskDate(context.Background(), field.Config{Format: "??"}, field.Null()); err == nil {
		t.Fatalf("expected configuration error")
	}
}

func TestChooseField(t *testing.T) {
	driver := &stubDriver{choice: 1}
	p := newPrompter(driver)

	got, err := p.ChooseField(context.Background(), []string{"birthDate", "stay"})
	if err != nil || got != "stay" {
		t.Fatalf("choose: %q %v", got, err)
	}
	if got, _ := p.ChooseField(context.Background(), []string{"only"}); got != "only" {
		t.Fatalf("single field should be chosen without asking, got %q", got)
	}
	if _, err := p.ChooseField(context.Background(), nil); err == nil {
		t.Fatalf("expected error without fields")
	}
}
