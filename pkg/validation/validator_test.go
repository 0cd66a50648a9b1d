package validation_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/dateformat"
	"github.com/goliatone/go-datefield/pkg/messages"
	"github.com/goliatone/go-datefield/pkg/validation"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func mustValidator(t *testing.T, format string, opts ...validation.Option) *validation.Validator {
	t.Helper()
	v, err := validation.New(format, opts...)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return v
}

func TestValidate_Required(t *testing.T) {
	v := mustValidator(t, "DD/MM/YYYY", validation.Required(true))

	res := v.Validate("", true)
	if diff := cmp.Diff([]string{messages.Default().Required}, res.State.Errors); diff != "" {
		t.Fatalf("required errors mismatch (-want +got):\n%s", diff)
	}
	if res.Valid || !res.HasError {
		t.Fatalf("expected invalid result with reported error: %+v", res)
	}

	quiet := v.Validate("", false)
	if quiet.Valid || quiet.HasError || len(quiet.State.Errors) != 0 {
		t.Fatalf("untouched required field should be invalid but silent: %+v", quiet)
	}

	optional := mustValidator(t, "DD/MM/YYYY")
	if res := optional.Validate("  ", true); !res.Valid || res.HasError {
		t.Fatalf("empty optional field should be valid: %+v", res)
	}
}

func TestValidate_DisableErrorHandling(t *testing.T) {
	v := mustValidator(t, "DD/MM/YYYY", validation.Required(true), validation.DisableErrorHandling(true))

	res := v.Validate("", true)
	if res.HasError || len(res.State.Errors) != 0 {
		t.Fatalf("expected no reported errors: %+v", res)
	}
	if res.Valid {
		t.Fatalf("expected the underlying failure to stay visible in Valid")
	}
	if len(res.Issues) != 1 || res.Issues[0].Code != validation.CodeRequired {
		t.Fatalf("expected internal required issue, got %+v", res.Issues)
	}
}

func TestValidate_IncompleteIsNotAnError(t *testing.T) {
	v := mustValidator(t, "DD/MM/YYYY", validation.Required(true))

	res := v.Validate("01/02/20__", true)
	if !res.Incomplete || res.Valid || res.HasError {
		t.Fatalf("expected incomplete pending state: %+v", res)
	}

	r := mustValidator(t, "DD/MM/YYYY", validation.WithRange(true))
	if res := r.Validate("01/02/2023 - ", true); !res.Incomplete || res.HasError {
		t.Fatalf("expected half range to be incomplete: %+v", res)
	}
	if res := r.Validate("01/02/2023", true); !res.Incomplete {
		t.Fatalf("expected range without separator to be incomplete: %+v", res)
	}
}

func TestValidate_ShortYearWhileTyping(t *testing.T) {
	v := mustValidator(t, "DD/MM/YY")

	res := v.Validate("01/04/23__", true)
	if !res.Incomplete || res.Valid || res.HasError || len(res.Issues) != 0 {
		t.Fatalf("open year slots should be pending, got %+v", res)
	}
	if v.Complete("01/04/23__") {
		t.Fatalf("open year slots must not count as complete")
	}

	res = v.Validate("01/04/23", true)
	if !res.Valid || res.Dates[0] == nil || !res.Dates[0].Equal(*day(2023, time.April, 1)) {
		t.Fatalf("settled short year should parse: %+v", res)
	}

	dots := mustValidator(t, "DD/MM/YY", validation.WithPlaceholder('.'))
	if res := dots.Validate("01/04/23..", true); !res.Incomplete || res.HasError {
		t.Fatalf("custom placeholder should be pending, got %+v", res)
	}
}

func TestValidate_FormatAndParse(t *testing.T) {
	v := mustValidator(t, "DD/MM/YYYY")
	want := messages.Default().InvalidFormatMessage("DD/MM/YYYY")

	res := v.Validate("01-02-2023", true)
	if res.Valid || len(res.Issues) != 1 || res.Issues[0].Code != validation.CodeInvalidFormat {
		t.Fatalf("expected invalid format: %+v", res)
	}
	if diff := cmp.Diff([]string{want}, res.State.Errors); diff != "" {
		t.Fatalf("format errors mismatch (-want +got):\n%s", diff)
	}

	res = v.Validate("31/02/2023", true)
	if res.Valid || len(res.Issues) != 1 || res.Issues[0].Code != validation.CodeUnparseable {
		t.Fatalf("expected unparseable: %+v", res)
	}
	if diff := cmp.Diff([]string{want}, res.State.Errors); diff != "" {
		t.Fatalf("parse errors mismatch (-want +got):\n%s", diff)
	}

	res = v.Validate("28/02/2023", true)
	if !res.Valid || res.HasError || res.Dates[0] == nil || !res.Dates[0].Equal(*day(2023, time.February, 28)) {
		t.Fatalf("expected valid date: %+v", res)
	}
}

func TestValidate_ReturnFormatAccepted(t *testing.T) {
	v := mustValidator(t, "DD/MM/YYYY", validation.WithReturnFormat("DD-MM-YYYY"))

	res := v.Validate("15-06-2023", true)
	if !res.Valid {
		t.Fatalf("expected value in return format to be accepted: %+v", res)
	}
	if !res.Dates[0].Equal(*day(2023, time.June, 15)) {
		t.Fatalf("unexpected date %v", res.Dates[0])
	}
}

func TestValidate_CustomRules(t *testing.T) {
	weekday := validation.Custom{
		Name:    "weekday",
		Check:   func(t time.Time) bool { return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday },
		Message: "Weekdays only.",
	}
	v := mustValidator(t, "DD/MM/YYYY",
		validation.WithMessages(messages.For("en")),
		validation.WithRules(
			validation.NotBeforeDate{Date: day(2023, time.January, 10)},
			validation.NotAfterDate{Date: nil},
			weekday,
		),
		validation.WithWarningRules(validation.ExactDate{Date: day(2023, time.January, 9), Message: "Usually the 9th."}),
	)

	res := v.Validate("07/01/2023", true)
	want := validation.State{
		Errors:   []string{"The date must be on or after 10/01/2023.", "Weekdays only."},
		Warnings: []string{"Usually the 9th."},
	}
	if diff := cmp.Diff(want, res.State); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	if res.Valid {
		t.Fatalf("expected rule violations to invalidate the value")
	}

	res = v.Validate("09/01/2023", true)
	if res.Valid || len(res.State.Warnings) != 0 {
		t.Fatalf("expected lower bound error without warning: %+v", res)
	}

	res = v.Validate("10/01/2023", true)
	if !res.Valid || len(res.State.Errors) != 0 || len(res.State.Warnings) != 1 {
		t.Fatalf("expected valid value with warning: %+v", res)
	}
}

func TestValidate_RangeOrdering(t *testing.T) {
	v := mustValidator(t, "DD/MM/YYYY",
		validation.WithRange(true),
		validation.WithRules(validation.NotBeforeDate{Date: day(2023, time.January, 5), Message: "Too early."}),
		validation.WithSuccessMessage("Looks good."),
	)

	res := v.Validate("10/01/2023 - 01/01/2023", true)
	want := []string{"Too early.", messages.Default().EndBeforeStart}
	if diff := cmp.Diff(want, res.State.Errors); diff != "" {
		t.Fatalf("range errors mismatch (-want +got):\n%s", diff)
	}

	res = v.Validate("10/01/2023 - 10/01/2023", true)
	if !res.Valid {
		t.Fatalf("expected same-day range to be valid: %+v", res)
	}
	if diff := cmp.Diff([]string{"Looks good."}, res.State.Successes); diff != "" {
		t.Fatalf("successes mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_StateIsFreshEachPass(t *testing.T) {
	v := mustValidator(t, "DD/MM/YYYY", validation.Required(true))

	first := v.Validate("", true)
	second := v.Validate("01/01/2023", true)
	if len(first.State.Errors) != 1 || len(second.State.Errors) != 0 {
		t.Fatalf("expected no accumulation across passes: %+v then %+v", first.State, second.State)
	}
}

func TestValidFormat(t *testing.T) {
	layout := dateformat.MustParseLayout("DD/MM/YYYY")
	iso := dateformat.MustParseLayout("YYYY-MM-DD")

	cases := []struct {
		value string
		alt   *dateformat.Layout
		want  bool
	}{
		{"01/02/2023", nil, true},
		{"1/02/2023", nil, false},
		{"01/02/2023 ", nil, false},
		{"2023-02-01", nil, false},
		{"2023-02-01", &iso, true},
		{"01/02-2023", &iso, false},
		{"ab/cd/efgh", nil, false},
	}
	for _, c := range cases {
		if got := validation.ValidFormat(c.value, layout, c.alt); got != c.want {
			t.Fatalf("ValidFormat(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}
