package mask_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/mask"
)

func TestFormatInput(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		format string
		opts   []mask.Option
		want   mask.Result
	}{
		{
			name:   "empty stays empty",
			raw:    "",
			format: "DD/MM/YYYY",
			want:   mask.Result{},
		},
		{
			name:   "garbage without digits",
			raw:    "ab/",
			format: "DD/MM/YYYY",
			opts:   []mask.Option{mask.WithCursor(3)},
			want:   mask.Result{},
		},
		{
			name:   "first group complete skips separator",
			raw:    "01",
			format: "DD/MM/YYYY",
			opts:   []mask.Option{mask.WithCursor(2)},
			want:   mask.Result{Formatted: "01/__/____", Cursor: 3},
		},
		{
			name:   "partial month",
			raw:    "010",
			format: "DD/MM/YYYY",
			opts:   []mask.Option{mask.WithCursor(3)},
			want:   mask.Result{Formatted: "01/0_/____", Cursor: 4},
		},
		{
			name:   "typing past placeholders",
			raw:    "01/0_/____2",
			format: "DD/MM/YYYY",
			opts:   []mask.Option{mask.WithCursor(11)},
			want:   mask.Result{Formatted: "01/02/____", Cursor: 6},
		},
		{
			name:   "caret on an existing digit",
			raw:    "01/2/2023",
			format: "DD/MM/YYYY",
			opts:   []mask.Option{mask.WithCursor(3)},
			want:   mask.Result{Formatted: "01/22/023_", Cursor: 3},
		},
		{
			name:   "no cursor defaults to end",
			raw:    "01/02/2023",
			format: "DD/MM/YYYY",
			want:   mask.Result{Formatted: "01/02/2023", Cursor: 10},
		},
		{
			name:   "extra digits are truncated",
			raw:    "010220231234",
			format: "DD/MM/YYYY",
			opts:   []mask.Option{mask.WithCursor(12)},
			want:   mask.Result{Formatted: "01/02/2023", Cursor: 10},
		},
		{
			name:   "iso layout",
			raw:    "20231",
			format: "YYYY-MM-DD",
			opts:   []mask.Option{mask.WithCursor(5)},
			want:   mask.Result{Formatted: "2023-1_-__", Cursor: 6},
		},
		{
			name:   "short year expands while typing",
			raw:    "010223",
			format: "DD/MM/YY",
			want:   mask.Result{Formatted: "01/02/23__", Cursor: 10},
		},
		{
			name:   "short year collapses when final",
			raw:    "010223",
			format: "DD/MM/YY",
			opts:   []mask.Option{mask.WithFinal()},
			want:   mask.Result{Formatted: "01/02/23", Cursor: 8},
		},
		{
			name:   "short year accepts four digits",
			raw:    "01021999",
			format: "DD/MM/YY",
			opts:   []mask.Option{mask.WithFinal()},
			want:   mask.Result{Formatted: "01/02/1999", Cursor: 10},
		},
		{
			name:   "custom placeholder",
			raw:    "1",
			format: "DD.MM.YYYY",
			opts:   []mask.Option{mask.WithPlaceholder('-'), mask.WithCursor(1)},
			want:   mask.Result{Formatted: "1-.--.----", Cursor: 1},
		},
		{
			name:   "invalid format returns input",
			raw:    "hello",
			format: "XX",
			opts:   []mask.Option{mask.WithCursor(99)},
			want:   mask.Result{Formatted: "hello", Cursor: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mask.FormatInput(tt.raw, tt.format, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("format mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatInput_Idempotent(t *testing.T) {
	for _, format := range []string{"DD/MM/YYYY", "YYYY-MM-DD", "MM.DD.YYYY", "DDMMYYYY"} {
		for _, raw := range []string{"1", "12", "1203", "120320", "12032024", "1203202499"} {
			first := mask.FormatInput(raw, format)
			second := mask.FormatInput(first.Formatted, format)
			if first != second {
				t.Fatalf("%s %q: second pass %+v differs from first %+v", format, raw, second, first)
			}
		}
	}
}

func TestFormatInput_LengthAndFill(t *testing.T) {
	const format = "DD/MM/YYYY"
	digits := "31122023"
	previousFilled := 0
	for i := 1; i <= len(digits); i++ {
		got := mask.FormatInput(digits[:i], format).Formatted
		if len(got) != len(format) {
			t.Fatalf("%q: length %d, want %d", got, len(got), len(format))
		}
		filled := len(format) - strings.Count(got, "_") - strings.Count(got, "/")
		if filled <= previousFilled {
			t.Fatalf("%q: expected more digits filled than %d", got, previousFilled)
		}
		previousFilled = filled
	}
}
