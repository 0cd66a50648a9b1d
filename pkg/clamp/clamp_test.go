package clamp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/clamp"
)

func TestClampDay(t *testing.T) {
	tests := []struct {
		day, month, year int
		want             clamp.DayResult
	}{
		{31, 3, 2023, clamp.DayResult{Day: 30, Adjusted: true}},
		{29, 1, 2024, clamp.DayResult{Day: 29}},
		{29, 1, 2023, clamp.DayResult{Day: 28, Adjusted: true}},
		{31, 11, 2023, clamp.DayResult{Day: 31}},
		{15, 5, 2023, clamp.DayResult{Day: 15}},
	}
	for _, tt := range tests {
		got := clamp.ClampDay(tt.day, tt.month, tt.year)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("ClampDay(%d, %d, %d) mismatch (-want +got):\n%s", tt.day, tt.month, tt.year, diff)
		}
	}
}

func TestClampDate(t *testing.T) {
	tests := []struct {
		value, format string
		want          clamp.DateResult
	}{
		{"31/04/2023", "DD/MM/YYYY", clamp.DateResult{Value: "30/04/2023", Adjusted: true}},
		{"30/02/2024", "DD/MM/YYYY", clamp.DateResult{Value: "29/02/2024", Adjusted: true}},
		{"2023-02-31", "YYYY-MM-DD", clamp.DateResult{Value: "2023-02-28", Adjusted: true}},
		{"31/9/2023", "D/M/YYYY", clamp.DateResult{Value: "30/9/2023", Adjusted: true}},
		{"31/02/23", "DD/MM/YY", clamp.DateResult{Value: "28/02/23", Adjusted: true}},
		{"31042023", "DDMMYYYY", clamp.DateResult{Value: "30042023", Adjusted: true}},
		{"15/04/2023", "DD/MM/YYYY", clamp.DateResult{Value: "15/04/2023"}},
		{"", "DD/MM/YYYY", clamp.DateResult{Value: ""}},
		{"31/13/2023", "DD/MM/YYYY", clamp.DateResult{Value: "31/13/2023"}},
		{"00/04/2023", "DD/MM/YYYY", clamp.DateResult{Value: "00/04/2023"}},
		{"31/04/20__", "DD/MM/YYYY", clamp.DateResult{Value: "31/04/20__"}},
		{"31/04", "DD/MM/YYYY", clamp.DateResult{Value: "31/04"}},
		{"31/04/2023", "not a format", clamp.DateResult{Value: "31/04/2023"}},
	}
	for _, tt := range tests {
		got := clamp.ClampDate(tt.value, tt.format)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("ClampDate(%q, %q) mismatch (-want +got):\n%s", tt.value, tt.format, diff)
		}
	}
}
