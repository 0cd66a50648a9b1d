// Package clamp corrects fully typed dates whose day does not exist in the
// month, e.g. 31/04 becomes 30/04. It never fails: anything it cannot read is
// returned untouched.
package clamp

import (
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-datefield/pkg/dateformat"
)

// DayResult is the outcome of ClampDay.
type DayResult struct {
	Day      int
	Adjusted bool
}

// DateResult is the outcome of ClampDate.
type DateResult struct {
	Value    string
	Adjusted bool
}

// ClampDay caps day at the last day of the zero-based monthIndex in year.
func ClampDay(day, monthIndex, year int) DayResult {
	last := dateformat.DaysIn(time.Month(monthIndex+1), year)
	if day > last {
		return DayResult{Day: last, Adjusted: true}
	}
	return DayResult{Day: day}
}

// ClampDate clamps the day group of value typed against format.
func ClampDate(value, format string) DateResult {
	layout, err := dateformat.ParseLayout(format)
	if err != nil {
		return DateResult{Value: value}
	}
	return ClampLayout(value, layout)
}

// ClampLayout is ClampDate for an already parsed layout.
func ClampLayout(value string, layout dateformat.Layout) DateResult {
	unchanged := DateResult{Value: value}
	if strings.TrimSpace(value) == "" {
		return unchanged
	}

	parts, ok := layout.Split(value)
	if !ok {
		return unchanged
	}

	dayIdx := -1
	var day, month, year int
	for i, tok := range layout.Tokens {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return unchanged
		}
		switch tok.Kind {
		case dateformat.Day:
			day, dayIdx = n, i
		case dateformat.Month:
			month = n
		case dateformat.Year:
			year = n
			if tok.Width == 2 && len(parts[i]) == 2 {
				year += 2000
			}
		}
	}

	monthIndex := month - 1
	if dayIdx < 0 || monthIndex < 0 || monthIndex > 11 || day < 1 || year > 9999 {
		return unchanged
	}

	res := ClampDay(day, monthIndex, year)
	if !res.Adjusted {
		return unchanged
	}

	width := layout.Tokens[dayIdx].Width
	dayText := strconv.Itoa(res.Day)
	if width == 2 && len(dayText) < 2 {
		dayText = "0" + dayText
	}
	parts[dayIdx] = dayText

	if layout.Separator != 0 {
		return DateResult{Value: strings.Join(parts, string(layout.Separator)), Adjusted: true}
	}
	return DateResult{Value: strings.Join(parts, ""), Adjusted: true}
}
