package interactive

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-datefield/pkg/keyboard"
)

// calendar is the overlay grid. The active cell stands in for DOM focus.
type calendar struct {
	visible bool
	active  time.Time
}

func (c *calendar) ActiveDate() (time.Time, bool) {
	return c.active, c.visible
}

func (c *calendar) FocusCell(key string) bool {
	t, err := time.ParseInLocation(keyboard.DateKeyLayout, key, c.active.Location())
	if err != nil {
		return false
	}
	c.active = t
	return true
}

// EditingText is always false: the overlay holds no text control.
func (c *calendar) EditingText() bool {
	return false
}

func (c *calendar) open(at time.Time) {
	c.active = at
	c.visible = true
}

func (c *calendar) close() {
	c.visible = false
}

// renderMonth draws the month of c.active, weeks starting on Monday.
func (c *calendar) renderMonth(styles Styles, selected [2]*time.Time, today time.Time) string {
	month := c.active
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	lines := []string{
		styles.CalendarTitle.Render(first.Format("January 2006")),
		styles.CalendarHeader.Render("Mo Tu We Th Fr Sa Su"),
	}

	startOffset := (int(first.Weekday()) + 6) % 7
	rows := (startOffset + daysInMonth + 6) / 7
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, styles.Day.Render("  "))
				continue
			}
			date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, month.Location())
			cells = append(cells, c.renderDay(styles, date, selected, today))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (c *calendar) renderDay(styles Styles, date time.Time, selected [2]*time.Time, today time.Time) string {
	style := styles.Day
	if sameDay(date, today) {
		style = style.Inherit(styles.Today)
	}
	for _, s := range selected {
		if s != nil && sameDay(*s, date) {
			style = style.Inherit(styles.Selected)
		}
	}
	if sameDay(date, c.active) {
		style = styles.Active.Inherit(style)
	}
	return style.Render(fmt.Sprintf("%2d", date.Day()))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
