package interactive

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the editor.
type Styles struct {
	Label          lipgloss.Style
	Text           lipgloss.Style
	Caret          lipgloss.Style
	Hint           lipgloss.Style
	Error          lipgloss.Style
	Warning        lipgloss.Style
	Success        lipgloss.Style
	CalendarTitle  lipgloss.Style
	CalendarHeader lipgloss.Style
	Day            lipgloss.Style
	Today          lipgloss.Style
	Selected       lipgloss.Style
	Active         lipgloss.Style
	Calendar       lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Label:          lipgloss.NewStyle().Bold(true),
		Text:           lipgloss.NewStyle(),
		Caret:          lipgloss.NewStyle().Reverse(true),
		Hint:           lipgloss.NewStyle().Faint(true),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Success:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		CalendarTitle:  lipgloss.NewStyle().Bold(true),
		CalendarHeader: lipgloss.NewStyle().Faint(true),
		Day:            lipgloss.NewStyle(),
		Today:          lipgloss.NewStyle().Underline(true),
		Selected:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Active:         lipgloss.NewStyle().Reverse(true),
		Calendar:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
