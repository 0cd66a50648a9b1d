package keyboard

import "time"

// DateKeyLayout is the layout of the date attribute that identifies a
// calendar cell.
const DateKeyLayout = "2006-01-02"

// Step returns the date an arrow key moves to from current: one day
// horizontally, one week vertically. Calendar arithmetic keeps month ends and
// DST changes correct.
func Step(current time.Time, k Key) (time.Time, bool) {
	switch k.Name {
	case ArrowLeft:
		return current.AddDate(0, 0, -1), true
	case ArrowRight:
		return current.AddDate(0, 0, 1), true
	case ArrowUp:
		return current.AddDate(0, 0, -7), true
	case ArrowDown:
		return current.AddDate(0, 0, 7), true
	default:
		return current, false
	}
}

// DateKey formats t as a cell key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}
