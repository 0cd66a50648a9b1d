package rangeinput

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-datefield/pkg/clamp"
	"github.com/goliatone/go-datefield/pkg/dateformat"
	"github.com/goliatone/go-datefield/pkg/mask"
)

// State is the transient edit state of a range field. The zero value is a
// field with nothing typed.
type State struct {
	First         *time.Time
	Second        *time.Time
	EditingSecond bool
}

// Reset clears the state, e.g. when the field is reset or its model replaced.
func (s *State) Reset() {
	*s = State{}
}

// Result describes the text to show after one input event.
type Result struct {
	Formatted          string
	Dates              [2]*time.Time
	Complete           bool
	JustCompletedFirst bool
	// Cursor is meaningful only when MoveCursor is set.
	Cursor     int
	MoveCursor bool
}

// Handler formats input for a single date or a range.
type Handler struct {
	layout      dateformat.Layout
	rangeMode   bool
	loc         *time.Location
	placeholder rune
}

// Option configures a Handler.
type Option func(*Handler)

// WithRange switches the handler to range mode.
func WithRange(enabled bool) Option {
	return func(h *Handler) {
		h.rangeMode = enabled
	}
}

// WithLocation sets the location of parsed dates.
func WithLocation(loc *time.Location) Option {
	return func(h *Handler) {
		if loc != nil {
			h.loc = loc
		}
	}
}

// WithPlaceholder overrides the mask placeholder rune.
func WithPlaceholder(r rune) Option {
	return func(h *Handler) {
		if r != 0 {
			h.placeholder = r
		}
	}
}

// NewHandler builds a Handler for format.
func NewHandler(format string, opts ...Option) (*Handler, error) {
	layout, err := dateformat.ParseLayout(format)
	if err != nil {
		return nil, err
	}
	h := &Handler{
		layout:      layout,
		loc:         time.UTC,
		placeholder: mask.DefaultPlaceholder,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h, nil
}

// Layout returns the parsed field layout.
func (h *Handler) Layout() dateformat.Layout {
	return h.layout
}

// Range reports whether the handler runs in range mode.
func (h *Handler) Range() bool {
	return h.rangeMode
}

// Handle formats next, the raw field value after an input event. previous is
// the value shown before the event and cursor the caret observed in next
// (negative when unknown). The returned State replaces the one passed in.
func (h *Handler) Handle(state State, previous, next string, cursor int) (Result, State) {
	if !h.rangeMode {
		return h.handleSingle(next, cursor)
	}

	switch {
	case strings.HasSuffix(previous, Separator) && strings.HasPrefix(next, previous) && len(next) > len(previous):
		return h.handleSecondHalf(previous, next, cursor)
	case strings.Contains(next, Separator):
		return h.handleSplit(next, cursor)
	default:
		return h.handleFirstHalf(previous, next, cursor)
	}
}

func (h *Handler) handleSingle(next string, cursor int) (Result, State) {
	formatted := h.mask(next, cursor, false)
	d := h.parse(formatted.Formatted)
	res := Result{
		Formatted:  formatted.Formatted,
		Dates:      [2]*time.Time{d, nil},
		Complete:   d != nil,
		Cursor:     formatted.Cursor,
		MoveCursor: cursor >= 0,
	}
	return res, State{First: d}
}

// handleSecondHalf covers typing right after an auto-inserted separator.
func (h *Handler) handleSecondHalf(previous, next string, cursor int) (Result, State) {
	first := strings.TrimSuffix(previous, Separator)
	prefixLen := utf8.RuneCountInString(previous)

	tailCursor := -1
	if cursor >= 0 {
		tailCursor = max(cursor-prefixLen, 0)
	}
	second := h.mask(next[len(previous):], tailCursor, false)

	start, end := h.parse(first), h.parse(second.Formatted)
	res := Result{
		Formatted:  first + Separator + second.Formatted,
		Dates:      [2]*time.Time{start, end},
		Complete:   start != nil && end != nil,
		Cursor:     prefixLen + second.Cursor,
		MoveCursor: cursor >= 0,
	}
	return res, State{First: start, Second: end, EditingSecond: true}
}

// handleSplit covers values that already hold a separator, such as a pasted
// range or an edit inside either half.
func (h *Handler) handleSplit(next string, cursor int) (Result, State) {
	idx := strings.Index(next, Separator)
	left, right := next[:idx], next[idx+len(Separator):]
	leftLen := utf8.RuneCountInString(left)

	editingSecond := cursor > leftLen || (cursor < 0 && right != "")

	leftCursor, rightCursor := -1, -1
	switch {
	case cursor < 0:
	case cursor <= leftLen:
		leftCursor = cursor
	case cursor > leftLen+separatorLen:
		rightCursor = cursor - leftLen - separatorLen
	}

	l := h.mask(left, leftCursor, false)
	r := h.mask(right, rightCursor, false)
	if l.Formatted == "" && leftCursor >= 0 {
		l.Cursor = 0
	}

	prefix := utf8.RuneCountInString(l.Formatted) + separatorLen
	pos := prefix
	switch {
	case leftCursor >= 0:
		pos = l.Cursor
	case rightCursor >= 0:
		pos = prefix + r.Cursor
	}

	start, end := h.parse(l.Formatted), h.parse(r.Formatted)
	res := Result{
		Formatted:  l.Formatted + Separator + r.Formatted,
		Dates:      [2]*time.Time{start, end},
		Complete:   start != nil && end != nil,
		Cursor:     pos,
		MoveCursor: cursor >= 0,
	}
	return res, State{First: start, Second: end, EditingSecond: editingSecond}
}

// handleFirstHalf covers values without a separator.
func (h *Handler) handleFirstHalf(previous, next string, cursor int) (Result, State) {
	target := h.fullDigits()
	digits := dateformat.CountDigits(next)

	if digits > target {
		return h.splitDigits(next, cursor, target)
	}

	formatted := h.mask(next, cursor, false)
	start := h.parse(formatted.Formatted)

	if digits == target && dateformat.CountDigits(previous) < target {
		text := formatted.Formatted + Separator
		res := Result{
			Formatted:          text,
			Dates:              [2]*time.Time{start, nil},
			JustCompletedFirst: true,
			Cursor:             utf8.RuneCountInString(text),
			MoveCursor:         true,
		}
		return res, State{First: start, EditingSecond: true}
	}

	res := Result{
		Formatted:  formatted.Formatted,
		Dates:      [2]*time.Time{start, nil},
		Cursor:     formatted.Cursor,
		MoveCursor: cursor >= 0,
	}
	return res, State{First: start}
}

// splitDigits lays out more digits than one date holds as a full range.
func (h *Handler) splitDigits(next string, cursor, target int) (Result, State) {
	runes := []rune(next)
	only := make([]rune, 0, len(runes))
	digitsBefore := -1
	for i, r := range runes {
		if cursor >= 0 && i == cursor {
			digitsBefore = len(only)
		}
		if r >= '0' && r <= '9' {
			only = append(only, r)
		}
	}
	if digitsBefore < 0 {
		digitsBefore = len(only)
	}

	leftCursor, rightCursor := -1, -1
	if cursor >= 0 {
		if digitsBefore <= target {
			leftCursor = digitsBefore
		} else {
			rightCursor = digitsBefore - target
		}
	}

	l := h.mask(string(only[:target]), leftCursor, false)
	r := h.mask(string(only[target:]), rightCursor, false)

	prefix := utf8.RuneCountInString(l.Formatted) + separatorLen
	pos := prefix + r.Cursor
	if leftCursor >= 0 {
		pos = l.Cursor
	}

	start, end := h.parse(l.Formatted), h.parse(r.Formatted)
	res := Result{
		Formatted:  l.Formatted + Separator + r.Formatted,
		Dates:      [2]*time.Time{start, end},
		Complete:   start != nil && end != nil,
		Cursor:     pos,
		MoveCursor: cursor >= 0,
	}
	return res, State{First: start, Second: end, EditingSecond: true}
}

// Finalize reformats text as a settled value (on blur): short years collapse
// and the caret is not moved.
func (h *Handler) Finalize(text string) string {
	if !h.rangeMode || !strings.Contains(text, Separator) {
		return h.mask(text, -1, true).Formatted
	}
	left, right, _ := strings.Cut(text, Separator)
	l := h.mask(left, -1, true).Formatted
	r := h.mask(right, -1, true).Formatted
	if l == "" && r == "" {
		return ""
	}
	return l + Separator + r
}

// Parse reads the dates held by an already formatted text. complete follows
// the same rule as Result.Complete.
func (h *Handler) Parse(text string) ([2]*time.Time, bool) {
	if !h.rangeMode {
		d := h.parse(text)
		return [2]*time.Time{d, nil}, d != nil
	}
	left, right, found := strings.Cut(text, Separator)
	start := h.parse(left)
	if !found {
		return [2]*time.Time{start, nil}, false
	}
	end := h.parse(right)
	return [2]*time.Time{start, end}, start != nil && end != nil
}

// Clamp corrects impossible days in every complete half of text.
func (h *Handler) Clamp(text string) (string, bool) {
	if !h.rangeMode {
		return h.clampHalf(text)
	}
	left, right, found := strings.Cut(text, Separator)
	if !found {
		return h.clampHalf(text)
	}
	l, lAdjusted := h.clampHalf(left)
	r, rAdjusted := h.clampHalf(right)
	return l + Separator + r, lAdjusted || rAdjusted
}

func (h *Handler) clampHalf(text string) (string, bool) {
	if !dateformat.IsComplete(text, h.layout) {
		return text, false
	}
	res := clamp.ClampLayout(text, h.layout)
	return res.Value, res.Adjusted
}

// Text renders dates the way Handle would show them once typed.
func (h *Handler) Text(start, end *time.Time) string {
	first := ""
	if start != nil {
		first = dateformat.Format(*start, h.layout)
	}
	if !h.rangeMode {
		return first
	}
	if end == nil {
		if first == "" {
			return ""
		}
		return first + Separator
	}
	return first + Separator + dateformat.Format(*end, h.layout)
}

func (h *Handler) mask(raw string, cursor int, final bool) mask.Result {
	opts := []mask.Option{mask.WithPlaceholder(h.placeholder)}
	if cursor >= 0 {
		opts = append(opts, mask.WithCursor(cursor))
	}
	if final {
		opts = append(opts, mask.WithFinal())
	}
	return mask.FormatLayout(raw, h.layout, opts...)
}

func (h *Handler) parse(text string) *time.Time {
	if text == "" {
		return nil
	}
	d, err := dateformat.Parse(text, h.layout, h.loc)
	if err != nil {
		return nil
	}
	return &d
}

// fullDigits is the digit count of one date as the mask lays it out while
// typing.
func (h *Handler) fullDigits() int {
	return h.layout.ExpandedDigitCount()
}
