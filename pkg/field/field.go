package field

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-datefield/pkg/dateformat"
	"github.com/goliatone/go-datefield/pkg/keyboard"
	"github.com/goliatone/go-datefield/pkg/messages"
	"github.com/goliatone/go-datefield/pkg/rangeinput"
	"github.com/goliatone/go-datefield/pkg/render"
	"github.com/goliatone/go-datefield/pkg/validation"
)

// Config mirrors the properties a host component passes to a date field.
type Config struct {
	Name                 string            `json:"name" yaml:"name" toml:"name"`
	Label                string            `json:"label,omitempty" yaml:"label,omitempty" toml:"label"`
	Format               string            `json:"format" yaml:"format" toml:"format"`
	ReturnFormat         string            `json:"returnFormat,omitempty" yaml:"returnFormat,omitempty" toml:"returnFormat"`
	Required             bool              `json:"required,omitempty" yaml:"required,omitempty" toml:"required"`
	DisableErrorHandling bool              `json:"disableErrorHandling,omitempty" yaml:"disableErrorHandling,omitempty" toml:"disableErrorHandling"`
	Range                bool              `json:"range,omitempty" yaml:"range,omitempty" toml:"range"`
	Locale               string            `json:"locale,omitempty" yaml:"locale,omitempty" toml:"locale"`
	SuccessMessage       string            `json:"successMessage,omitempty" yaml:"successMessage,omitempty" toml:"successMessage"`
	AutoClamp            *bool             `json:"autoClamp,omitempty" yaml:"autoClamp,omitempty" toml:"autoClamp"`
	AllowedPattern       string            `json:"allowedPattern,omitempty" yaml:"allowedPattern,omitempty" toml:"allowedPattern"`
	Rules                []validation.Rule `json:"-" yaml:"-" toml:"-"`
	WarningRules         []validation.Rule `json:"-" yaml:"-" toml:"-"`
}

// Field drives one Control from host events. It is not safe for concurrent
// use; hosts call it from their event loop.
type Field struct {
	cfg          Config
	control      Control
	handler      *rangeinput.Handler
	validator    *validation.Validator
	filter       *keyboard.Filter
	catalog      messages.Catalog
	outputLayout dateformat.Layout
	scheduler    render.Scheduler
	logger       *slog.Logger
	onChange     func(Value)
	now          func() time.Time
	loc          *time.Location
	autoClamp    bool

	state      rangeinput.State
	previous   string
	model      Value
	result     validation.Result
	interacted bool
	focused    bool
	writing    bool
}

// Option configures a Field.
type Option func(*Field)

// WithScheduler defers caret moves until the host re-rendered the control.
func WithScheduler(s render.Scheduler) Option {
	return func(f *Field) {
		if s != nil {
			f.scheduler = s
		}
	}
}

// WithLogger traces field transitions at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Field) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithOnChange registers the callback that receives model updates.
func WithOnChange(fn func(Value)) Option {
	return func(f *Field) {
		f.onChange = fn
	}
}

// WithLocation sets the location of parsed dates.
func WithLocation(loc *time.Location) Option {
	return func(f *Field) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithNow overrides the clock used to anchor the calendar.
func WithNow(now func() time.Time) Option {
	return func(f *Field) {
		if now != nil {
			f.now = now
		}
	}
}

// New builds a Field for cfg around control.
func New(cfg Config, control Control, opts ...Option) (*Field, error) {
	if control == nil {
		return nil, ErrNoControl
	}
	f := &Field{
		cfg:       cfg,
		control:   control,
		scheduler: render.Immediate{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
		loc:       time.UTC,
		autoClamp: cfg.AutoClamp == nil || *cfg.AutoClamp,
		catalog:   messages.For(cfg.Locale),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	handler, err := rangeinput.NewHandler(cfg.Format,
		rangeinput.WithRange(cfg.Range),
		rangeinput.WithLocation(f.loc),
	)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", cfg.Name, err)
	}
	f.handler = handler
	f.outputLayout = handler.Layout()

	if cfg.ReturnFormat != "" {
		out, err := dateformat.ParseLayout(cfg.ReturnFormat)
		if err != nil {
			return nil, fmt.Errorf("field %q: return format: %w", cfg.Name, err)
		}
		f.outputLayout = out
	}

	validator, err := validation.New(cfg.Format,
		validation.WithReturnFormat(cfg.ReturnFormat),
		validation.Required(cfg.Required),
		validation.DisableErrorHandling(cfg.DisableErrorHandling),
		validation.WithRange(cfg.Range),
		validation.WithRules(cfg.Rules...),
		validation.WithWarningRules(cfg.WarningRules...),
		validation.WithMessages(f.catalog),
		validation.WithSuccessMessage(cfg.SuccessMessage),
		validation.WithLocation(f.loc),
	)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", cfg.Name, err)
	}
	f.validator = validator

	var filterOpts []keyboard.FilterOption
	if cfg.AllowedPattern != "" {
		pattern, err := regexp.Compile(cfg.AllowedPattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		filterOpts = append(filterOpts, keyboard.WithAllowedPattern(pattern))
	}
	f.filter = keyboard.NewFilter(filterOpts...)

	f.previous = control.Value()
	f.result = f.validator.Validate(f.previous, false)
	return f, nil
}

// Config returns the configuration the field was built with.
func (f *Field) Config() Config {
	return f.cfg
}

// Layout returns the layout the field shows.
func (f *Field) Layout() dateformat.Layout {
	return f.handler.Layout()
}

// Placeholder is the display format in the field locale, e.g. JJ/MM/AAAA.
func (f *Field) Placeholder() string {
	return f.catalog.DisplayFormat(f.cfg.Format)
}

// HandleInput reformats the control after its value changed. Input events
// raised while the field itself rewrites the control are ignored.
func (f *Field) HandleInput() {
	if f.writing {
		return
	}
	next := f.control.Value()
	cursor, _ := f.control.Selection()

	res, state := f.handler.Handle(f.state, f.previous, next, cursor)
	text, dates, complete := res.Formatted, res.Dates, res.Complete
	if f.autoClamp {
		if clamped, adjusted := f.handler.Clamp(text); adjusted {
			f.logger.Debug("datefield: clamped day", "field", f.cfg.Name, "from", text, "to", clamped)
			text = clamped
			dates, complete = f.handler.Parse(text)
			state.First, state.Second = dates[0], dates[1]
		}
	}
	f.state = state
	f.interacted = true
	f.write(text)

	if res.MoveCursor {
		pos := res.Cursor
		f.scheduler.AfterRender(func() {
			f.control.SetSelection(pos, pos)
		})
	}

	f.logger.Debug("datefield: input",
		"field", f.cfg.Name,
		"raw", next,
		"text", text,
		"complete", complete,
		"editing_second", state.EditingSecond,
		"completed_first", res.JustCompletedFirst,
	)

	f.revalidate()
	f.emit(f.modelFor(dates))
}

// HandleKeyDown filters a keystroke and reports whether the host must
// prevent its default action.
func (f *Field) HandleKeyDown(k keyboard.Key) bool {
	if !f.filter.Allow(k) {
		return true
	}
	if k.Chord() {
		return false
	}

	value := f.control.Value()
	start, end := f.control.Selection()

	if k.Name == keyboard.Backspace && f.cfg.Range {
		if edit, ok := rangeinput.Backspace(value, start, end); ok {
			dates, _ := f.handler.Parse(edit.Value)
			f.state = rangeinput.State{First: dates[0], Second: dates[1]}
			f.write(edit.Value)
			pos := edit.Cursor
			f.scheduler.AfterRender(func() {
				f.control.SetSelection(pos, pos)
			})
			f.logger.Debug("datefield: removed range separator", "field", f.cfg.Name, "text", edit.Value)
			f.revalidate()
			f.emit(f.modelFor(dates))
			return true
		}
	}

	if start == end {
		if pos, ok := keyboard.CaretSkip(value, start, k); ok {
			f.scheduler.AfterRender(func() {
				f.control.SetSelection(pos, pos)
			})
			return true
		}
	}
	return false
}

// HandlePaste inserts the digits of text at the selection and reformats.
// It always reports true: either the paste is cancelled or the field
// inserted it itself.
func (f *Field) HandlePaste(text string) bool {
	digits, ok := rangeinput.SanitizePaste(text)
	if !ok {
		f.logger.Debug("datefield: rejected paste", "field", f.cfg.Name)
		return true
	}
	start, end := f.control.Selection()
	edit := rangeinput.Insert(f.control.Value(), start, end, digits)

	f.writing = true
	f.control.SetValue(edit.Value)
	f.control.SetSelection(edit.Cursor, edit.Cursor)
	f.writing = false

	f.HandleInput()
	return true
}

// HandleFocus records that the control has focus.
func (f *Field) HandleFocus() {
	f.focused = true
}

// HandleBlur settles the value: short years collapse, impossible days are
// clamped, the value is validated and the range edit state is reset.
func (f *Field) HandleBlur() {
	f.focused = false
	f.interacted = true
	f.settle()
}

// HandleClickOutside settles the value when a click lands outside the field
// and its calendar while the field has focus.
func (f *Field) HandleClickOutside() {
	if !f.focused {
		return
	}
	f.HandleBlur()
}

// Focused reports whether the control has focus.
func (f *Field) Focused() bool {
	return f.focused
}

// Pick applies a date chosen on the calendar. In range mode the first pick
// starts a new range and the second one closes it.
func (f *Field) Pick(date time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, f.loc)
	var start, end *time.Time
	switch {
	case !f.cfg.Range:
		start = &day
	case f.state.First != nil && f.state.Second == nil:
		start, end = f.state.First, &day
	default:
		start = &day
	}

	text := f.handler.Text(start, end)
	f.state = rangeinput.State{First: start, Second: end, EditingSecond: f.cfg.Range && end == nil}
	f.interacted = true
	f.write(text)
	pos := len([]rune(text))
	f.scheduler.AfterRender(func() {
		f.control.SetSelection(pos, pos)
	})
	f.revalidate()
	f.emit(f.modelFor([2]*time.Time{start, end}))
}

// CalendarAnchor returns the date a calendar overlay should open on: the date
// being edited when there is one, today otherwise.
func (f *Field) CalendarAnchor() time.Time {
	switch {
	case f.state.EditingSecond && f.state.Second != nil:
		return *f.state.Second
	case f.state.First != nil:
		return *f.state.First
	}
	now := f.now().In(f.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, f.loc)
}

// SetModel synchronises the field with a model set by the host. Strings may
// use the field format or its return format.
func (f *Field) SetModel(v Value) error {
	var start, end *time.Time
	switch v.Kind {
	case KindNull:
	case KindSingle:
		d, err := f.parseModel(v.Date)
		if err != nil {
			return err
		}
		start = d
	case KindPair:
		s, err := f.parseModel(v.Range[0])
		if err != nil {
			return err
		}
		e, err := f.parseModel(v.Range[1])
		if err != nil {
			return err
		}
		start, end = s, e
	}

	f.state = rangeinput.State{First: start, Second: end}
	f.model = v
	f.write(f.handler.Text(start, end))
	f.revalidate()
	f.logger.Debug("datefield: model set", "field", f.cfg.Name, "model", v.String())
	return nil
}

// Model returns the last model emitted or set.
func (f *Field) Model() Value {
	return f.model
}

// Validate runs a validation pass over the current text.
func (f *Field) Validate() validation.Result {
	f.revalidate()
	return f.result
}

// Check validates text as if the user had entered it, without touching the
// control or the field state.
func (f *Field) Check(text string) validation.Result {
	return f.validator.Validate(text, true)
}

// ModelOf returns the model a valid result would emit, or Null.
func (f *Field) ModelOf(res validation.Result) Value {
	if !res.Valid || res.Dates[0] == nil {
		return Null()
	}
	return f.modelFor(res.Dates)
}

// Result returns the outcome of the latest validation pass.
func (f *Field) Result() validation.Result {
	return f.result
}

// Messages returns the messages of the latest validation pass.
func (f *Field) Messages() validation.State {
	return f.result.State
}

// Text returns the text shown in the control.
func (f *Field) Text() string {
	return f.control.Value()
}

// State returns the range edit state.
func (f *Field) State() rangeinput.State {
	return f.state
}

// Reset clears the text, the edit state and the interaction flag, and emits
// the empty model.
func (f *Field) Reset() {
	f.state.Reset()
	f.interacted = false
	f.write("")
	f.control.SetSelection(0, 0)
	f.revalidate()
	f.emit(Null())
}

func (f *Field) settle() {
	text := f.handler.Finalize(f.control.Value())
	if f.autoClamp {
		if clamped, adjusted := f.handler.Clamp(text); adjusted {
			f.logger.Debug("datefield: clamped day", "field", f.cfg.Name, "from", text, "to", clamped)
			text = clamped
		}
	}
	f.write(text)

	dates, _ := f.handler.Parse(text)
	f.state = rangeinput.State{First: dates[0], Second: dates[1]}
	f.revalidate()
	f.emit(f.modelFor(dates))
	f.logger.Debug("datefield: settled", "field", f.cfg.Name, "text", text, "valid", f.result.Valid)
}

func (f *Field) write(text string) {
	if f.control.Value() != text {
		f.writing = true
		f.control.SetValue(text)
		f.writing = false
	}
	f.previous = text
}

func (f *Field) revalidate() {
	f.result = f.validator.Validate(f.control.Value(), f.interacted)
}

func (f *Field) emit(v Value) {
	if v == f.model {
		return
	}
	f.model = v
	if f.onChange != nil {
		f.onChange(v)
	}
}

// modelFor maps the dates held by the text to the host model. A range with
// one readable half is a pair with an empty string for the other one.
func (f *Field) modelFor(dates [2]*time.Time) Value {
	if dates[0] == nil && dates[1] == nil {
		return Null()
	}
	if !f.cfg.Range {
		if dates[0] == nil {
			return Null()
		}
		return Single(dateformat.Format(*dates[0], f.outputLayout))
	}
	var pair [2]string
	for i, d := range dates {
		if d != nil {
			pair[i] = dateformat.Format(*d, f.outputLayout)
		}
	}
	return Pair(pair[0], pair[1])
}

func (f *Field) parseModel(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if d, err := dateformat.Parse(s, f.handler.Layout(), f.loc); err == nil {
		return &d, nil
	}
	d, err := dateformat.Parse(s, f.outputLayout, f.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidModel, s, err)
	}
	return &d, nil
}
