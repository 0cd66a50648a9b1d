package interactive

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/keyboard"
	"github.com/goliatone/go-datefield/pkg/render"
)

// ErrAborted is returned by Run when the user leaves with Esc or Ctrl+C.
var ErrAborted = errors.New("interactive: aborted")

// flushMsg runs the callbacks the field scheduled during the last update,
// once bubbletea has rendered it.
type flushMsg struct{}

func flush() tea.Msg {
	return flushMsg{}
}

// Model is a bubbletea model editing one date field.
type Model struct {
	field   *field.Field
	buf     *field.TextBuffer
	queue   *render.Queue
	keys    *keyboard.Dispatcher
	nav     *keyboard.Navigator
	cal     *calendar
	styles  Styles
	now     func() time.Time
	initial field.Value
	done    bool
	aborted bool
}

// Option configures a Model.
type Option func(*Model)

// WithInitial preloads the field model.
func WithInitial(v field.Value) Option {
	return func(m *Model) {
		m.initial = v
	}
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithNow overrides the clock that anchors the calendar.
func WithNow(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// New builds a Model for cfg.
func New(cfg field.Config, opts ...Option) (*Model, error) {
	m := &Model{
		buf:    field.NewTextBuffer(""),
		queue:  &render.Queue{},
		keys:   &keyboard.Dispatcher{},
		cal:    &calendar{},
		styles: DefaultStyles(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	f, err := field.New(cfg, m.buf,
		field.WithScheduler(m.queue),
		field.WithNow(m.now),
	)
	if err != nil {
		return nil, err
	}
	if err := f.SetModel(m.initial); err != nil {
		return nil, err
	}
	m.field = f
	m.nav = keyboard.NewNavigator(m.keys, m.cal, keyboard.WithScheduler(m.queue))
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.field.HandleFocus()
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flushMsg:
		m.queue.Flush()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit(true)
		}
		if m.cal.visible {
			return m.updateCalendar(msg)
		}
		return m.updateField(msg)
	}
	return m, nil
}

func (m *Model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		m.field.HandlePaste(string(msg.Runes))
		return m, m.afterRender()
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m.quit(true)
	case tea.KeyEnter:
		m.field.HandleBlur()
		if m.field.Result().Valid {
			return m.quit(false)
		}
		m.field.HandleFocus()
		return m, m.afterRender()
	case tea.KeyCtrlO:
		m.cal.open(m.field.CalendarAnchor())
		m.nav.SetVisible(true)
		return m, nil
	}

	// Input read in one chunk arrives as a single message; replay it one
	// keystroke at a time so each caret move lands before the next digit.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			m.press(keyboard.Key{Name: string(r), Alt: msg.Alt})
			m.queue.Flush()
		}
		return m, nil
	}

	m.press(keyFromMsg(msg))
	return m, m.afterRender()
}

func (m *Model) press(k keyboard.Key) {
	if m.field.HandleKeyDown(k) {
		return
	}
	m.defaultAction(k)
}

// defaultAction applies what a text control does with a key the field did
// not prevent.
func (m *Model) defaultAction(k keyboard.Key) {
	start, _ := m.buf.Selection()
	switch k.Name {
	case keyboard.Backspace:
		m.buf.DeleteBackward()
		m.field.HandleInput()
	case keyboard.Delete:
		m.buf.DeleteForward()
		m.field.HandleInput()
	case keyboard.ArrowLeft:
		m.buf.MoveCaret(start - 1)
	case keyboard.ArrowRight:
		m.buf.MoveCaret(start + 1)
	case keyboard.Home:
		m.buf.MoveCaret(0)
	case keyboard.End:
		m.buf.MoveCaret(len([]rune(m.buf.Value())))
	default:
		if _, ok := k.Char(); ok && !k.Chord() {
			m.buf.Type(k.Name)
			m.field.HandleInput()
		}
	}
}

func (m *Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeCalendar()
		return m, nil
	case tea.KeyEnter:
		m.field.Pick(m.cal.active)
		if !m.field.State().EditingSecond {
			m.closeCalendar()
		}
		return m, m.afterRender()
	}
	m.keys.Dispatch(keyFromMsg(msg))
	return m, m.afterRender()
}

func (m *Model) closeCalendar() {
	m.cal.close()
	m.nav.SetVisible(false)
}

func (m *Model) afterRender() tea.Cmd {
	if m.queue.Pending() == 0 {
		return nil
	}
	return flush
}

func (m *Model) quit(aborted bool) (tea.Model, tea.Cmd) {
	m.aborted = aborted
	m.done = true
	m.nav.Close()
	return m, tea.Quit
}

// View implements tea.Model.
func (m *Model) View() string {
	cfg := m.field.Config()
	label := cfg.Label
	if label == "" {
		label = cfg.Name
	}

	var sections []string
	sections = append(sections,
		m.styles.Label.Render(label)+" "+m.styles.Hint.Render(m.field.Placeholder()),
		m.renderText(),
	)

	state := m.field.Messages()
	for _, msg := range state.Errors {
		sections = append(sections, m.styles.Error.Render(msg))
	}
	for _, msg := range state.Warnings {
		sections = append(sections, m.styles.Warning.Render(msg))
	}
	for _, msg := range state.Successes {
		sections = append(sections, m.styles.Success.Render(msg))
	}

	if m.cal.visible {
		st := m.field.State()
		sections = append(sections, m.styles.Calendar.Render(m.cal.renderMonth(m.styles, [2]*time.Time{st.First, st.Second}, m.now())))
		sections = append(sections, m.styles.Hint.Render("arrows move · enter picks · esc closes"))
	} else if !m.done {
		sections = append(sections, m.styles.Hint.Render("enter confirms · ctrl+o calendar · esc cancels"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m *Model) renderText() string {
	text := []rune(m.buf.Value())
	if m.done || m.cal.visible {
		return m.styles.Text.Render(string(text))
	}
	caret, _ := m.buf.Selection()
	under := " "
	var after string
	if caret < len(text) {
		under = string(text[caret])
		after = string(text[caret+1:])
	}
	var b strings.Builder
	b.WriteString(m.styles.Text.Render(string(text[:caret])))
	b.WriteString(m.styles.Caret.Render(under))
	if after != "" {
		b.WriteString(m.styles.Text.Render(after))
	}
	return b.String()
}

// Value returns the field model.
func (m *Model) Value() field.Value {
	return m.field.Model()
}

// Aborted reports whether the user cancelled.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Run edits cfg in the terminal until the user confirms a valid value or
// aborts.
func Run(ctx context.Context, cfg field.Config, opts []Option, programOpts ...tea.ProgramOption) (field.Value, error) {
	m, err := New(cfg, opts...)
	if err != nil {
		return field.Null(), err
	}
	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)
	final, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil {
		return field.Null(), err
	}
	result, ok := final.(*Model)
	if !ok || result.Aborted() {
		return field.Null(), ErrAborted
	}
	return result.Value(), nil
}
