package keyboard

import (
	"time"

	"github.com/goliatone/go-datefield/pkg/render"
)

// Grid is the calendar overlay as seen by the Navigator.
type Grid interface {
	// ActiveDate returns the date of the focused day cell, if any.
	ActiveDate() (time.Time, bool)
	// FocusCell focuses the cell whose date key is key and reports whether
	// such a cell exists.
	FocusCell(key string) bool
	// EditingText reports whether focus sits in a text control inside the
	// overlay, where arrows must keep moving the caret.
	EditingText() bool
}

// Navigator moves focus across a Grid with the arrow keys. It listens to its
// EventSource only while attached; hosts attach it when the overlay becomes
// visible and close it on teardown.
type Navigator struct {
	source      EventSource
	grid        Grid
	scheduler   render.Scheduler
	unsubscribe func()
	attached    bool
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithScheduler defers cell focus until after the next render.
func WithScheduler(s render.Scheduler) NavigatorOption {
	return func(n *Navigator) {
		if s != nil {
			n.scheduler = s
		}
	}
}

// NewNavigator returns a detached Navigator.
func NewNavigator(source EventSource, grid Grid, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		source:    source,
		grid:      grid,
		scheduler: render.Immediate{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Attach subscribes to the event source. It reports false when the navigator
// was already attached or has nothing to listen to.
func (n *Navigator) Attach() bool {
	if n.attached || n.source == nil {
		return false
	}
	n.unsubscribe = n.source.Subscribe(n.Handle)
	n.attached = true
	return true
}

// Detach unsubscribes. It reports false when the navigator was not attached.
func (n *Navigator) Detach() bool {
	if !n.attached {
		return false
	}
	if n.unsubscribe != nil {
		n.unsubscribe()
	}
	n.unsubscribe = nil
	n.attached = false
	return true
}

// SetVisible follows the overlay visibility.
func (n *Navigator) SetVisible(visible bool) {
	if visible {
		n.Attach()
		return
	}
	n.Detach()
}

// Close releases the subscription.
func (n *Navigator) Close() {
	n.Detach()
}

// Attached reports whether the navigator currently listens.
func (n *Navigator) Attached() bool {
	return n.attached
}

// Handle moves focus for an arrow key and reports whether the key was
// consumed. Keys with Alt, Ctrl or Meta held and keys typed into a text
// control pass through.
func (n *Navigator) Handle(k Key) bool {
	if n.grid == nil || k.Modified() || n.grid.EditingText() {
		return false
	}
	current, ok := n.grid.ActiveDate()
	if !ok {
		return false
	}
	next, ok := Step(current, k)
	if !ok {
		return false
	}
	key := DateKey(next)
	n.scheduler.AfterRender(func() {
		n.grid.FocusCell(key)
	})
	return true
}
