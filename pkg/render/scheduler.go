package render

// Scheduler defers work until the host has rendered the current state. Caret
// and focus changes go through it because a text control must show its new
// value before its selection can be moved.
type Scheduler interface {
	AfterRender(fn func())
}

// Immediate runs callbacks synchronously. Useful for hosts without a render
// cycle such as line prompts, and in tests.
type Immediate struct{}

// AfterRender runs fn right away.
func (Immediate) AfterRender(fn func()) {
	if fn != nil {
		fn()
	}
}

// Queue collects callbacks until the host calls Flush after a render pass.
// Callbacks scheduled while flushing wait for the next Flush. A Queue is not
// safe for concurrent use; hosts drive it from their event loop.
type Queue struct {
	pending []func()
}

// AfterRender appends fn to the queue.
func (q *Queue) AfterRender(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Pending reports how many callbacks wait for the next flush.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Flush runs the queued callbacks in scheduling order.
func (q *Queue) Flush() {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
}
