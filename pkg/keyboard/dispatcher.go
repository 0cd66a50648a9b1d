package keyboard

// EventSource delivers keydown events to subscribers. A handler returns true
// when it consumed the event and the host should prevent the default action.
type EventSource interface {
	Subscribe(handler func(Key) bool) (unsubscribe func())
}

// Dispatcher is an in-process EventSource. Hosts call Dispatch from their
// event loop; it is not safe for concurrent use.
type Dispatcher struct {
	nextID   int
	order    []int
	handlers map[int]func(Key) bool
}

// Subscribe registers handler. The returned function removes it and may be
// called more than once.
func (d *Dispatcher) Subscribe(handler func(Key) bool) func() {
	if handler == nil {
		return func() {}
	}
	if d.handlers == nil {
		d.handlers = make(map[int]func(Key) bool)
	}
	id := d.nextID
	d.nextID++
	d.handlers[id] = handler
	d.order = append(d.order, id)

	return func() {
		if _, ok := d.handlers[id]; !ok {
			return
		}
		delete(d.handlers, id)
		for i, existing := range d.order {
			if existing == id {
				d.order = append(d.order[:i:i], d.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch offers k to every subscriber in subscription order and reports
// whether any of them consumed it. Handlers removed during dispatch are not
// called.
func (d *Dispatcher) Dispatch(k Key) bool {
	ids := append([]int(nil), d.order...)
	consumed := false
	for _, id := range ids {
		handler, ok := d.handlers[id]
		if !ok {
			continue
		}
		if handler(k) {
			consumed = true
		}
	}
	return consumed
}

// Len reports the number of subscribers.
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}
