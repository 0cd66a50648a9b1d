// Package field is the host controller of a masked date field. A host (a
// browser bridge, a terminal UI, a line prompt) owns a Control holding the
// text and its selection, forwards input, keydown, paste, focus and blur
// events to a Field, and renders the messages of the latest validation pass.
//
// The Field reformats the control on every input event, keeps the caret
// continuous across inserted separators, clamps impossible days, drives the
// range edit state and emits the model (a single date, a pair or null) when
// the value is complete or cleared. Caret moves go through a
// render.Scheduler so hosts with a render cycle can apply them after the new
// text is on screen.
package field
