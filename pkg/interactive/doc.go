// Package interactive runs a date field in the terminal, keystroke by
// keystroke, with a calendar overlay navigated by the arrow keys. It is a
// bubbletea host for the field controller.
package interactive
