// Package keyboard filters keystrokes for a masked date field and moves focus
// across a calendar grid with the arrow keys.
//
// Keys use DOM key names ("Backspace", "ArrowLeft", "7") so web bridges can
// forward events untouched; terminal hosts translate their own key events
// into Key values.
package keyboard
