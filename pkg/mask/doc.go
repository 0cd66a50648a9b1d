// Package mask formats raw keystrokes into a masked date string shaped like
// the field layout (`01/0_/____`) and remaps the caret so typing feels
// continuous across inserted separators and placeholder slots.
//
// Positions are rune offsets into the value.
package mask
