// Package rangeinput turns typed text into one date or a `start - end` pair.
//
// Edit state for a range (which half is being typed, the halves parsed so
// far) lives in an explicit State value that callers pass into Handle and
// keep from its return, so the handler itself holds no per-field mutable
// state and can be shared between fields with the same format.
//
// With a `YY` layout the year group shows four slots while typing, so the
// first date of a range only completes, and the separator is only appended,
// once its year holds four digits. A two-digit year is settled by Finalize
// when the field loses focus.
package rangeinput
