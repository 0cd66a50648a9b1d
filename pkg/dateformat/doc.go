// Package dateformat parses date token templates such as `DD/MM/YYYY` into a
// Layout describing digit groups, their order and the single literal
// separator. Layouts drive every other package in the module: the masked
// formatter walks their groups, the clamp and validation packages use them to
// split typed values, and Parse/Format convert between typed text and
// time.Time values.
package dateformat
