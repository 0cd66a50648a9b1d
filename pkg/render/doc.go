// Package render holds what hosts need around their render cycle: deferred
// callbacks and message normalisation.
package render
