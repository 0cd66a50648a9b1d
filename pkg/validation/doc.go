// Package validation runs the validation pass of a date field: required,
// format, parse, custom rules, warning rules and range ordering.
package validation
