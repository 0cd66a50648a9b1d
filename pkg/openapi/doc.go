// Package openapi discovers date fields in OpenAPI documents. Request body
// properties declared as `format: date` (or arrays of two such dates, read as
// ranges) become fieldconfig definitions; an `x-datefield` extension on the
// property overrides any definition attribute.
package openapi
