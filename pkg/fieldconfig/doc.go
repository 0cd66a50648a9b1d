// Package fieldconfig loads date field definitions from JSON, YAML and TOML
// files and turns them into field.Config values. Rules are declared the way
// host components receive them, as {type, options} entries, and are resolved
// into typed validation rules when a definition is converted.
package fieldconfig
