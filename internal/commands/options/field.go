// Package options defines the shared flags of the datefield commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Keys of the settings shared by every command. They double as flag names,
// config file keys and, upper-cased with a DATEFIELD_ prefix, environment
// variables.
const (
	KeyFormat       = "format"
	KeyReturnFormat = "return-format"
	KeyRange        = "range"
	KeyRequired     = "required"
	KeyLocale       = "locale"
	KeyField        = "field"
	KeyConfigDir    = "config-dir"
	KeyOpenAPI      = "openapi"
	KeyVerbose      = "verbose"
)

// FieldOptions describes the field a command works on, either inline or by
// name from the configured definitions.
type FieldOptions struct {
	Format       string
	ReturnFormat string
	Range        bool
	Required     bool
	Locale       string
	Field        string
	ConfigDir    string
	OpenAPI      string
}

// AddFieldArgs registers the field flags on cmd and its children.
func AddFieldArgs(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(KeyFormat, "DD/MM/YYYY",
		"Display format of the field, e.g. DD/MM/YYYY or YYYY-MM-DD.")
	flags.String(KeyReturnFormat, "",
		"Format of the emitted model. Defaults to the display format.")
	flags.Bool(KeyRange, false,
		Wrap80(`Edit a date range ("start - end") instead of a single date.`))
	flags.Bool(KeyRequired, false,
		"Reject an empty value.")
	flags.String(KeyLocale, "fr",
		"Locale of messages and placeholder letters (fr, en, de).")
	flags.StringP(KeyField, "f", "",
		"Use a named field from the configured definitions instead of the inline flags.")
	flags.String(KeyConfigDir, "",
		Wrap80("Directory of field definition files (.json, .yaml, .toml). The built-in definitions are used when empty."))
	flags.String(KeyOpenAPI, "",
		"OpenAPI document to discover date fields from.")
}

// FieldFrom reads the field options through v, so flags win over the
// environment, which wins over the config file.
func FieldFrom(v *viper.Viper) FieldOptions {
	return FieldOptions{
		Format:       strings.TrimSpace(v.GetString(KeyFormat)),
		ReturnFormat: strings.TrimSpace(v.GetString(KeyReturnFormat)),
		Range:        v.GetBool(KeyRange),
		Required:     v.GetBool(KeyRequired),
		Locale:       strings.TrimSpace(v.GetString(KeyLocale)),
		Field:        strings.TrimSpace(v.GetString(KeyField)),
		ConfigDir:    strings.TrimSpace(v.GetString(KeyConfigDir)),
		OpenAPI:      strings.TrimSpace(v.GetString(KeyOpenAPI)),
	}
}

// Definitions reports whether field definitions were asked for, either by
// name or through a definition source.
func (o FieldOptions) Definitions() bool {
	return o.Field != "" || o.ConfigDir != "" || o.OpenAPI != ""
}
