package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-datefield/pkg/fieldconfig"
)

// ExtensionKey is the schema extension carrying field attributes.
const ExtensionKey = "x-datefield"

// WireFormat is the layout of `format: date` values on the wire (RFC 3339
// full-date).
const WireFormat = "YYYY-MM-DD"

// Field is a date property found in a document.
type Field struct {
	Operation  string
	Method     string
	Path       string
	Property   string
	Definition fieldconfig.Definition
}

// Options tunes discovery.
type Options struct {
	// ResolveReferences validates the document and allows external refs.
	ResolveReferences bool
	// DefaultFormat is the display format of fields without an x-datefield
	// format.
	DefaultFormat string
	// IncludeComponents also scans components.schemas, for documents that
	// carry no paths.
	IncludeComponents bool
}

// Option mutates Options.
type Option func(*Options)

// WithReferenceResolution toggles reference resolution and validation.
func WithReferenceResolution(enabled bool) Option {
	return func(opts *Options) {
		opts.ResolveReferences = enabled
	}
}

// WithDefaultFormat sets the display format of discovered fields.
func WithDefaultFormat(format string) Option {
	return func(opts *Options) {
		if strings.TrimSpace(format) != "" {
			opts.DefaultFormat = strings.TrimSpace(format)
		}
	}
}

// WithComponents toggles scanning of components.schemas.
func WithComponents(enabled bool) Option {
	return func(opts *Options) {
		opts.IncludeComponents = enabled
	}
}

// Discover loads raw with kin-openapi and returns its date fields sorted by
// definition name.
func Discover(ctx context.Context, raw []byte, options ...Option) ([]Field, error) {
	opts := Options{ResolveReferences: true, DefaultFormat: "DD/MM/YYYY"}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if opts.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	w := walker{opts: opts, seen: make(map[string]bool)}
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, op := range item.Operations() {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				w.operation(method, path, op)
			}
		}
	}
	if opts.IncludeComponents && spec.Components != nil {
		for name, ref := range spec.Components.Schemas {
			w.walk(scope{operation: name, source: "openapi:components/" + name}, "", ref, false)
		}
	}
	if w.err != nil {
		return nil, w.err
	}

	sort.Slice(w.fields, func(i, j int) bool {
		return w.fields[i].Definition.Name < w.fields[j].Definition.Name
	})
	return w.fields, nil
}

// AddTo registers the definitions of fields in store.
func AddTo(store *fieldconfig.Store, fields []Field) error {
	for _, f := range fields {
		if err := store.Add(f.Definition); err != nil {
			return err
		}
	}
	return nil
}

type scope struct {
	operation string
	method    string
	path      string
	source    string
}

type walker struct {
	opts   Options
	fields []Field
	seen   map[string]bool
	err    error
}

func (w *walker) operation(method, path string, op *openapi3.Operation) {
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return
	}
	id := op.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	sc := scope{
		operation: id,
		method:    strings.ToUpper(method),
		path:      path,
		source:    "openapi:" + strings.ToUpper(method) + " " + path,
	}

	content := op.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt != nil {
			w.walk(sc, "", mt.Schema, false)
			return
		}
	}
	types := make([]string, 0, len(content))
	for mediaType := range content {
		types = append(types, mediaType)
	}
	sort.Strings(types)
	if len(types) > 0 && content[types[0]] != nil {
		w.walk(sc, "", content[types[0]].Schema, false)
	}
}

func (w *walker) walk(sc scope, prefix string, ref *openapi3.SchemaRef, required bool) {
	if w.err != nil || ref == nil || ref.Value == nil {
		return
	}
	schema := ref.Value

	if prefix != "" {
		if isRange, ok := dateShape(schema); ok {
			w.add(sc, prefix, schema, required, isRange)
			return
		}
	}

	if schemaType(schema.Type) == "object" || len(schema.Properties) > 0 {
		requiredSet := make(map[string]bool, len(schema.Required))
		for _, name := range schema.Required {
			requiredSet[name] = true
		}
		for name, prop := range schema.Properties {
			w.walk(sc, join(prefix, name), prop, requiredSet[name])
		}
	}
	for _, sub := range schema.AllOf {
		w.walk(sc, prefix, sub, required)
	}
}

func (w *walker) add(sc scope, property string, schema *openapi3.Schema, required, isRange bool) {
	name := sc.operation + "." + property
	if w.seen[name] {
		return
	}
	w.seen[name] = true

	def := fieldconfig.Definition{
		Name:         name,
		Source:       sc.source,
		Label:        firstNonEmpty(schema.Title, schema.Description, property),
		Format:       w.opts.DefaultFormat,
		ReturnFormat: WireFormat,
		Required:     required,
		Range:        isRange,
	}
	if raw, ok := schema.Extensions[ExtensionKey]; ok {
		if err := applyExtension(&def, raw); err != nil {
			w.err = fmt.Errorf("openapi: %s property %q: %w", sc.source, property, err)
			return
		}
	}

	w.fields = append(w.fields, Field{
		Operation:  sc.operation,
		Method:     sc.method,
		Path:       sc.path,
		Property:   property,
		Definition: def,
	})
}

// dateShape reports whether schema is a date, or a pair of dates.
func dateShape(schema *openapi3.Schema) (isRange, ok bool) {
	if _, tagged := schema.Extensions[ExtensionKey]; tagged && schemaType(schema.Type) != "object" {
		return schemaType(schema.Type) == "array", true
	}
	if schemaType(schema.Type) == "string" && schema.Format == "date" {
		return false, true
	}
	if schemaType(schema.Type) == "array" && schema.Items != nil && schema.Items.Value != nil {
		items := schema.Items.Value
		pair := schema.MinItems == 2 && schema.MaxItems != nil && *schema.MaxItems == 2
		if pair && schemaType(items.Type) == "string" && items.Format == "date" {
			return true, true
		}
	}
	return false, false
}

// applyExtension overlays the x-datefield object on def. Name and source are
// kept from discovery.
func applyExtension(def *fieldconfig.Definition, raw any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	name, source := def.Name, def.Source
	if err := json.Unmarshal(data, def); err != nil {
		return fmt.Errorf("decode %s: %w", ExtensionKey, err)
	}
	def.Name, def.Source = name, source
	return nil
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
