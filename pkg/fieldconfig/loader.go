package fieldconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-datefield/pkg/dateformat"
)

// Store holds the definitions read by LoadFS, keyed by field name.
type Store struct {
	fields map[string]Definition
}

// LoadFS walks fsys and parses every JSON, YAML and TOML definition file.
// When fsys is nil or holds no definition files the store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fields: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldconfig: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Fields {
			def, err := normaliseDefinition(raw, name, path)
			if err != nil {
				return err
			}
			if existing, ok := store.fields[def.Name]; ok {
				return fmt.Errorf("fieldconfig: duplicate field %q (files %s and %s)", def.Name, existing.Source, path)
			}
			store.fields[def.Name] = def
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Add registers def, for definitions discovered outside of files.
func (s *Store) Add(def Definition) error {
	def, err := normaliseDefinition(def, def.Name, def.Source)
	if err != nil {
		return err
	}
	if s.fields == nil {
		s.fields = make(map[string]Definition)
	}
	if existing, ok := s.fields[def.Name]; ok {
		return fmt.Errorf("fieldconfig: duplicate field %q (sources %s and %s)", def.Name, existing.Source, def.Source)
	}
	s.fields[def.Name] = def
	return nil
}

// Field returns the definition named name.
func (s *Store) Field(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.fields[strings.TrimSpace(name)]
	return def, ok
}

// Names lists the field names in lexical order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.fields) == 0
}

type documentFile struct {
	Fields map[string]Definition `json:"fields" yaml:"fields" toml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(bytes.TrimSpace(data)) == 0 {
		return documentFile{}, fmt.Errorf("fieldconfig: file %s is empty", source)
	}

	var err error
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return documentFile{}, fmt.Errorf("fieldconfig: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseDefinition(raw Definition, name, source string) (Definition, error) {
	def := raw
	def.Name = strings.TrimSpace(name)
	def.Source = source
	if def.Name == "" {
		return Definition{}, fmt.Errorf("fieldconfig: file %s defines a field with an empty name", source)
	}

	def.Format = strings.TrimSpace(def.Format)
	if _, err := dateformat.ParseLayout(def.Format); err != nil {
		return Definition{}, fmt.Errorf("fieldconfig: field %q (file %s): %w", def.Name, source, err)
	}
	def.ReturnFormat = strings.TrimSpace(def.ReturnFormat)
	if def.ReturnFormat != "" {
		if _, err := dateformat.ParseLayout(def.ReturnFormat); err != nil {
			return Definition{}, fmt.Errorf("fieldconfig: field %q (file %s) return format: %w", def.Name, source, err)
		}
	}

	def.Label = sanitizeText(def.Label)
	def.SuccessMessage = sanitizeText(def.SuccessMessage)
	def.Locale = strings.TrimSpace(def.Locale)

	var err error
	if def.CustomRules, err = normaliseRules(def.CustomRules, def.Name, source); err != nil {
		return Definition{}, err
	}
	if def.CustomWarningRules, err = normaliseRules(def.CustomWarningRules, def.Name, source); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func normaliseRules(raw []RuleSpec, name, source string) ([]RuleSpec, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]RuleSpec, len(raw))
	for idx, spec := range raw {
		spec.Type = strings.TrimSpace(spec.Type)
		if !knownRule(spec.Type) {
			return nil, fmt.Errorf("%w %q: field %q (file %s) rule %d", ErrUnknownRule, spec.Type, name, source, idx)
		}
		spec.Options.Date = strings.TrimSpace(spec.Options.Date)
		spec.Options.Check = strings.TrimSpace(spec.Options.Check)
		spec.Options.Message = sanitizeText(spec.Options.Message)
		out[idx] = spec
	}
	return out, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}
