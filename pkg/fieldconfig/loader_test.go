package fieldconfig_test

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/fieldconfig"
	"github.com/goliatone/go-datefield/pkg/testsupport"
	"github.com/goliatone/go-datefield/pkg/validation"
)

var fixedNow = func() time.Time {
	return time.Date(2024, time.March, 14, 18, 30, 0, 0, time.UTC)
}

func TestLoadFS_JSON(t *testing.T) {
	store := loadStore(t, "basic")
	def, ok := store.Field("birthDate")
	if !ok {
		t.Fatalf("birthDate not found")
	}
	if def.Label != "Date de naissance" {
		t.Fatalf("label not sanitized: %q", def.Label)
	}
	if def.ReturnFormat != "YYYY-MM-DD" || !def.Required {
		t.Fatalf("props not parsed: %#v", def)
	}
	if got := def.CustomRules[0].Options.Message; got != "Pas dans le futur." {
		t.Fatalf("rule message not sanitized: %q", got)
	}
	if def.Source != "fields.json" {
		t.Fatalf("source mismatch: %s", def.Source)
	}

	cfg, err := def.Config(fieldconfig.WithNow(fixedNow))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	today := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)
	floor := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	want := []validation.Rule{
		validation.NotAfterDate{Date: &today, Message: "Pas dans le futur."},
		validation.NotBeforeDate{Date: &floor},
	}
	if diff := cmp.Diff(want, cfg.Rules); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_YAMLAndTOML(t *testing.T) {
	store := loadStore(t, "mixed")
	if diff := cmp.Diff([]string{"deadline", "stay"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	deadline, _ := store.Field("deadline")
	if deadline.AutoClamp == nil || *deadline.AutoClamp {
		t.Fatalf("autoClamp not parsed: %#v", deadline.AutoClamp)
	}
	cfg, err := deadline.Config()
	if err != nil {
		t.Fatalf("deadline config: %v", err)
	}
	if len(cfg.WarningRules) != 1 {
		t.Fatalf("expected one warning rule, got %#v", cfg.WarningRules)
	}
	custom, ok := cfg.WarningRules[0].(validation.Custom)
	if !ok || custom.Name != "weekday" {
		t.Fatalf("unexpected warning rule %#v", cfg.WarningRules[0])
	}
	saturday := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)
	if custom.Check(saturday) {
		t.Fatalf("weekday check accepted a saturday")
	}

	stay, _ := store.Field("stay")
	if !stay.Range || stay.Locale != "de" || stay.Format != "DD.MM.YYYY" {
		t.Fatalf("toml props not parsed: %#v", stay)
	}
	cfg, err = stay.Config(fieldconfig.WithNow(fixedNow))
	if err != nil {
		t.Fatalf("stay config: %v", err)
	}
	tomorrow := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if diff := cmp.Diff([]validation.Rule{validation.NotBeforeDate{Date: &tomorrow}}, cfg.Rules); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	if _, err := fieldconfig.LoadFS(subDirFS(t, "invalid_duplicate")); err == nil {
		t.Fatalf("expected duplicate field error")
	}
	if _, err := fieldconfig.LoadFS(subDirFS(t, "invalid_rule")); !errors.Is(err, fieldconfig.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}

	badFormat := fstest.MapFS{"f.yaml": {Data: []byte("fields:\n  x:\n    format: QQ/MM\n")}}
	if _, err := fieldconfig.LoadFS(badFormat); err == nil {
		t.Fatalf("expected layout error")
	}
	empty := fstest.MapFS{"f.json": {Data: []byte("  ")}}
	if _, err := fieldconfig.LoadFS(empty); err == nil {
		t.Fatalf("expected empty file error")
	}

	store, err := fieldconfig.LoadFS(nil)
	if err != nil || !store.Empty() {
		t.Fatalf("nil fs should give an empty store: %v", err)
	}
}

func TestDefinitionConfig_Errors(t *testing.T) {
	def := fieldconfig.Definition{
		Name:        "x",
		Format:      "DD/MM/YYYY",
		CustomRules: []fieldconfig.RuleSpec{{Type: fieldconfig.RuleCustom, Options: fieldconfig.RuleOptions{Check: "holiday"}}},
	}
	if _, err := def.Config(); !errors.Is(err, fieldconfig.ErrUnknownCheck) {
		t.Fatalf("expected ErrUnknownCheck, got %v", err)
	}

	holiday := func(t time.Time) bool { return t.Month() == time.December && t.Day() == 25 }
	cfg, err := def.Config(fieldconfig.WithCheck("holiday", holiday))
	if err != nil || len(cfg.Rules) != 1 {
		t.Fatalf("registered check: %v %#v", err, cfg.Rules)
	}

	def.CustomRules = []fieldconfig.RuleSpec{{Type: fieldconfig.RuleExactDate, Options: fieldconfig.RuleOptions{Date: "next week"}}}
	if _, err := def.Config(); !errors.Is(err, fieldconfig.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	def.CustomRules = []fieldconfig.RuleSpec{{Type: fieldconfig.RuleExactDate}}
	cfg, err = def.Config()
	if err != nil {
		t.Fatalf("open bound: %v", err)
	}
	if exact := cfg.Rules[0].(validation.ExactDate); exact.Date != nil {
		t.Fatalf("empty date should stay an open bound, got %v", exact.Date)
	}
}

func TestStoreAdd(t *testing.T) {
	store, err := fieldconfig.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := fieldconfig.Definition{Name: "due", Source: "openapi", Format: "YYYY-MM-DD"}
	if err := store.Add(def); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Add(def); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestEmbeddedDefaults(t *testing.T) {
	store, err := fieldconfig.LoadFS(fieldconfig.EmbeddedFS())
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	for _, name := range store.Names() {
		def, _ := store.Field(name)
		if _, err := def.Config(); err != nil {
			t.Fatalf("embedded field %s: %v", name, err)
		}
	}
	if _, ok := store.Field("stay"); !ok {
		t.Fatalf("expected bundled stay field")
	}
}

func loadStore(t *testing.T, subdir string) *fieldconfig.Store {
	t.Helper()
	store, err := fieldconfig.LoadFS(subDirFS(t, subdir))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}

func subDirFS(t *testing.T, subdir string) fs.FS {
	t.Helper()
	base := os.DirFS(testsupport.TestdataDir())
	fsys, err := fs.Sub(base, subdir)
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return fsys
}
