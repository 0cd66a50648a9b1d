package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/fieldconfig"
	"github.com/goliatone/go-datefield/pkg/openapi"
)

// ErrUnknownField is returned when --field names no configured definition.
var ErrUnknownField = errors.New("commands: unknown field")

// loadConfig reads an optional .datefield config file from the working
// directory, then $HOME, or from path when given.
func loadConfig(v *viper.Viper, path string) error {
	v.SetEnvPrefix("DATEFIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return err
		}
		v.SetConfigFile(expanded)
		return v.ReadInConfig()
	}

	v.SetConfigName(".datefield")
	if override := os.Getenv("DATEFIELD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func newLogger(v *viper.Viper, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if v.GetBool(options.KeyVerbose) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// store loads the field definitions: files from the config directory or the
// embedded defaults, plus the date fields of an OpenAPI document.
func (a *app) store(ctx context.Context, o options.FieldOptions) (*fieldconfig.Store, error) {
	var fsys fs.FS = fieldconfig.EmbeddedFS()
	if o.ConfigDir != "" {
		dir, err := homedir.Expand(o.ConfigDir)
		if err != nil {
			return nil, err
		}
		fsys = os.DirFS(dir)
	}

	st, err := fieldconfig.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("datefield: loaded definitions", "dir", o.ConfigDir, "fields", len(st.Names()))

	if o.OpenAPI != "" {
		path, err := homedir.Expand(o.OpenAPI)
		if err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read openapi document: %w", err)
		}
		found, err := openapi.Discover(ctx, raw)
		if err != nil {
			return nil, err
		}
		if err := openapi.AddTo(st, found); err != nil {
			return nil, err
		}
		a.logger.Debug("datefield: discovered openapi fields", "path", path, "fields", len(found))
	}
	return st, nil
}

// fieldConfig resolves the field a command works on: a named definition when
// --field is set, the inline flags otherwise.
func (a *app) fieldConfig(ctx context.Context) (field.Config, error) {
	o := options.FieldFrom(a.v)
	if o.Field == "" {
		return field.Config{
			Name:         "date",
			Format:       o.Format,
			ReturnFormat: o.ReturnFormat,
			Range:        o.Range,
			Required:     o.Required,
			Locale:       o.Locale,
		}, nil
	}

	st, err := a.store(ctx, o)
	if err != nil {
		return field.Config{}, err
	}
	def, ok := st.Field(o.Field)
	if !ok {
		return field.Config{}, fmt.Errorf("%w: %q", ErrUnknownField, o.Field)
	}
	return def.Config(fieldconfig.WithNow(a.now))
}
