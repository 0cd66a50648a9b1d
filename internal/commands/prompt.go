package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/fieldconfig"
	"github.com/goliatone/go-datefield/pkg/prompt"
	"github.com/goliatone/go-datefield/pkg/rangeinput"
)

type modelOutput struct {
	Field string `json:"field"`
	Model string `json:"model"`
	Null  bool   `json:"null"`
}

func (a *app) addPrompt(topLevel *cobra.Command) {
	initial := ""
	attempts := 3
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a date on the terminal, one answer per line.",
		Example: `
datefield prompt --required
datefield prompt --range --format DD.MM.YYYY --locale de
datefield prompt --config-dir ./fields
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			p := prompt.New(prompt.WithPromptDriver(a.driver), prompt.WithMaxAttempts(attempts))
			cfg, err := a.chooseConfig(ctx, p)
			if err != nil {
				return a.out.HandleError(w, err)
			}

			v, err := p.AskDate(ctx, cfg, valueFrom(cfg, initial))
			if err != nil {
				return a.out.HandleError(w, err)
			}
			a.logger.Debug("datefield: prompt answered", "field", cfg.Name, "model", v.String())
			return a.printModel(w, cfg, v)
		},
	}

	cmd.Flags().StringVar(&initial, "initial", "",
		"Initial value, in the field format or its return format.")
	cmd.Flags().IntVar(&attempts, "attempts", 3,
		"Invalid answers accepted before giving up. Zero means no limit.")

	topLevel.AddCommand(cmd)
}

// chooseConfig asks which definition to fill in when definitions were loaded
// but none was named.
func (a *app) chooseConfig(ctx context.Context, p *prompt.Prompter) (field.Config, error) {
	o := options.FieldFrom(a.v)
	if o.Field != "" || !o.Definitions() {
		return a.fieldConfig(ctx)
	}

	st, err := a.store(ctx, o)
	if err != nil {
		return field.Config{}, err
	}
	name, err := p.ChooseField(ctx, st.Names())
	if err != nil {
		return field.Config{}, err
	}
	def, _ := st.Field(name)
	return def.Config(fieldconfig.WithNow(a.now))
}

// valueFrom reads an initial model from the command line.
func valueFrom(cfg field.Config, raw string) field.Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return field.Null()
	}
	if !cfg.Range {
		return field.Single(raw)
	}
	start, end, _ := strings.Cut(raw, rangeinput.Separator)
	return field.Pair(strings.TrimSpace(start), strings.TrimSpace(end))
}

func (a *app) printModel(w io.Writer, cfg field.Config, v field.Value) error {
	if a.out.JSON {
		return a.out.PrintJSON(w, modelOutput{Field: cfg.Name, Model: v.String(), Null: v.IsNull()})
	}
	_, err := fmt.Fprintln(w, v.String())
	return err
}
