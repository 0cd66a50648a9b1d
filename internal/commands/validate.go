package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/validation"
)

// ErrInvalidValues is returned by validate when a value does not pass.
var ErrInvalidValues = errors.New("commands: invalid values")

const (
	statusValid      = "valid"
	statusIncomplete = "incomplete"
	statusInvalid    = "invalid"
)

type validateOutput struct {
	Value    string           `json:"value"`
	Text     string           `json:"text"`
	Status   string           `json:"status"`
	Model    string           `json:"model,omitempty"`
	Messages validation.State `json:"messages"`
}

func (a *app) addValidate(topLevel *cobra.Command) {
	settle := false
	cmd := &cobra.Command{
		Use:   "validate <value>...",
		Short: "Validate values against a field.",
		Example: `
datefield validate 15/06/2024 31/02/2024
datefield validate "01/01/2024 - 15/01/2024" --range
datefield validate 31042024 --settle
datefield validate 1899-12-31 --field birthDate
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			w := cmd.OutOrStdout()

			cfg, err := a.fieldConfig(cmd.Context())
			if err != nil {
				return a.out.HandleError(w, err)
			}

			results := make([]validateOutput, 0, len(args))
			failed := 0
			for _, value := range args {
				out, err := a.validateOne(cfg, value, settle)
				if err != nil {
					return a.out.HandleError(w, err)
				}
				if out.Status != statusValid {
					failed++
				}
				results = append(results, out)
			}

			if a.out.JSON {
				return a.out.PrintJSON(w, results)
			}
			printValidation(w, results)
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidValues, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&settle, "settle", false,
		"Type the value into the field and leave it first, so masking and day clamping apply.")

	topLevel.AddCommand(cmd)
}

func (a *app) validateOne(cfg field.Config, value string, settle bool) (validateOutput, error) {
	buf := field.NewTextBuffer("")
	f, err := field.New(cfg, buf, field.WithLogger(a.logger), field.WithNow(a.now))
	if err != nil {
		return validateOutput{}, err
	}

	var res validation.Result
	text := value
	if settle {
		f.HandleFocus()
		f.HandlePaste(value)
		f.HandleBlur()
		res, text = f.Result(), f.Text()
	} else {
		res = f.Check(value)
	}

	out := validateOutput{
		Value:    value,
		Text:     text,
		Status:   status(res),
		Messages: res.State,
	}
	if model := f.ModelOf(res); !model.IsNull() {
		out.Model = model.String()
	}
	return out, nil
}

func status(res validation.Result) string {
	switch {
	case res.Valid:
		return statusValid
	case res.Incomplete:
		return statusIncomplete
	default:
		return statusInvalid
	}
}

func printValidation(w io.Writer, results []validateOutput) {
	bold := color.New(color.Bold)
	paint := map[string]*color.Color{
		statusValid:      color.New(color.FgGreen),
		statusIncomplete: color.New(color.FgYellow),
		statusInvalid:    color.New(color.FgRed),
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("VALUE"), bold.Sprint("TEXT"), bold.Sprint("STATUS"), bold.Sprint("MODEL"), bold.Sprint("MESSAGES"))
	for _, r := range results {
		var lines []string
		lines = append(lines, r.Messages.Errors...)
		for _, m := range r.Messages.Warnings {
			lines = append(lines, "warning: "+m)
		}
		lines = append(lines, r.Messages.Successes...)
		tbl.AddRow(r.Value, r.Text, paint[r.Status].Sprint(r.Status), r.Model, strings.Join(lines, " "))
	}
	_, _ = fmt.Fprintln(w, tbl)
}
