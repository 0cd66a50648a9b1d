package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/fieldconfig"
)

type fieldOutput struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Format   string `json:"format"`
	Range    bool   `json:"range"`
	Required bool   `json:"required"`
	Locale   string `json:"locale,omitempty"`
	Rules    int    `json:"rules"`
	Source   string `json:"source"`
}

func (a *app) addFields(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the configured field definitions.",
		Example: `
datefield fields
datefield fields --config-dir ./fields --openapi ./api.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			w := cmd.OutOrStdout()

			st, err := a.store(cmd.Context(), options.FieldFrom(a.v))
			if err != nil {
				return a.out.HandleError(w, err)
			}

			list := make([]fieldOutput, 0, len(st.Names()))
			for _, name := range st.Names() {
				def, _ := st.Field(name)
				list = append(list, describe(def))
			}

			if a.out.JSON {
				return a.out.PrintJSON(w, list)
			}
			if len(list) == 0 {
				_, err := fmt.Fprintln(w, "No fields configured.")
				return err
			}

			bold := color.New(color.Bold)
			faint := color.New(color.Faint)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 50
			tbl.AddRow(bold.Sprint("NAME"), bold.Sprint("FORMAT"), bold.Sprint("RANGE"), bold.Sprint("REQUIRED"), bold.Sprint("RULES"), bold.Sprint("LABEL"), bold.Sprint("SOURCE"))
			for _, f := range list {
				tbl.AddRow(f.Name, f.Format, strconv.FormatBool(f.Range), strconv.FormatBool(f.Required), strconv.Itoa(f.Rules), f.Label, faint.Sprint(f.Source))
			}
			_, err = fmt.Fprintln(w, tbl)
			return err
		},
	}

	topLevel.AddCommand(cmd)
}

func describe(def fieldconfig.Definition) fieldOutput {
	return fieldOutput{
		Name:     def.Name,
		Label:    def.Label,
		Format:   def.Format,
		Range:    def.Range,
		Required: def.Required,
		Locale:   def.Locale,
		Rules:    len(def.CustomRules) + len(def.CustomWarningRules),
		Source:   def.Source,
	}
}
