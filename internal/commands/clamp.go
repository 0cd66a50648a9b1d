package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/clamp"
)

type clampOutput struct {
	Value    string `json:"value"`
	Adjusted bool   `json:"adjusted"`
}

func (a *app) addClamp(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clamp <value>",
		Short: "Clamp the day of a date to the length of its month.",
		Example: `
datefield clamp 31/04/2023
datefield clamp 2024-02-30 --format YYYY-MM-DD
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			o := options.FieldFrom(a.v)
			res := clamp.ClampDate(args[0], o.Format)

			w := cmd.OutOrStdout()
			if a.out.JSON {
				return a.out.PrintJSON(w, clampOutput{Value: res.Value, Adjusted: res.Adjusted})
			}
			if !res.Adjusted {
				_, err := fmt.Fprintln(w, res.Value)
				return err
			}
			faint := color.New(color.Faint)
			_, err := fmt.Fprintf(w, "%s\t%s\n", res.Value, faint.Sprintf("(clamped from %s)", args[0]))
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
