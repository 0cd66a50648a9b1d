package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/pkg/messages"
)

type displayOutput struct {
	Format      string `json:"format"`
	Locale      string `json:"locale"`
	Placeholder string `json:"placeholder"`
}

func (a *app) addDisplay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "display",
		Short: "Print the placeholder shown for a format.",
		Example: `
datefield display
datefield display --format YYYY-MM-DD --locale en
datefield display --field birthDate
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := a.fieldConfig(cmd.Context())
			if err != nil {
				return a.out.HandleError(cmd.OutOrStdout(), err)
			}
			catalog := messages.For(cfg.Locale)
			placeholder := catalog.DisplayFormat(cfg.Format)

			w := cmd.OutOrStdout()
			if a.out.JSON {
				return a.out.PrintJSON(w, displayOutput{Format: cfg.Format, Locale: catalog.Locale, Placeholder: placeholder})
			}
			_, err = fmt.Fprintln(w, placeholder)
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
