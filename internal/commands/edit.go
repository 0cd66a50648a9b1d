package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/pkg/interactive"
)

func (a *app) addEdit(topLevel *cobra.Command) {
	initial := ""
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a date keystroke by keystroke, with a calendar on ctrl+o.",
		Example: `
datefield edit
datefield edit --range --initial "01/07/2024 - 14/07/2024"
datefield edit --field stay
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			cfg, err := a.fieldConfig(ctx)
			if err != nil {
				return a.out.HandleError(w, err)
			}

			opts := []interactive.Option{
				interactive.WithInitial(valueFrom(cfg, initial)),
				interactive.WithNow(a.now),
			}
			programOpts := []tea.ProgramOption{
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
			}
			v, err := interactive.Run(ctx, cfg, opts, programOpts...)
			if err != nil {
				return a.out.HandleError(w, err)
			}
			return a.printModel(w, cfg, v)
		},
	}

	cmd.Flags().StringVar(&initial, "initial", "",
		"Initial value, in the field format or its return format.")

	topLevel.AddCommand(cmd)
}
