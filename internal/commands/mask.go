package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/mask"
)

type maskOutput struct {
	Formatted string `json:"formatted"`
	Cursor    int    `json:"cursor"`
}

func (a *app) addMask(topLevel *cobra.Command) {
	cursor := -1
	final := false
	cmd := &cobra.Command{
		Use:   "mask <raw>",
		Short: "Format raw keystrokes into the masked field text.",
		Example: `
datefield mask 1506
datefield mask 15062024 --format YYYY-MM-DD
datefield mask "15/0" --cursor 4
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			o := options.FieldFrom(a.v)

			opts := []mask.Option{}
			if cursor >= 0 {
				opts = append(opts, mask.WithCursor(cursor))
			}
			if final {
				opts = append(opts, mask.WithFinal())
			}
			res := mask.FormatInput(args[0], o.Format, opts...)
			a.logger.Debug("datefield: mask", "raw", args[0], "format", o.Format, "formatted", res.Formatted)

			w := cmd.OutOrStdout()
			if a.out.JSON {
				return a.out.PrintJSON(w, maskOutput{Formatted: res.Formatted, Cursor: res.Cursor})
			}
			_, err := fmt.Fprintf(w, "%s\t(cursor %d)\n", res.Formatted, res.Cursor)
			return err
		},
	}

	cmd.Flags().IntVar(&cursor, "cursor", -1,
		"Caret position in the raw value. Negative means no caret.")
	cmd.Flags().BoolVar(&final, "final", false,
		"Format as a settled value (short years collapse).")

	topLevel.AddCommand(cmd)
}
