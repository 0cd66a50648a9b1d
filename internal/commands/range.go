package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/rangeinput"
)

type rangeStep struct {
	Input              string `json:"input"`
	Formatted          string `json:"formatted"`
	Cursor             int    `json:"cursor"`
	Complete           bool   `json:"complete"`
	EditingSecond      bool   `json:"editingSecond"`
	JustCompletedFirst bool   `json:"justCompletedFirst"`
}

func (a *app) addRange(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "range <value>...",
		Short: "Replay successive control values through the range editor.",
		Long: options.Wrap80(`Each argument is the raw value of the control after one edit. ` +
			`The formatted output of a step becomes the previous value of the next one, ` +
			`the way a field sees consecutive input events.`),
		Example: `
datefield range 0 01 0101 01012023
datefield range "01/01/2023 - " "01/01/2023 - 1" "01/01/2023 - 10012023"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			w := cmd.OutOrStdout()
			o := options.FieldFrom(a.v)

			h, err := rangeinput.NewHandler(o.Format, rangeinput.WithRange(true))
			if err != nil {
				return a.out.HandleError(w, err)
			}

			var (
				state    rangeinput.State
				previous string
				steps    []rangeStep
			)
			for _, next := range args {
				var res rangeinput.Result
				res, state = h.Handle(state, previous, next, len([]rune(next)))
				a.logger.Debug("datefield: range step", "previous", previous, "next", next, "formatted", res.Formatted)
				steps = append(steps, rangeStep{
					Input:              next,
					Formatted:          res.Formatted,
					Cursor:             res.Cursor,
					Complete:           res.Complete,
					EditingSecond:      state.EditingSecond,
					JustCompletedFirst: res.JustCompletedFirst,
				})
				previous = res.Formatted
			}

			if a.out.JSON {
				return a.out.PrintJSON(w, steps)
			}

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("STEP"), bold.Sprint("INPUT"), bold.Sprint("TEXT"), bold.Sprint("CURSOR"), bold.Sprint("COMPLETE"), bold.Sprint("EDITING"))
			for i, s := range steps {
				editing := "first"
				if s.EditingSecond {
					editing = "second"
				}
				tbl.AddRow(strconv.Itoa(i+1), s.Input, fmt.Sprintf("%q", s.Formatted), strconv.Itoa(s.Cursor), strconv.FormatBool(s.Complete), editing)
			}
			tbl.RightAlign(0)
			_, err = fmt.Fprintln(w, tbl)
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
