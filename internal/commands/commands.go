// Package commands implements the datefield command line.
package commands

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/prompt"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	v       *viper.Viper
	logger  *slog.Logger
	out     options.OutputOptions
	cfgFile string
	now     func() time.Time

	// driver overrides the survey driver of the prompt command.
	driver prompt.PromptDriver
}

func New() *cobra.Command {
	return newRoot(&app{now: time.Now})
}

func newRoot(a *app) *cobra.Command {
	if a.v == nil {
		a.v = viper.New()
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if a.now == nil {
		a.now = time.Now
	}

	cmd := &cobra.Command{
		Use:   "datefield",
		Short: options.Wrap80("Masked date input, range editing and validation on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(a.v, a.cfgFile); err != nil {
				return err
			}
			if err := a.v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			a.logger = newLogger(a.v, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "",
		"Config file (default is .datefield.yaml in the working directory or $HOME).")
	cmd.PersistentFlags().BoolP(options.KeyVerbose, "v", false,
		"Log field transitions to stderr.")
	options.AddFieldArgs(cmd)
	options.AddOutputArg(cmd, &a.out)

	a.addCommands(cmd)
	return cmd
}

func (a *app) addCommands(topLevel *cobra.Command) {
	a.addMask(topLevel)
	a.addClamp(topLevel)
	a.addDisplay(topLevel)
	a.addValidate(topLevel)
	a.addRange(topLevel)
	a.addFields(topLevel)
	a.addPrompt(topLevel)
	a.addEdit(topLevel)
	addVersion(topLevel)
}
