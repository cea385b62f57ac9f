package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	palettePath string
	logLevel    string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch normalizes, converts and derives theme colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.palettePath, "palette", "", "Palette YAML file layered over the built-in palette")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose, human-readable logging")

	cmd.AddCommand(newFormatCmd(app))
	cmd.AddCommand(newHsvaCmd(app))
	cmd.AddCommand(newHexCmd())
	cmd.AddCommand(newAlphaCmd(app))
	cmd.AddCommand(newDarkenCmd(app))
	cmd.AddCommand(newSchemesCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
