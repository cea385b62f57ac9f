package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/pkg/colorutil"
)

type darkenOptions struct {
	force float64
	alpha float64
}

func newDarkenCmd(app *AppContext) *cobra.Command {
	opts := &darkenOptions{}

	cmd := &cobra.Command{
		Use:   "darken <color>",
		Short: "Darken a color, optionally replacing its alpha",
		Long: `Darken lowers the value of a color and boosts its saturation.

With --alpha the result's alpha is replaced, which yields the pressed
background of a themed button (e.g. --alpha 0.16 for blank buttons).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkUnit("force", opts.force); err != nil {
				return newCommandError("darken", "reading --force", err, "Force is a fraction between 0 and 1.")
			}

			darker, err := app.Converter.DarkenColorBy(args[0], opts.force)
			if err != nil {
				return app.colorError("darken", args[0], err)
			}

			if cmd.Flags().Changed("alpha") {
				if err := checkUnit("alpha", opts.alpha); err != nil {
					return newCommandError("darken", "reading --alpha", err, "Alpha is a fraction between 0 and 1.")
				}
				darker = colorutil.SetAlpha(darker, opts.alpha)
			}

			fmt.Fprintln(cmd.OutOrStdout(), darker)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.force, "force", colorutil.DefaultDarkenForce, "Fraction of value to remove")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", 1, "Alpha to apply to the darkened color")

	return cmd
}
