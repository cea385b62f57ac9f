package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/pkg/colorutil"
)

func newFormatCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "format <color>",
		Short: "Print the normalized hex digits of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized, err := app.Converter.FormatColor(args[0])
			if err != nil {
				return app.colorError("format", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), normalized)
			return nil
		},
	}
}

type hsvaOptions struct {
	jsonOutput bool
}

func newHsvaCmd(app *AppContext) *cobra.Command {
	opts := &hsvaOptions{}

	cmd := &cobra.Command{
		Use:   "hsva <color>",
		Short: "Convert a color to hue, saturation, value and alpha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hsva, err := app.Converter.ToHsva(args[0])
			if err != nil {
				return app.colorError("convert", args[0], err)
			}

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(hsva)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "h: %.4f\n", hsva.H)
			fmt.Fprintf(out, "s: %.4f\n", hsva.S)
			fmt.Fprintf(out, "v: %.4f\n", hsva.V)
			fmt.Fprintf(out, "a: %.4f\n", hsva.A)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")

	return cmd
}

type hexOptions struct {
	hue        float64
	saturation float64
	value      float64
	alpha      float64
}

func newHexCmd() *cobra.Command {
	opts := &hexOptions{}

	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Convert hue, saturation, value and alpha to #RRGGBBAA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, channel := range []struct {
				name  string
				value float64
			}{
				{"hue", opts.hue},
				{"saturation", opts.saturation},
				{"value", opts.value},
				{"alpha", opts.alpha},
			} {
				if err := checkUnit(channel.name, channel.value); err != nil {
					return newCommandError("convert", "reading --"+channel.name, err, "Channels are fractions between 0 and 1.")
				}
			}

			hsva := colorutil.HSVA{H: opts.hue, S: opts.saturation, V: opts.value, A: opts.alpha}
			fmt.Fprintln(cmd.OutOrStdout(), colorutil.ToHex(hsva))
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.hue, "hue", 0, "Hue in [0,1]")
	cmd.Flags().Float64Var(&opts.saturation, "saturation", 0, "Saturation in [0,1]")
	cmd.Flags().Float64Var(&opts.value, "value", 0, "Value in [0,1]")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", 1, "Alpha in [0,1]")
	_ = cmd.MarkFlagRequired("hue")
	_ = cmd.MarkFlagRequired("saturation")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newAlphaCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "alpha <color> <alpha>",
		Short: "Replace the alpha of a color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := parseUnit("alpha", args[1])
			if err != nil {
				return newCommandError("set alpha", "reading alpha "+quote(args[1]), err, "Alpha is a fraction between 0 and 1, e.g. 0.5.")
			}

			hsva, err := app.Converter.ToHsva(args[0])
			if err != nil {
				return app.colorError("set alpha", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), colorutil.SetAlpha(colorutil.ToHex(hsva), alpha))
			return nil
		},
	}
}

func parseUnit(name, raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return value, checkUnit(name, value)
}

func checkUnit(name string, value float64) error {
	if value < 0 || value > 1 {
		return fmt.Errorf("%s %v is outside [0,1]", name, value)
	}
	return nil
}
