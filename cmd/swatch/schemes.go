package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatch/internal/palette"
	"github.com/alexisbeaulieu97/swatch/pkg/colorutil"
)

type schemesOptions struct {
	jsonOutput bool
}

type schemeRow struct {
	Key          string `json:"key"`
	Primary      string `json:"primary"`
	Shadowed     string `json:"shadowed"`
	Pressed      string `json:"pressed"`
	PressedBlank string `json:"pressed_blank"`
}

type schemesJSONPayload struct {
	Palette string      `json:"palette"`
	Count   int         `json:"count"`
	Schemes []schemeRow `json:"schemes"`
}

func newSchemesCmd(app *AppContext) *cobra.Command {
	opts := &schemesOptions{}

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List color schemes with their derived pressed colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := buildSchemeRows(app)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return renderSchemesJSON(cmd.OutOrStdout(), app.Palettes.Palette().Name, rows)
			}
			return renderSchemesTable(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func buildSchemeRows(app *AppContext) ([]schemeRow, error) {
	keys := palette.SchemeKeys()
	rows := make([]schemeRow, 0, len(keys))

	for _, key := range keys {
		scheme := app.Palettes.Scheme(key)

		darker, err := app.Converter.DarkenColor(scheme.Primary)
		if err != nil {
			return nil, app.colorError("list schemes", scheme.Primary, err)
		}

		rows = append(rows, schemeRow{
			Key:          key.String(),
			Primary:      scheme.Primary,
			Shadowed:     scheme.Shadowed,
			Pressed:      colorutil.SetAlpha(darker, 1),
			PressedBlank: colorutil.SetAlpha(darker, palette.ShadowedAlpha),
		})
	}

	return rows, nil
}

func renderSchemesTable(out io.Writer, rows []schemeRow) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	showSwatch := isTerminal(out)

	fmt.Fprintln(writer, "SCHEME\tPRIMARY\tSHADOWED\tPRESSED\tPRESSED (BLANK)")
	for _, row := range rows {
		primary := row.Primary
		pressed := row.Pressed
		if showSwatch {
			primary = swatch(row.Primary) + " " + primary
			pressed = swatch(row.Pressed) + " " + pressed
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", row.Key, primary, row.Shadowed, pressed, row.PressedBlank)
	}

	return writer.Flush()
}

func renderSchemesJSON(out io.Writer, name string, rows []schemeRow) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(schemesJSONPayload{Palette: name, Count: len(rows), Schemes: rows})
}

// swatch renders a small block filled with the opaque part of hex.
func swatch(hex string) string {
	if len(hex) > 7 {
		hex = hex[:7]
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
