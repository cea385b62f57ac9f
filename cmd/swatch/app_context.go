package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
	"github.com/alexisbeaulieu97/swatch/pkg/colorutil"
)

// AppContext bundles the services created once the root flags are parsed.
type AppContext struct {
	Logger    *logger.Logger
	Palettes  *palette.Manager
	Converter *colorutil.Converter
}

func (app *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: flags.verbose, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use one of: debug, info, warn, error.")
	}

	p := palette.Default()
	if flags.palettePath != "" {
		file, err := palette.LoadFile(flags.palettePath)
		if err != nil {
			log.WithFields(map[string]any{"path": flags.palettePath}).Error(err, "palette file rejected")
			return newCommandError("start", "loading palette file", err, "Check the palette file's YAML syntax and color values.")
		}

		p, err = p.Merge(file)
		if err != nil {
			log.WithFields(map[string]any{"path": flags.palettePath}).Error(err, "palette merge failed")
			return newCommandError("start", "applying palette file", err, "Check the palette file's color values.")
		}
		log.WithFields(map[string]any{"path": flags.palettePath, "palette": p.Name}).Debug("palette loaded")
	}

	app.Logger = log
	app.Palettes = palette.NewManager(p)
	app.Converter = colorutil.New(app.Palettes)
	return nil
}

// colorError logs a rejected color and wraps it for the user.
func (app *AppContext) colorError(operation, input string, err error) error {
	app.Logger.WithFields(map[string]any{"command": operation}).ColorFailure(input, err)
	return newCommandError(operation, "reading color "+quote(input), err, "Use a color name or a hex literal with 3, 4, 6 or 8 digits, e.g. #3b82f6.")
}
