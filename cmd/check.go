package cmd

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/achilleasa/vega/config"
)

// Validate a parameters file without rendering anything.
func CheckParams(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing parameters file argument")
	}

	path := ctx.Args().First()
	if _, err := config.Load(path); err != nil {
		return err
	}

	logger.Noticef("%s is valid", path)
	return nil
}
