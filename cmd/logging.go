package cmd

import (
	"github.com/urfave/cli"

	"github.com/achilleasa/vega/log"
)

var logger = log.New("vega")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
