package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/achilleasa/vega/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "vega"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "check",
			Usage: "validate a render parameters file",
			Description: `
Parse and validate a yaml render parameters file without loading meshes or
rendering anything.`,
			ArgsUsage: "params.yml",
			Action:    cmd.CheckParams,
		},
		{
			Name:        "render",
			Usage:       "render a single frame",
			Description: `Render a single frame described by a yaml render parameters file.`,
			ArgsUsage:   "params.yml",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "engine, e",
					Value: "full",
					Usage: "render engine (full, ambient, diffuse, distance, normal, stencil, xray, occlusion)",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: "number of render workers (0 selects one per CPU)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	app.Run(os.Args)
}
