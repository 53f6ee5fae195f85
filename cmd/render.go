package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/achilleasa/vega/config"
	"github.com/achilleasa/vega/render"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing parameters file argument")
	}

	engine, err := render.EngineForName(ctx.String("engine"))
	if err != nil {
		return err
	}

	params, err := config.Load(ctx.Args().First())
	if err != nil {
		return err
	}

	buildStart := time.Now()
	built, err := params.Build()
	if err != nil {
		return err
	}
	logger.Noticef("built scene with %d entities in %s", len(built.Scene.Entities()), time.Since(buildStart))

	frame, stats := render.Frame(built.Settings, built.Scene, built.Camera, engine, render.Options{
		Workers: ctx.Int("workers"),
	})

	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	encodeStart := time.Now()
	if err = png.Encode(f, frame); err != nil {
		return fmt.Errorf("encode png: %v", err)
	}
	logger.Noticef("wrote frame to %s in %s", imgFile, time.Since(encodeStart))

	displayFrameStats(stats)

	return nil
}

func displayFrameStats(stats render.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Worker),
			fmt.Sprintf("%d", stat.Rows),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
