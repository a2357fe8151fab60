package cmd

import (
	"fmt"

	"github.com/rubenv/geo2wall"
	"github.com/rubenv/geo2wall/render"
)

type CmdPlot struct {
	global *GlobalOptions

	Scale float64 `long:"mm-per-unit" description:"Millimeters per map unit" default:"5"`
}

func init() {
	_, err := parser.AddCommand("plot",
		"Plot walls",
		"Draw the extracted walls into an SVG or PDF file",
		&CmdPlot{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdPlot) Usage() string {
	return "file.(shp|kml|geojson|dxf) output.(svg|pdf)"
}

func (cmd CmdPlot) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input or output file not specified, Usage: %s", cmd.Usage())
	}

	res, err := geo2wall.Extract(cmd.global.Loader(), cmd.global.Options(args[0]))
	if err != nil {
		return fmt.Errorf("Failed to extract: %s\n", err.Error())
	}

	opts := render.DefaultOptions()
	opts.Scale = cmd.Scale
	return render.WriteFile(args[1], res.Walls, opts)
}
