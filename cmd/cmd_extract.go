package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/rubenv/geo2wall"
)

type CmdExtract struct {
	global *GlobalOptions

	Output    string `short:"o" long:"output" description:"GeoJSON output file, defaults to stdout"`
	Frame     string `short:"f" long:"frame" description:"Reuse the frame stored in this file"`
	SaveFrame string `long:"save-frame" description:"Store the frame that was used in this file"`
}

func init() {
	_, err := parser.AddCommand("extract",
		"Extract walls",
		"Extract horizontal and vertical walls from a geometry file",
		&CmdExtract{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdExtract) Usage() string {
	return "file.(shp|kml|geojson|dxf)"
}

func (cmd CmdExtract) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Input file not specified, Usage: %s", cmd.Usage())
	}

	opts := cmd.global.Options(args[0])
	if cmd.Frame != "" {
		frame, angle, err := geo2wall.ReadFrame(cmd.Frame)
		if err != nil {
			return err
		}
		t := frame.Options(angle)
		opts.Angle = angle
		opts.Center = t.Center
		opts.Offset = t.Offset
	}

	res, err := geo2wall.Extract(cmd.global.Loader(), opts)
	if err != nil {
		return fmt.Errorf("Failed to extract: %s\n", err.Error())
	}
	log.Printf("Found %d horizontal and %d vertical walls", len(res.Walls.Horizontal), len(res.Walls.Vertical))

	if cmd.SaveFrame != "" {
		err = geo2wall.WriteFrame(cmd.SaveFrame, res.Frame, opts.Angle)
		if err != nil {
			return err
		}
	}

	if cmd.Output == "" {
		return res.Walls.WriteGeoJSON(os.Stdout)
	}
	return res.Walls.Export(cmd.Output)
}
