package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rubenv/geo2wall"
	"github.com/rubenv/geo2wall/render"
)

type CmdBuilding struct {
	global *GlobalOptions

	Plot bool `short:"p" long:"plot" description:"Also draw every floor as SVG"`
}

func init() {
	_, err := parser.AddCommand("building",
		"Extract a building",
		"Extract all floors of a building configuration into one frame",
		&CmdBuilding{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdBuilding) Usage() string {
	return "building.yaml outputpath"
}

func (cmd CmdBuilding) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Config file or output path not specified, Usage: %s", cmd.Usage())
	}

	cfg, err := geo2wall.ReadBuildingConfig(args[0])
	if err != nil {
		return err
	}

	b := &geo2wall.Building{
		Loader:   cmd.global.Loader(),
		Config:   cfg,
		Progress: true,
	}
	res, err := b.Extract()
	if err != nil {
		return fmt.Errorf("Failed to extract: %s\n", err.Error())
	}

	outDir := args[1]
	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return err
	}

	err = geo2wall.WriteFrame(filepath.Join(outDir, "frame.yaml"), res.Frame, res.Angle)
	if err != nil {
		return err
	}

	for _, f := range res.Floors {
		base := strings.TrimSuffix(f.Floor.Name, filepath.Ext(f.Floor.Name))
		err = f.Walls.Export(filepath.Join(outDir, base+".geojson"))
		if err != nil {
			return err
		}

		if cmd.Plot {
			err = render.WriteFile(filepath.Join(outDir, base+".svg"), f.Walls, render.DefaultOptions())
			if err != nil {
				return err
			}
		}
		log.Printf("%s: %d walls", f.Floor.Name, f.Walls.Len())
	}
	return nil
}
