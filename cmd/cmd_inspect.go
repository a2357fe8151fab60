package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/rubenv/geo2wall"
)

type CmdInspect struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("inspect",
		"Inspect geometries",
		"Print the normalized records of a geometry file",
		&CmdInspect{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdInspect) Usage() string {
	return "file.(shp|kml|geojson|dxf)"
}

func (cmd CmdInspect) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Input file not specified, Usage: %s", cmd.Usage())
	}

	opts := cmd.global.Options(args[0])
	layer, err := cmd.global.Loader().Load(geo2wall.LoadRequest{
		Path:  opts.Path,
		Layer: opts.Layer,
		CRS:   opts.CRS,
		Scale: opts.Scale,
	})
	if err != nil {
		return err
	}

	coll, err := geo2wall.Normalize(layer)
	if err != nil {
		return err
	}

	fmt.Printf("%d features, %d records in %s\n", len(layer.Features), coll.Len(), coll.CRS)
	for i, r := range coll.Records {
		fmt.Printf("%d: %s\n", i, wkt.MarshalString(r.Geometry()))
		if len(r.Properties) > 0 {
			fmt.Printf("   %# v\n", pretty.Formatter(r.Properties))
		}
	}
	return nil
}
