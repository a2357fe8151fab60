package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rubenv/geo2wall"
	"github.com/rubenv/geo2wall/loader"
)

type GlobalOptions struct {
	CRS   string  `short:"c" long:"crs" description:"Target reference system" default:"epsg:25832"`
	Layer string  `short:"l" long:"layer" description:"KML folder holding the walls" default:"Waende"`
	Angle float64 `short:"a" long:"angle" description:"Rotation angle in degrees, counter-clockwise (use --angle=-99 for negative values)"`
	Scale float64 `short:"s" long:"scale" description:"Scale factor applied to DXF coordinates"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) Loader() geo2wall.Loader {
	return loader.Files{}
}

func (g *GlobalOptions) Options(path string) geo2wall.Options {
	return geo2wall.Options{
		Path:  path,
		Layer: g.Layer,
		CRS:   g.CRS,
		Angle: g.Angle,
		Scale: g.Scale,
	}
}
