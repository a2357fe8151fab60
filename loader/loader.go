// Package loader reads floor plan geometry from shapefiles, KML, GeoJSON and
// DXF drawings.
package loader

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/rubenv/geo2wall"
)

// A Format reads one kind of file. Projected reports whether the result
// carries a reference system that should be reprojected into the target.
type Format struct {
	Read      func(req geo2wall.LoadRequest) (*geo2wall.Layer, error)
	Projected bool
}

var formats = map[string]Format{
	".shp":     {Read: ReadShapefile, Projected: true},
	".kml":     {Read: ReadKML, Projected: true},
	".geojson": {Read: ReadGeoJSON, Projected: true},
	".json":    {Read: ReadGeoJSON, Projected: true},
	".dxf":     {Read: ReadDXF, Projected: false},
}

// Files picks a format based on the file extension.
type Files struct{}

var _ geo2wall.Loader = Files{}

func (Files) Load(req geo2wall.LoadRequest) (*geo2wall.Layer, error) {
	ext := strings.ToLower(filepath.Ext(req.Path))
	format, ok := formats[ext]
	if !ok {
		return nil, &geo2wall.ParseError{
			Path: req.Path,
			Err:  fmt.Errorf("Unsupported file type: %q", ext),
		}
	}

	layer, err := format.Read(req)
	if err != nil {
		return nil, err
	}
	log.Printf("Read %d features from %s", len(layer.Features), filepath.Base(req.Path))

	if !format.Projected || req.CRS == "" {
		if layer.CRS == "" {
			layer.CRS = req.CRS
		}
		return layer, nil
	}

	err = Reproject(layer, req.CRS)
	if err != nil {
		return nil, err
	}
	return layer, nil
}

func parseError(path string, err error) error {
	return &geo2wall.ParseError{Path: path, Err: err}
}
