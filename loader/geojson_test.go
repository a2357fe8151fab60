package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulmach/orb"
	"github.com/rubenv/geo2wall"
)

const testGeoJSON = `{
	"type": "FeatureCollection",
	"crs": {"type": "name", "properties": {"name": "urn:ogc:def:crs:EPSG::25832"}},
	"features": [
		{"type": "Feature", "properties": {"id": 1},
		 "geometry": {"type": "Polygon", "coordinates": [[[0,0],[10,0],[10,2],[0,2],[0,0]]]}},
		{"type": "Feature", "properties": {"id": 2},
		 "geometry": {"type": "MultiPolygon", "coordinates": [
			[[[0,0],[2,0],[2,10],[0,10],[0,0]]],
			[[[8,0],[10,0],[10,10],[8,10],[8,0]]],
			[[[4,4],[6,4],[6,6],[4,6],[4,4]]]
		 ]}},
		{"type": "Feature", "properties": {"id": 3},
		 "geometry": {"type": "LineString", "coordinates": [[0,0],[10,1]]}}
	]
}`

func TestParseGeoJSON(t *testing.T) {
	is := is.New(t)

	layer, err := ParseGeoJSON([]byte(testGeoJSON))
	is.NoErr(err)
	is.Equal(layer.CRS, "urn:ogc:def:crs:EPSG::25832")
	is.Equal(len(layer.Features), 3)

	mp, ok := layer.Features[1].Geometry.(orb.MultiPolygon)
	is.True(ok)
	is.Equal(len(mp), 3)
	is.Equal(layer.Features[2].Geometry, orb.LineString{{0, 0}, {10, 1}})
	is.Equal(layer.Features[0].Properties["id"], 1.0)
}

func TestParseGeoJSONDefaultsToWGS84(t *testing.T) {
	is := is.New(t)

	layer, err := ParseGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`))
	is.NoErr(err)
	is.Equal(layer.CRS, WGS84)
	is.Equal(len(layer.Features), 0)

	_, err = ParseGeoJSON([]byte(`{"type":"Feature"}`))
	is.Err(err)

	_, err = ParseGeoJSON([]byte(`not json`))
	is.Err(err)
}

func TestReadGeoJSON(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "plan.geojson")
	err := os.WriteFile(path, []byte(testGeoJSON), 0644)
	is.NoErr(err)

	// Already in the target system, coordinates stay put.
	center := orb.Point{0, 0}
	res, err := geo2wall.Extract(Files{}, geo2wall.Options{Path: path, Center: &center})
	is.NoErr(err)
	is.Equal(res.Walls.Len(), 5)
	is.Equal(res.Walls.Horizontal[0].Tuple(), [4]float64{0, 1, 10, 1})
	is.Equal(res.Walls.Horizontal[1].Tuple(), [4]float64{0, 0, 10, 1})
	is.Equal(res.Walls.Vertical[0].Tuple(), [4]float64{1, 0, 1, 10})
	is.Equal(res.Walls.Vertical[1].Tuple(), [4]float64{9, 0, 9, 10})
	is.Equal(res.Walls.Vertical[2].Tuple(), [4]float64{5, 4, 5, 6})
}

func TestReadGeoJSONUnknownCRS(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "plan.geojson")
	err := os.WriteFile(path, []byte(testGeoJSON), 0644)
	is.NoErr(err)

	_, err = Files{}.Load(geo2wall.LoadRequest{Path: path, CRS: "epsg:1"})
	var ce *geo2wall.UnresolvedCRSError
	is.True(errors.As(err, &ce))
	is.Equal(ce.To, "epsg:1")
}
