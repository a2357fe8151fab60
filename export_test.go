package geo2wall

import (
	"bytes"
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulmach/go.geojson"
)

func TestWriteGeoJSON(t *testing.T) {
	is := is.New(t)

	walls := &Walls{
		Horizontal: []Wall{{0, 1, 10, 1, Horizontal}},
		Vertical:   []Wall{{1, 0, 1, 10, Vertical}, {2.5, 0, 2.5, 5, Vertical}},
	}

	var buf bytes.Buffer
	err := walls.WriteGeoJSON(&buf)
	is.NoErr(err)

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	is.NoErr(err)
	is.Equal(len(fc.Features), 3)

	f := fc.Features[2]
	is.True(f.Geometry.IsLineString())
	is.Equal(f.Geometry.LineString, [][]float64{{2.5, 0}, {2.5, 5}})
	is.Equal(f.Properties["orientation"], "vertical")
	is.Equal(f.Properties["index"], 1.0)
	is.Equal(fc.Features[0].Properties["orientation"], "horizontal")
}
