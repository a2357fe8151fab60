package geo2wall

import (
	"encoding/json"
	"io"
	"os"

	"github.com/paulmach/go.geojson"
)

// FeatureCollection converts walls into GeoJSON line strings. Every feature
// carries its orientation and its index within that orientation.
func (w *Walls) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	add := func(walls []Wall) {
		for i, wall := range walls {
			f := geojson.NewLineStringFeature([][]float64{
				{wall.X1, wall.Y1},
				{wall.X2, wall.Y2},
			})
			f.SetProperty("orientation", wall.Orientation.String())
			f.SetProperty("index", i)
			fc.AddFeature(f)
		}
	}
	add(w.Horizontal)
	add(w.Vertical)
	return fc
}

func (w *Walls) WriteGeoJSON(out io.Writer) error {
	return json.NewEncoder(out).Encode(w.FeatureCollection())
}

func (w *Walls) Export(filename string) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()

	err = w.WriteGeoJSON(out)
	if err != nil {
		return err
	}
	return out.Close()
}
