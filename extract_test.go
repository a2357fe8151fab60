package geo2wall

import (
	"errors"
	"sync"
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulmach/orb"
)

type memLoader struct {
	mu       sync.Mutex
	layers   map[string]*Layer
	requests []LoadRequest
}

func (m *memLoader) Load(req LoadRequest) (*Layer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	l, ok := m.layers[req.Path]
	if !ok {
		return nil, &ParseError{Path: req.Path, Err: errors.New("no such file")}
	}

	// Hand out copies, callers must not see each other's data.
	out := &Layer{CRS: req.CRS, Features: make([]Feature, len(l.Features))}
	copy(out.Features, l.Features)
	return out, nil
}

func floorPlan(dx, dy float64) *Layer {
	return &Layer{
		Features: []Feature{
			{Geometry: square(dx, dy, 1)},
			{Geometry: orb.Polygon{{{dx, dy}, {dx + 10, dy}, {dx + 10, dy + 0.25}, {dx, dy + 0.25}, {dx, dy}}}},
			{Geometry: orb.MultiPolygon{
				{{{dx, dy}, {dx + 0.25, dy}, {dx + 0.25, dy + 8}, {dx, dy + 8}, {dx, dy}}},
				{{{dx + 9.75, dy}, {dx + 10, dy}, {dx + 10, dy + 8}, {dx + 9.75, dy + 8}, {dx + 9.75, dy}}},
			}},
			{Geometry: orb.LineString{{dx + 2, dy + 4}, {dx + 8, dy + 4.1}}},
		},
	}
}

func TestExtract(t *testing.T) {
	is := is.New(t)

	l := &memLoader{layers: map[string]*Layer{"plan.kml": floorPlan(500000, 5700000)}}
	res, err := Extract(l, Options{Path: "plan.kml"})
	is.NoErr(err)

	is.Equal(len(l.requests), 1)
	is.Equal(l.requests[0].Layer, DefaultLayer)
	is.Equal(l.requests[0].CRS, DefaultCRS)
	is.Equal(res.CRS, DefaultCRS)

	is.Equal(res.Walls.Len(), 5)
	is.Equal(len(res.Walls.Horizontal), 2)
	is.Equal(len(res.Walls.Vertical), 3)
	is.Equal(res.Frame.Offset, orb.Point{-500000, -5700000})

	is.Equal(res.Walls.Horizontal[0].Tuple(), [4]float64{0, 0.125, 10, 0.125})
	is.Equal(res.Walls.Vertical[0].Tuple(), [4]float64{0.5, 0, 0.5, 1})
}

func TestExtractParseError(t *testing.T) {
	is := is.New(t)

	_, err := Extract(&memLoader{}, Options{Path: "missing.shp"})
	var pe *ParseError
	is.True(errors.As(err, &pe))
	is.Equal(pe.Path, "missing.shp")
}

func TestExtractEmpty(t *testing.T) {
	is := is.New(t)

	l := &memLoader{layers: map[string]*Layer{"empty.geojson": {}}}
	_, err := Extract(l, Options{Path: "empty.geojson"})
	is.True(errors.Is(err, ErrEmptyInput))
}

func TestExtractUnsupported(t *testing.T) {
	is := is.New(t)

	l := &memLoader{layers: map[string]*Layer{"points.geojson": {
		Features: []Feature{{Geometry: orb.MultiPoint{{0, 0}, {1, 1}}}},
	}}}
	_, err := Extract(l, Options{Path: "points.geojson"})
	var ug *UnsupportedGeometryError
	is.True(errors.As(err, &ug))
}
