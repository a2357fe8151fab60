package loader

import (
	"github.com/paulmach/orb"
	"github.com/rubenv/geo2wall"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"
)

// ReadDXF reads the LINE entities of a DXF drawing. Coordinates are
// multiplied by req.Scale when it is set. Drawings are planar, the result
// has no reference system of its own.
func ReadDXF(req geo2wall.LoadRequest) (*geo2wall.Layer, error) {
	d, err := dxf.Open(req.Path)
	if err != nil {
		return nil, parseError(req.Path, err)
	}

	lines := DXFLines(d)
	layer := &geo2wall.Layer{
		Features: make([]geo2wall.Feature, 0, len(lines)),
	}
	for _, l := range lines {
		start, end := l.Start, l.End
		if req.Scale != 0 {
			start = orb.Point{start[0] * req.Scale, start[1] * req.Scale}
			end = orb.Point{end[0] * req.Scale, end[1] * req.Scale}
		}
		layer.Features = append(layer.Features, geo2wall.Feature{
			Geometry: orb.LineString{start, end},
			Properties: map[string]interface{}{
				"layer": l.Layer,
			},
		})
	}
	return layer, nil
}

type DXFLine struct {
	Layer      string
	Start, End orb.Point
}

// DXFLines returns the LINE entities of a drawing in file order, any other
// entity is skipped.
func DXFLines(d *drawing.Drawing) []DXFLine {
	lines := make([]DXFLine, 0)
	for _, e := range d.Entities() {
		l, ok := e.(*entity.Line)
		if !ok {
			continue
		}

		name := ""
		if layer := l.Layer(); layer != nil {
			name = layer.Name()
		}
		lines = append(lines, DXFLine{
			Layer: name,
			Start: orb.Point{l.Start[0], l.Start[1]},
			End:   orb.Point{l.End[0], l.End[1]},
		})
	}
	return lines
}
