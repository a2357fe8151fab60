package geo2wall

import (
	"github.com/paulmach/orb"
)

// Normalize flattens the features of a layer into simple records. Multi
// polygons yield one area per part, polylines one line per segment. Every
// record copies the attributes of the feature it came from.
func Normalize(layer *Layer) (*Collection, error) {
	out := &Collection{
		CRS:     layer.CRS,
		Records: make([]Record, 0, len(layer.Features)),
	}

	for i, f := range layer.Features {
		if f.Geometry == nil {
			return nil, &UnsupportedGeometryError{Index: i, Type: "null"}
		}

		n := &normalizer{index: i, feature: f, crs: layer.CRS}
		err := n.add(f.Geometry)
		if err != nil {
			return nil, err
		}
		out.Records = append(out.Records, n.records...)
	}

	return out, nil
}

type normalizer struct {
	index   int
	feature Feature
	crs     string
	records []Record
}

func (n *normalizer) add(g orb.Geometry) error {
	switch g := g.(type) {
	case orb.LineString:
		return n.addLine(g)
	case orb.MultiLineString:
		for _, ls := range g {
			err := n.addLine(ls)
			if err != nil {
				return err
			}
		}
	case orb.Ring:
		return n.addRing(g)
	case orb.Polygon:
		return n.addPolygon(g)
	case orb.MultiPolygon:
		for _, p := range g {
			err := n.addPolygon(p)
			if err != nil {
				return err
			}
		}
	case orb.Collection:
		for _, c := range g {
			err := n.add(c)
			if err != nil {
				return err
			}
		}
	default:
		return &UnsupportedGeometryError{Index: n.index, Type: g.GeoJSONType()}
	}
	return nil
}

func (n *normalizer) addLine(ls orb.LineString) error {
	if len(ls) < 2 {
		return &UnsupportedGeometryError{
			Index:  n.index,
			Type:   ls.GeoJSONType(),
			Reason: "line needs at least two points",
		}
	}

	for i := 0; i < len(ls)-1; i++ {
		n.push(NewLine(ls[i], ls[i+1]))
	}
	return nil
}

func (n *normalizer) addPolygon(p orb.Polygon) error {
	if len(p) == 0 {
		return &UnsupportedGeometryError{
			Index:  n.index,
			Type:   p.GeoJSONType(),
			Reason: "polygon without exterior ring",
		}
	}

	// Holes never change the bounding box, only the shell is kept.
	return n.addRing(p[0])
}

func distinct(r orb.Ring) int {
	seen := make(map[orb.Point]struct{}, len(r))
	for _, p := range r {
		seen[p] = struct{}{}
	}
	return len(seen)
}

func (n *normalizer) addRing(r orb.Ring) error {
	if distinct(r) < 3 {
		return &UnsupportedGeometryError{
			Index:  n.index,
			Type:   "Polygon",
			Reason: "ring needs at least three distinct points",
		}
	}

	ring := make(orb.Ring, len(r), len(r)+1)
	copy(ring, r)
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	n.push(NewArea(ring))
	return nil
}

func (n *normalizer) push(r Record) {
	r.CRS = n.crs
	r.Properties = copyProperties(n.feature.Properties)
	n.records = append(n.records, r)
}

func copyProperties(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
