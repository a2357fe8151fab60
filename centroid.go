package geo2wall

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulsmith/gogeos/geos"
)

// UnionCentroid returns the centroid of the union of all records. Overlapping
// areas count once. When areas are present, lines do not contribute.
func UnionCentroid(c *Collection) (orb.Point, error) {
	if c.Len() == 0 {
		return orb.Point{}, &EmptyInputError{Stage: "centroid"}
	}

	geoms := make([]*geos.Geometry, 0, c.Len())
	for i, r := range c.Records {
		g, err := RecordToGeos(r)
		if err != nil {
			return orb.Point{}, fmt.Errorf("Record %d: %w", i, err)
		}
		geoms = append(geoms, g)
	}

	coll, err := geos.NewCollection(geos.GEOMETRYCOLLECTION, geoms...)
	if err != nil {
		return orb.Point{}, err
	}

	union, err := coll.UnaryUnion()
	if err != nil {
		return orb.Point{}, err
	}

	centroid, err := union.Centroid()
	if err != nil {
		return orb.Point{}, err
	}

	x, err := centroid.X()
	if err != nil {
		return orb.Point{}, err
	}
	y, err := centroid.Y()
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{x, y}, nil
}

func RecordToGeos(r Record) (*geos.Geometry, error) {
	switch r.Shape {
	case Line:
		return geos.NewLineString(toGeosCoords(r.Points)...)
	case Area:
		return geos.NewPolygon(toGeosCoords(r.Ring))
	default:
		return nil, fmt.Errorf("Unknown shape: %v", r.Shape)
	}
}

func toGeosCoords(points []orb.Point) []geos.Coord {
	coords := make([]geos.Coord, len(points))
	for i, p := range points {
		coords[i] = geos.Coord{X: p[0], Y: p[1]}
	}
	return coords
}
