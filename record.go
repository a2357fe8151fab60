package geo2wall

import (
	"fmt"

	"github.com/paulmach/orb"
)

// A Feature is a single geometry as read from an input file, together with
// its attribute row. The geometry may be compound.
type Feature struct {
	Geometry   orb.Geometry
	Properties map[string]interface{}
}

// A Layer is the loader output: features sharing one coordinate reference
// system, in file order.
type Layer struct {
	CRS      string
	Features []Feature
}

type Shape int

const (
	Line Shape = iota + 1
	Area
)

func (s Shape) String() string {
	switch s {
	case Line:
		return "line"
	case Area:
		return "area"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Record is a simple geometry: a Line with exactly two points or an Area
// with a single closed ring. Records are never modified once created.
type Record struct {
	Shape      Shape
	Points     orb.LineString
	Ring       orb.Ring
	CRS        string
	Properties map[string]interface{}
}

func NewLine(a, b orb.Point) Record {
	return Record{
		Shape:  Line,
		Points: orb.LineString{a, b},
	}
}

func NewArea(ring orb.Ring) Record {
	return Record{
		Shape: Area,
		Ring:  ring,
	}
}

// Bound returns the axis-aligned bounding box of the record.
func (r Record) Bound() orb.Bound {
	if r.Shape == Line {
		return r.Points.Bound()
	}
	return r.Ring.Bound()
}

// Geometry returns the record as an orb geometry.
func (r Record) Geometry() orb.Geometry {
	if r.Shape == Line {
		return r.Points
	}
	return orb.Polygon{r.Ring}
}

// mapPoints returns a copy of the record with f applied to every point.
func (r Record) mapPoints(f func(orb.Point) orb.Point) Record {
	out := r
	switch r.Shape {
	case Line:
		out.Points = make(orb.LineString, len(r.Points))
		for i, p := range r.Points {
			out.Points[i] = f(p)
		}
	case Area:
		out.Ring = make(orb.Ring, len(r.Ring))
		for i, p := range r.Ring {
			out.Ring[i] = f(p)
		}
	}
	return out
}

type Collection struct {
	CRS     string
	Records []Record
}

func (c *Collection) Len() int {
	return len(c.Records)
}

// Bound returns the bounding box of all records. The collection must not be
// empty.
func (c *Collection) Bound() orb.Bound {
	b := c.Records[0].Bound()
	for _, r := range c.Records[1:] {
		b = b.Union(r.Bound())
	}
	return b
}
