package geo2wall

import (
	"math"

	"github.com/paulmach/orb"
)

type TransformOptions struct {
	// Rotation in degrees, counter-clockwise.
	Angle float64

	// Rotation center. Defaults to the centroid of the union of all
	// geometries.
	Center *orb.Point

	// Offset added after rotation. Defaults to the negated lower left
	// corner of the rotated bounding box, which moves that corner to the
	// origin.
	Offset *orb.Point
}

// Frame is the rotation center and translation offset a transform actually
// used. Pass it back as TransformOptions to put related files into the same
// frame.
type Frame struct {
	Center orb.Point `yaml:"center" json:"center"`
	Offset orb.Point `yaml:"offset" json:"offset"`
}

func (f Frame) Options(angle float64) TransformOptions {
	center := f.Center
	offset := f.Offset
	return TransformOptions{
		Angle:  angle,
		Center: &center,
		Offset: &offset,
	}
}

// Transform rotates all records about the center and then translates them.
// The input collection is left untouched.
func Transform(c *Collection, opts TransformOptions) (*Collection, Frame, error) {
	if c.Len() == 0 {
		return nil, Frame{}, &EmptyInputError{Stage: "transform"}
	}

	// Without a rotation the center has no effect and is left at zero.
	var center orb.Point
	if opts.Center != nil {
		center = *opts.Center
	} else if opts.Angle != 0 {
		p, err := UnionCentroid(c)
		if err != nil {
			return nil, Frame{}, err
		}
		center = p
	}

	rotated := mapCollection(c, rotator(opts.Angle, center))

	var offset orb.Point
	if opts.Offset != nil {
		offset = *opts.Offset
	} else {
		lowerLeft := rotated.Bound().Min
		offset = orb.Point{-lowerLeft[0], -lowerLeft[1]}
	}

	out := mapCollection(rotated, func(p orb.Point) orb.Point {
		return orb.Point{p[0] + offset[0], p[1] + offset[1]}
	})

	return out, Frame{Center: center, Offset: offset}, nil
}

func rotator(angle float64, center orb.Point) func(orb.Point) orb.Point {
	if angle == 0 {
		return func(p orb.Point) orb.Point { return p }
	}

	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return func(p orb.Point) orb.Point {
		x := p[0] - center[0]
		y := p[1] - center[1]
		return orb.Point{
			center[0] + x*cos - y*sin,
			center[1] + x*sin + y*cos,
		}
	}
}

func mapCollection(c *Collection, f func(orb.Point) orb.Point) *Collection {
	out := &Collection{
		CRS:     c.CRS,
		Records: make([]Record, len(c.Records)),
	}
	for i, r := range c.Records {
		out.Records[i] = r.mapPoints(f)
	}
	return out
}
