package geo2wall

import (
	"errors"
	"fmt"
	"math"
)

type Orientation int

const (
	Horizontal Orientation = iota + 1
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// Wall is a zero-width wall between (X1, Y1) and (X2, Y2).
type Wall struct {
	X1, Y1, X2, Y2 float64
	Orientation    Orientation
}

func (w Wall) Tuple() [4]float64 {
	return [4]float64{w.X1, w.Y1, w.X2, w.Y2}
}

type Walls struct {
	Horizontal []Wall
	Vertical   []Wall
}

func (w *Walls) Len() int {
	return len(w.Horizontal) + len(w.Vertical)
}

// All returns horizontal walls followed by vertical walls.
func (w *Walls) All() []Wall {
	out := make([]Wall, 0, w.Len())
	out = append(out, w.Horizontal...)
	return append(out, w.Vertical...)
}

// Classify turns every record into exactly one wall. Lines keep their
// endpoints. Areas collapse onto the midline of their bounding box. Whichever
// bounding box side is strictly longer decides the orientation; equal sides
// give a vertical wall. Diagonal shapes are forced onto one of the two axes.
func Classify(c *Collection) (*Walls, error) {
	walls := &Walls{
		Horizontal: make([]Wall, 0),
		Vertical:   make([]Wall, 0),
	}

	for i, r := range c.Records {
		w, err := ClassifyRecord(r)
		if err != nil {
			var ug *UnsupportedGeometryError
			if errors.As(err, &ug) {
				ug.Index = i
			}
			return nil, err
		}

		if w.Orientation == Horizontal {
			walls.Horizontal = append(walls.Horizontal, w)
		} else {
			walls.Vertical = append(walls.Vertical, w)
		}
	}

	return walls, nil
}

func ClassifyRecord(r Record) (Wall, error) {
	switch r.Shape {
	case Line:
		a, b := r.Points[0], r.Points[1]
		w := Wall{X1: a[0], Y1: a[1], X2: b[0], Y2: b[1]}
		if math.Abs(a[0]-b[0]) > math.Abs(a[1]-b[1]) {
			w.Orientation = Horizontal
		} else {
			w.Orientation = Vertical
		}
		return w, nil
	case Area:
		b := r.Ring.Bound()
		dx := b.Max[0] - b.Min[0]
		dy := b.Max[1] - b.Min[1]
		if dx > dy {
			c := (b.Min[1] + b.Max[1]) / 2
			return Wall{b.Min[0], c, b.Max[0], c, Horizontal}, nil
		}
		c := (b.Min[0] + b.Max[0]) / 2
		return Wall{c, b.Min[1], c, b.Max[1], Vertical}, nil
	default:
		return Wall{}, &UnsupportedGeometryError{Type: r.Shape.String()}
	}
}
