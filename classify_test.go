package geo2wall

import (
	"errors"
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulmach/orb"
)

func rect(xmin, ymin, xmax, ymax float64) Record {
	return NewArea(orb.Ring{
		{xmin, ymin},
		{xmax, ymin},
		{xmax, ymax},
		{xmin, ymax},
		{xmin, ymin},
	})
}

func TestClassifyHorizontalArea(t *testing.T) {
	is := is.New(t)

	w, err := ClassifyRecord(rect(0, 0, 10, 2))
	is.NoErr(err)
	is.Equal(w.Orientation, Horizontal)
	is.Equal(w.Tuple(), [4]float64{0, 1, 10, 1})
}

func TestClassifyVerticalArea(t *testing.T) {
	is := is.New(t)

	w, err := ClassifyRecord(rect(0, 0, 2, 10))
	is.NoErr(err)
	is.Equal(w.Orientation, Vertical)
	is.Equal(w.Tuple(), [4]float64{1, 0, 1, 10})
}

func TestClassifySquareIsVertical(t *testing.T) {
	is := is.New(t)

	w, err := ClassifyRecord(rect(0, 0, 5, 5))
	is.NoErr(err)
	is.Equal(w.Orientation, Vertical)
	is.Equal(w.Tuple(), [4]float64{2.5, 0, 2.5, 5})
}

func TestClassifyLineKeepsEndpoints(t *testing.T) {
	is := is.New(t)

	w, err := ClassifyRecord(NewLine(orb.Point{0, 0}, orb.Point{10, 1}))
	is.NoErr(err)
	is.Equal(w.Orientation, Horizontal)
	is.Equal(w.Tuple(), [4]float64{0, 0, 10, 1})

	// Direction does not matter, only the extent
	w, err = ClassifyRecord(NewLine(orb.Point{4, 9}, orb.Point{3, -1}))
	is.NoErr(err)
	is.Equal(w.Orientation, Vertical)
	is.Equal(w.Tuple(), [4]float64{4, 9, 3, -1})

	// Diagonal lines fall onto the vertical axis
	w, err = ClassifyRecord(NewLine(orb.Point{0, 0}, orb.Point{3, 3}))
	is.NoErr(err)
	is.Equal(w.Orientation, Vertical)
}

func TestClassifyDiagonalArea(t *testing.T) {
	is := is.New(t)

	// A thin wall at roughly 30 degrees still becomes a horizontal segment
	// spanning its bounding box.
	r := NewArea(orb.Ring{{0, 0}, {10, 5.5}, {10, 6}, {0, 0.5}, {0, 0}})
	w, err := ClassifyRecord(r)
	is.NoErr(err)
	is.Equal(w.Orientation, Horizontal)
	is.Equal(w.Tuple(), [4]float64{0, 3, 10, 3})
}

func TestClassifyKeepsCountAndOrder(t *testing.T) {
	is := is.New(t)

	c := &Collection{
		Records: []Record{
			rect(0, 0, 10, 1),
			rect(0, 0, 1, 10),
			NewLine(orb.Point{0, 5}, orb.Point{8, 5}),
			NewLine(orb.Point{2, 0}, orb.Point{2, 3}),
			rect(0, 20, 30, 21),
		},
	}

	walls, err := Classify(c)
	is.NoErr(err)
	is.Equal(walls.Len(), c.Len())
	is.Equal(len(walls.Horizontal), 3)
	is.Equal(len(walls.Vertical), 2)

	is.Equal(walls.Horizontal[0].Tuple(), [4]float64{0, 0.5, 10, 0.5})
	is.Equal(walls.Horizontal[1].Tuple(), [4]float64{0, 5, 8, 5})
	is.Equal(walls.Horizontal[2].Tuple(), [4]float64{0, 20.5, 30, 20.5})
	is.Equal(walls.Vertical[0].Tuple(), [4]float64{0.5, 0, 0.5, 10})
	is.Equal(walls.Vertical[1].Tuple(), [4]float64{2, 0, 2, 3})

	all := walls.All()
	is.Equal(len(all), 5)
	is.Equal(all[3], walls.Vertical[0])
}

func TestClassifyUnknownShape(t *testing.T) {
	is := is.New(t)

	_, err := Classify(&Collection{Records: []Record{rect(0, 0, 10, 2), {}}})
	var ug *UnsupportedGeometryError
	is.True(errors.As(err, &ug))
	is.Equal(ug.Index, 1)
	is.Equal(err.Error(), "Unsupported geometry shape(0) at feature 1")
}
