// Package render draws walls with github.com/tdewolff/canvas.
package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rubenv/geo2wall"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
)

type Options struct {
	// Millimeters per unit of the wall coordinates.
	Scale float64

	// Margin around the drawing, in millimeters.
	Margin float64

	StrokeWidth float64

	HorizontalColor color.RGBA
	VerticalColor   color.RGBA
}

func DefaultOptions() Options {
	return Options{
		Scale:           5,
		Margin:          10,
		StrokeWidth:     0.5,
		HorizontalColor: canvas.Hex("#008000"),
		VerticalColor:   canvas.Hex("#008000"),
	}
}

type extent struct {
	minX, minY    float64
	width, height float64
}

func measure(walls *geo2wall.Walls, opts Options) extent {
	var minX, minY, maxX, maxY float64
	for i, w := range walls.All() {
		if i == 0 {
			minX, maxX = min(w.X1, w.X2), max(w.X1, w.X2)
			minY, maxY = min(w.Y1, w.Y2), max(w.Y1, w.Y2)
			continue
		}
		minX = min(minX, w.X1, w.X2)
		maxX = max(maxX, w.X1, w.X2)
		minY = min(minY, w.Y1, w.Y2)
		maxY = max(maxY, w.Y1, w.Y2)
	}

	return extent{
		minX:   minX,
		minY:   minY,
		width:  (maxX-minX)*opts.Scale + 2*opts.Margin,
		height: (maxY-minY)*opts.Scale + 2*opts.Margin,
	}
}

// Canvas draws all walls onto a new canvas that fits them, with the origin
// in the lower left corner.
func Canvas(walls *geo2wall.Walls, opts Options) *canvas.Canvas {
	c, _ := draw(walls, opts)
	return c
}

func draw(walls *geo2wall.Walls, opts Options) (*canvas.Canvas, extent) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	e := measure(walls, opts)

	c := canvas.New(e.width, e.height)
	ctx := canvas.NewContext(c)
	ctx.SetStrokeWidth(opts.StrokeWidth)

	stroke := func(ws []geo2wall.Wall, col color.RGBA) {
		ctx.SetStrokeColor(col)
		for _, w := range ws {
			p := &canvas.Path{}
			p.MoveTo(0, 0)
			p.LineTo((w.X2-w.X1)*opts.Scale, (w.Y2-w.Y1)*opts.Scale)
			ctx.DrawPath(
				opts.Margin+(w.X1-e.minX)*opts.Scale,
				opts.Margin+(w.Y1-e.minY)*opts.Scale,
				p,
			)
		}
	}
	stroke(walls.Horizontal, opts.HorizontalColor)
	stroke(walls.Vertical, opts.VerticalColor)

	return c, e
}

// Write renders the walls as "svg" or "pdf".
func Write(w io.Writer, format string, walls *geo2wall.Walls, opts Options) error {
	c, e := draw(walls, opts)
	width, height := e.width, e.height

	switch strings.ToLower(format) {
	case "svg":
		s := svg.New(w, width, height, nil)
		c.RenderTo(s)
		return s.Close()
	case "pdf":
		p := pdf.New(w, width, height, nil)
		c.RenderTo(p)
		return p.Close()
	default:
		return fmt.Errorf("Unsupported output format: %q", format)
	}
}

// WriteFile renders the walls into a file, the format follows its extension.
func WriteFile(filename string, walls *geo2wall.Walls, opts Options) error {
	format := strings.TrimPrefix(filepath.Ext(filename), ".")

	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()

	err = Write(out, format, walls, opts)
	if err != nil {
		return err
	}
	return out.Close()
}
