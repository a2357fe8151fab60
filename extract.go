package geo2wall

import (
	"github.com/paulmach/orb"
)

const (
	DefaultCRS   = "epsg:25832"
	DefaultLayer = "Waende"
)

// Loader reads a geometry file into a layer in the requested reference
// system.
type Loader interface {
	Load(req LoadRequest) (*Layer, error)
}

type LoadRequest struct {
	Path string

	// Layer selects the named folder in marked-up formats (KML).
	Layer string

	// CRS is the target reference system, e.g. "epsg:25832".
	CRS string

	// Scale multiplies CAD coordinates when non-zero.
	Scale float64
}

type Options struct {
	Path  string
	Layer string
	CRS   string
	Angle float64
	Scale float64

	// Fixed frame, see TransformOptions.
	Center *orb.Point
	Offset *orb.Point
}

func (o Options) request() LoadRequest {
	req := LoadRequest{
		Path:  o.Path,
		Layer: o.Layer,
		CRS:   o.CRS,
		Scale: o.Scale,
	}
	if req.Layer == "" {
		req.Layer = DefaultLayer
	}
	if req.CRS == "" {
		req.CRS = DefaultCRS
	}
	return req
}

type Result struct {
	Walls *Walls
	Frame Frame
	CRS   string
}

// Extract loads a file and returns its walls in the canonical frame.
func Extract(l Loader, opts Options) (*Result, error) {
	layer, err := l.Load(opts.request())
	if err != nil {
		return nil, err
	}

	return ExtractLayer(layer, TransformOptions{
		Angle:  opts.Angle,
		Center: opts.Center,
		Offset: opts.Offset,
	})
}

func ExtractLayer(layer *Layer, opts TransformOptions) (*Result, error) {
	coll, err := Normalize(layer)
	if err != nil {
		return nil, err
	}

	coll, frame, err := Transform(coll, opts)
	if err != nil {
		return nil, err
	}

	walls, err := Classify(coll)
	if err != nil {
		return nil, err
	}

	return &Result{
		Walls: walls,
		Frame: frame,
		CRS:   coll.CRS,
	}, nil
}
