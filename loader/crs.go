package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/geom/proj"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/rubenv/geo2wall"
)

const WGS84 = "epsg:4326"

var epsgDefs = map[int]string{
	4326: "+proj=longlat +datum=WGS84 +no_defs",
	4258: "+proj=longlat +ellps=GRS80 +no_defs",
	3857: "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +no_defs",
}

// ParseCode returns the EPSG code of an identifier such as "epsg:25832",
// "EPSG:4326" or "urn:ogc:def:crs:EPSG::25832". The second return value is
// false for anything else.
func ParseCode(id string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(id))
	if strings.HasSuffix(s, "crs84") {
		return 4326, true
	}

	i := strings.LastIndex(s, "epsg:")
	if i < 0 {
		return 0, false
	}
	s = strings.TrimLeft(s[i+len("epsg:"):], ":")

	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return code, true
}

// Definition returns the proj4 (or WKT) definition for a reference system
// identifier. Raw proj4 strings and WKT are passed through.
func Definition(id string) (string, error) {
	s := strings.TrimSpace(id)
	if strings.HasPrefix(s, "+") || isWKT(s) {
		return s, nil
	}

	code, ok := ParseCode(s)
	if !ok {
		return "", fmt.Errorf("Unknown reference system: %q", id)
	}

	if def, ok := epsgDefs[code]; ok {
		return def, nil
	}

	switch {
	case code >= 25828 && code <= 25838:
		return fmt.Sprintf("+proj=utm +zone=%d +ellps=GRS80 +units=m +no_defs", code-25800), nil
	case code >= 32601 && code <= 32660:
		return fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", code-32600), nil
	case code >= 32701 && code <= 32760:
		return fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", code-32700), nil
	}
	return "", fmt.Errorf("Unsupported EPSG code: %d", code)
}

func isWKT(s string) bool {
	for _, prefix := range []string{"PROJCS[", "GEOGCS[", "PROJCRS[", "GEOGCRS["} {
		if strings.HasPrefix(strings.ToUpper(s), prefix) {
			return true
		}
	}
	return false
}

// SameCRS reports whether two identifiers name the same reference system
// without needing a transformation.
func SameCRS(a, b string) bool {
	if strings.TrimSpace(a) == strings.TrimSpace(b) {
		return true
	}
	ca, okA := ParseCode(a)
	cb, okB := ParseCode(b)
	return okA && okB && ca == cb
}

// Transformer maps a point from one reference system into another.
type Transformer func(orb.Point) (orb.Point, error)

// NewTransformer returns a transformer between two reference systems. A nil
// transformer means no reprojection is needed.
func NewTransformer(from, to string) (Transformer, error) {
	if SameCRS(from, to) {
		return nil, nil
	}

	fail := func(err error) (Transformer, error) {
		return nil, &geo2wall.UnresolvedCRSError{From: from, To: to, Err: err}
	}

	srcDef, err := Definition(from)
	if err != nil {
		return fail(err)
	}
	dstDef, err := Definition(to)
	if err != nil {
		return fail(err)
	}

	src, err := proj.Parse(srcDef)
	if err != nil {
		return fail(err)
	}
	dst, err := proj.Parse(dstDef)
	if err != nil {
		return fail(err)
	}

	t, err := src.NewTransform(dst)
	if err != nil {
		return fail(err)
	}

	return func(p orb.Point) (orb.Point, error) {
		x, y, err := t(p[0], p[1])
		if err != nil {
			return p, err
		}
		return orb.Point{x, y}, nil
	}, nil
}

// Reproject moves all features of a layer into the target reference system.
// A layer without a reference system is assumed to already be in it.
func Reproject(layer *geo2wall.Layer, to string) error {
	if layer.CRS == "" {
		layer.CRS = to
		return nil
	}

	t, err := NewTransformer(layer.CRS, to)
	if err != nil {
		return err
	}

	if t != nil {
		var perr error
		p := func(pt orb.Point) orb.Point {
			out, err := t(pt)
			if err != nil && perr == nil {
				perr = err
			}
			return out
		}

		for i, f := range layer.Features {
			if f.Geometry == nil {
				continue
			}
			layer.Features[i].Geometry = project.Geometry(f.Geometry, p)
			if perr != nil {
				return &geo2wall.UnresolvedCRSError{
					From: layer.CRS,
					To:   to,
					Err:  fmt.Errorf("Feature %d: %w", i, perr),
				}
			}
		}
	}

	layer.CRS = to
	return nil
}
