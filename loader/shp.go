package loader

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/rubenv/geo2wall"
)

// ReadShapefile reads all shapes and their attribute rows. The reference
// system comes from the .prj file next to it, when present.
func ReadShapefile(req geo2wall.LoadRequest) (*geo2wall.Layer, error) {
	shape, err := shp.Open(req.Path)
	if err != nil {
		return nil, parseError(req.Path, err)
	}
	defer shape.Close()

	crs, err := readPrj(req.Path)
	if err != nil {
		return nil, parseError(req.Path, err)
	}

	fields := shape.Fields()
	layer := &geo2wall.Layer{
		CRS:      crs,
		Features: make([]geo2wall.Feature, 0),
	}
	for shape.Next() {
		n, p := shape.Shape()

		g, err := shapeToOrb(p)
		if err != nil {
			return nil, parseError(req.Path, fmt.Errorf("Shape %d: %w", n, err))
		}

		props := make(map[string]interface{}, len(fields))
		for i, f := range fields {
			props[f.String()] = strings.TrimSpace(shape.ReadAttribute(n, i))
		}

		layer.Features = append(layer.Features, geo2wall.Feature{
			Geometry:   g,
			Properties: props,
		})
	}
	if err := shape.Err(); err != nil {
		return nil, parseError(req.Path, err)
	}

	return layer, nil
}

func shapeToOrb(s shp.Shape) (orb.Geometry, error) {
	switch s := s.(type) {
	case *shp.Null:
		return nil, nil
	case *shp.Point:
		return orb.Point{s.X, s.Y}, nil
	case *shp.PointZ:
		return orb.Point{s.X, s.Y}, nil
	case *shp.MultiPoint:
		return orb.MultiPoint(toOrbPoints(s.Points)), nil
	case *shp.Polygon:
		return ringsToPolygons(splitParts(s.Parts, s.Points)), nil
	case *shp.PolygonZ:
		return ringsToPolygons(splitParts(s.Parts, s.Points)), nil
	case *shp.PolyLine:
		return partsToLines(splitParts(s.Parts, s.Points)), nil
	case *shp.PolyLineZ:
		return partsToLines(splitParts(s.Parts, s.Points)), nil
	default:
		return nil, fmt.Errorf("Unsupported shape type: %s", reflect.TypeOf(s).Elem())
	}
}

func toOrbPoints(points []shp.Point) []orb.Point {
	out := make([]orb.Point, len(points))
	for i, p := range points {
		out[i] = orb.Point{p.X, p.Y}
	}
	return out
}

func splitParts(parts []int32, points []shp.Point) [][]orb.Point {
	out := make([][]orb.Point, 0, len(parts))
	for i, first := range parts {
		last := len(points)
		if i < len(parts)-1 {
			last = int(parts[i+1])
		}
		out = append(out, toOrbPoints(points[first:last]))
	}
	return out
}

func partsToLines(parts [][]orb.Point) orb.Geometry {
	if len(parts) == 1 {
		return orb.LineString(parts[0])
	}
	mls := make(orb.MultiLineString, len(parts))
	for i, p := range parts {
		mls[i] = orb.LineString(p)
	}
	return mls
}

// ringsToPolygons groups shapefile rings into polygons. Outer rings are
// clockwise, holes counter-clockwise and belong to the outer ring that
// contains them.
func ringsToPolygons(parts [][]orb.Point) orb.Geometry {
	outer := make([]orb.Polygon, 0, len(parts))
	inner := make([]orb.Ring, 0)
	for _, p := range parts {
		ring := orb.Ring(p)
		if ring.Orientation() != orb.CCW {
			outer = append(outer, orb.Polygon{ring})
		} else {
			inner = append(inner, ring)
		}
	}

	// Badly oriented input, treat everything as shells
	if len(outer) == 0 {
		for _, r := range inner {
			outer = append(outer, orb.Polygon{r})
		}
		inner = nil
	}

	for _, hole := range inner {
		placed := false
		for i, poly := range outer {
			if len(hole) > 0 && planar.RingContains(poly[0], hole[0]) {
				outer[i] = append(poly, hole)
				placed = true
				break
			}
		}
		if !placed {
			outer = append(outer, orb.Polygon{hole})
		}
	}

	if len(outer) == 1 {
		return outer[0]
	}
	return orb.MultiPolygon(outer)
}

var prjAuthority = regexp.MustCompile(`AUTHORITY\["EPSG",\s*"?(\d+)"?\]\s*\]\s*$`)
var prjUTM = regexp.MustCompile(`(?i)(ETRS_?1989|ETRS89|WGS_?1984|WGS 84)[ _/]+UTM[ _]zone[ _](\d+)([NS])`)

func readPrj(path string) (string, error) {
	prj := strings.TrimSuffix(path, ".shp") + ".prj"
	data, err := os.ReadFile(prj)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return prjToCRS(string(data)), nil
}

// prjToCRS turns the WKT of a .prj file into an EPSG identifier when it can
// be recognized, otherwise the WKT itself is returned.
func prjToCRS(wkt string) string {
	wkt = strings.TrimSpace(wkt)
	if m := prjAuthority.FindStringSubmatch(wkt); m != nil {
		return "epsg:" + m[1]
	}

	if m := prjUTM.FindStringSubmatch(wkt); m != nil {
		var zone int
		fmt.Sscanf(m[2], "%d", &zone)
		datum := strings.ToUpper(m[1])
		switch {
		case strings.HasPrefix(datum, "ETRS"):
			return fmt.Sprintf("epsg:%d", 25800+zone)
		case strings.ToUpper(m[3]) == "S":
			return fmt.Sprintf("epsg:%d", 32700+zone)
		default:
			return fmt.Sprintf("epsg:%d", 32600+zone)
		}
	}

	if strings.HasPrefix(wkt, "GEOGCS[") && strings.Contains(wkt, "WGS_1984") {
		return WGS84
	}
	return wkt
}
