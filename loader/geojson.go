package loader

import (
	"fmt"
	"os"

	"github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/rubenv/geo2wall"
)

// ReadGeoJSON reads a feature collection. The reference system comes from
// the legacy "crs" member and defaults to WGS84.
func ReadGeoJSON(req geo2wall.LoadRequest) (*geo2wall.Layer, error) {
	data, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, parseError(req.Path, err)
	}

	layer, err := ParseGeoJSON(data)
	if err != nil {
		return nil, parseError(req.Path, err)
	}
	return layer, nil
}

func ParseGeoJSON(data []byte) (*geo2wall.Layer, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("Expected FeatureCollection, got %q", fc.Type)
	}

	layer := &geo2wall.Layer{
		CRS:      geoJSONCRS(fc.CRS),
		Features: make([]geo2wall.Feature, 0, len(fc.Features)),
	}
	for i, f := range fc.Features {
		var g orb.Geometry
		if f.Geometry != nil {
			g, err = geometryToOrb(f.Geometry)
			if err != nil {
				return nil, fmt.Errorf("Feature %d: %w", i, err)
			}
		}

		layer.Features = append(layer.Features, geo2wall.Feature{
			Geometry:   g,
			Properties: f.Properties,
		})
	}
	return layer, nil
}

func geoJSONCRS(crs map[string]interface{}) string {
	if crs == nil {
		return WGS84
	}
	props, ok := crs["properties"].(map[string]interface{})
	if !ok {
		return WGS84
	}
	name, ok := props["name"].(string)
	if !ok || name == "" {
		return WGS84
	}
	return name
}

func geometryToOrb(g *geojson.Geometry) (orb.Geometry, error) {
	switch g.Type {
	case geojson.GeometryPoint:
		return toPoint(g.Point)
	case geojson.GeometryMultiPoint:
		mp := make(orb.MultiPoint, 0, len(g.MultiPoint))
		for _, c := range g.MultiPoint {
			p, err := toPoint(c)
			if err != nil {
				return nil, err
			}
			mp = append(mp, p)
		}
		return mp, nil
	case geojson.GeometryLineString:
		return toLineString(g.LineString)
	case geojson.GeometryMultiLineString:
		mls := make(orb.MultiLineString, 0, len(g.MultiLineString))
		for _, c := range g.MultiLineString {
			ls, err := toLineString(c)
			if err != nil {
				return nil, err
			}
			mls = append(mls, ls)
		}
		return mls, nil
	case geojson.GeometryPolygon:
		return toPolygon(g.Polygon)
	case geojson.GeometryMultiPolygon:
		mp := make(orb.MultiPolygon, 0, len(g.MultiPolygon))
		for _, c := range g.MultiPolygon {
			p, err := toPolygon(c)
			if err != nil {
				return nil, err
			}
			mp = append(mp, p)
		}
		return mp, nil
	case geojson.GeometryCollection:
		coll := make(orb.Collection, 0, len(g.Geometries))
		for _, child := range g.Geometries {
			c, err := geometryToOrb(child)
			if err != nil {
				return nil, err
			}
			coll = append(coll, c)
		}
		return coll, nil
	default:
		return nil, fmt.Errorf("Unknown geometry type: %v", g.Type)
	}
}

func toPoint(c []float64) (orb.Point, error) {
	if len(c) < 2 {
		return orb.Point{}, fmt.Errorf("Bad position: %v", c)
	}
	return orb.Point{c[0], c[1]}, nil
}

func toLineString(coords [][]float64) (orb.LineString, error) {
	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		p, err := toPoint(c)
		if err != nil {
			return nil, err
		}
		ls = append(ls, p)
	}
	return ls, nil
}

func toPolygon(coords [][][]float64) (orb.Polygon, error) {
	poly := make(orb.Polygon, 0, len(coords))
	for _, c := range coords {
		ls, err := toLineString(c)
		if err != nil {
			return nil, err
		}
		poly = append(poly, orb.Ring(ls))
	}
	return poly, nil
}
