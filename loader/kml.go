package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/paulmach/orb"
	"github.com/rubenv/geo2wall"
)

// ReadKML reads the placemarks of the folder named req.Layer. KML is always
// in WGS84.
func ReadKML(req geo2wall.LoadRequest) (*geo2wall.Layer, error) {
	doc := etree.NewDocument()
	err := doc.ReadFromFile(req.Path)
	if err != nil {
		return nil, parseError(req.Path, err)
	}

	layer, err := ParseKML(doc, req.Layer)
	if err != nil {
		return nil, parseError(req.Path, err)
	}
	return layer, nil
}

func ParseKML(doc *etree.Document, name string) (*geo2wall.Layer, error) {
	root := doc.Root()
	if root == nil || root.Tag != "kml" {
		return nil, fmt.Errorf("Not a KML document")
	}

	container := root
	if name != "" {
		container = findContainer(root, name)
		if container == nil {
			return nil, fmt.Errorf("Layer %q not found", name)
		}
	}

	layer := &geo2wall.Layer{
		CRS:      WGS84,
		Features: make([]geo2wall.Feature, 0),
	}

	var placemarks []*etree.Element
	if container == root {
		placemarks = root.FindElements("//Placemark")
	} else {
		placemarks = container.SelectElements("Placemark")
	}

	for i, pm := range placemarks {
		g, err := kmlPlacemarkGeometry(pm)
		if err != nil {
			return nil, fmt.Errorf("Placemark %d: %w", i, err)
		}

		layer.Features = append(layer.Features, geo2wall.Feature{
			Geometry:   g,
			Properties: kmlProperties(pm),
		})
	}
	return layer, nil
}

// findContainer returns the first Folder or Document whose name matches.
func findContainer(el *etree.Element, name string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag != "Folder" && child.Tag != "Document" {
			continue
		}
		if n := child.SelectElement("name"); n != nil && strings.TrimSpace(n.Text()) == name {
			return child
		}
		if found := findContainer(child, name); found != nil {
			return found
		}
	}
	return nil
}

func kmlProperties(pm *etree.Element) map[string]interface{} {
	props := make(map[string]interface{})
	if n := pm.SelectElement("name"); n != nil {
		props["name"] = strings.TrimSpace(n.Text())
	}
	if d := pm.SelectElement("description"); d != nil {
		props["description"] = strings.TrimSpace(d.Text())
	}

	ext := pm.SelectElement("ExtendedData")
	if ext == nil {
		return props
	}
	for _, data := range ext.SelectElements("Data") {
		if v := data.SelectElement("value"); v != nil {
			props[data.SelectAttrValue("name", "")] = strings.TrimSpace(v.Text())
		}
	}
	for _, schema := range ext.SelectElements("SchemaData") {
		for _, data := range schema.SelectElements("SimpleData") {
			props[data.SelectAttrValue("name", "")] = strings.TrimSpace(data.Text())
		}
	}
	return props
}

func kmlPlacemarkGeometry(pm *etree.Element) (orb.Geometry, error) {
	for _, child := range pm.ChildElements() {
		g, ok, err := kmlGeometry(child)
		if err != nil {
			return nil, err
		}
		if ok {
			return g, nil
		}
	}
	return nil, nil
}

func kmlGeometry(el *etree.Element) (orb.Geometry, bool, error) {
	switch el.Tag {
	case "Point":
		coords, err := kmlCoordinates(el)
		if err != nil {
			return nil, true, err
		}
		if len(coords) != 1 {
			return nil, true, fmt.Errorf("Point with %d coordinates", len(coords))
		}
		return coords[0], true, nil
	case "LineString":
		coords, err := kmlCoordinates(el)
		if err != nil {
			return nil, true, err
		}
		return orb.LineString(coords), true, nil
	case "LinearRing":
		coords, err := kmlCoordinates(el)
		if err != nil {
			return nil, true, err
		}
		return orb.Polygon{orb.Ring(coords)}, true, nil
	case "Polygon":
		p, err := kmlPolygon(el)
		return p, true, err
	case "MultiGeometry":
		g, err := kmlMultiGeometry(el)
		return g, true, err
	}
	return nil, false, nil
}

func kmlPolygon(el *etree.Element) (orb.Polygon, error) {
	outer := el.FindElement("outerBoundaryIs/LinearRing")
	if outer == nil {
		return nil, fmt.Errorf("Polygon without outer boundary")
	}
	shell, err := kmlCoordinates(outer)
	if err != nil {
		return nil, err
	}

	poly := orb.Polygon{orb.Ring(shell)}
	for _, inner := range el.FindElements("innerBoundaryIs/LinearRing") {
		hole, err := kmlCoordinates(inner)
		if err != nil {
			return nil, err
		}
		poly = append(poly, orb.Ring(hole))
	}
	return poly, nil
}

func kmlMultiGeometry(el *etree.Element) (orb.Geometry, error) {
	parts := make([]orb.Geometry, 0)
	for _, child := range el.ChildElements() {
		g, ok, err := kmlGeometry(child)
		if err != nil {
			return nil, err
		}
		if ok {
			parts = append(parts, g)
		}
	}

	polygons := make(orb.MultiPolygon, 0, len(parts))
	lines := make(orb.MultiLineString, 0, len(parts))
	for _, g := range parts {
		switch g := g.(type) {
		case orb.Polygon:
			polygons = append(polygons, g)
		case orb.LineString:
			lines = append(lines, g)
		}
	}

	switch {
	case len(parts) > 0 && len(polygons) == len(parts):
		return polygons, nil
	case len(parts) > 0 && len(lines) == len(parts):
		return lines, nil
	default:
		return orb.Collection(parts), nil
	}
}

// kmlCoordinates parses the "lon,lat[,alt]" tuples of the coordinates child.
func kmlCoordinates(el *etree.Element) ([]orb.Point, error) {
	c := el.SelectElement("coordinates")
	if c == nil {
		return nil, fmt.Errorf("%s without coordinates", el.Tag)
	}

	fields := strings.Fields(c.Text())
	points := make([]orb.Point, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, ",")
		if len(parts) < 2 {
			return nil, fmt.Errorf("Bad coordinate: %q", f)
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("Bad coordinate: %q", f)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("Bad coordinate: %q", f)
		}
		points = append(points, orb.Point{lon, lat})
	}
	return points, nil
}
