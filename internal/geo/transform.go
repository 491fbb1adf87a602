package geo

import (
	"fmt"

	"github.com/wroge/wgs84"
)

// Transformer converts coordinates from a source reference system to WGS84.
type Transformer func(c Coordinate) Coordinate

// NewTransformer builds a Transformer from the given EPSG code to EPSG:4326.
// Returns an error when the code is not in the EPSG table shipped with the
// transformation library.
func NewTransformer(fromEPSG int) (Transformer, error) {
	from := wgs84.EPSG().Code(fromEPSG)
	if from == nil {
		return nil, fmt.Errorf("unsupported reference system EPSG:%d", fromEPSG)
	}

	tf := wgs84.Transform(from, wgs84.LonLat())

	return func(c Coordinate) Coordinate {
		lon, lat, alt := tf(c.Lon, c.Lat, c.Alt)
		return Coordinate{Lon: lon, Lat: lat, Alt: alt}
	}, nil
}

// Apply returns a copy of the geometry with every coordinate transformed.
// A nil geometry stays nil.
func (t Transformer) Apply(g Geometry) Geometry {
	if g == nil {
		return nil
	}

	switch v := g.(type) {
	case Point:
		return Point(t(Coordinate(v)))
	case LineString:
		return LineString(t.coords([]Coordinate(v)))
	case Polygon:
		return t.polygon(v)
	case MultiLineString:
		out := make(MultiLineString, len(v))
		for i, line := range v {
			out[i] = LineString(t.coords([]Coordinate(line)))
		}
		return out
	case MultiPolygon:
		out := make(MultiPolygon, len(v))
		for i, poly := range v {
			out[i] = t.polygon(poly)
		}
		return out
	}

	return g
}

func (t Transformer) polygon(p Polygon) Polygon {
	out := Polygon{Outer: Ring(t.coords([]Coordinate(p.Outer)))}
	for _, hole := range p.Holes {
		out.Holes = append(out.Holes, Ring(t.coords([]Coordinate(hole))))
	}

	return out
}

func (t Transformer) coords(in []Coordinate) []Coordinate {
	out := make([]Coordinate, len(in))
	for i, c := range in {
		out[i] = t(c)
	}

	return out
}
