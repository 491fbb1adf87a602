// Package geo handles geometry data structures and coordinate reference systems.
package geo

// Coordinate is a single position in lon/lat order, with optional altitude.
type Coordinate struct {
	Lon float64
	Lat float64
	Alt float64
}

// Geometry is implemented by all supported geometry kinds.
type Geometry interface {
	// Type returns the geometry type name, e.g. "Polygon".
	Type() string
}

// Point is a single-position geometry.
type Point Coordinate

// LineString is an ordered sequence of positions.
type LineString []Coordinate

// Ring is a closed sequence of positions forming a polygon boundary.
type Ring []Coordinate

// Polygon is one exterior ring plus zero or more interior rings (holes).
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// MultiLineString is a collection of line strings.
type MultiLineString []LineString

// MultiPolygon is a collection of polygons.
type MultiPolygon []Polygon

func (Point) Type() string           { return "Point" }
func (LineString) Type() string      { return "LineString" }
func (Polygon) Type() string         { return "Polygon" }
func (MultiLineString) Type() string { return "MultiLineString" }
func (MultiPolygon) Type() string    { return "MultiPolygon" }

// SignedArea returns twice the signed area of the ring using the shoelace
// formula. Positive for counter-clockwise rings, negative for clockwise.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}

	var sum float64
	for i := range r {
		j := (i + 1) % len(r)
		sum += r[i].Lon*r[j].Lat - r[j].Lon*r[i].Lat
	}

	return sum
}

// Clockwise reports whether the ring winds clockwise. In the shapefile
// format clockwise rings are exterior boundaries, counter-clockwise rings
// are holes.
func (r Ring) Clockwise() bool {
	return r.SignedArea() < 0
}
