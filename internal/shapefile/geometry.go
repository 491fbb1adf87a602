package shapefile

import (
	"fmt"

	"github.com/woozymasta/shp2kml/internal/geo"

	shp "github.com/jonas-p/go-shp"
)

// normalize converts a raw shapefile record into the geo model.
//
// The shapefile format has no distinct multi-geometry record types: a
// PolyLine with several parts is a MultiLineString, and a Polygon record
// groups rings by winding order, clockwise rings open a new polygon and
// counter-clockwise rings are holes of the polygon opened before them.
func normalize(s shp.Shape) (geo.Geometry, error) {
	switch v := s.(type) {
	case *shp.Null:
		return nil, nil
	case *shp.Point:
		return geo.Point{Lon: v.X, Lat: v.Y}, nil
	case *shp.PointM:
		return geo.Point{Lon: v.X, Lat: v.Y}, nil
	case *shp.PointZ:
		return geo.Point{Lon: v.X, Lat: v.Y, Alt: v.Z}, nil
	case *shp.PolyLine:
		return lines(splitParts(v.Points, v.Parts, nil)), nil
	case *shp.PolyLineM:
		return lines(splitParts(v.Points, v.Parts, nil)), nil
	case *shp.PolyLineZ:
		return lines(splitParts(v.Points, v.Parts, v.ZArray)), nil
	case *shp.Polygon:
		return polygons(splitParts(v.Points, v.Parts, nil))
	case *shp.PolygonM:
		return polygons(splitParts(v.Points, v.Parts, nil))
	case *shp.PolygonZ:
		return polygons(splitParts(v.Points, v.Parts, v.ZArray))
	default:
		return nil, fmt.Errorf(
			"unsupported geometry type: %s, supported types: Point, LineString, Polygon, MultiLineString, MultiPolygon",
			shapeName(s))
	}
}

// splitParts slices the flat point array into per-part coordinate slices.
// The optional z array is index-aligned with points.
func splitParts(points []shp.Point, parts []int32, z []float64) [][]geo.Coordinate {
	if len(parts) == 0 {
		parts = []int32{0}
	}

	out := make([][]geo.Coordinate, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}

		part := make([]geo.Coordinate, 0, end-start)
		for j := start; j < end; j++ {
			c := geo.Coordinate{Lon: points[j].X, Lat: points[j].Y}
			if z != nil && int(j) < len(z) {
				c.Alt = z[j]
			}
			part = append(part, c)
		}
		out = append(out, part)
	}

	return out
}

func lines(parts [][]geo.Coordinate) geo.Geometry {
	if len(parts) == 1 {
		return geo.LineString(parts[0])
	}

	out := make(geo.MultiLineString, len(parts))
	for i, p := range parts {
		out[i] = geo.LineString(p)
	}

	return out
}

func polygons(parts [][]geo.Coordinate) (geo.Geometry, error) {
	if len(parts) == 0 {
		return nil, nil
	}

	var polys []geo.Polygon
	for _, p := range parts {
		ring := geo.Ring(p)

		if ring.Clockwise() || len(polys) == 0 {
			// Counter-clockwise first ring means a nonconformant writer,
			// take it as an exterior anyway.
			polys = append(polys, geo.Polygon{Outer: ring})
			continue
		}

		last := &polys[len(polys)-1]
		last.Holes = append(last.Holes, ring)
	}

	if len(polys) == 1 {
		return polys[0], nil
	}

	return geo.MultiPolygon(polys), nil
}

func shapeName(s shp.Shape) string {
	switch s.(type) {
	case *shp.MultiPoint:
		return "MultiPoint"
	case *shp.MultiPointM:
		return "MultiPointM"
	case *shp.MultiPointZ:
		return "MultiPointZ"
	case *shp.MultiPatch:
		return "MultiPatch"
	default:
		return fmt.Sprintf("%T", s)
	}
}
