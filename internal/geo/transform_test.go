package geo

import (
	"math"
	"testing"
)

func TestNewTransformerUnsupported(t *testing.T) {
	if _, err := NewTransformer(999999); err == nil {
		t.Fatal("expected error for unknown EPSG code")
	}
}

func TestTransformerWebMercator(t *testing.T) {
	tf, err := NewTransformer(3857)
	if err != nil {
		t.Fatalf("NewTransformer(3857): %v", err)
	}

	origin := tf(Coordinate{Lon: 0, Lat: 0})
	if math.Abs(origin.Lon) > 1e-9 || math.Abs(origin.Lat) > 1e-9 {
		t.Errorf("origin transformed to %f,%f, want 0,0", origin.Lon, origin.Lat)
	}

	// one degree of longitude at the equator in web mercator meters
	c := tf(Coordinate{Lon: 111319.49079327357, Lat: 0})
	if math.Abs(c.Lon-1.0) > 1e-6 {
		t.Errorf("lon = %f, want 1.0", c.Lon)
	}
	if math.Abs(c.Lat) > 1e-6 {
		t.Errorf("lat = %f, want 0.0", c.Lat)
	}
}

func TestTransformerApply(t *testing.T) {
	// fixed shift, geometry shape handling is what is under test
	tf := Transformer(func(c Coordinate) Coordinate {
		return Coordinate{Lon: c.Lon + 1, Lat: c.Lat + 2, Alt: c.Alt}
	})

	if g := tf.Apply(nil); g != nil {
		t.Error("nil geometry should stay nil")
	}

	p := tf.Apply(Point{Lon: 1, Lat: 1}).(Point)
	if p.Lon != 2 || p.Lat != 3 {
		t.Errorf("point = %v", p)
	}

	line := tf.Apply(LineString{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}).(LineString)
	if line[1].Lon != 2 || line[1].Lat != 3 {
		t.Errorf("line = %v", line)
	}

	poly := tf.Apply(Polygon{
		Outer: Ring{{Lon: 0, Lat: 0}},
		Holes: []Ring{{{Lon: 5, Lat: 5}}},
	}).(Polygon)
	if poly.Outer[0].Lon != 1 || poly.Holes[0][0].Lat != 7 {
		t.Errorf("polygon = %v", poly)
	}

	mp := tf.Apply(MultiPolygon{
		{Outer: Ring{{Lon: 0, Lat: 0}}},
		{Outer: Ring{{Lon: 10, Lat: 10}}},
	}).(MultiPolygon)
	if mp[1].Outer[0].Lon != 11 {
		t.Errorf("multipolygon = %v", mp)
	}

	ml := tf.Apply(MultiLineString{
		{{Lon: 0, Lat: 0}},
		{{Lon: 3, Lat: 3}},
	}).(MultiLineString)
	if ml[1][0].Lat != 5 {
		t.Errorf("multilinestring = %v", ml)
	}
}
