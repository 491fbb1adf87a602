package processor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/shp2kml/internal/geo"
	"github.com/woozymasta/shp2kml/internal/shapefile"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mxml "github.com/tdewolff/minify/v2/xml"
	kml "github.com/twpayne/go-kml/v3"
)

// Options control KML output.
type Options struct {
	OutputDir string
	Minify    bool
}

// Converter translates feature tables into KML files, one file per row.
type Converter struct {
	minifier *minify.M
	opts     Options
}

// New creates a Converter writing into opts.OutputDir.
func New(opts Options) *Converter {
	m := minify.New()
	m.AddFunc("text/xml", mxml.Minify)

	return &Converter{minifier: m, opts: opts}
}

// Convert reprojects the table to EPSG:4326 if needed and writes one KML
// file per feature row, named {base}_{name value}.kml. Rows without
// geometry and rows that fail are logged and skipped. Returns the number
// of files written.
func (c *Converter) Convert(t *shapefile.Table, fields Fields) (int, error) {
	if err := c.reproject(t); err != nil {
		return 0, err
	}

	written := 0
	for i, row := range t.Rows {
		if row.Geometry == nil {
			log.Debug().
				Str("file", t.Base+".shp").
				Int("row", i).
				Msg("Skipping row without geometry")
			continue
		}

		if err := c.writeRow(t.Base, row, fields); err != nil {
			log.Error().
				Err(err).
				Str("file", t.Base+".shp").
				Int("row", i).
				Msg("Skipping row after processing error")
			continue
		}
		written++
	}

	return written, nil
}

// reproject brings the whole table into EPSG:4326 before any row is
// emitted. An unknown reference system passes coordinates through with a
// warning, an unsupported one fails the file.
func (c *Converter) reproject(t *shapefile.Table) error {
	switch t.EPSG {
	case geo.EPSGWGS84:
		return nil
	case geo.EPSGUnknown:
		log.Warn().
			Str("file", t.Base+".shp").
			Msg("No reference system found, output will be mis-referenced unless data is already EPSG:4326")
		return nil
	}

	tf, err := geo.NewTransformer(t.EPSG)
	if err != nil {
		return fmt.Errorf("%s: %w", t.Base+".shp", err)
	}

	for i := range t.Rows {
		t.Rows[i].Geometry = tf.Apply(t.Rows[i].Geometry)
	}

	log.Warn().
		Str("file", t.Base+".shp").
		Int("from_epsg", t.EPSG).
		Msg("Reprojected to EPSG:4326")
	t.EPSG = geo.EPSGWGS84

	return nil
}

// writeRow builds the KML document for one feature row and saves it once.
// Multi-geometries contribute one placemark per sub-geometry to the same
// document.
func (c *Converter) writeRow(base string, row shapefile.Row, fields Fields) error {
	name := row.Attrs[fields.Name]
	description := row.Attrs[fields.Description]

	marks, err := placemarks(row.Geometry, name, description)
	if err != nil {
		return err
	}

	doc := kml.KML(kml.Document(marks...))
	path := filepath.Join(c.opts.OutputDir, base+"_"+sanitize(name)+".kml")

	return c.save(path, doc)
}

func placemarks(g geo.Geometry, name, description string) ([]kml.Element, error) {
	switch v := g.(type) {
	case geo.Point:
		return []kml.Element{kml.Placemark(
			kml.Name(name),
			kml.Description(description),
			kml.Point(kml.Coordinates(kml.Coordinate(v))),
		)}, nil

	case geo.LineString:
		return []kml.Element{kml.Placemark(
			kml.Name(name),
			kml.Description(description),
			lineString(v),
		)}, nil

	case geo.Polygon:
		return []kml.Element{kml.Placemark(
			kml.Name(name),
			kml.Description(description),
			polygon(v),
		)}, nil

	case geo.MultiLineString:
		marks := make([]kml.Element, len(v))
		for i, line := range v {
			marks[i] = kml.Placemark(
				kml.Name(fmt.Sprintf("%s_%d", name, i+1)),
				kml.Description(description),
				lineString(line),
			)
		}
		return marks, nil

	case geo.MultiPolygon:
		marks := make([]kml.Element, len(v))
		for i, poly := range v {
			marks[i] = kml.Placemark(
				kml.Name(fmt.Sprintf("%s_%d", name, i+1)),
				kml.Description(description),
				polygon(poly),
			)
		}
		return marks, nil
	}

	return nil, fmt.Errorf("unsupported geometry type: %s", g.Type())
}

func lineString(line geo.LineString) kml.Element {
	return kml.LineString(kml.Coordinates(coords(line)...))
}

func polygon(p geo.Polygon) kml.Element {
	children := []kml.Element{
		kml.OuterBoundaryIs(kml.LinearRing(kml.Coordinates(coords(p.Outer)...))),
	}
	for _, hole := range p.Holes {
		children = append(children,
			kml.InnerBoundaryIs(kml.LinearRing(kml.Coordinates(coords(hole)...))))
	}

	return kml.Polygon(children...)
}

func coords(in []geo.Coordinate) []kml.Coordinate {
	out := make([]kml.Coordinate, len(in))
	for i, c := range in {
		out[i] = kml.Coordinate(c)
	}

	return out
}

// save serializes the document, optionally minified, and writes the file
// in one shot.
func (c *Converter) save(path string, doc *kml.KMLElement) error {
	var buf bytes.Buffer
	if err := doc.WriteIndent(&buf, "", "  "); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	data := buf.Bytes()
	if c.opts.Minify {
		var min bytes.Buffer
		if err := c.minifier.Minify("text/xml", &min, &buf); err != nil {
			return fmt.Errorf("minify %s: %w", filepath.Base(path), err)
		}
		data = min.Bytes()
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return nil
}

// sanitize strips characters that are unsafe in file names from attribute
// values used for output naming.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			return '_'
		}
		return r
	}, name)
}
