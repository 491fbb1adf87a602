package shapefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/shp2kml/internal/geo"

	shp "github.com/jonas-p/go-shp"
)

// Row pairs one geometry with its attribute values. Geometry is nil for
// null shapes; such rows are skipped downstream, not rejected.
type Row struct {
	Attrs    map[string]string
	Geometry geo.Geometry
}

// Table is the in-memory feature table of one shapefile dataset.
type Table struct {
	Base   string // source file name without extension
	Fields []string
	Rows   []Row
	EPSG   int // geo.EPSGUnknown when no usable .prj sibling exists
}

// Load reads the dataset at path into a Table. Geometry is normalized into
// the geo model, attributes come from the .dbf sibling, and the reference
// system from the optional .prj sibling.
func Load(path string) (*Table, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = r.Close() }()

	fields := r.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}

	t := &Table{
		Base:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Fields: names,
		EPSG:   geo.EPSGUnknown,
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	if data, err := os.ReadFile(base + ".prj"); err == nil {
		t.EPSG = geo.ParsePRJ(string(data))
	}

	for r.Next() {
		n, shape := r.Shape()

		g, err := normalize(shape)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		attrs := make(map[string]string, len(names))
		for i := range names {
			// dbf character fields are padded to their declared width,
			// the padding must not reach output names or KML text
			attrs[names[i]] = strings.TrimRight(r.ReadAttribute(n, i), "\x00 ")
		}

		t.Rows = append(t.Rows, Row{Geometry: g, Attrs: attrs})
	}
	if err := r.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	return t, nil
}
