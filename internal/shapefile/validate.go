// Package shapefile handles dataset discovery, validation and loading of
// ESRI shapefiles into an in-memory feature table.
package shapefile

import (
	"os"
	"path/filepath"
	"strings"
)

// requiredExtensions are the sibling components a shapefile dataset cannot
// be read without. Optional siblings like .prj or .cpg are not enforced.
var requiredExtensions = []string{".shp", ".shx", ".dbf"}

// Validation is the result of checking a dataset's mandatory components.
type Validation struct {
	Valid   bool
	Found   []string
	Missing []string
}

// Validate checks that the dataset at shpPath has all mandatory sibling
// files. Found and Missing carry base file names, e.g. "roads.dbf".
func Validate(shpPath string) Validation {
	base := strings.TrimSuffix(shpPath, filepath.Ext(shpPath))

	var v Validation
	for _, ext := range requiredExtensions {
		name := filepath.Base(base + ext)
		if _, err := os.Stat(base + ext); err == nil {
			v.Found = append(v.Found, name)
		} else {
			v.Missing = append(v.Missing, name)
		}
	}

	v.Valid = len(v.Missing) == 0

	return v
}
