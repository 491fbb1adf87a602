package geo

import (
	"regexp"
	"strconv"
	"strings"
)

// EPSGWGS84 is the canonical output reference system for KML.
const EPSGWGS84 = 4326

// EPSGUnknown marks a dataset whose reference system could not be determined.
const EPSGUnknown = 0

var authorityRegex = regexp.MustCompile(`AUTHORITY\[\s*"EPSG"\s*,\s*"?(\d+)"?\s*\]`)

// ParsePRJ extracts the EPSG code from the WKT content of a .prj file.
//
// The outermost AUTHORITY node is written last in well-known text, so the
// last match identifies the whole reference system rather than one of its
// nested components (datum, spheroid, units). Returns EPSGUnknown when the
// text carries no usable authority and no recognizable name.
func ParsePRJ(wkt string) int {
	matches := authorityRegex.FindAllStringSubmatch(wkt, -1)
	if len(matches) > 0 {
		code, err := strconv.Atoi(matches[len(matches)-1][1])
		if err == nil {
			return code
		}
	}

	// ESRI-flavored WKT often omits AUTHORITY nodes, match common names
	name := wkt
	if idx := strings.Index(wkt, `"`); idx >= 0 {
		if end := strings.Index(wkt[idx+1:], `"`); end >= 0 {
			name = wkt[idx+1 : idx+1+end]
		}
	}

	switch {
	case strings.Contains(name, "Web_Mercator"),
		strings.Contains(name, "Pseudo-Mercator"):
		return 3857
	case strings.EqualFold(name, "GCS_WGS_1984"),
		strings.EqualFold(name, "WGS 84"),
		strings.EqualFold(name, "WGS_1984"):
		return EPSGWGS84
	}

	return EPSGUnknown
}
