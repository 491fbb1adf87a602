package server

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Context holds dependencies for request handlers.
type Context struct {
	// Dir is the directory of converted KML files to serve.
	Dir string
}

// NewContext initializes the handler context for the given output directory.
func NewContext(dir string) *Context {
	files, err := listKML(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("Output directory not readable yet")
	} else {
		log.Info().
			Str("dir", dir).
			Int("kml_files", len(files)).
			Msg("Initializing server context")
	}

	return &Context{Dir: dir}
}

// listKML returns the sorted base names of the .kml files in dir.
// The listing is re-read per request so files produced after startup
// appear without a restart.
func listKML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".kml") {
			names = append(names, e.Name())
		}
	}

	sort.Strings(names)

	return names, nil
}
