// Package processor handles field resolution and translation of feature
// tables into KML output files.
package processor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/woozymasta/shp2kml/internal/config"

	"github.com/rs/zerolog/log"
)

// Fields holds the resolved attribute field names of one dataset.
type Fields struct {
	Name        string
	Description string
}

// ResolveFields picks the name and description fields for a dataset.
//
// The requested field wins when present. Otherwise the configured fallback
// chain is probed in order, and for the description a last resort applies:
// the first available field other than the resolved name field. Fallback
// decisions are informational, only a dead end is an error.
func ResolveFields(available []string, name, description string, cfg *config.Config) (Fields, error) {
	var f Fields

	switch {
	case slices.Contains(available, name):
		f.Name = name
	default:
		for _, alt := range cfg.NameFallbacks {
			if slices.Contains(available, alt) {
				f.Name = alt
				break
			}
		}
		if f.Name == "" {
			return f, fmt.Errorf("name field %q not found, available fields: %s",
				name, strings.Join(available, ", "))
		}
		log.Info().
			Str("requested", name).
			Str("resolved", f.Name).
			Msg("Name field not present, using fallback")
	}

	switch {
	case slices.Contains(available, description):
		f.Description = description
	default:
		for _, alt := range cfg.DescriptionFallbacks {
			if slices.Contains(available, alt) {
				f.Description = alt
				break
			}
		}
		if f.Description == "" {
			for _, field := range available {
				if field != f.Name {
					f.Description = field
					break
				}
			}
		}
		if f.Description == "" {
			return f, fmt.Errorf("description field %q not found, available fields: %s",
				description, strings.Join(available, ", "))
		}
		log.Info().
			Str("requested", description).
			Str("resolved", f.Description).
			Msg("Description field not present, using fallback")
	}

	return f, nil
}
