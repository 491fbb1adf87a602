// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no --config flag is given; a missing file at
// this path is not an error, the built-in defaults apply.
const DefaultPath = "shp2kml.yaml"

// Config holds the conversion settings that are not per-run CLI flags.
type Config struct {
	// NameFallbacks are probed in order when the requested name field is
	// absent from a dataset.
	NameFallbacks []string `yaml:"name_fallbacks"`

	// DescriptionFallbacks are probed in order when the requested
	// description field is absent. When none apply either, the first
	// remaining attribute field is used.
	DescriptionFallbacks []string `yaml:"description_fallbacks"`
}

// Default returns the built-in fallback chains.
func Default() *Config {
	return &Config{
		NameFallbacks:        []string{"id", "name", "OBJECTID"},
		DescriptionFallbacks: []string{"description", "desc", "comment"},
	}
}

// Load reads and parses the YAML configuration file from the specified
// path. Empty chains in the file keep their built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(cfg.NameFallbacks) == 0 {
		cfg.NameFallbacks = Default().NameFallbacks
	}
	if len(cfg.DescriptionFallbacks) == 0 {
		cfg.DescriptionFallbacks = Default().DescriptionFallbacks
	}

	return cfg, nil
}
