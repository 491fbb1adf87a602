package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"id", "name", "OBJECTID"}, cfg.NameFallbacks)
	assert.Equal(t, []string{"description", "desc", "comment"}, cfg.DescriptionFallbacks)
}

func TestLoadOverridesChains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shp2kml.yaml")
	data := "name_fallbacks: [title, label]\ndescription_fallbacks: [note]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "label"}, cfg.NameFallbacks)
	assert.Equal(t, []string{"note"}, cfg.DescriptionFallbacks)
}

func TestLoadKeepsDefaultsForOmittedChains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shp2kml.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name_fallbacks: [title]\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"title"}, cfg.NameFallbacks)
	assert.Equal(t, Default().DescriptionFallbacks, cfg.DescriptionFallbacks)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name_fallbacks: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
