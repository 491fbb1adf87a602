package shapefile

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func TestValidateComplete(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".shp", ".shx", ".dbf"} {
		touch(t, filepath.Join(dir, "parcels"+ext))
	}

	v := Validate(filepath.Join(dir, "parcels.shp"))
	if !v.Valid {
		t.Fatalf("complete dataset reported invalid: missing %v", v.Missing)
	}
	if want := []string{"parcels.shp", "parcels.shx", "parcels.dbf"}; !slices.Equal(v.Found, want) {
		t.Errorf("Found = %v, want %v", v.Found, want)
	}
	if len(v.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", v.Missing)
	}
}

func TestValidateMissingSiblings(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "roads.shp"))

	v := Validate(filepath.Join(dir, "roads.shp"))
	if v.Valid {
		t.Fatal("dataset without .shx/.dbf reported valid")
	}
	if want := []string{"roads.shx", "roads.dbf"}; !slices.Equal(v.Missing, want) {
		t.Errorf("Missing = %v, want %v", v.Missing, want)
	}
	if want := []string{"roads.shp"}; !slices.Equal(v.Found, want) {
		t.Errorf("Found = %v, want %v", v.Found, want)
	}
}

func TestValidateNothingPresent(t *testing.T) {
	dir := t.TempDir()

	v := Validate(filepath.Join(dir, "ghost.shp"))
	if v.Valid {
		t.Fatal("absent dataset reported valid")
	}
	if len(v.Missing) != 3 {
		t.Errorf("Missing = %v, want all three components", v.Missing)
	}
}
