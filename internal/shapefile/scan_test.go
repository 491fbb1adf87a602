package shapefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScanEmptyDirectory(t *testing.T) {
	files, problems, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 0 || len(problems) != 0 {
		t.Errorf("empty dir: files=%v problems=%v", files, problems)
	}
}

func TestScanPartitionsValidAndIncomplete(t *testing.T) {
	dir := t.TempDir()

	for _, ext := range []string{".shp", ".shx", ".dbf"} {
		touch(t, filepath.Join(dir, "parcels"+ext))
	}
	touch(t, filepath.Join(dir, "roads.shp"))
	touch(t, filepath.Join(dir, "readme.txt"))

	files, problems, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "parcels.shp" {
		t.Errorf("files = %v, want only parcels.shp", files)
	}

	if len(problems) != 1 {
		t.Fatalf("problems = %v, want one entry", problems)
	}
	if !strings.Contains(problems[0], "roads.shx") || !strings.Contains(problems[0], "roads.dbf") {
		t.Errorf("problem message %q should name missing roads.shx and roads.dbf", problems[0])
	}
	if !strings.Contains(problems[0], "roads.shp") {
		t.Errorf("problem message %q should name the found component", problems[0])
	}
}

func TestScanRecursesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".shp", ".shx", ".dbf"} {
		touch(t, filepath.Join(nested, "deep"+ext))
	}

	files, problems, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("problems = %v", problems)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0], filepath.Join("a", "b", "deep.shp")) {
		t.Errorf("files = %v", files)
	}
}

func TestListAll(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "roads.shp"))
	touch(t, filepath.Join(dir, "notes.txt"))

	names, err := ListAll(dir)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("names = %v, want two entries", names)
	}
}
