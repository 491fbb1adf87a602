package shapefile

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Scan walks root recursively and returns the complete shapefile datasets
// found, plus one human-readable message per incomplete dataset. An empty
// directory yields two empty slices and no error.
func Scan(root string) (files []string, problems []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".shp") {
			return nil
		}

		v := Validate(path)
		if v.Valid {
			files = append(files, path)
			return nil
		}

		found := "none"
		if len(v.Found) > 0 {
			found = strings.Join(v.Found, ", ")
		}
		problems = append(problems, fmt.Sprintf(
			"shapefile %q is incomplete: found %s; missing %s",
			d.Name(), found, strings.Join(v.Missing, ", ")))

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return files, problems, nil
}

// ListAll returns the base names of every regular file under root, used for
// diagnostics when no valid dataset was found.
func ListAll(root string) ([]string, error) {
	var names []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}

	return names, nil
}
