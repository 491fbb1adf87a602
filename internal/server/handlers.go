// Package server handles HTTP requests and middleware for previewing
// converted KML files.
package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const etagCap = 64

// kmlContentType is the registered media type for KML documents.
const kmlContentType = "application/vnd.google-earth.kml+xml"

// HandleFiles serves the JSON listing of available KML files.
func (s *Context) HandleFiles(w http.ResponseWriter, r *http.Request) {
	files, err := listKML(s.Dir)
	if err != nil {
		http.Error(w, "output directory not readable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(files)
}

// HandleKML serves a single KML file by base name.
// Path: /kml/{name}.kml
func (s *Context) HandleKML(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/kml/")

	// reject subdirectory probing, only flat base names are served
	if name == "" || name != filepath.Base(name) || !strings.EqualFold(filepath.Ext(name), ".kml") {
		http.NotFound(w, r)
		return
	}

	if !s.serveFile(w, r, filepath.Join(s.Dir, name), kmlContentType) {
		http.NotFound(w, r)
	}
}

// serveFile tries to serve a file from disk with ETag generation.
// It returns true if the file was found and served (or 304).
func (s *Context) serveFile(w http.ResponseWriter, r *http.Request, path string, contentType string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	etag := string(buf)

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	http.ServeFile(w, r, path)
	return true
}
