package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// mimeTypes is the fixed extension table for the site's assets. Anything
// unlisted is served as an octet stream.
var mimeTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "application/javascript; charset=utf-8",
	".json":  "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".webp":  "image/webp",
	".woff2": "font/woff2",
	".woff":  "font/woff",
}

type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// Default to index.html
	if path == "/" || path == "" {
		path = "/index.html"
	}

	rel := filepath.Clean(strings.TrimPrefix(path, "/"))
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		NotFound(w, r)
		return
	}

	filePath := filepath.Join(h.root, rel)
	info, err := os.Stat(filePath)
	if err != nil || !info.Mode().IsRegular() {
		NotFound(w, r)
		return
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		NotFound(w, r)
		return
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	mimeType, ok := mimeTypes[ext]
	if !ok {
		mimeType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	setCORS(w.Header())
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
