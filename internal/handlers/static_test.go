package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func staticFixture(t *testing.T) *StaticHandler {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"index.html": "<html><body>Caffeine Machine</body></html>",
		"style.css":  "body { color: brown; }",
		"app.js":     "console.log('hi');",
		"logo.bin":   "\x00\x01\x02",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
	}

	return NewStaticHandler(dir)
}

func get(h *StaticHandler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.Serve(rr, req)
	return rr
}

func TestStatic_RootAliasesIndex(t *testing.T) {
	h := staticFixture(t)

	root := get(h, "/")
	index := get(h, "/index.html")

	if root.Code != http.StatusOK || index.Code != http.StatusOK {
		t.Fatalf("Expected 200/200, got %d/%d", root.Code, index.Code)
	}
	if root.Body.String() != index.Body.String() {
		t.Error("Expected / and /index.html to be byte-identical")
	}
	if root.Header().Get("Content-Type") != index.Header().Get("Content-Type") {
		t.Error("Expected identical headers for / and /index.html")
	}
}

func TestStatic_MimeTypes(t *testing.T) {
	h := staticFixture(t)

	tests := []struct {
		path string
		mime string
	}{
		{"/index.html", "text/html; charset=utf-8"},
		{"/style.css", "text/css; charset=utf-8"},
		{"/app.js", "application/javascript; charset=utf-8"},
		{"/logo.bin", "application/octet-stream"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rr := get(h, tc.path)
			if rr.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d", rr.Code)
			}
			if got := rr.Header().Get("Content-Type"); got != tc.mime {
				t.Errorf("Expected Content-Type %q, got %q", tc.mime, got)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Expected CORS headers on file response, got %q", got)
			}
		})
	}
}

func TestStatic_QueryStringStripped(t *testing.T) {
	h := staticFixture(t)

	rr := get(h, "/style.css?v=2")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200 with query string, got %d", rr.Code)
	}
}

func TestStatic_NotFound(t *testing.T) {
	h := staticFixture(t)

	rr := get(h, "/no-such-file.xyz")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/plain" {
		t.Errorf("Expected plain text body, got %q", got)
	}
	if rr.Body.String() != "404 Not Found" {
		t.Errorf("Unexpected 404 body %q", rr.Body.String())
	}
	// The 404 path carries no CORS headers, unlike every other response.
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no CORS headers on 404, got %q", got)
	}
}

func TestStatic_DirectoryIs404(t *testing.T) {
	h := staticFixture(t)

	rr := get(h, "/.")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for directory, got %d", rr.Code)
	}
}

func TestStatic_TraversalRejected(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "site")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := NewStaticHandler(sub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/../secret.txt"
	rr := httptest.NewRecorder()
	h.Serve(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for traversal attempt, got %d", rr.Code)
	}
}
