package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/wordmap/internal/api"
	"github.com/JaimeStill/wordmap/internal/config"
	"github.com/JaimeStill/wordmap/internal/infrastructure"
)

const testTOML = `
[database]
name = "wordmap"
user = "wordmap"
password = "wordmap"

[storage]
base_path = ".data/blobs"

[api]
base_path = "/api"
`

func newAPI(t *testing.T) *api.API {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.BaseConfigFile), []byte(testTOML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	cfg.Storage.BasePath = filepath.Join(dir, "blobs")

	infra, err := infrastructure.NewWithLogger(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("infrastructure error = %v", err)
	}

	a, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}
	return a
}

func TestTable_Entries(t *testing.T) {
	a := newAPI(t)

	want := []struct {
		method string
		path   string
		name   string
	}{
		{"GET", "/posts/", "posts_list"},
		{"POST", "/posts/", "create_post"},
		{"GET", "/words/", "word_list"},
		{"POST", "/add_word/", "add_word"},
		{"DELETE", "/delete_word/", "delete_word"},
		{"DELETE", "/delete_coordinate/", "delete_coordinate"},
		{"POST", "/add_coordinates/", "add_coordinates"},
		{"GET", "/coordinates/{word_id}/", "word_coordinates"},
		{"POST", "/upload/", "upload_image"},
		{"GET", "/list_images/", "list_images"},
		{"GET", "/list_image_names/", "list_image_names"},
		{"DELETE", "/delete_image/", "delete_image"},
		{"GET", "/images/{id}/file/", "image_file"},
		{"GET", "/openapi.json", "openapi"},
	}

	entries := a.Table.Entries()
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}

	for _, w := range want {
		e, ok := a.Table.Lookup(w.name)
		if !ok {
			t.Errorf("Lookup(%s) missing", w.name)
			continue
		}
		if e.Method != w.method || e.Path != w.path {
			t.Errorf("%s = %s %s, want %s %s", w.name, e.Method, e.Path, w.method, w.path)
		}
	}
}

func TestTable_Reverse(t *testing.T) {
	a := newAPI(t)
	id := uuid.MustParse("6f1c1f9e-8a3b-4d2e-9c1a-0b5e7d3f2a10")

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"posts_list", nil, "/api/posts/"},
		{"add_word", nil, "/api/add_word/"},
		{"word_coordinates", []any{id}, "/api/coordinates/" + id.String() + "/"},
		{"image_file", []any{id}, "/api/images/" + id.String() + "/file/"},
		{"openapi", nil, "/api/openapi.json"},
	}

	for _, tt := range tests {
		got, err := a.Table.Reverse(tt.name, tt.args...)
		if err != nil {
			t.Errorf("Reverse(%s) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Reverse(%s) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestModule_TrailingSlashRedirect(t *testing.T) {
	a := newAPI(t)

	tests := []struct {
		method   string
		path     string
		status   int
		location string
	}{
		{http.MethodGet, "/api/posts", http.StatusMovedPermanently, "posts/"},
		{http.MethodGet, "/api/list_images?page=2", http.StatusMovedPermanently, "list_images/?page=2"},
		{http.MethodPost, "/api/add_word", http.StatusPermanentRedirect, "add_word/"},
		{http.MethodDelete, "/api/delete_image", http.StatusPermanentRedirect, "delete_image/"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		a.Module.Serve(rec, httptest.NewRequest(tt.method, tt.path, nil))

		if rec.Code != tt.status {
			t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, rec.Code, tt.status)
		}
		if loc := rec.Header().Get("Location"); loc != tt.location {
			t.Errorf("%s %s Location = %q, want %q", tt.method, tt.path, loc, tt.location)
		}
	}
}

func TestModule_OpenAPI(t *testing.T) {
	a := newAPI(t)

	rec := httptest.NewRecorder()
	a.Module.Serve(rec, httptest.NewRequest(http.MethodGet, "/api/openapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var doc struct {
		OpenAPI string                               `json:"openapi"`
		Paths   map[string]map[string]map[string]any `json:"paths"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if doc.OpenAPI != "3.1.0" {
		t.Errorf("openapi = %s", doc.OpenAPI)
	}

	checks := map[string]string{
		"/api/posts/":                 "get",
		"/api/add_coordinates/":       "post",
		"/api/delete_image/":          "delete",
		"/api/images/{id}/file/":      "get",
		"/api/coordinates/{word_id}/": "get",
	}
	for path, method := range checks {
		op, ok := doc.Paths[path][method]
		if !ok {
			t.Errorf("paths[%s][%s] missing", path, method)
			continue
		}
		if id, _ := op["operationId"].(string); id == "" {
			t.Errorf("paths[%s][%s] has no operationId", path, method)
		}
	}

	if _, ok := doc.Paths["/api/openapi.json"]; ok {
		t.Error("openapi.json should not describe itself")
	}
}

func TestModule_ExactMatch(t *testing.T) {
	a := newAPI(t)

	rec := httptest.NewRecorder()
	a.Module.Serve(rec, httptest.NewRequest(http.MethodGet, "/api/posts/extra/", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "data") {
		t.Errorf("subtree request reached a handler: %s", rec.Body.String())
	}
}
