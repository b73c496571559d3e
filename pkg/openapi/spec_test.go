package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/wordmap/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("wordmap", "0.1.0")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("OpenAPI = %q, want 3.1.0", spec.OpenAPI)
	}
	if spec.Info.Title != "wordmap" || spec.Info.Version != "0.1.0" {
		t.Errorf("Info = %+v", spec.Info)
	}
	if spec.Paths == nil {
		t.Error("Paths is nil")
	}

	for _, name := range []string{"BadRequest", "NotFound", "Conflict", "PayloadTooLarge"} {
		if _, ok := spec.Components.Responses[name]; !ok {
			t.Errorf("missing response %s", name)
		}
	}
}

func TestSpec_SetDescriptionAddServer(t *testing.T) {
	spec := openapi.NewSpec("wordmap", "0.1.0")
	spec.SetDescription("annotation service")
	spec.AddServer("http://localhost:8080")

	if spec.Info.Description != "annotation service" {
		t.Errorf("Description = %q", spec.Info.Description)
	}
	if len(spec.Servers) != 1 || spec.Servers[0].URL != "http://localhost:8080" {
		t.Errorf("Servers = %+v", spec.Servers)
	}
}

func TestComponents_AddSchemas(t *testing.T) {
	c := openapi.NewComponents()
	c.AddSchemas(map[string]*openapi.Schema{
		"Word": {Type: "object", Properties: map[string]*openapi.Schema{"word": {Type: "string"}}},
	})

	if _, ok := c.Schemas["Word"]; !ok {
		t.Error("Word schema not added")
	}
	if _, ok := c.Schemas["PageRequest"]; !ok {
		t.Error("PageRequest schema was removed")
	}
}

func TestMarshalJSON_OmitsEmptyBounds(t *testing.T) {
	spec := openapi.NewSpec("wordmap", "0.1.0")
	spec.Paths["/api/words/"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "List words",
			Responses: map[int]*openapi.Response{200: openapi.ResponseJSONArray("Words", "Word")},
		},
	}

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	paths := doc["paths"].(map[string]any)
	get := paths["/api/words/"].(map[string]any)["get"].(map[string]any)
	resp := get["responses"].(map[string]any)["200"].(map[string]any)
	schema := resp["content"].(map[string]any)["application/json"].(map[string]any)["schema"].(map[string]any)

	if schema["type"] != "array" {
		t.Errorf("schema type = %v, want array", schema["type"])
	}
	if _, ok := schema["minimum"]; ok {
		t.Error("unset minimum was rendered")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")

	if err := openapi.WriteJSON(openapi.NewSpec("wordmap", "0.1.0"), path); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !json.Valid(data) {
		t.Error("written file is not valid JSON")
	}
}

func TestWriteJSON_InvalidPath(t *testing.T) {
	err := openapi.WriteJSON(openapi.NewSpec("wordmap", "0.1.0"), "/nonexistent/dir/openapi.json")
	if err == nil {
		t.Error("WriteJSON() expected error for invalid path")
	}
}

func TestServeSpec(t *testing.T) {
	body := []byte(`{"openapi":"3.1.0"}`)
	rec := httptest.NewRecorder()

	openapi.ServeSpec(body)(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != string(body) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestConfig_Finalize_TitleEnv(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "from env")

	cfg := openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "from env" {
		t.Errorf("Title = %q, want from env", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("Description default not applied")
	}
}
