// Package scalar serves the interactive API reference using Scalar UI.
// The page is embedded at compile time and points at the OpenAPI document route.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/wordmap/pkg/module"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// Handler renders the reference page for the document at specURL.
func Handler(specURL string) http.HandlerFunc {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, struct{ SpecURL string }{specURL}); err != nil {
		panic(err)
	}
	page := buf.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	}
}

// NewModule mounts the reference page at prefix.
func NewModule(prefix, specURL string) *module.Module {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", Handler(specURL))
	return module.New(prefix, mux)
}
