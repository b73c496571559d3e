package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/wordmap/internal/config"
	"github.com/JaimeStill/wordmap/internal/images"
	"github.com/JaimeStill/wordmap/internal/posts"
	"github.com/JaimeStill/wordmap/internal/words"
	"github.com/JaimeStill/wordmap/pkg/openapi"
	"github.com/JaimeStill/wordmap/pkg/routes"
)

// NewTable builds the named route table for every domain handler plus the
// openapi document route.
func NewTable(cfg *config.Config, runtime *Runtime, domain *Domain) (*routes.Table, *openapi.Spec, error) {
	table := routes.NewTable(cfg.API.BasePath)

	postsHandler := posts.NewHandler(domain.Posts, runtime.Logger, runtime.Pagination)
	wordsHandler := words.NewHandler(domain.Words, runtime.Logger)
	imagesHandler := images.NewHandler(domain.Images, table, runtime.Logger, runtime.Pagination, runtime.MaxUploadSize)

	var specBytes []byte
	docs := routes.Group{
		Tags: []string{"Documentation"},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/openapi.json",
				Name:    "openapi",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					openapi.ServeSpec(specBytes)(w, r)
				},
			},
		},
	}

	if err := table.Add(
		postsHandler.Routes(),
		wordsHandler.Routes(),
		imagesHandler.Routes(),
		docs,
	); err != nil {
		return nil, nil, fmt.Errorf("build route table: %w", err)
	}

	spec := buildSpec(cfg, table)
	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal openapi: %w", err)
	}
	specBytes = data

	return table, spec, nil
}

func buildSpec(cfg *config.Config, table *routes.Table) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	cfg.API.OpenAPI.Apply(spec)
	if len(spec.Servers) == 0 && cfg.Domain != "" {
		spec.AddServer(cfg.Domain)
	}

	spec.Components.AddSchemas(posts.Schemas())
	spec.Components.AddSchemas(words.Schemas())
	spec.Components.AddSchemas(images.Schemas())

	table.AddToSpec(spec)
	return spec
}
