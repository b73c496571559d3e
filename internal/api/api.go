// Package api assembles the domain systems into the route table and mounts
// it as a module under the configured base path.
package api

import (
	"github.com/JaimeStill/wordmap/internal/config"
	"github.com/JaimeStill/wordmap/internal/infrastructure"
	"github.com/JaimeStill/wordmap/pkg/middleware"
	"github.com/JaimeStill/wordmap/pkg/module"
	"github.com/JaimeStill/wordmap/pkg/openapi"
	"github.com/JaimeStill/wordmap/pkg/routes"
	"github.com/JaimeStill/wordmap/pkg/telemetry"
)

// API is the mounted module together with the table and document it serves.
type API struct {
	Module *module.Module
	Table  *routes.Table
	Spec   *openapi.Spec
}

// NewModule builds the API module. Requests reach the table with the base
// path stripped and a trailing slash enforced.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*API, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	table, spec, err := NewTable(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, table.Handler())
	m.Use(telemetry.Middleware("api"))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.AddSlash())

	return &API{Module: m, Table: table, Spec: spec}, nil
}
