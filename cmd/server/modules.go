package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/wordmap/internal/api"
	"github.com/JaimeStill/wordmap/internal/config"
	"github.com/JaimeStill/wordmap/internal/infrastructure"
	"github.com/JaimeStill/wordmap/pkg/middleware"
	"github.com/JaimeStill/wordmap/pkg/module"
	"github.com/JaimeStill/wordmap/web/scalar"
)

// Modules are the prefix-mounted handlers served by the router.
type Modules struct {
	API  *api.API
	Docs *module.Module
}

// NewModules builds the API and documentation modules.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	specURL, err := apiModule.Table.Reverse("openapi")
	if err != nil {
		return nil, err
	}

	docsModule := scalar.NewModule("/docs", specURL)
	docsModule.Use(middleware.AddSlash())

	return &Modules{
		API:  apiModule,
		Docs: docsModule,
	}, nil
}

// Mount registers every module on router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API.Module)
	router.Mount(m.Docs)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", healthHandler(infra.Logger))
	router.HandleNative("GET /readyz", readyHandler(infra.Lifecycle, infra.Database, infra.Logger))

	return router
}

type readiness interface {
	Ready() bool
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, logger, http.StatusOK, "OK")
	}
}

// readyHandler reports 503 until the lifecycle is ready and the database answers a ping.
func readyHandler(lc readiness, db pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !lc.Ready() {
			writeStatus(w, logger, http.StatusServiceUnavailable, "NOT READY")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("readiness check failed", "error", err)
			writeStatus(w, logger, http.StatusServiceUnavailable, "DATABASE UNAVAILABLE")
			return
		}

		writeStatus(w, logger, http.StatusOK, "READY")
	}
}

const readyTimeout = 2 * time.Second

func writeStatus(w http.ResponseWriter, logger *slog.Logger, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		logger.Debug("health response write failed", "error", err)
	}
}
