// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, storage, telemetry) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/wordmap/internal/config"
	"github.com/JaimeStill/wordmap/internal/migrations"
	"github.com/JaimeStill/wordmap/pkg/database"
	"github.com/JaimeStill/wordmap/pkg/lifecycle"
	"github.com/JaimeStill/wordmap/pkg/logging"
	"github.com/JaimeStill/wordmap/pkg/storage"
	"github.com/JaimeStill/wordmap/pkg/telemetry"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Telemetry telemetry.System

	migrationURL string
	autoMigrate  bool
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := logging.New(&cfg.Logging)
	return NewWithLogger(cfg, logger)
}

// NewWithLogger is New with a caller-supplied logger. When log export is
// enabled, records are also forwarded to OpenTelemetry.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	if cfg.Telemetry.LogsEnabled() {
		logger = slog.New(logging.Tee(
			logger.Handler(),
			telemetry.LogHandler(cfg.Telemetry.ServiceName),
		))
	}

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:    lifecycle.New(),
		Logger:       logger,
		Database:     db,
		Storage:      store,
		Telemetry:    telemetry.New(&cfg.Telemetry, logger),
		migrationURL: cfg.Database.MigrationURL(),
		autoMigrate:  cfg.Database.AutoMigrate,
	}, nil
}

// Start applies pending migrations when auto-migrate is enabled and
// registers every system with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Telemetry.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("telemetry start failed: %w", err)
	}
	if i.autoMigrate {
		if err := migrations.Up(i.migrationURL, i.Logger); err != nil {
			return fmt.Errorf("migrate failed: %w", err)
		}
	}
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
