// Package database manages the PostgreSQL connection pool and ties it to the
// service lifecycle.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/wordmap/pkg/lifecycle"
)

// System exposes the connection pool and its readiness.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
	Ping(ctx context.Context) error
}

type database struct {
	conn    *sql.DB
	cfg     *Config
	logger  *slog.Logger
	started atomic.Bool
}

// New opens a pool with the "pgx" driver. No connection is made until Start runs.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:   conn,
		cfg:    cfg,
		logger: logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database connection", "host", d.cfg.Host, "name", d.cfg.Name)

	lc.OnStartup(func() {
		ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := d.conn.PingContext(ctx); err != nil {
			d.logger.Error("database ping failed", "error", err)
			return
		}
		d.started.Store(true)
		d.logger.Info("database connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}

func (d *database) Ping(ctx context.Context) error {
	if !d.started.Load() {
		return ErrNotReady
	}
	return d.conn.PingContext(ctx)
}
