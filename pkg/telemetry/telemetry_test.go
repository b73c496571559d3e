package telemetry_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/wordmap/pkg/lifecycle"
	"github.com/JaimeStill/wordmap/pkg/telemetry"
)

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_OTEL_ENABLED", "true")

	cfg := &telemetry.Config{}
	if err := cfg.Finalize(&telemetry.Env{Enabled: "TEST_OTEL_ENABLED"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled = false, want true from env")
	}
	if cfg.Endpoint != "localhost:4317" || cfg.ServiceName != "wordmap" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &telemetry.Config{Endpoint: "a:4317"}
	cfg.Merge(&telemetry.Config{Enabled: true, ServiceName: "wordmap-dev"})

	if !cfg.Enabled || cfg.Endpoint != "a:4317" || cfg.ServiceName != "wordmap-dev" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestStart_Disabled(t *testing.T) {
	sys := telemetry.New(&telemetry.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if sys.Enabled() {
		t.Error("Enabled() = true for zero config")
	}
	if err := sys.Start(lifecycle.New()); err != nil {
		t.Errorf("Start() error = %v", err)
	}
}

func TestMiddleware_PassesThrough(t *testing.T) {
	h := telemetry.Middleware("api")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/words/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}

func TestConfig_Finalize_Signals(t *testing.T) {
	tests := []struct {
		name         string
		cfg          telemetry.Config
		wantInterval time.Duration
		wantLogs     bool
		wantErr      bool
	}{
		{"defaults", telemetry.Config{}, 30 * time.Second, false, false},
		{"logs need enabled", telemetry.Config{ExportLogs: true}, 30 * time.Second, false, false},
		{"logs", telemetry.Config{Enabled: true, ExportLogs: true}, 30 * time.Second, true, false},
		{"interval", telemetry.Config{MetricInterval: "5s"}, 5 * time.Second, false, false},
		{"bad interval", telemetry.Config{MetricInterval: "often"}, 0, false, true},
		{"zero interval", telemetry.Config{MetricInterval: "0s"}, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Finalize(nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := cfg.MetricIntervalDuration(); got != tt.wantInterval {
				t.Errorf("MetricIntervalDuration() = %v, want %v", got, tt.wantInterval)
			}
			if got := cfg.LogsEnabled(); got != tt.wantLogs {
				t.Errorf("LogsEnabled() = %v, want %v", got, tt.wantLogs)
			}
		})
	}
}

func TestConfig_Finalize_SignalEnv(t *testing.T) {
	t.Setenv("TEST_OTEL_METRICS", "true")
	t.Setenv("TEST_OTEL_INTERVAL", "1m")

	cfg := &telemetry.Config{}
	env := &telemetry.Env{ExportMetrics: "TEST_OTEL_METRICS", MetricInterval: "TEST_OTEL_INTERVAL"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.ExportMetrics || cfg.MetricIntervalDuration() != time.Minute {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLogHandler(t *testing.T) {
	if telemetry.LogHandler("wordmap") == nil {
		t.Fatal("LogHandler() = nil")
	}
}
