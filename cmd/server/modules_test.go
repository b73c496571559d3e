package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/wordmap/pkg/lifecycle"
)

type fakeDB struct {
	err   error
	calls int
}

func (f *fakeDB) Ping(ctx context.Context) error {
	f.calls++
	return f.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReadyHandler(t *testing.T) {
	started := lifecycle.New()
	started.WaitForStartup()

	tests := []struct {
		name      string
		lc        *lifecycle.Coordinator
		pingErr   error
		wantCode  int
		wantBody  string
		wantPings int
	}{
		{"not started", lifecycle.New(), nil, http.StatusServiceUnavailable, "NOT READY", 0},
		{"database down", started, errors.New("connection refused"), http.StatusServiceUnavailable, "DATABASE UNAVAILABLE", 1},
		{"ready", started, nil, http.StatusOK, "READY", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{err: tt.pingErr}
			rec := httptest.NewRecorder()

			readyHandler(tt.lc, db, discard()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if db.calls != tt.wantPings {
				t.Errorf("pings = %d, want %d", db.calls, tt.wantPings)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	healthHandler(discard()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("got %d %q, want 200 OK", rec.Code, rec.Body.String())
	}
}
