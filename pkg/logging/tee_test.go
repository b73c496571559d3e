package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/wordmap/pkg/logging"
)

func TestTee(t *testing.T) {
	var info, debug bytes.Buffer
	infoHandler := slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo})
	debugHandler := slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := slog.New(logging.Tee(infoHandler, debugHandler)).With("system", "words")

	logger.Debug("detail")
	logger.WithGroup("req").Info("saved", "id", 7)

	if strings.Contains(info.String(), "detail") {
		t.Error("info handler received a debug record")
	}
	if !strings.Contains(debug.String(), "msg=detail") {
		t.Errorf("debug output = %q", debug.String())
	}

	for name, out := range map[string]string{"info": info.String(), "debug": debug.String()} {
		if !strings.Contains(out, "system=words") || !strings.Contains(out, "req.id=7") {
			t.Errorf("%s output missing attrs: %q", name, out)
		}
	}
}

func TestTee_Enabled(t *testing.T) {
	h := logging.Tee(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))

	if h.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("Enabled(info) = true with only an error-level handler")
	}
	if !h.Enabled(t.Context(), slog.LevelError) {
		t.Error("Enabled(error) = false")
	}
}
