// Package telemetry configures OpenTelemetry export over OTLP gRPC and
// provides HTTP instrumentation middleware. Traces are always exported when
// telemetry is enabled; metrics and slog records are opt-in.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/JaimeStill/wordmap/pkg/lifecycle"
)

// System owns the OpenTelemetry providers.
type System interface {
	Start(lc *lifecycle.Coordinator) error
	Enabled() bool
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

type telemetry struct {
	cfg       *Config
	logger    *slog.Logger
	providers []shutdowner
}

// New creates the telemetry system. When disabled, the global no-op providers stay in place.
func New(cfg *Config, logger *slog.Logger) System {
	return &telemetry{
		cfg:    cfg,
		logger: logger.With("system", "telemetry"),
	}
}

// LogHandler returns an slog handler that forwards records to the global
// OpenTelemetry logger provider. Records are dropped until Start installs an
// exporting provider.
func LogHandler(scope string) slog.Handler {
	return otelslog.NewHandler(scope)
}

func (t *telemetry) Enabled() bool {
	return t.cfg.Enabled
}

func (t *telemetry) Start(lc *lifecycle.Coordinator) error {
	if !t.cfg.Enabled {
		t.logger.Info("telemetry disabled")
		return nil
	}

	ctx := lc.Context()
	res := resource.NewSchemaless(attribute.String("service.name", t.cfg.ServiceName))

	if err := t.startTraces(ctx, res); err != nil {
		return err
	}
	if t.cfg.ExportMetrics {
		if err := t.startMetrics(ctx, res); err != nil {
			return err
		}
	}
	if t.cfg.ExportLogs {
		if err := t.startLogs(ctx, res); err != nil {
			return err
		}
	}

	t.logger.Info(
		"telemetry enabled",
		"endpoint", t.cfg.Endpoint,
		"service", t.cfg.ServiceName,
		"metrics", t.cfg.ExportMetrics,
		"logs", t.cfg.ExportLogs,
	)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := t.shutdown(context.Background()); err != nil {
			t.logger.Error("telemetry shutdown failed", "error", err)
			return
		}
		t.logger.Info("telemetry stopped")
	})

	return nil
}

func (t *telemetry) startTraces(ctx context.Context, res *resource.Resource) error {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(t.cfg.Endpoint)}
	if t.cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.providers = append(t.providers, provider)
	return nil
}

func (t *telemetry) startMetrics(ctx context.Context, res *resource.Resource) error {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(t.cfg.Endpoint)}
	if t.cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(t.cfg.MetricIntervalDuration()),
		)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(provider)
	t.providers = append(t.providers, provider)
	return nil
}

func (t *telemetry) startLogs(ctx context.Context, res *resource.Resource) error {
	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(t.cfg.Endpoint)}
	if t.cfg.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}

	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create log exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	global.SetLoggerProvider(provider)
	t.providers = append(t.providers, provider)
	return nil
}

// shutdown flushes providers in reverse start order.
func (t *telemetry) shutdown(ctx context.Context) error {
	var errs []error
	for i := len(t.providers) - 1; i >= 0; i-- {
		if err := t.providers[i].Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Middleware returns otelhttp instrumentation named after operation.
// Spans are recorded against the global provider, so it is harmless when telemetry is disabled.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(operation)
}
