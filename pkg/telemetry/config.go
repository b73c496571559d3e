package telemetry

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config controls OpenTelemetry export. Traces are exported whenever Enabled
// is set; metrics and logs are opt-in on top of that.
type Config struct {
	Enabled        bool   `toml:"enabled"`
	Endpoint       string `toml:"endpoint"`
	ServiceName    string `toml:"service_name"`
	Insecure       bool   `toml:"insecure"`
	ExportMetrics  bool   `toml:"export_metrics"`
	ExportLogs     bool   `toml:"export_logs"`
	MetricInterval string `toml:"metric_interval"`

	metricInterval time.Duration
}

// Env maps environment variable names for telemetry configuration.
type Env struct {
	Enabled        string
	Endpoint       string
	ServiceName    string
	Insecure       string
	ExportMetrics  string
	ExportLogs     string
	MetricInterval string
}

// MetricIntervalDuration returns the parsed metric export interval.
func (c *Config) MetricIntervalDuration() time.Duration {
	return c.metricInterval
}

// LogsEnabled reports whether slog records should be exported.
func (c *Config) LogsEnabled() bool {
	return c.Enabled && c.ExportLogs
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Endpoint != "" {
		c.Endpoint = overlay.Endpoint
	}
	if overlay.ServiceName != "" {
		c.ServiceName = overlay.ServiceName
	}
	if overlay.Insecure {
		c.Insecure = true
	}
	if overlay.ExportMetrics {
		c.ExportMetrics = true
	}
	if overlay.ExportLogs {
		c.ExportLogs = true
	}
	if overlay.MetricInterval != "" {
		c.MetricInterval = overlay.MetricInterval
	}
}

func (c *Config) loadDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4317"
	}
	if c.ServiceName == "" {
		c.ServiceName = "wordmap"
	}
	if c.MetricInterval == "" {
		c.MetricInterval = "30s"
	}
}

func (c *Config) loadEnv(env *Env) {
	setBool(env.Enabled, &c.Enabled)
	setString(env.Endpoint, &c.Endpoint)
	setString(env.ServiceName, &c.ServiceName)
	setBool(env.Insecure, &c.Insecure)
	setBool(env.ExportMetrics, &c.ExportMetrics)
	setBool(env.ExportLogs, &c.ExportLogs)
	setString(env.MetricInterval, &c.MetricInterval)
}

func setString(name string, target *string) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		*target = v
	}
}

func setBool(name string, target *bool) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*target = b
		}
	}
}

func (c *Config) validate() error {
	if c.Enabled && c.Endpoint == "" {
		return fmt.Errorf("endpoint required when telemetry is enabled")
	}

	d, err := time.ParseDuration(c.MetricInterval)
	if err != nil {
		return fmt.Errorf("invalid metric_interval: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("metric_interval must be positive")
	}
	c.metricInterval = d

	return nil
}
