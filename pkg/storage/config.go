package storage

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const (
	defaultBasePath      = ".data/blobs"
	defaultMaxUploadSize = "25MB"
)

// Config locates the blob root and bounds the size of a single upload.
// MaxUploadSize is a decimal human size such as "25MB" or "512kB".
type Config struct {
	BasePath      string `toml:"base_path"`
	MaxUploadSize string `toml:"max_upload_size"`

	maxUploadBytes int64
}

// Env maps environment variable names for storage configuration.
type Env struct {
	BasePath      string
	MaxUploadSize string
}

// MaxUploadSizeBytes returns the parsed upload limit. It is zero until Finalize succeeds.
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadBytes
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}

	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
}

func (c *Config) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = defaultBasePath
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = defaultMaxUploadSize
	}
}

func (c *Config) loadEnv(env *Env) {
	overrides := []struct {
		name   string
		target *string
	}{
		{env.BasePath, &c.BasePath},
		{env.MaxUploadSize, &c.MaxUploadSize},
	}
	for _, o := range overrides {
		if o.name == "" {
			continue
		}
		if v := os.Getenv(o.name); v != "" {
			*o.target = v
		}
	}
}

func (c *Config) validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("base_path required")
	}

	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size %q: %w", c.MaxUploadSize, err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive, got %q", c.MaxUploadSize)
	}
	c.maxUploadBytes = size

	return nil
}
