package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env names the environment variables that override Config.
type Env struct {
	Level     string
	Format    string
	AddSource string
}

// Config selects the slog handler. Level and Format are case-insensitive.
type Config struct {
	Level     Level  `toml:"level"`
	Format    Format `toml:"format"`
	AddSource bool   `toml:"add_source"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	c.Level = Level(strings.ToLower(string(c.Level)))
	c.Format = Format(strings.ToLower(string(c.Format)))
	return c.validate()
}

// Merge applies non-zero values from overlay. AddSource can only be switched on by an overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.AddSource {
		c.AddSource = true
	}
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

func (c *Config) loadEnv(env *Env) error {
	if v := lookup(env.Level); v != "" {
		c.Level = Level(v)
	}
	if v := lookup(env.Format); v != "" {
		c.Format = Format(v)
	}
	if v := lookup(env.AddSource); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", env.AddSource, err)
		}
		c.AddSource = b
	}
	return nil
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(name))
}

func (c *Config) validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}
