package openapi

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config describes the document header. Servers lists the base URLs clients
// should target; an empty list leaves the document server-relative.
type Config struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Servers     []string `toml:"servers"`
}

// ConfigEnv names the environment variables that override Config.
// Servers is read as a comma-separated list.
type ConfigEnv struct {
	Title       string
	Description string
	Servers     string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if len(overlay.Servers) > 0 {
		c.Servers = overlay.Servers
	}
}

// Apply writes the configured header fields onto spec.
func (c *Config) Apply(spec *Spec) {
	spec.Info.Title = c.Title
	spec.SetDescription(c.Description)
	for _, s := range c.Servers {
		spec.AddServer(s)
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "wordmap API"
	}
	if c.Description == "" {
		c.Description = "Words, coordinate sets, and images for the wordmap annotation tool."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if v := getenv(env.Title); v != "" {
		c.Title = v
	}
	if v := getenv(env.Description); v != "" {
		c.Description = v
	}
	if v := getenv(env.Servers); v != "" {
		c.Servers = nil
		for s := range strings.SplitSeq(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Servers = append(c.Servers, s)
			}
		}
	}
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

func (c *Config) validate() error {
	for _, s := range c.Servers {
		u, err := url.Parse(s)
		if err != nil {
			return fmt.Errorf("invalid server %q: %w", s, err)
		}
		if !u.IsAbs() && !strings.HasPrefix(u.Path, "/") {
			return fmt.Errorf("server %q must be an absolute URL or an absolute path", s)
		}
	}
	return nil
}
