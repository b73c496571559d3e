// Package module mounts independently configured HTTP handlers under
// single-segment path prefixes. Each module owns its middleware stack and
// receives requests with its prefix stripped.
package module

import (
	"net/http"
	"strings"
	"sync"
)

// Module is an http.Handler mounted at a single-level prefix such as "/api".
type Module struct {
	prefix     string
	handler    http.Handler
	middleware []func(http.Handler) http.Handler

	build   sync.Once
	wrapped http.Handler
}

// New creates a Module. It panics if prefix is empty, lacks a leading slash,
// or spans more than one path segment.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}

	return &Module{
		prefix:  prefix,
		handler: handler,
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. Middleware registered first runs first.
// It panics once the chain has been built by Handler or Serve.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	if m.wrapped != nil {
		panic("module: Use called after the middleware chain was built")
	}
	m.middleware = append(m.middleware, mw)
}

// Handler returns the module handler wrapped in its middleware.
// The chain is built on first call and reused afterwards.
func (m *Module) Handler() http.Handler {
	m.build.Do(func() {
		h := m.handler
		for i := len(m.middleware) - 1; i >= 0; i-- {
			h = m.middleware[i](h)
		}
		m.wrapped = h
	})
	return m.wrapped
}

// Serve strips the module prefix from the request path and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	req := r.Clone(r.Context())
	req.URL.Path = path
	req.URL.RawPath = ""

	m.Handler().ServeHTTP(w, req)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return errInvalidPrefix("prefix is empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return errInvalidPrefix("prefix must start with /")
	}
	if strings.Contains(prefix[1:], "/") {
		return errInvalidPrefix("prefix must be a single path segment")
	}
	return nil
}

type errInvalidPrefix string

func (e errInvalidPrefix) Error() string {
	return "module: invalid prefix: " + string(e)
}
