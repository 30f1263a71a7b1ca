// Package module mounts self-contained HTTP handlers under single-segment
// path prefixes. Each module sees request paths relative to its prefix;
// middleware is applied once at the Router so it observes the full path.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Module is an isolated HTTP handler mounted at a prefix such as "/api".
type Module struct {
	prefix string
	router http.Handler
}

// New creates a module at prefix. It panics when prefix is empty, lacks a
// leading slash, or contains more than one path segment.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix: prefix,
		router: router,
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Serve strips the module prefix from the request path and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r := req.Clone(req.Context())
	r.URL.Path = path
	if req.URL.RawPath != "" {
		rawPath := strings.TrimPrefix(req.URL.RawPath, m.prefix)
		if rawPath == "" {
			rawPath = "/"
		}
		r.URL.RawPath = rawPath
	}

	m.router.ServeHTTP(w, r)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with '/': %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be single-level sub-path: %s", prefix)
	}
	return nil
}
