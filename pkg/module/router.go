package module

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/event-builder/pkg/middleware"
)

// Router dispatches requests to mounted modules by first path segment and
// falls back to natively registered handlers. Middleware added with Use
// wraps every request, module or native, before the path is rewritten.
type Router struct {
	modules    map[string]*Module
	native     *http.ServeMux
	middleware middleware.System
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		modules:    make(map[string]*Module),
		native:     http.NewServeMux(),
		middleware: middleware.New(),
	}
}

// HandleNative registers a handler outside any module, e.g. "GET /health".
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Use adds middleware around the whole router.
func (r *Router) Use(mw func(http.Handler) http.Handler) {
	r.middleware.Use(mw)
}

// Mount registers a module under its prefix.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// ServeHTTP runs the router middleware, then removes trailing slashes and
// routes the request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.middleware.Apply(http.HandlerFunc(r.dispatch)).ServeHTTP(w, req)
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	path := normalizePath(req)

	if m, ok := r.modules[extractPrefix(path)]; ok {
		m.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}

func extractPrefix(path string) string {
	rest := strings.TrimPrefix(path, "/")
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	return "/" + rest
}

func normalizePath(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
		req.URL.Path = path
		if req.URL.RawPath != "" {
			req.URL.RawPath = strings.TrimRight(req.URL.RawPath, "/")
		}
	}
	return path
}
