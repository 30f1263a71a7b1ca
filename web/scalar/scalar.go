// Package scalar serves the Scalar API reference page for the generated
// OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/event-builder/pkg/module"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

// NewModule creates the reference module at prefix, pointing the page at specURL.
func NewModule(prefix, title, specURL string) (*module.Module, error) {
	var buf bytes.Buffer
	if err := index.Execute(&buf, struct{ Title, SpecURL string }{title, specURL}); err != nil {
		return nil, err
	}
	page := buf.Bytes()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	})

	return module.New(prefix, mux), nil
}
