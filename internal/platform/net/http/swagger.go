package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger serves the swagger UI under /docs when enabled
// specURL points the UI at the OpenAPI document (e.g. "/docs/doc.json")
func MountSwagger(r Router, enabled bool, specURL string) {
	if !enabled {
		return
	}
	var opts []func(*httpSwagger.Config)
	if specURL != "" {
		opts = append(opts, httpSwagger.URL(specURL))
	}
	ui := httpSwagger.Handler(opts...)
	r.Get("/docs/*", func(w http.ResponseWriter, req *http.Request) { ui.ServeHTTP(w, req) })
}
