package handler

import (
	"net/http"

	"github.com/vrcreative/seo-codex/internal/build"
	"github.com/vrcreative/seo-codex/internal/metrics"
	"github.com/vrcreative/seo-codex/web"
)

// page serves one fixed loader file regardless of path parameters; the
// loader reads the slug or tag from the URL in the browser.
func page(name, file string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.PageRequestsTotal.WithLabelValues(name).Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeFileFS(w, r, web.PagesFS, file)
	}
}

func readme(w http.ResponseWriter, r *http.Request) {
	metrics.PageRequestsTotal.WithLabelValues("readme").Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(web.README)
}

type healthBody struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "healthy", Service: "seo-codex", Version: build.Version})
}
