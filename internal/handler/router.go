package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vrcreative/seo-codex/internal/registry"
	"github.com/vrcreative/seo-codex/internal/store"
	"github.com/vrcreative/seo-codex/internal/validate"
	"github.com/vrcreative/seo-codex/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	ShowStore store.ShowStoreIface
	Engine    *validate.Engine
	// Registry is re-read on every request that needs approved tags.
	Registry registry.Source
	Logger   zerolog.Logger
}

// NewRouter assembles the chi router: fixed page loaders, static assets,
// health and metrics, and the JSON API under /api/v1.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(deps.Logger))
	r.Use(middleware.Recoverer)

	// Use fs.Sub so the file server sees css/app.css directly, not static/css/...
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	r.Get("/", readme)
	r.Get("/health", health)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/stage-shows/{slug}", page("show", "pages/show.html"))
	r.Get("/filtered-shows", page("filtered-shows", "pages/tags.html"))
	r.Get("/offerings", page("offerings", "pages/offerings.html"))

	api := NewAPIHandler(deps.ShowStore, deps.Engine, deps.Registry, deps.Logger)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Get("/shows", api.ListShows)
		r.Get("/shows/{slug}", api.GetShow)
		r.Get("/tags", api.ListTags)
		r.Post("/validate", api.Validate)
	})

	return r
}
