package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vrcreative/seo-codex/internal/metrics"
	"github.com/vrcreative/seo-codex/internal/registry"
	"github.com/vrcreative/seo-codex/internal/show"
	"github.com/vrcreative/seo-codex/internal/store"
	"github.com/vrcreative/seo-codex/internal/validate"
)

// maxDocumentBytes bounds POST /api/v1/validate bodies.
const maxDocumentBytes = 10 << 20

// APIHandler serves the catalog and the validator over JSON.
type APIHandler struct {
	shows    store.ShowStoreIface
	engine   *validate.Engine
	registry registry.Source
	log      zerolog.Logger
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(ss store.ShowStoreIface, e *validate.Engine, reg registry.Source, log zerolog.Logger) *APIHandler {
	return &APIHandler{shows: ss, engine: e, registry: reg, log: log}
}

// ListShows returns the published catalog in import order.
func (h *APIHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	records, err := h.shows.ListAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list shows")
		writeError(w, http.StatusInternalServerError, "failed to list shows", "internal_error")
		return
	}
	metrics.ShowsTotal.Set(float64(len(records)))
	writeJSON(w, http.StatusOK, records)
}

// GetShow returns one published show by slug.
func (h *APIHandler) GetShow(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	rec, err := h.shows.GetBySlug(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "show not found", "not_found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("slug", slug).Msg("get show")
		writeError(w, http.StatusInternalServerError, "failed to load show", "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type tagsResponse struct {
	Tags []string `json:"tags"`
}

// ListTags returns the approved tags from a fresh read of the registry.
func (h *APIHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	set := h.loadTags()
	writeJSON(w, http.StatusOK, tagsResponse{Tags: set.Tags()})
}

// Validate runs the validator over the posted shows document. The report is
// returned with 200 whether or not it passes; only an unparseable document
// is a 400.
func (h *APIHandler) Validate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "document too large", "too_large")
		return
	}

	records, err := show.Decode(body, requestFormat(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "invalid_document")
		return
	}

	rep := h.engine.Validate(records, h.loadTags())
	metrics.ObserveReport(rep)
	writeJSON(w, http.StatusOK, rep)
}

func (h *APIHandler) loadTags() registry.Set {
	set := registry.NewSet(h.registry.Load(h.log))
	metrics.RegistryTags.Set(float64(set.Len()))
	return set
}

func requestFormat(r *http.Request) show.Format {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return show.FormatYAML
	default:
		return show.FormatJSON
	}
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
