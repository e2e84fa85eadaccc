package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
// datasetHandler, if non-nil, adds the demo dataset upload route.
func NewRouter(h *Handler, authEnabled bool, token string, sseHandler http.Handler, datasetHandler *DatasetHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Item snapshot.
	r.Get("/item", h.GetItem)
	r.Post("/item/refresh", h.Refresh)
	r.Get("/item/groups", h.ListGroups)
	r.Get("/item/fields/{fieldID}", h.GetField)
	r.Put("/item/fields/{fieldID}", h.UpdateField)

	// Search.
	r.Get("/search", h.Search)
	r.Get("/categories", h.ListCategories)

	// Exports.
	r.Get("/export/csv", h.ExportCSV)
	r.Get("/export/pdf", h.ExportPDF)
	r.Get("/exports", h.ListExports)
	r.Get("/exports/{name}", h.DownloadExport)
	r.Delete("/exports/{name}", h.DeleteExport)

	// Notices and themes.
	r.Get("/notices", h.ListNotices)
	r.Get("/themes", h.ListThemes)
	r.Get("/themes/{name}", h.GetTheme)

	// Demo dataset upload (demo mode only).
	if datasetHandler != nil {
		r.Post("/demo/dataset", datasetHandler.Upload)
	}

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
