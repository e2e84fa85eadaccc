package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/fehu/internal/checksum"
	"github.com/starford/fehu/internal/itemservice"
	"github.com/starford/fehu/internal/notice"
	"github.com/starford/fehu/internal/storage"
	"github.com/starford/fehu/internal/theme"
)

// Events receives change notifications for connected panel clients.
type Events interface {
	PublishRefresh(checksum string)
	PublishFieldUpdated(fieldID, checksum string)
}

// Handler holds API route handlers.
type Handler struct {
	svc          *itemservice.Service
	store        storage.Provider
	notices      *notice.Center
	events       Events
	defaultTheme string
}

// NewHandler creates a new Handler. events may be nil when no event
// broker is wired.
func NewHandler(svc *itemservice.Service, store storage.Provider, notices *notice.Center, events Events, defaultTheme string) *Handler {
	return &Handler{svc: svc, store: store, notices: notices, events: events, defaultTheme: defaultTheme}
}

// GetItem handles GET /api/item.
//
//	@Summary		Get the current item snapshot, grouped by category
//	@Tags			item
//	@Produce		json
//	@Param			If-None-Match	header	string	false	"Snapshot ETag from a previous response"
//	@Success		200	{object}	ItemResponse
//	@Success		304	"Snapshot unchanged"
//	@Failure		503	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/item [get]
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	sum := h.svc.Checksum()
	if sum != "" {
		etag := checksum.ETag(sum)
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	item, err := h.svc.Item(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	groups, err := h.svc.Groups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		BoardID:     item.Board.ID,
		BoardName:   item.Board.Name,
		Checksum:    sum,
		LastRefresh: h.svc.LastRefresh(),
		Groups:      groups,
	})
}

// Refresh handles POST /api/item/refresh.
//
//	@Summary		Re-fetch the item from the host
//	@Tags			item
//	@Produce		json
//	@Success		200	{object}	ItemResponse
//	@Failure		502	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/item/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	if h.events != nil {
		h.events.PublishRefresh(h.svc.Checksum())
	}
	h.GetItem(w, r)
}

// ListGroups handles GET /api/item/groups.
//
//	@Summary		List field groups in snapshot order
//	@Tags			item
//	@Produce		json
//	@Success		200	{object}	GroupListResponse
//	@Failure		503	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/item/groups [get]
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Groups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if groups == nil {
		groups = []Group{}
	}
	writeJSON(w, http.StatusOK, GroupListResponse{Groups: groups})
}

// GetField handles GET /api/item/fields/{fieldID}.
//
//	@Summary		Get a single field, decoded for display
//	@Tags			fields
//	@Produce		json
//	@Param			fieldID	path		string	true	"Field id"
//	@Success		200		{object}	FieldView
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/item/fields/{fieldID} [get]
func (h *Handler) GetField(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, "fieldID")
	f, err := h.svc.Field(r.Context(), fieldID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// UpdateField handles PUT /api/item/fields/{fieldID}.
//
//	@Summary		Write a field value to the host and resync
//	@Tags			fields
//	@Accept			json
//	@Produce		json
//	@Param			fieldID	path		string				true	"Field id"
//	@Param			body	body		UpdateFieldRequest	true	"New value"
//	@Success		200		{object}	FieldView
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Failure		422		{object}	errResponse
//	@Failure		502		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/item/fields/{fieldID} [put]
func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	fieldID := chi.URLParam(r, "fieldID")

	var req UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if len(req.Value) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("value is required"))
		return
	}

	var value any
	if err := json.Unmarshal(req.Value, &value); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid value payload"))
		return
	}

	if err := h.svc.Update(r.Context(), fieldID, value); err != nil {
		writeError(w, err)
		return
	}
	if h.events != nil {
		h.events.PublishFieldUpdated(fieldID, h.svc.Checksum())
	}

	f, err := h.svc.Field(r.Context(), fieldID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// Search handles GET /api/search.
//
//	@Summary		Filter fields by title or value text
//	@Tags			search
//	@Produce		json
//	@Param			q	query		string	false	"Substring query; empty returns all fields"
//	@Success		200	{object}	SearchResponse
//	@Failure		503	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	fields, err := h.svc.Search(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	if fields == nil {
		fields = []itemservice.FieldView{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Query: q, Fields: fields})
}

// ListCategories handles GET /api/categories.
//
//	@Summary		List category names with field counts
//	@Tags			search
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Security		BearerAuth
//	@Router			/categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CategoryListResponse{Categories: cats})
}

// ListNotices handles GET /api/notices.
//
//	@Summary		List recent notices, newest last
//	@Tags			notices
//	@Produce		json
//	@Success		200	{object}	NoticeListResponse
//	@Security		BearerAuth
//	@Router			/notices [get]
func (h *Handler) ListNotices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NoticeListResponse{Notices: h.notices.Recent()})
}

// ListThemes handles GET /api/themes.
//
//	@Summary		List available color themes
//	@Tags			themes
//	@Produce		json
//	@Success		200	{object}	ThemeListResponse
//	@Security		BearerAuth
//	@Router			/themes [get]
func (h *Handler) ListThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ThemeListResponse{
		Default: h.defaultTheme,
		Themes:  theme.All(),
	})
}

// GetTheme handles GET /api/themes/{name}.
//
//	@Summary		Get one theme palette; unknown names fall back to light
//	@Tags			themes
//	@Produce		json
//	@Param			name	path		string	true	"Theme name"
//	@Success		200		{object}	theme.Palette
//	@Security		BearerAuth
//	@Router			/themes/{name} [get]
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, theme.Lookup(chi.URLParam(r, "name")))
}
