package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/fehu/internal/export"
)

const (
	csvContentType = "text/csv; charset=utf-8"
	pdfContentType = "application/pdf"
)

// exportDocument renders the current snapshot in the requested format,
// persists the result, and streams it back as an attachment.
func (h *Handler) exportDocument(w http.ResponseWriter, r *http.Request, ext, contentType string) {
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

	var data []byte
	switch ext {
	case "csv":
		data, err = export.CSV(groups)
	case "pdf":
		data, err = export.PDF(item.Name, item.Board.Name, groups)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	name := export.Filename(item.Name, ext)
	if _, err := h.store.Write(name, data); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ExportCSV handles GET /api/export/csv.
//
//	@Summary		Download the item as a CSV file
//	@Tags			exports
//	@Produce		text/csv
//	@Success		200	"CSV document"
//	@Failure		503	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/export/csv [get]
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.exportDocument(w, r, "csv", csvContentType)
}

// ExportPDF handles GET /api/export/pdf.
//
//	@Summary		Download the item as a PDF document
//	@Tags			exports
//	@Produce		application/pdf
//	@Success		200	"PDF document"
//	@Failure		503	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/export/pdf [get]
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.exportDocument(w, r, "pdf", pdfContentType)
}

// ListExports handles GET /api/exports.
//
//	@Summary		List persisted export files, newest first
//	@Tags			exports
//	@Produce		json
//	@Success		200	{object}	ExportListResponse
//	@Security		BearerAuth
//	@Router			/exports [get]
func (h *Handler) ListExports(w http.ResponseWriter, r *http.Request) {
	exports, err := h.store.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ExportListResponse{Exports: exports})
}

// DownloadExport handles GET /api/exports/{name}.
//
//	@Summary		Download a previously persisted export
//	@Tags			exports
//	@Param			name	path	string	true	"Export file name"
//	@Success		200	"Export file"
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/exports/{name} [get]
func (h *Handler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, err := h.store.Read(name)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// DeleteExport handles DELETE /api/exports/{name}.
//
//	@Summary		Delete a persisted export
//	@Tags			exports
//	@Param			name	path	string	true	"Export file name"
//	@Success		204	"Export deleted"
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/exports/{name} [delete]
func (h *Handler) DeleteExport(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
