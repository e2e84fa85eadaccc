package api

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/starford/fehu/internal/itemservice"
)

const maxDatasetBytes = 10 << 20 // 10 MB

// DatasetLoader replaces the demo item from a JSON dataset file.
type DatasetLoader interface {
	LoadDataset(path string) error
}

// DatasetHandler accepts demo dataset uploads. It is only mounted in
// demo mode.
type DatasetHandler struct {
	loader DatasetLoader
	svc    *itemservice.Service
	dir    string
}

// NewDatasetHandler creates a handler that saves uploads under dir.
func NewDatasetHandler(loader DatasetLoader, svc *itemservice.Service, dir string) *DatasetHandler {
	return &DatasetHandler{loader: loader, svc: svc, dir: dir}
}

// Upload handles POST /api/demo/dataset (multipart/form-data, field "file").
//
//	@Summary		Replace the demo item from an uploaded JSON dataset
//	@Tags			demo
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Dataset JSON file"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/demo/dataset [post]
func (dh *DatasetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDatasetBytes)

	if err := r.ParseMultipartForm(maxDatasetBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return
	}
	defer file.Close()

	if err := os.MkdirAll(dh.dir, 0o755); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to create dataset dir"))
		return
	}
	dst := filepath.Join(dh.dir, "dataset.json")
	out, err := os.Create(dst)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to create dataset file"))
		return
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to write dataset file"))
		return
	}
	out.Close()

	if err := dh.loader.LoadDataset(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid dataset: "+err.Error()))
		return
	}
	// Pull the new dataset into the snapshot immediately.
	if err := dh.svc.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	item, err := dh.svc.Item(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	groups, err := dh.svc.Groups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		BoardID:     item.Board.ID,
		BoardName:   item.Board.Name,
		Checksum:    dh.svc.Checksum(),
		LastRefresh: dh.svc.LastRefresh(),
		Groups:      groups,
	})
}
