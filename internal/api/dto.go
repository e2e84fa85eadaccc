package api

import (
	"encoding/json"
	"time"

	"github.com/starford/fehu/internal/index"
	"github.com/starford/fehu/internal/itemservice"
	"github.com/starford/fehu/internal/notice"
	"github.com/starford/fehu/internal/storage"
	"github.com/starford/fehu/internal/theme"
)

// UpdateFieldRequest is the request body for writing a field value.
// Value is kept raw so that false, 0 and null survive as deliberate
// payloads instead of being mistaken for an absent field.
type UpdateFieldRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

// FieldView is a decoded field (aliased from the domain layer).
type FieldView = itemservice.FieldView

// Group is one display category with its fields (aliased from the domain layer).
type Group = itemservice.Group

// ItemResponse wraps the full item snapshot.
type ItemResponse struct {
	ID          string    `json:"id" example:"1001" validate:"required"`
	Name        string    `json:"name" example:"Website Redesign" validate:"required"`
	BoardID     string    `json:"board_id" example:"2002"`
	BoardName   string    `json:"board_name" example:"Projects"`
	Checksum    string    `json:"checksum" example:"abc123..." validate:"required"`
	LastRefresh time.Time `json:"last_refresh"`
	Groups      []Group   `json:"groups" validate:"required"`
}

// GroupListResponse wraps the grouped field listing.
type GroupListResponse struct {
	Groups []Group `json:"groups" validate:"required"`
}

// SearchResponse wraps a field search.
type SearchResponse struct {
	Query  string      `json:"query" example:"budget"`
	Fields []FieldView `json:"fields" validate:"required"`
}

// CategoryListResponse wraps the category name and count listing.
type CategoryListResponse struct {
	Categories []index.Category `json:"categories" validate:"required"`
}

// ExportListResponse wraps the persisted export listing.
type ExportListResponse struct {
	Exports []storage.ExportMetadata `json:"exports" validate:"required"`
}

// NoticeListResponse wraps recent notices, newest last.
type NoticeListResponse struct {
	Notices []notice.Notice `json:"notices" validate:"required"`
}

// ThemeListResponse wraps the available palettes.
type ThemeListResponse struct {
	Default string          `json:"default" example:"light" validate:"required"`
	Themes  []theme.Palette `json:"themes" validate:"required"`
}
