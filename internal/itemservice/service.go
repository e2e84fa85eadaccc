// Package itemservice owns the current item snapshot: it fetches and
// normalizes column values from the host, serves grouped and filtered
// views, and writes edits back through the field codec.
package itemservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/starford/fehu/internal/apperr"
	"github.com/starford/fehu/internal/checksum"
	"github.com/starford/fehu/internal/field"
	"github.com/starford/fehu/internal/host"
	"github.com/starford/fehu/internal/index"
)

// FieldView is a field enriched with its decoded display model and UI
// metadata.
type FieldView struct {
	field.Field
	Display  field.Display `json:"display"`
	Icon     string        `json:"icon"`
	ReadOnly bool          `json:"read_only"`
}

// Group is one display category with its fields in snapshot order.
type Group struct {
	Name   string      `json:"name"`
	Count  int         `json:"count"`
	Fields []FieldView `json:"fields"`
}

// Service coordinates the host client and the field index around the
// single in-memory snapshot. The snapshot is replaced wholesale by
// each successful fetch and left untouched by any failure.
type Service struct {
	client host.Client
	db     index.FieldIndex
	itemID string

	mu          sync.RWMutex
	item        *field.Item
	sum         string
	lastRefresh time.Time
}

// NewService creates an item service. itemID selects the item to fetch
// from the host; the demo host ignores it.
func NewService(client host.Client, db index.FieldIndex, itemID string) *Service {
	return &Service{client: client, db: db, itemID: itemID}
}

// Refresh fetches the item from the host, normalizes it, and replaces
// the snapshot. On any failure the previous snapshot is retained
// unchanged.
func (s *Service) Refresh(ctx context.Context) error {
	var resp host.ItemsResponse
	vars := map[string]any{"itemId": []any{idVar(s.itemID)}}
	if err := s.client.Query(ctx, host.ItemQuery, vars, &resp); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrFetch, err)
	}
	if len(resp.Items) == 0 {
		return fmt.Errorf("%w: item not found", apperr.ErrFetch)
	}

	item := normalize(resp.Items[0])

	rows := make([]index.Row, len(item.Fields))
	for i, f := range item.Fields {
		rows[i] = index.Row{
			FieldID:  f.ID,
			Title:    f.Title,
			Text:     f.Text,
			Type:     string(f.Type),
			Category: f.Category,
			Position: i,
		}
	}
	if err := s.db.ReplaceSnapshot(item.ID, rows); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrFetch, err)
	}

	encoded, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrFetch, err)
	}

	s.mu.Lock()
	s.item = item
	s.sum = checksum.Sum(encoded)
	s.lastRefresh = time.Now()
	s.mu.Unlock()
	return nil
}

// Item returns a copy of the current snapshot.
func (s *Service) Item(_ context.Context) (*field.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.item == nil {
		return nil, apperr.ErrNoSnapshot
	}
	return s.item.Clone(), nil
}

// Checksum returns the digest of the current snapshot, or empty when
// none is loaded.
func (s *Service) Checksum() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sum
}

// LastRefresh returns the time of the last successful fetch.
func (s *Service) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}

// Groups returns the snapshot's fields grouped by category, categories
// ordered by first appearance, fields decoded for display.
func (s *Service) Groups(ctx context.Context) ([]Group, error) {
	item, err := s.Item(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	var groups []Group
	for _, f := range item.Fields {
		name := f.Category
		if name == "" {
			name = "Other"
		}
		i, ok := byName[name]
		if !ok {
			i = len(groups)
			byName[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Fields = append(groups[i].Fields, view(f))
		groups[i].Count++
	}
	return groups, nil
}

// Field returns one field of the snapshot, decoded for display.
func (s *Service) Field(ctx context.Context, fieldID string) (*FieldView, error) {
	item, err := s.Item(ctx)
	if err != nil {
		return nil, err
	}
	f := item.FieldByID(fieldID)
	if f == nil {
		return nil, fmt.Errorf("%w: field %q", apperr.ErrNotFound, fieldID)
	}
	v := view(*f)
	return &v, nil
}

// Search returns the fields whose title or text contains the query,
// case-insensitively, in snapshot order.
func (s *Service) Search(ctx context.Context, query string) ([]FieldView, error) {
	item, err := s.Item(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		out := make([]FieldView, len(item.Fields))
		for i, f := range item.Fields {
			out[i] = view(f)
		}
		return out, nil
	}
	rows, err := s.db.Search(query, 0)
	if err != nil {
		return nil, err
	}
	out := make([]FieldView, 0, len(rows))
	for _, r := range rows {
		if f := item.FieldByID(r.FieldID); f != nil {
			out = append(out, view(*f))
		}
	}
	return out, nil
}

// Categories returns the category names and counts of the current
// snapshot.
func (s *Service) Categories(_ context.Context) ([]index.Category, error) {
	return s.db.Categories()
}

// Update writes one field value to the host and re-fetches the
// snapshot to resynchronize. The write result is never merged
// optimistically; the next authoritative state comes only from the
// fetch. On failure the snapshot is untouched and the error surfaces
// once, with no client-side retry.
func (s *Service) Update(ctx context.Context, fieldID string, value any) error {
	s.mu.RLock()
	item := s.item
	s.mu.RUnlock()
	if item == nil {
		return apperr.ErrNoSnapshot
	}

	f := item.FieldByID(fieldID)
	if f == nil {
		return fmt.Errorf("%w: field %q", apperr.ErrNotFound, fieldID)
	}
	// Reject before any host call is issued.
	if field.ReadOnly(f.Type) {
		return fmt.Errorf("%w: %s", apperr.ErrReadOnly, f.Type)
	}
	if item.ID == "" || item.Board.ID == "" || fieldID == "" {
		return fmt.Errorf("%w: item, board and column ids are required", apperr.ErrMissingIdentifier)
	}

	payload, err := field.Encode(f.Type, value)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUpdate, err)
	}

	s.client.Notify(ctx, "Saving changes...", "info")

	var resp host.MutationResponse
	vars := map[string]any{
		"itemId":   idVar(item.ID),
		"boardId":  idVar(item.Board.ID),
		"columnId": fieldID,
		"value":    payload,
	}
	if err := s.client.Mutate(ctx, host.ChangeColumnValueMutation, vars, &resp); err != nil {
		s.client.Notify(ctx, "Error saving changes", "error")
		return fmt.Errorf("%w: %v", apperr.ErrUpdate, err)
	}

	s.client.Notify(ctx, "Changes saved successfully!", "success")

	// Resync. A failure here leaves the snapshot stale until the next
	// periodic refresh; the write itself already succeeded.
	if err := s.Refresh(ctx); err != nil {
		slog.Warn("resync after update failed",
			slog.String("field", fieldID),
			slog.String("error", err.Error()))
	}
	return nil
}

func view(f field.Field) FieldView {
	return FieldView{
		Field:    f,
		Display:  field.Decode(f.Type, f.Value, f.Text),
		Icon:     field.Icon(f.Type),
		ReadOnly: field.ReadOnly(f.Type),
	}
}

// idVar passes numeric host ids as ints, which the mutation contract
// requires, and leaves non-numeric demo ids alone.
func idVar(id string) any {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	return id
}
