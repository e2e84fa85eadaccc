package host

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/starford/fehu/internal/field"
)

// DemoClient serves a local demo item when no host connection is
// configured. Mutations apply to the in-memory item so the edit flow
// behaves like the real thing, including the text/value consistency a
// re-fetch must observe.
type DemoClient struct {
	mu   sync.RWMutex
	item ItemPayload
}

// NewDemoClient creates a demo client with the built-in fixture item.
func NewDemoClient() *DemoClient {
	return &DemoClient{item: DemoItem()}
}

// LoadDataset replaces the demo item with one read from a JSON file in
// the ItemPayload wire shape.
func (c *DemoClient) LoadDataset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("demo: read dataset: %w", err)
	}
	var item ItemPayload
	if err := json.Unmarshal(data, &item); err != nil {
		return fmt.Errorf("demo: parse dataset: %w", err)
	}
	if item.ID == "" || item.Name == "" {
		return fmt.Errorf("demo: dataset missing item id or name")
	}
	c.mu.Lock()
	c.item = item
	c.mu.Unlock()
	return nil
}

// Query implements Client. The demo host serves its single item for
// any item query.
func (c *DemoClient) Query(_ context.Context, _ string, _ map[string]any, out any) error {
	c.mu.RLock()
	resp := ItemsResponse{Items: []ItemPayload{c.item}}
	c.mu.RUnlock()
	return roundTrip(resp, out)
}

// Mutate implements Client. The write payload is stored as the new
// raw value and the plain text is re-derived from it, so a subsequent
// fetch reflects the edit in both representations.
func (c *DemoClient) Mutate(_ context.Context, _ string, variables map[string]any, out any) error {
	columnID, _ := variables["columnId"].(string)
	payload, _ := variables["value"].(string)
	if columnID == "" {
		return fmt.Errorf("demo: columnId is required")
	}

	c.mu.Lock()
	found := false
	for i := range c.item.ColumnValues {
		cv := &c.item.ColumnValues[i]
		if cv.ID != columnID {
			continue
		}
		cv.Value = payload
		cv.Text = field.Decode(field.Type(cv.Type), payload, cv.Text).Text
		found = true
		break
	}
	itemID := c.item.ID
	c.mu.Unlock()

	if !found {
		return fmt.Errorf("demo: unknown column %q", columnID)
	}

	var resp MutationResponse
	resp.ChangeColumnValue.ID = itemID
	return roundTrip(resp, out)
}

// Notify implements Client.
func (c *DemoClient) Notify(_ context.Context, message, kind string) {
	slog.Info("demo notice", slog.String("kind", kind), slog.String("message", message))
}

// roundTrip copies v into out through JSON, the same decoding path the
// API client uses.
func roundTrip(v, out any) error {
	if out == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("demo: marshal response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("demo: decode response: %w", err)
	}
	return nil
}
