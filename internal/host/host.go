// Package host connects the panel to the work-management platform API.
// The connection is modeled as an injected Client so the adapter and
// codec stay testable without a live host.
package host

import "context"

// Client is the capability surface the panel needs from the host.
type Client interface {
	// Query runs a read query and decodes the response data into out.
	Query(ctx context.Context, query string, variables map[string]any, out any) error
	// Mutate runs a write mutation and decodes the response data into out.
	Mutate(ctx context.Context, mutation string, variables map[string]any, out any) error
	// Notify shows a transient host-side notice. Best effort.
	Notify(ctx context.Context, message, kind string)
}

// ItemQuery fetches one item with every column value and the column
// metadata needed for status enrichment.
const ItemQuery = `query ($itemId: [Int]) {
  items (ids: $itemId) {
    id
    name
    board {
      id
      name
    }
    column_values {
      id
      text
      value
      type
      column {
        title
        settings_str
      }
    }
  }
}`

// ChangeColumnValueMutation writes one column value.
const ChangeColumnValueMutation = `mutation ($itemId: Int!, $boardId: Int!, $columnId: String!, $value: JSON!) {
  change_column_value (item_id: $itemId, board_id: $boardId, column_id: $columnId, value: $value) {
    id
  }
}`

// ItemsResponse is the data envelope of ItemQuery.
type ItemsResponse struct {
	Items []ItemPayload `json:"items"`
}

// ItemPayload is the wire shape of one item.
type ItemPayload struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Board        BoardPayload         `json:"board"`
	ColumnValues []ColumnValuePayload `json:"column_values"`
}

// BoardPayload is the wire shape of the owning board reference.
type BoardPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ColumnValuePayload is the wire shape of one column value. Category
// is only populated by the demo dataset; the real host never sends it.
type ColumnValuePayload struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Value    string        `json:"value,omitempty"`
	Type     string        `json:"type"`
	Column   ColumnPayload `json:"column"`
	Category string        `json:"category,omitempty"`
}

// ColumnPayload carries column metadata, including the raw settings
// JSON used to enrich status values with label colors.
type ColumnPayload struct {
	Title       string `json:"title"`
	SettingsStr string `json:"settings_str,omitempty"`
}

// MutationResponse is the data envelope of ChangeColumnValueMutation.
type MutationResponse struct {
	ChangeColumnValue struct {
		ID string `json:"id"`
	} `json:"change_column_value"`
}
