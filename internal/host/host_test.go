package host

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAPIClientQuery(t *testing.T) {
	var gotAuth, gotVersion string
	var gotReq graphqlRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("API-Version")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"items":[{"id":"42","name":"Test Item","board":{"id":"7","name":"Board"},"column_values":[]}]}}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, "secret-token", "2023-10", 0)

	var resp ItemsResponse
	vars := map[string]any{"itemId": []any{42}}
	if err := c.Query(context.Background(), ItemQuery, vars, &resp); err != nil {
		t.Fatalf("Query: %v", err)
	}

	if gotAuth != "secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotVersion != "2023-10" {
		t.Errorf("API-Version = %q", gotVersion)
	}
	if !strings.Contains(gotReq.Query, "column_values") {
		t.Error("query body missing column_values selection")
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "42" {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
}

func TestAPIClientGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"invalid item id"}]}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, "t", "", 0)
	err := c.Query(context.Background(), ItemQuery, nil, &ItemsResponse{})
	if err == nil || !strings.Contains(err.Error(), "invalid item id") {
		t.Fatalf("expected graphql error, got %v", err)
	}
}

func TestAPIClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, "t", "", 0)
	err := c.Query(context.Background(), ItemQuery, nil, &ItemsResponse{})
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestDemoClientQueryServesFixture(t *testing.T) {
	c := NewDemoClient()

	var resp ItemsResponse
	if err := c.Query(context.Background(), ItemQuery, nil, &resp); err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
	if resp.Items[0].ID != "demo-item-001" {
		t.Errorf("id = %q", resp.Items[0].ID)
	}
	if len(resp.Items[0].ColumnValues) == 0 {
		t.Error("fixture has no column values")
	}
}

func TestDemoClientMutateKeepsTextConsistent(t *testing.T) {
	c := NewDemoClient()

	vars := map[string]any{
		"columnId": "status",
		"value":    `{"label":"Done","color":"#00c875"}`,
	}
	var resp MutationResponse
	if err := c.Mutate(context.Background(), ChangeColumnValueMutation, vars, &resp); err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if resp.ChangeColumnValue.ID != "demo-item-001" {
		t.Errorf("mutation response id = %q", resp.ChangeColumnValue.ID)
	}

	// The next fetch must see the new value and a matching text.
	var items ItemsResponse
	if err := c.Query(context.Background(), ItemQuery, nil, &items); err != nil {
		t.Fatalf("Query: %v", err)
	}
	for _, cv := range items.Items[0].ColumnValues {
		if cv.ID != "status" {
			continue
		}
		if !strings.Contains(cv.Value, "Done") {
			t.Errorf("value = %q", cv.Value)
		}
		if cv.Text != "Done" {
			t.Errorf("text = %q, want Done", cv.Text)
		}
		return
	}
	t.Fatal("status column not found")
}

func TestDemoClientMutateUnknownColumn(t *testing.T) {
	c := NewDemoClient()
	err := c.Mutate(context.Background(), ChangeColumnValueMutation, map[string]any{
		"columnId": "ghost",
		"value":    `"x"`,
	}, nil)
	if err == nil {
		t.Fatal("expected error for unknown column")
	}
}

func TestLoadDataset(t *testing.T) {
	c := NewDemoClient()

	path := filepath.Join(t.TempDir(), "dataset.json")
	data := `{
		"id": "item-9",
		"name": "Loaded",
		"board": {"id": "b-9", "name": "Loaded Board"},
		"column_values": [
			{"id": "t", "text": "hi", "type": "text", "column": {"title": "T"}}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := c.LoadDataset(path); err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	var resp ItemsResponse
	if err := c.Query(context.Background(), ItemQuery, nil, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Items[0].ID != "item-9" || resp.Items[0].Name != "Loaded" {
		t.Errorf("unexpected item: %+v", resp.Items[0])
	}
}

func TestLoadDatasetRejectsIncomplete(t *testing.T) {
	c := NewDemoClient()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"name":"no id"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.LoadDataset(path); err == nil {
		t.Fatal("expected error for dataset without id")
	}
}
