package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/fehu/internal/host"
	"github.com/starford/fehu/internal/index"
	"github.com/starford/fehu/internal/itemservice"
	"github.com/starford/fehu/internal/storage"
)

func testServer(t *testing.T) (*Server, storage.Provider) {
	t.Helper()

	db, err := index.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	svc := itemservice.NewService(host.NewDemoClient(), db, "demo-item-001")
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("initial refresh: %v", err)
	}

	store, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	srv := New(svc, store)
	return srv, store
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper; call the handlers.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "get_item":
		result, err = srv.getItem(ctx, req)
	case "get_field":
		result, err = srv.getField(ctx, req)
	case "update_field":
		result, err = srv.updateField(ctx, req)
	case "search_fields":
		result, err = srv.searchFields(ctx, req)
	case "list_categories":
		result, err = srv.listCategories(ctx, req)
	case "export_csv":
		result, err = srv.exportCSV(ctx, req)
	case "refresh_item":
		result, err = srv.refreshItem(ctx, req)
	case "get_field_types":
		result, err = srv.getFieldTypes(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestGetItemTool(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "get_item", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "demo-item-001") {
		t.Errorf("get_item result missing item id: %q", text)
	}
	if !strings.Contains(text, "groups") {
		t.Error("get_item result missing groups")
	}
}

func TestGetFieldTool(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "get_field", map[string]interface{}{"field_id": "status"})
	if r.IsError {
		t.Fatalf("get_field failed: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), "In Progress") {
		t.Errorf("unexpected field payload: %q", resultText(r))
	}

	r = callTool(t, srv, "get_field", map[string]interface{}{"field_id": "no-such"})
	if !r.IsError {
		t.Error("expected error for missing field")
	}
}

func TestUpdateFieldTool(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "update_field", map[string]interface{}{
		"field_id": "status",
		"value":    `{"label":"Done"}`,
	})
	if r.IsError {
		t.Fatalf("update_field failed: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), "Done") {
		t.Errorf("updated field payload = %q", resultText(r))
	}
}

func TestUpdateFieldToolRejectsReadOnly(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "update_field", map[string]interface{}{
		"field_id": "remaining",
		"value":    `"1"`,
	})
	if !r.IsError {
		t.Error("expected error for read-only field")
	}
}

func TestSearchFieldsTool(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "search_fields", map[string]interface{}{"query": "budget"})
	if r.IsError {
		t.Fatalf("search_fields failed: %s", resultText(r))
	}
	if !strings.Contains(strings.ToLower(resultText(r)), "budget") {
		t.Errorf("search result missing hit: %q", resultText(r))
	}
}

func TestExportCSVTool(t *testing.T) {
	srv, store := testServer(t)

	r := callTool(t, srv, "export_csv", map[string]interface{}{})
	if r.IsError {
		t.Fatalf("export_csv failed: %s", resultText(r))
	}
	if !strings.HasPrefix(resultText(r), "exported: ") {
		t.Errorf("export result = %q", resultText(r))
	}

	list, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 export on disk, got %d", len(list))
	}
}

func TestFieldTypeContract(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "get_field_types", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "update_field") || !strings.Contains(text, "Read-only types") {
		t.Error("contract text incomplete")
	}
}
