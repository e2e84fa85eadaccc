// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Fehu panel tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/fehu/internal/export"
	"github.com/starford/fehu/internal/itemservice"
	"github.com/starford/fehu/internal/storage"
)

// Server wraps the MCP server with Fehu tools.
type Server struct {
	mcp   *server.MCPServer
	svc   *itemservice.Service
	store storage.Provider
}

// New creates a new MCP server with all Fehu tools registered.
func New(svc *itemservice.Service, store storage.Provider) *Server {
	s := &Server{svc: svc, store: store}

	s.mcp = server.NewMCPServer(
		"Fehu",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_item",
		mcp.WithDescription("Get the current board item with all fields decoded and grouped by category."),
	), s.getItem)

	s.mcp.AddTool(mcp.NewTool("get_field",
		mcp.WithDescription("Get a single field of the item, decoded for display."),
		mcp.WithString("field_id", mcp.Required(), mcp.Description("Column id of the field (e.g. status, budget)")),
	), s.getField)

	s.mcp.AddTool(mcp.NewTool("update_field",
		mcp.WithDescription("Write a new value to a field and resync the item from the host. "+
			"The value is a JSON document whose shape depends on the field type. Read the "+
			"contract first via the get_field_types tool or the fehu://field-types resource. "+
			"Read-only field types (formula, mirror, file, ...) are rejected."),
		mcp.WithString("field_id", mcp.Required(), mcp.Description("Column id of the field to update")),
		mcp.WithString("value", mcp.Required(), mcp.Description("JSON value payload following the field type contract")),
	), s.updateField)

	s.mcp.AddTool(mcp.NewTool("search_fields",
		mcp.WithDescription("Filter the item's fields by a case-insensitive substring of their title or value text."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchFields)

	s.mcp.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List the item's field categories with field counts."),
	), s.listCategories)

	s.mcp.AddTool(mcp.NewTool("export_csv",
		mcp.WithDescription("Export the item to a CSV file in the exports directory and return its path."),
	), s.exportCSV)

	s.mcp.AddTool(mcp.NewTool("refresh_item",
		mcp.WithDescription("Re-fetch the item from the host and replace the snapshot."),
	), s.refreshItem)

	s.mcp.AddTool(mcp.NewTool("get_field_types",
		mcp.WithDescription("Returns the canonical field type contract: which types are writable "+
			"and the JSON payload shape each writable type expects."),
	), s.getFieldTypes)

	// Resource: field type contract.
	s.mcp.AddResource(
		mcp.NewResource("fehu://field-types", "Field Type Contract",
			mcp.WithResourceDescription("Canonical field type table with write payload shapes."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readFieldTypesResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) getItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	item, err := s.svc.Item(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	groups, err := s.svc.Groups(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(map[string]any{
		"id":     item.ID,
		"name":   item.Name,
		"board":  item.Board,
		"groups": groups,
	}, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fieldID, err := req.RequireString("field_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, err := s.svc.Field(ctx, fieldID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(f, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) updateField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fieldID, err := req.RequireString("field_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		// Plain strings are accepted as-is for text-like fields.
		value = raw
	}

	if err := s.svc.Update(ctx, fieldID, value); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, err := s.svc.Field(ctx, fieldID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(f, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchFields(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields, err := s.svc.Search(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(fields, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cats, err := s.svc.Categories(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var lines []string
	for _, c := range cats {
		lines = append(lines, fmt.Sprintf("%s (%d)", c.Name, c.Count))
	}
	if len(lines) == 0 {
		return mcp.NewToolResultText("no categories"), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) exportCSV(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	item, err := s.svc.Item(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	groups, err := s.svc.Groups(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := export.CSV(groups)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := s.store.Write(export.Filename(item.Name, "csv"), data)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("exported: %s", path)), nil
}

func (s *Server) refreshItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.svc.Refresh(ctx); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("refreshed, checksum %s", s.svc.Checksum())), nil
}

func (s *Server) getFieldTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(FieldTypeContract), nil
}

func (s *Server) readFieldTypesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "fehu://field-types",
			MIMEType: "text/markdown",
			Text:     FieldTypeContract,
		},
	}, nil
}
