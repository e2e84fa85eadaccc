package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// APIClient talks GraphQL-over-HTTP to the host platform.
type APIClient struct {
	endpoint string
	token    string
	version  string
	httpc    *http.Client
}

// NewAPIClient creates a host API client. A zero timeout falls back to
// ten seconds.
func NewAPIClient(endpoint, token, version string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &APIClient{
		endpoint: endpoint,
		token:    token,
		version:  version,
		httpc:    &http.Client{Timeout: timeout},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// Query implements Client.
func (c *APIClient) Query(ctx context.Context, query string, variables map[string]any, out any) error {
	return c.do(ctx, query, variables, out)
}

// Mutate implements Client.
func (c *APIClient) Mutate(ctx context.Context, mutation string, variables map[string]any, out any) error {
	return c.do(ctx, mutation, variables, out)
}

// Notify logs the notice; the panel's own notice center is the user
// facing surface when running against the plain API.
func (c *APIClient) Notify(_ context.Context, message, kind string) {
	slog.Info("host notice", slog.String("kind", kind), slog.String("message", message))
}

func (c *APIClient) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("host: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("host: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.token)
	if c.version != "" {
		req.Header.Set("API-Version", c.version)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("host: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("host: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("host: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("host: decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			msgs[i] = e.Message
		}
		return fmt.Errorf("host: api errors: %s", strings.Join(msgs, "; "))
	}

	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("host: decode data: %w", err)
		}
	}
	return nil
}
