// Package tavily provides the HTTP request wrappers for the Tavily API.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/scout-ai/scout/internal/config"
	"github.com/scout-ai/scout/internal/errors"
	"github.com/scout-ai/scout/internal/params"
)

// DefaultBaseURL is the canonical remote-service address.
const DefaultBaseURL = "https://api.tavily.com"

// ClientConfig configures the Tavily client.
type ClientConfig struct {
	Key config.APIKey

	// BaseURL overrides the canonical service address.
	BaseURL string

	// HTTPClient carries all transport policy (timeouts, pooling). When nil,
	// http.DefaultClient is used; this layer adds no timeout of its own.
	HTTPClient *http.Client
}

// Client issues single-shot requests to the Tavily API. Each call is one
// attempt; retry policy belongs to the caller. Safe for concurrent use.
type Client struct {
	key     config.APIKey
	baseURL string
	client  *http.Client
}

// NewClient creates a new Tavily client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		key:     cfg.Key,
		baseURL: baseURL,
		client:  client,
	}
}

// BaseURL returns the effective service address.
func (c *Client) BaseURL() string { return c.baseURL }

// Post sends the payload to {base}/{operation} and returns the parsed body
// verbatim. Non-200 responses become classified HTTP errors carrying the
// status code and the extracted detail message.
func (c *Client) Post(ctx context.Context, operation string, payload params.Payload) (map[string]any, error) {
	resp, err := c.send(ctx, http.MethodPost, operation, payload)
	if err != nil {
		return nil, err
	}
	return c.parse(resp)
}

// Get fetches {base}/{path} and returns the parsed body verbatim.
func (c *Client) Get(ctx context.Context, path string) (map[string]any, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.parse(resp)
}

// PostStream sends the payload and returns the response body as a lazy
// chunk stream instead of a parsed object. The stream's lifetime is bound
// to ctx: cancellation closes the underlying connection.
func (c *Client) PostStream(ctx context.Context, operation string, payload params.Payload) (*Stream, error) {
	resp, err := c.send(ctx, http.MethodPost, operation, payload)
	if err != nil {
		return nil, err
	}
	return newStream(resp.Body), nil
}

// send performs one request attempt and classifies non-200 responses.
// The returned response body is open.
func (c *Client) send(ctx context.Context, method, path string, payload params.Payload) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeRequestFailed, "failed to marshal request", errors.CategoryTemporary)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeRequestFailed, "failed to create request", errors.CategoryTemporary)
	}

	req.Header.Set("Authorization", "Bearer "+c.key.Reveal())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeRequestFailed, "request failed", errors.CategoryTemporary)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		return nil, errors.HTTP(resp.StatusCode, extractDetail(data))
	}

	return resp, nil
}

// parse reads and decodes a successful response body.
func (c *Client) parse(resp *http.Response) (map[string]any, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeBadResponse, "failed to read response", errors.CategoryTemporary)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrap(err, errors.CodeBadResponse, "failed to parse response", errors.CategoryTemporary)
	}

	return result, nil
}

// extractDetail pulls the error message out of an error response body.
// The service reports failures as {"detail": {"error": "..."}}; anything
// else degrades to an unknown-error placeholder.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if detail, ok := parsed.Detail.(map[string]any); ok {
			if msg, ok := detail["error"].(string); ok && msg != "" {
				return msg
			}
		}
	}
	return "Unknown error"
}
