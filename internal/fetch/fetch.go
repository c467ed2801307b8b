// Package fetch downloads an OpenAPI specification document from a vendor
// endpoint and saves it to disk. One GET per invocation, no retries.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DefaultURL is the Gong API documentation specs endpoint.
const DefaultURL = "https://gong.app.gong.io/ajax/settings/api/documentation/specs?version="

// DefaultOutput follows the [platform]-openapi.json naming convention the
// inspector's spec-file discovery relies on.
const DefaultOutput = "gong-openapi.json"

type Client struct {
	HTTPClient *http.Client
	URL        string
}

func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		HTTPClient: http.DefaultClient,
		URL:        url,
	}
}

// Fetch downloads the specification and verifies the body is a JSON object.
func (c *Client) Fetch(ctx context.Context) (map[string]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading API spec: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("downloading API spec: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var spec map[string]json.RawMessage
	if err := json.Unmarshal(body, &spec); err != nil {
		return nil, fmt.Errorf("parsing API spec: %w", err)
	}

	return spec, nil
}

// Save writes the specification to path, pretty-printed with 2-space indent.
func Save(spec map[string]json.RawMessage, path string) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding API spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("saving API spec: %w", err)
	}
	return nil
}
