package oai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to an OpenAI-compatible Images API. Every request is a
// single attempt: the caller decides what to do on failure.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL and bearer token.
// A non-positive timeout falls back to 120s.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ImagesEndpoint returns the full generation endpoint URL.
func (c *Client) ImagesEndpoint() string {
	return c.baseURL + "/v1/images"
}

// CreateImages posts req to the images endpoint and decodes the
// response. Transport-level failures and non-success statuses are
// reported as *TransportError; a success status with an undecodable
// body is reported as *MalformedResponseError.
func (c *Client) CreateImages(ctx context.Context, req ImagesRequest) (ImagesResponse, error) {
	var zero ImagesResponse
	body, err := json.Marshal(req)
	if err != nil {
		return zero, fmt.Errorf("marshal request: %w", err)
	}
	endpoint := c.ImagesEndpoint()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return zero, &TransportError{Endpoint: endpoint, Err: err}
	}
	respBody, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close() // best-effort close
	if readErr != nil {
		return zero, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("read response body: %w", readErr)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, &TransportError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respBody), 2000)),
		}
	}
	var out ImagesResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return zero, &MalformedResponseError{
			Err: fmt.Errorf("decode response: %w; body: %s", err, truncate(string(respBody), 1000)),
		}
	}
	return out, nil
}

// DownloadImage performs one blocking GET for raw image bytes. Any
// network error or non-success status is a failure.
func (c *Client) DownloadImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image bytes: %w", err)
	}
	return data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
