package ethrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultEndpoint is used when a client is constructed with an empty
// endpoint string.
const DefaultEndpoint = "localhost:8545"

// Transport delivers one JSON-RPC request and returns the raw response body.
// The body is handed back unparsed; interpreting the result or error members
// is the caller's business.
type Transport interface {
	Send(ctx context.Context, req *Request) (json.RawMessage, error)
}

// HTTPTransport posts requests to a single endpoint over a pooled
// http.Client held for the transport's lifetime.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

// NewHTTPTransport builds a transport for the given endpoint. Endpoints
// without a scheme get "http://" prepended.
func NewHTTPTransport(endpoint string, client *http.Client) *HTTPTransport {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPTransport{endpoint: endpoint, client: client}
}

// Endpoint returns the resolved endpoint URL.
func (t *HTTPTransport) Endpoint() string { return t.endpoint }

func (t *HTTPTransport) Send(ctx context.Context, req *Request) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, t.endpoint)
	}
	return raw, nil
}

// Close releases the pooled connections.
func (t *HTTPTransport) Close() {
	t.client.CloseIdleConnections()
}
