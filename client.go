package ethrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Client is the blocking variant: each call shapes its arguments, sends one
// request and waits for the response body. A client owns its transport; do
// not share one transport between clients.
type Client struct {
	transport Transport
	registry  *Registry
}

type clientOptions struct {
	httpClient     *http.Client
	transport      Transport
	timeout        time.Duration
	maxConcurrency int64
}

// Option configures a Client or AsyncClient.
type Option func(*clientOptions)

// WithHTTPClient supplies the http.Client used by the HTTP transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the HTTP transport.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithTransport replaces the HTTP transport entirely. The endpoint argument
// of the constructor is ignored when this option is given.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) { o.transport = t }
}

// WithMaxConcurrency bounds the number of in-flight requests of an
// AsyncClient. It has no effect on the blocking Client.
func WithMaxConcurrency(n int) Option {
	return func(o *clientOptions) { o.maxConcurrency = int64(n) }
}

func applyOptions(opts []Option) clientOptions {
	o := clientOptions{maxConcurrency: DefaultMaxConcurrency}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func buildTransport(endpoint string, o clientOptions) Transport {
	if o.transport != nil {
		return o.transport
	}
	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: o.timeout}
	}
	return NewHTTPTransport(endpoint, hc)
}

// NewClient returns a blocking client for the given endpoint. An empty
// endpoint means DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	o := applyOptions(opts)
	return &Client{
		transport: buildTransport(endpoint, o),
		registry:  methods,
	}
}

// Invoke dispatches a registered method, addressed by either its client name
// (eth_get_balance) or its wire name (eth_getBalance). Argument errors
// surface before anything is sent; transport failures come back unchanged;
// the response body is returned unparsed.
func (c *Client) Invoke(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	req, err := c.prepare(method, args)
	if err != nil {
		return nil, err
	}
	return c.transport.Send(ctx, req)
}

// Call sends method and params verbatim, skipping the shapers. Registered
// names are still translated to their wire name and fixed id; unknown
// methods go out as given with id 1.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	id := 1
	if d, ok := c.registry.Lookup(method); ok {
		method = d.WireName
		id = d.ID
	}
	return c.transport.Send(ctx, newRequest(method, params, id))
}

func (c *Client) prepare(method string, args []any) (*Request, error) {
	d, ok := c.registry.Lookup(method)
	if !ok {
		return nil, argErrorf(method, "unknown RPC method")
	}
	params, err := d.shape(c.registry, arglist{method: d.ClientName, vals: args})
	if err != nil {
		return nil, err
	}
	return newRequest(d.WireName, params, d.ID), nil
}

// Registry exposes the method registry, mainly for listing.
func (c *Client) Registry() *Registry { return c.registry }

// Close releases the transport's pooled connections.
func (c *Client) Close() {
	if t, ok := c.transport.(interface{ Close() }); ok {
		t.Close()
	}
}
