package ethrpc

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrency bounds the in-flight requests of an AsyncClient
// unless WithMaxConcurrency says otherwise.
const DefaultMaxConcurrency = 100

// AsyncClient issues many calls concurrently against one endpoint while a
// weighted semaphore keeps the number of in-flight requests bounded. Only
// the transport send is gated; argument shaping stays synchronous, so an
// ArgumentError always surfaces before any network interaction.
type AsyncClient struct {
	client *Client
	sem    *semaphore.Weighted
}

// NewAsyncClient returns an async client for the given endpoint.
func NewAsyncClient(endpoint string, opts ...Option) *AsyncClient {
	o := applyOptions(opts)
	if o.maxConcurrency <= 0 {
		o.maxConcurrency = DefaultMaxConcurrency
	}
	return &AsyncClient{
		client: &Client{transport: buildTransport(endpoint, o), registry: methods},
		sem:    semaphore.NewWeighted(o.maxConcurrency),
	}
}

// Invoke behaves like Client.Invoke but waits for a concurrency slot before
// touching the transport.
func (c *AsyncClient) Invoke(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	req, err := c.client.prepare(method, args)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, req)
}

func (c *AsyncClient) send(ctx context.Context, req *Request) (json.RawMessage, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)
	return c.client.transport.Send(ctx, req)
}

// Pending is the future returned by Go.
type Pending struct {
	done chan struct{}
	raw  json.RawMessage
	err  error
}

// Wait blocks until the call resolves.
func (p *Pending) Wait() (json.RawMessage, error) {
	<-p.done
	return p.raw, p.err
}

// Done returns a channel closed when the call has resolved.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Go issues the call in the background. Arguments are shaped before the
// goroutine is scheduled, so a Pending carrying an ArgumentError is already
// resolved when Go returns.
func (c *AsyncClient) Go(ctx context.Context, method string, args ...any) *Pending {
	p := &Pending{done: make(chan struct{})}
	req, err := c.client.prepare(method, args)
	if err != nil {
		p.err = err
		close(p.done)
		return p
	}
	go func() {
		p.raw, p.err = c.send(ctx, req)
		close(p.done)
	}()
	return p
}

// A Call names one method invocation for InvokeAll.
type Call struct {
	Method string
	Args   []any
}

// InvokeAll runs every call concurrently under the concurrency limit and
// returns the responses in call order. The first failure cancels the rest
// and is returned, wrapped with the failing method's name.
func (c *AsyncClient) InvokeAll(ctx context.Context, calls []Call) ([]json.RawMessage, error) {
	results := make([]json.RawMessage, len(calls))
	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			raw, err := c.Invoke(gctx, call.Method, call.Args...)
			if err != nil {
				return fmt.Errorf("%s: %w", call.Method, err)
			}
			results[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Registry exposes the method registry.
func (c *AsyncClient) Registry() *Registry { return c.client.registry }

// Close releases the transport's pooled connections.
func (c *AsyncClient) Close() { c.client.Close() }
