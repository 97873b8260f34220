package ethrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// gateTransport blocks every send until released, signaling each entry, so
// tests can observe exactly how many requests are in flight.
type gateTransport struct {
	entered chan string
	release chan struct{}
}

func (t *gateTransport) Send(_ context.Context, req *Request) (json.RawMessage, error) {
	t.entered <- req.Method
	<-t.release
	return json.RawMessage(`{}`), nil
}

func TestAsyncClientConcurrencyBound(t *testing.T) {
	const limit = 3
	const total = limit + 2

	tr := &gateTransport{
		entered: make(chan string, total),
		release: make(chan struct{}),
	}
	client := NewAsyncClient("", WithTransport(tr), WithMaxConcurrency(limit))
	defer client.Close()

	pending := make([]*Pending, total)
	for i := range pending {
		pending[i] = client.Go(context.Background(), "eth_block_number")
	}

	// Exactly limit calls may reach the transport.
	for i := 0; i < limit; i++ {
		select {
		case <-tr.entered:
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d of %d calls reached the transport", i, limit)
		}
	}
	select {
	case <-tr.entered:
		t.Fatal("more than limit calls in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(tr.release)
	for i, p := range pending {
		if _, err := p.Wait(); err != nil {
			t.Errorf("call %d failed: %v", i, err)
		}
	}
}

// echoTransport answers each request with its own method name, so result
// ordering can be checked.
type echoTransport struct {
	mu   sync.Mutex
	fail string
}

func (t *echoTransport) Send(_ context.Context, req *Request) (json.RawMessage, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if req.Method == t.fail {
		return nil, fmt.Errorf("connection refused")
	}
	return json.RawMessage(fmt.Sprintf(`{"result":%q}`, req.Method)), nil
}

func TestInvokeAllPreservesOrder(t *testing.T) {
	client := NewAsyncClient("", WithTransport(&echoTransport{}))
	defer client.Close()

	calls := []Call{
		{Method: "eth_block_number"},
		{Method: "net_version"},
		{Method: "eth_gas_price"},
	}
	results, err := client.InvokeAll(context.Background(), calls)
	if err != nil {
		t.Fatalf("InvokeAll error: %v", err)
	}
	wantWire := []string{"eth_blockNumber", "net_version", "eth_gasPrice"}
	for i, raw := range results {
		if !strings.Contains(string(raw), wantWire[i]) {
			t.Errorf("result %d = %s, want method %s", i, raw, wantWire[i])
		}
	}
}

func TestInvokeAllFirstFailure(t *testing.T) {
	client := NewAsyncClient("", WithTransport(&echoTransport{fail: "net_version"}))
	defer client.Close()

	calls := []Call{
		{Method: "eth_block_number"},
		{Method: "net_version"},
		{Method: "eth_gas_price"},
	}
	results, err := client.InvokeAll(context.Background(), calls)
	if err == nil {
		t.Fatal("InvokeAll should fail")
	}
	if results != nil {
		t.Error("failed InvokeAll should not return partial results")
	}
	if !strings.Contains(err.Error(), "net_version") {
		t.Errorf("error %q does not name the failing call", err)
	}
}

func TestGoResolvesArgumentErrorsImmediately(t *testing.T) {
	tr := &captureTransport{}
	client := NewAsyncClient("", WithTransport(tr))
	defer client.Close()

	p := client.Go(context.Background(), "eth_call", "0xfrom")
	select {
	case <-p.Done():
	default:
		t.Fatal("argument error should resolve the future before Go returns")
	}
	_, err := p.Wait()
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error type = %T, want *ArgumentError", err)
	}
	if tr.last != nil {
		t.Error("transport was touched despite the argument error")
	}
}

func TestAsyncInvokeShapesLikeBlockingClient(t *testing.T) {
	tr := &captureTransport{}
	client := NewAsyncClient("", WithTransport(tr))
	defer client.Close()

	if _, err := client.Invoke(context.Background(), "eth_get_balance", "0xabc"); err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if tr.last.Method != "eth_getBalance" {
		t.Errorf("method = %s", tr.last.Method)
	}
	if got := paramsJSON(t, tr.last); got != `["0xabc","latest"]` {
		t.Errorf("params = %s", got)
	}
}
