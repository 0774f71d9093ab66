// Package fakehost runs an in-process editor host for tests. It serves JSON-RPC on a real Unix socket and records every call it receives.
package fakehost

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
)

// HandlerFunc produces the result, or error, for one call.
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// Call is a request or notification received by the host.
type Call struct {
	Method string
	Params json.RawMessage
}

// Host is a fake editor host.
type Host struct {
	Address string

	framing  string
	ln       net.Listener
	handlers map[string]HandlerFunc

	mu     sync.Mutex
	calls  []Call
	conns  []jsonrpc2.Conn
	closed bool

	wg sync.WaitGroup
}

// Start listens on a fresh socket and serves until the test ends.
// Methods without a handler reply with null.
func Start(t testing.TB, framing string, handlers map[string]HandlerFunc) *Host {
	t.Helper()

	dir, err := os.MkdirTemp("", "sp")
	if err != nil {
		t.Fatalf("creating socket dir: %v", err)
	}
	address := filepath.Join(dir, "host.sock")

	ln, err := net.Listen("unix", address)
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("listening on %s: %v", address, err)
	}

	h := &Host{
		Address:  address,
		framing:  framing,
		ln:       ln,
		handlers: handlers,
	}

	h.wg.Add(1)
	go h.serve()

	t.Cleanup(func() {
		h.Close()
		os.RemoveAll(dir)
	})
	return h
}

// Calls returns the calls received so far, in arrival order.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Call(nil), h.calls...)
}

// Methods returns the method names received so far, in arrival order.
func (h *Host) Methods() []string {
	calls := h.Calls()
	methods := make([]string, 0, len(calls))
	for _, c := range calls {
		methods = append(methods, c.Method)
	}
	return methods
}

// Close stops accepting connections, closes the open ones, and waits for them to drain.
func (h *Host) Close() {
	h.ln.Close()

	h.mu.Lock()
	conns := h.conns
	h.conns = nil
	h.closed = true
	h.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
	h.wg.Wait()
}

func (h *Host) serve() {
	defer h.wg.Done()

	for {
		nc, err := h.ln.Accept()
		if err != nil {
			return
		}

		stream, err := jsonrpcfx.NewStream(h.framing, nc)
		if err != nil {
			nc.Close()
			continue
		}
		conn := jsonrpc2.NewConn(stream)

		h.wg.Add(1)
		conn.Go(context.Background(), h.handle)
		go func() {
			defer h.wg.Done()
			<-conn.Done()
		}()

		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			conn.Close()
			continue
		}
		h.conns = append(h.conns, conn)
		h.mu.Unlock()
	}
}

func (h *Host) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	h.mu.Lock()
	h.calls = append(h.calls, Call{Method: req.Method(), Params: req.Params()})
	h.mu.Unlock()

	handler, ok := h.handlers[req.Method()]
	if !ok {
		return reply(ctx, nil, nil)
	}
	result, err := handler(req.Params())
	return reply(ctx, result, err)
}

// Fixed returns a handler that always replies with result.
func Fixed(result interface{}) HandlerFunc {
	return func(json.RawMessage) (interface{}, error) {
		return result, nil
	}
}

// Fail returns a handler that always replies with a JSON-RPC internal error carrying msg.
func Fail(msg string) HandlerFunc {
	return func(json.RawMessage) (interface{}, error) {
		return nil, jsonrpc2.NewError(jsonrpc2.InternalError, msg)
	}
}
