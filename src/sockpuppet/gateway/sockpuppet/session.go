package sockpuppet

import (
	"context"
	stderr "errors"
	"fmt"
	"net"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/entity"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/errors"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/jsonrpcfx"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/pipe"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

type session struct {
	id        uuid.UUID
	address   entity.Address
	cfg       Config
	dial      pipe.Dialer
	newStream jsonrpcfx.StreamFactory
	logger    *zap.SugaredLogger
	stats     tally.Scope

	mu     sync.Mutex
	conn   jsonrpc2.Conn
	cancel context.CancelFunc
	closed bool
}

func (s *session) UUID() uuid.UUID {
	return s.id
}

func (s *session) Window() Window {
	return &window{session: s}
}

func (s *session) Workspace() Workspace {
	return &workspace{session: s}
}

// Connect dials the host and starts serving the connection. Connecting an already connected session is a no-op.
func (s *session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.ErrSessionClosed
	}
	if s.conn != nil {
		return nil
	}

	address := s.address.String()
	if err := pipe.WaitFor(ctx, address, s.cfg.WaitForPipe); err != nil {
		s.stats.Counter("connect_errors").Inc(1)
		return &errors.ConnectionError{Address: address, Err: err}
	}

	nc, err := s.dial(ctx, address, s.cfg.DialTimeout)
	if err != nil {
		s.stats.Counter("connect_errors").Inc(1)
		return &errors.ConnectionError{Address: address, Err: err}
	}

	connCtx, cancel := context.WithCancel(context.WithValue(context.Background(), entity.SessionContextKey, s.id))
	conn := jsonrpc2.NewConn(s.newStream(nc))
	conn.Go(connCtx, s.handleInbound)

	s.conn = conn
	s.cancel = cancel
	s.stats.Counter("sessions").Inc(1)
	s.logger.Infow("session connected", zap.Stringer("session", s.id), zap.String("address", address))
	return nil
}

// Close releases the connection and waits for its read loop to exit.
func (s *session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	conn, cancel := s.conn, s.cancel
	s.conn, s.cancel = nil, nil
	s.mu.Unlock()

	if conn == nil {
		return nil
	}
	defer cancel()

	err := conn.Close()
	<-conn.Done()
	s.logger.Infow("session closed", zap.Stringer("session", s.id))

	if err != nil && !stderr.Is(err, net.ErrClosed) {
		return fmt.Errorf("closing session %s: %w", s.id, err)
	}
	return nil
}

func (s *session) connection() (jsonrpc2.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, errors.ErrSessionNotConnected
	}
	return s.conn, nil
}

// call performs one blocking request. A connection lost mid-call fails the call instead of leaving it pending.
func (s *session) call(ctx context.Context, method string, params, result interface{}) (err error) {
	sessionID := s.contextSession(ctx)
	scope := s.stats.Tagged(map[string]string{"method": method})
	scope.Counter("calls").Inc(1)
	sw := scope.Timer("latency").Start()
	defer func() {
		sw.Stop()
		if err != nil {
			scope.Counter("errors").Inc(1)
			s.logger.Debugw("call failed", zap.Stringer("session", sessionID), zap.String("method", method), zap.Error(err))
		}
	}()

	conn, err := s.connection()
	if err != nil {
		return &errors.CallError{Method: method, Err: err}
	}

	if s.cfg.CallTimeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, s.cfg.CallTimeout)
		defer cancelTimeout()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-conn.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	s.logger.Debugw("calling host", zap.Stringer("session", sessionID), zap.String("method", method))
	if _, err := conn.Call(ctx, method, params, result); err != nil {
		select {
		case <-conn.Done():
			err = fmt.Errorf("%w: connection lost: %v", errors.ErrSessionNotConnected, connErr(conn))
		default:
		}
		return &errors.CallError{Method: method, Err: err}
	}
	return nil
}

// contextSession returns the session id carried by ctx, falling back to this session's own id.
func (s *session) contextSession(ctx context.Context) uuid.UUID {
	if id, err := mapper.ContextToSessionUUID(ctx); err == nil {
		return id
	}
	return s.id
}

func connErr(conn jsonrpc2.Conn) error {
	if err := conn.Err(); err != nil {
		return err
	}
	return stderr.New("closed by host")
}

// handleInbound answers requests initiated by the host. The automation serves none, so requests are rejected and notifications dropped.
func (s *session) handleInbound(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return err
	}

	if _, ok := req.(*jsonrpc2.Notification); ok {
		s.logger.Debugw("ignoring host notification", zap.Stringer("session", id), zap.String("method", req.Method()))
		return reply(ctx, nil, nil)
	}

	s.logger.Warnw("rejecting host request", zap.Stringer("session", id), zap.String("method", req.Method()))
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}
