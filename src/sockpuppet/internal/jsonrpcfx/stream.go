// Package jsonrpcfx provides the JSON-RPC stream framings spoken by the editor host.
package jsonrpcfx

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
)

const _configKeyFraming = "sockpuppet.framing"

// Module provides the StreamFactory for the configured framing.
var Module = fx.Provide(New)

// StreamFactory frames a raw connection to the host as a jsonrpc2.Stream.
type StreamFactory func(conn io.ReadWriteCloser) jsonrpc2.Stream

// Params are the dependencies of the stream factory.
type Params struct {
	fx.In

	Config config.Provider
}

// New returns the StreamFactory for the framing named in the `sockpuppet.framing` config field.
func New(p Params) (StreamFactory, error) {
	if p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	var framing string
	if err := p.Config.Get(_configKeyFraming).Populate(&framing); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyFraming, err)
	}
	if err := ValidateFraming(framing); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", _configKeyFraming, err)
	}

	if framing == FramingHeader {
		return jsonrpc2.NewStream, nil
	}
	return NewLineStream, nil
}

const (
	// FramingLine frames each message as a single line of JSON. This is what the sockpuppet host speaks.
	FramingLine = "line"
	// FramingHeader frames each message with a Content-Length header, as LSP does.
	FramingHeader = "header"
)

// ValidateFraming reports whether framing names a supported framing. An empty name selects FramingLine.
func ValidateFraming(framing string) error {
	switch framing {
	case FramingLine, FramingHeader, "":
		return nil
	default:
		return fmt.Errorf("unknown framing %q, expected %q or %q", framing, FramingLine, FramingHeader)
	}
}

// NewStream wraps conn in the named framing.
func NewStream(framing string, conn io.ReadWriteCloser) (jsonrpc2.Stream, error) {
	if err := ValidateFraming(framing); err != nil {
		return nil, err
	}
	if framing == FramingHeader {
		return jsonrpc2.NewStream(conn), nil
	}
	return NewLineStream(conn), nil
}

type lineStream struct {
	conn io.ReadWriteCloser
	in   *bufio.Reader

	writeMu sync.Mutex
}

// NewLineStream returns a jsonrpc2.Stream that reads and writes newline-delimited JSON messages on conn.
func NewLineStream(conn io.ReadWriteCloser) jsonrpc2.Stream {
	return &lineStream{
		conn: conn,
		in:   bufio.NewReader(conn),
	}
}

// Read implements jsonrpc2.Stream. Blank lines between messages are skipped.
func (s *lineStream) Read(ctx context.Context) (jsonrpc2.Message, int64, error) {
	var total int64
	for {
		select {
		case <-ctx.Done():
			return nil, total, ctx.Err()
		default:
		}

		line, err := s.in.ReadBytes('\n')
		total += int64(len(line))
		if err != nil && (!errors.Is(err, io.EOF) || len(bytes.TrimSpace(line)) == 0) {
			return nil, total, err
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		msg, decodeErr := jsonrpc2.DecodeMessage(line)
		if decodeErr != nil {
			return nil, total, fmt.Errorf("decoding message: %w", decodeErr)
		}
		return msg, total, nil
	}
}

// Write implements jsonrpc2.Stream.
func (s *lineStream) Write(ctx context.Context, msg jsonrpc2.Message) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return 0, fmt.Errorf("marshaling message: %w", err)
	}
	data = append(data, '\n')

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	n, err := s.conn.Write(data)
	return int64(n), err
}

// Close implements jsonrpc2.Stream.
func (s *lineStream) Close() error {
	return s.conn.Close()
}
