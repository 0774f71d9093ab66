// Package pipe dials the local inter-process endpoint exposed by the editor host.
package pipe

import (
	"context"
	"net"
	"time"
)

// Dialer opens a connection to a host endpoint.
type Dialer func(ctx context.Context, address string, timeout time.Duration) (net.Conn, error)

// Dial connects to address, which is a Unix socket path, or a named pipe on Windows.
// A zero timeout means the dial is bounded only by ctx.
func Dial(ctx context.Context, address string, timeout time.Duration) (net.Conn, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return dial(ctx, address)
}
