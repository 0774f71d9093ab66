//go:build !windows

package pipe

import (
	"context"
	"net"
)

func dial(ctx context.Context, address string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "unix", address)
}
