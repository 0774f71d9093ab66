//go:build windows

package pipe

import (
	"context"
	"time"
)

// WaitFor is a no-op on Windows: named pipes do not live on a watchable filesystem.
func WaitFor(ctx context.Context, address string, timeout time.Duration) error {
	return nil
}
