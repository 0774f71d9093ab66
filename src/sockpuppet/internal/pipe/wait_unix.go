//go:build !windows

package pipe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

var errWatcherClosed = errors.New("watcher closed")

// WaitFor blocks until the socket at address exists, the timeout elapses, or ctx is done.
// A non-positive timeout disables waiting. It never dials.
func WaitFor(ctx context.Context, address string, timeout time.Duration) error {
	if timeout <= 0 || exists(address) {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(address)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %q: %w", dir, err)
	}

	// The socket may have been created between the first check and Add.
	if exists(address) {
		return nil
	}

	target := filepath.Clean(address)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return errWatcherClosed
			}
			if event.Has(fsnotify.Create) && filepath.Clean(event.Name) == target {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return errWatcherClosed
			}
			return fmt.Errorf("watching %q: %w", dir, err)
		case <-timer.C:
			return fmt.Errorf("%s did not appear within %v", address, timeout)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func exists(address string) bool {
	_, err := os.Stat(address)
	return err == nil
}
