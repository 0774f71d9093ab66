//go:build !windows

package pipe

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// socketPath returns a short socket path, since Unix socket paths are limited to ~104 bytes.
func socketPath(t *testing.T) string {
	dir, err := os.MkdirTemp("", "sp")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "host.sock")
}

func TestDial(t *testing.T) {
	ctx := context.Background()

	t.Run("listening socket", func(t *testing.T) {
		address := socketPath(t)
		ln, err := net.Listen("unix", address)
		require.NoError(t, err)
		defer ln.Close()

		accepted := make(chan struct{})
		go func() {
			defer close(accepted)
			c, err := ln.Accept()
			if err == nil {
				c.Close()
			}
		}()

		conn, err := Dial(ctx, address, time.Second)
		require.NoError(t, err)
		assert.NoError(t, conn.Close())
		<-accepted
	})

	t.Run("nothing listening", func(t *testing.T) {
		conn, err := Dial(ctx, socketPath(t), time.Second)
		assert.Error(t, err)
		assert.Nil(t, conn)
	})

	t.Run("no timeout", func(t *testing.T) {
		conn, err := Dial(ctx, socketPath(t), 0)
		assert.Error(t, err)
		assert.Nil(t, conn)
	})
}

func TestWaitFor(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		assert.NoError(t, WaitFor(ctx, socketPath(t), 0))
	})

	t.Run("already exists", func(t *testing.T) {
		address := socketPath(t)
		require.NoError(t, os.WriteFile(address, nil, 0o600))
		assert.NoError(t, WaitFor(ctx, address, time.Second))
	})

	t.Run("appears later", func(t *testing.T) {
		address := socketPath(t)
		created := make(chan struct{})
		go func() {
			defer close(created)
			time.Sleep(50 * time.Millisecond)
			ln, err := net.Listen("unix", address)
			if err == nil {
				ln.Close()
			}
		}()

		assert.NoError(t, WaitFor(ctx, address, 5*time.Second))
		<-created
	})

	t.Run("times out", func(t *testing.T) {
		err := WaitFor(ctx, socketPath(t), 20*time.Millisecond)
		assert.ErrorContains(t, err, "did not appear")
	})

	t.Run("missing directory", func(t *testing.T) {
		err := WaitFor(ctx, filepath.Join(socketPath(t), "nested", "host.sock"), time.Second)
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := WaitFor(cctx, socketPath(t), time.Second)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
