package http

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe(t *testing.T) {
	t.Run("port in use", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer func() { _ = ln.Close() }()

		port := ln.Addr().(*net.TCPAddr).Port
		srv := newHTTPServer("127.0.0.1", port, nil)

		err = serve(context.Background(), srv, discardLogger(), "metrics server")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start metrics server")
	})

	t.Run("ephemeral port shuts down cleanly", func(t *testing.T) {
		server := NewMetricsServer("127.0.0.1", 0, discardLogger(), nil)

		errChan := make(chan error, 1)
		go func() {
			errChan <- server.Start(context.Background())
		}()

		time.Sleep(50 * time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		require.NoError(t, server.Shutdown(ctx))
		assert.NoError(t, <-errChan)
	})
}
