package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(host, fmt.Sprint(port)),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// serve binds srv.Addr and serves until Shutdown. The bound address is logged, which
// matters when port 0 is configured.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger, name string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	logger.Info("starting "+name, slog.String("addr", ln.Addr().String()))

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s stopped: %w", name, err)
	}
	return nil
}

func shutdown(ctx context.Context, srv *http.Server, logger *slog.Logger, name string) error {
	logger.Info("shutting down " + name)
	return srv.Shutdown(ctx)
}
