package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// CleanupFunc releases a resource after the listener has drained, such as
// the record store session.
type CleanupFunc func(ctx context.Context) error

// StartHTTPServer runs the server until SIGINT or SIGTERM, then shuts down
// gracefully.
func StartHTTPServer(
	handler http.Handler,
	cfg ServerConfig,
	auditLogger AuditLogger,
	cleanups ...CleanupFunc,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return RunHTTPServer(ctx, handler, cfg, auditLogger, cleanups...)
}

// RunHTTPServer binds the port, serves until ctx is done and then shuts
// down within cfg.ShutdownTimeout. A bind failure is returned before any
// request is served.
func RunHTTPServer(
	ctx context.Context,
	handler http.Handler,
	cfg ServerConfig,
	auditLogger AuditLogger,
	cleanups ...CleanupFunc,
) error {
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info("HTTP server running", zap.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	reason := "context done"
	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		if cause := context.Cause(ctx); cause != nil {
			reason = cause.Error()
		}
	}

	zap.L().Info("Shutdown signal received", zap.String("reason", reason))

	// Audit log BEFORE shutdown
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta: map[string]any{
			"reason": reason,
		},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
	} else {
		zap.L().Info("Server exited gracefully")
	}

	for _, cleanup := range cleanups {
		if err := cleanup(shutdownCtx); err != nil {
			zap.L().Error("cleanup failed", zap.Error(err))
		}
	}

	return nil
}
