package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/authpage/internal/events"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

// Run serves HTTP on the configured address until ctx is canceled, then
// shuts down gracefully. It also runs the submission logger and evicts idle
// forms in the background.
func (s *Server) Run(ctx context.Context) error {
	if err := events.LogSubmissions(ctx, s.bus, slog.Default()); err != nil {
		return err
	}
	go s.sweep(ctx)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.Addr)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		_ = s.bus.Close()
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.E.Shutdown(shutdownCtx)
	if cerr := s.bus.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *Server) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.forms.Sweep(s.Cfg.IdleTimeout); n > 0 {
				slog.Debug("Evicted idle forms", "count", n)
			}
		}
	}
}
