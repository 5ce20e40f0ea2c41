package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run wires dependencies, starts the HTTP server and blocks until the context
// is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	if err := a.initDependencies(); err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("starting http server", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.log.Error("http server shutdown failed", "error", err)
		}

		if a.cache != nil {
			if err := a.cache.Close(); err != nil {
				a.log.Error("failed to close cache connection", "error", err)
			}
		}

		if a.db != nil {
			if err := a.db.Close(); err != nil {
				a.log.Error("failed to close database connection", "error", err)
			}
		}

		return nil
	})

	return g.Wait()
}
