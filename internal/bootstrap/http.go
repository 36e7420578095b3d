package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/opsarc/jobdeck/config"
	httpx "github.com/opsarc/jobdeck/internal/http"
)

// BuildHTTPServer constructs the HTTP server over the wired services.
func BuildHTTPServer(cfg *config.AppConfig, services *ServiceContainer, logger *slog.Logger) *http.Server {
	handler := httpx.NewRouter(httpx.RouterServices{
		Scheduler: services.Scheduler,
		Store:     services.Store,
		Logger:    logger,
	})

	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}
}

// Run serves HTTP until ctx is cancelled, then shuts the server down and
// drains the scheduler. In-flight requests and job executions get the
// configured timeouts to finish; deferred jobs whose timers have not fired
// stay scheduled and are lost with the process-lifetime store.
func Run(ctx context.Context, cfg *config.AppConfig, services *ServiceContainer, logger *slog.Logger) error {
	server := BuildHTTPServer(cfg, services, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}

		drainCtx, cancelDrain := context.WithTimeout(context.Background(), cfg.Scheduler.DrainTimeout)
		defer cancelDrain()
		if err := services.Scheduler.Drain(drainCtx); err != nil {
			logger.Error("scheduler drain failed", "error", err)
		}
		return nil
	})

	return g.Wait()
}
