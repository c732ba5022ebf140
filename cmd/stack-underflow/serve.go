package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joestump/stack-underflow/internal/api"
	"github.com/joestump/stack-underflow/internal/build"
	"github.com/joestump/stack-underflow/internal/config"
	"github.com/joestump/stack-underflow/internal/logging"
	"github.com/joestump/stack-underflow/internal/metrics"
	"github.com/joestump/stack-underflow/internal/store"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := logging.New(logging.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
			})
			slog.SetDefault(logger)

			s, err := openStore(cfg.SeedPath)
			if err != nil {
				return err
			}
			metrics.QuestionsTotal.Set(float64(s.Questions.Len()))

			router := api.NewRouter(api.Deps{
				Store:          s,
				Logger:         logger,
				AllowedOrigins: cfg.AllowedOrigins,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, logger, &http.Server{Addr: cfg.HTTP.Addr, Handler: router}, cfg)
		},
	}
}

// openStore seeds from path when set and from the embedded dataset otherwise.
func openStore(path string) (*store.Store, error) {
	if path == "" {
		return store.OpenDefault()
	}
	seed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return store.Open(seed)
}

// run serves until ctx is cancelled, then shuts the server down within
// the configured timeout.
func run(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg *config.Config) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			"addr", cfg.HTTP.Addr,
			"version", build.Version,
			"commit", build.Commit,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
