package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bogodb/ringopt/cmd/ringopt/middleware"
	"github.com/bogodb/ringopt/internal/config"
	"github.com/bogodb/ringopt/internal/handlers"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the optimizer and constraint checker over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, logger, cfg)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default :8080)")
	return cmd
}

func newRouter(logger *zap.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Cors)

	r.Get("/health", handlers.HealthHandler)
	r.Post("/optimize", handlers.OptimizeHandler(logger, cfg.Limits, cfg.Layout))
	r.Post("/verify", handlers.VerifyHandler(cfg.Limits))
	return r
}

func serve(ctx context.Context, logger *zap.Logger, cfg *config.Config) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(logger, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
