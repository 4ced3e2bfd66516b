package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vrcreative/seo-codex/internal/config"
	"github.com/vrcreative/seo-codex/internal/handler"
	"github.com/vrcreative/seo-codex/internal/logger"
	"github.com/vrcreative/seo-codex/internal/metrics"
	"github.com/vrcreative/seo-codex/internal/validate"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log.Level, cfg.Env)

			database, ss, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			engine, err := validate.New(cfg.Rules)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if n, err := ss.Count(ctx); err != nil {
				log.Warn().Err(err).Msg("count shows")
			} else {
				metrics.ShowsTotal.Set(float64(n))
			}

			srv := &http.Server{
				Addr: cfg.HTTP.Addr,
				Handler: handler.NewRouter(handler.Deps{
					ShowStore: ss,
					Engine:    engine,
					Registry:  registrySource(cfg.RegistryPath),
					Logger:    log,
				}),
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			log.Info().Str("addr", cfg.HTTP.Addr).Str("env", cfg.Env).Msg("SEO Codex server running")

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutdown signal received: closing HTTP server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
