// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"graphicsstudio/internal/handlers"
	"graphicsstudio/internal/middleware"
	"graphicsstudio/internal/render"
	"graphicsstudio/internal/router"
)

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web studio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context())
		},
	}
}

// runServe starts the HTTP server and blocks until ctx is cancelled, then
// drains active requests.
func (c *cli) runServe(ctx context.Context) error {
	cfg := c.cfg
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"agent_mode", cfg.AgentMode,
		"storage", cfg.StorageBackend,
	)

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	// In dev mode the page loads the unminified HTMX build.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		return fmt.Errorf("initialize template renderer: %w", err)
	}

	var providers handlers.ProviderSwitcher
	if a.registry != nil {
		providers = a.registry
	}

	var limiter *middleware.RateLimiter
	if cfg.GenerateRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.GenerateRateLimit, time.Minute)
		defer limiter.Stop()
	}

	r := router.New(handlers.NewStudio(a.studio, renderer, providers), router.Options{
		SecureCookies:   !cfg.IsDev(),
		GenerateLimiter: limiter,
	})

	// WriteTimeout must accommodate generate requests that wait on the
	// agent (the remote client gives up after two minutes).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutdown signal received")

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("server stopped gracefully")
	return nil
}
