// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"graphicsstudio/internal/agent"
	"graphicsstudio/internal/ai"
	"graphicsstudio/internal/cache"
	"graphicsstudio/internal/config"
	"graphicsstudio/internal/database"
	"graphicsstudio/internal/storage"
	"graphicsstudio/internal/store"
	"graphicsstudio/internal/studio"
)

// app is the wired core shared by the web server and the terminal
// commands.
type app struct {
	studio   *studio.Studio
	registry *ai.Registry // nil in remote agent mode
	closers  []func() error
}

// newApp connects the configured storage backend and agent and loads the
// saved collection.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	kv, err := a.openKV(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	var ag agent.Agent
	switch cfg.AgentMode {
	case config.AgentModeRemote:
		remote := agent.NewRemoteAgent(cfg.AgentURL, cfg.AgentAPIKey, cfg.AgentUserID)
		slog.Info("remote agent configured", "url", cfg.AgentURL, "session_id", remote.SessionID())
		ag = remote
	default:
		a.registry = ai.NewRegistry(cfg.AIProvider, cfg.ProviderConfigs())
		if len(a.registry.Available()) == 0 {
			slog.Warn("no AI provider has an API key; generation will fail until one is configured")
		}
		slog.Info("ai providers initialized",
			"active", a.registry.ActiveName(),
			"available", a.registry.Available(),
		)
		ag = agent.NewProviderAgent(a.registry)
	}

	a.studio = studio.New(ctx, ag, store.NewSavedConcepts(kv), cfg.AgentID)
	return a, nil
}

// openKV opens the key/value slot for STORAGE_BACKEND.
func (a *app) openKV(cfg *config.Config) (store.KV, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		slog.Warn("memory storage: saved concepts are lost on exit")
		return store.NewMemoryKV(), nil

	case config.StorageSQLite, config.StoragePostgres:
		dialect, dsn := database.DialectSQLite, cfg.SQLiteDSN()
		if cfg.StorageBackend == config.StoragePostgres {
			dialect, dsn = database.DialectPostgres, cfg.DSN()
		}
		db, err := database.Connect(dialect, dsn)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		if err := database.Migrate(db, dialect); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		return store.NewSQLKV(db, dialect), nil

	case config.StorageValkey:
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
		if err != nil {
			return nil, fmt.Errorf("connect valkey: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		return cache.NewValkeyKV(client), nil

	case config.StorageS3:
		kv, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("connect s3: %w", err)
		}
		slog.Info("s3 storage configured", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		return kv, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// Close releases storage connections in reverse order.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
