// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cache provides the Valkey (Redis-compatible) client and a
// key/value slot on top of it for the saved concepts collection.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"graphicsstudio/internal/store"
)

// keyPrefix namespaces studio keys so a shared Valkey instance stays tidy.
const keyPrefix = "studio:"

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(host, port, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", fmt.Sprintf("%s:%s", host, port), "db", db)
	return client, nil
}

// ValkeyKV implements store.KV with plain string keys. Values never expire.
type ValkeyKV struct {
	client *redis.Client
}

// NewValkeyKV wraps an existing client.
func NewValkeyKV(client *redis.Client) *ValkeyKV {
	return &ValkeyKV{client: client}
}

// Get returns the stored value or store.ErrNotFound.
func (v *ValkeyKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := v.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("valkey get %q: %w", key, err)
	}
	return data, nil
}

// Set stores value under key without an expiry.
func (v *ValkeyKV) Set(ctx context.Context, key string, value []byte) error {
	if err := v.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("valkey set %q: %w", key, err)
	}
	return nil
}
