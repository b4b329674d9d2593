// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"

	"graphicsstudio/internal/ai"
)

// Agent modes.
const (
	AgentModeProvider = "provider"
	AgentModeRemote   = "remote"
)

// Storage backends for the saved concepts slot.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageValkey   = "valkey"
	StorageS3       = "s3"
	StorageMemory   = "memory"
)

var (
	environments    = []string{"development", "production", "testing"}
	agentModes      = []string{AgentModeProvider, AgentModeRemote}
	storageBackends = []string{StorageSQLite, StoragePostgres, StorageValkey, StorageS3, StorageMemory}
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"APP_PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"

	// Agent transport. "provider" drives an LLM directly; "remote" calls a
	// hosted agent at AgentURL.
	AgentMode   string `env:"AGENT_MODE" envDefault:"provider"`
	AgentID     string `env:"AGENT_ID"`
	AgentURL    string `env:"AGENT_URL"`
	AgentAPIKey string `env:"AGENT_API_KEY"`
	AgentUserID string `env:"AGENT_USER_ID" envDefault:"graphics-studio"`

	// AI provider settings (provider mode)
	AIProvider     string `env:"AI_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	OpenAIModel    string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	OpenAIBaseURL  string `env:"OPENAI_BASE_URL"`
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`
	GeminiModel    string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiBaseURL  string `env:"GEMINI_BASE_URL"`
	ClaudeAPIKey   string `env:"CLAUDE_API_KEY"`
	ClaudeModel    string `env:"CLAUDE_MODEL" envDefault:"claude-sonnet-4-5"`
	ClaudeBaseURL  string `env:"CLAUDE_BASE_URL"`
	MistralAPIKey  string `env:"MISTRAL_API_KEY"`
	MistralModel   string `env:"MISTRAL_MODEL" envDefault:"mistral-large-latest"`
	MistralBaseURL string `env:"MISTRAL_BASE_URL"`

	// Saved concepts storage
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"graphicsstudio.db"`

	// PostgreSQL connection
	DBHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	DBPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	DBUser     string `env:"POSTGRES_USER" envDefault:"graphicsstudio"`
	DBPassword string `env:"POSTGRES_PASSWORD" envDefault:"changeme"`
	DBName     string `env:"POSTGRES_DB" envDefault:"graphicsstudio"`

	// Valkey (Redis-compatible)
	ValkeyHost     string `env:"VALKEY_HOST" envDefault:"localhost"`
	ValkeyPort     string `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`
	ValkeyDB       int    `env:"VALKEY_DB" envDefault:"0"`

	// S3-compatible object storage
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3Prefix    string `env:"S3_PREFIX" envDefault:"graphicsstudio"`

	// Requests per minute per client IP on /generate and /variation.
	// Zero disables the limit.
	GenerateRateLimit int `env:"GENERATE_RATE_LIMIT" envDefault:"10"`
}

// Load reads configuration from the process environment and validates it.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from the given variables instead of the
// process environment. Unset keys take their defaults.
func LoadFrom(vars map[string]string) (*Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and cross-field requirements.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(environments, c.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV %q is not one of %v", c.Env, environments))
	}
	if !slices.Contains(agentModes, c.AgentMode) {
		errs = append(errs, fmt.Errorf("AGENT_MODE %q is not one of %v", c.AgentMode, agentModes))
	}
	if c.AgentMode == AgentModeRemote && c.AgentURL == "" {
		errs = append(errs, errors.New("AGENT_URL must be set when AGENT_MODE is remote"))
	}
	if c.AgentMode == AgentModeProvider && !slices.Contains(ai.ProviderNames, c.AIProvider) {
		errs = append(errs, fmt.Errorf("AI_PROVIDER %q is not one of %v", c.AIProvider, ai.ProviderNames))
	}
	if !slices.Contains(storageBackends, c.StorageBackend) {
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND %q is not one of %v", c.StorageBackend, storageBackends))
	}
	if c.StorageBackend == StorageS3 && (c.S3Endpoint == "" || c.S3Bucket == "") {
		errs = append(errs, errors.New("S3_ENDPOINT and S3_BUCKET must be set for the s3 storage backend"))
	}
	if c.Env == "production" && c.StorageBackend == StoragePostgres && c.DBPassword == "changeme" {
		errs = append(errs, errors.New("POSTGRES_PASSWORD must be set in production"))
	}
	if c.GenerateRateLimit < 0 {
		errs = append(errs, fmt.Errorf("GENERATE_RATE_LIMIT must not be negative, got %d", c.GenerateRateLimit))
	}

	return errors.Join(errs...)
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// SQLiteDSN returns the SQLite connection string with a busy timeout so a
// concurrent CLI invocation waits instead of failing.
func (c *Config) SQLiteDSN() string {
	return "file:" + c.SQLitePath + "?_pragma=busy_timeout(5000)"
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ProviderConfigs returns the per-provider settings for ai.NewRegistry.
// Providers without an API key are skipped by the registry.
func (c *Config) ProviderConfigs() map[string]ai.ProviderConfig {
	return map[string]ai.ProviderConfig{
		ai.OpenAI:  {APIKey: c.OpenAIAPIKey, Model: c.OpenAIModel, BaseURL: c.OpenAIBaseURL},
		ai.Gemini:  {APIKey: c.GeminiAPIKey, Model: c.GeminiModel, BaseURL: c.GeminiBaseURL},
		ai.Claude:  {APIKey: c.ClaudeAPIKey, Model: c.ClaudeModel, BaseURL: c.ClaudeBaseURL},
		ai.Mistral: {APIKey: c.MistralAPIKey, Model: c.MistralModel, BaseURL: c.MistralBaseURL},
	}
}
