// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads the process configuration from .env files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/ratelimit"
)

// Store backends.
const (
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
	BackendPgvector = "pgvector"
	BackendPinecone = "pinecone"
)

const (
	// DefaultBadgerPath is used when BADGER_PATH is unset.
	DefaultBadgerPath = "prospector.db"
	// DefaultCacheTTL bounds how long provider responses are cached.
	DefaultCacheTTL = 24 * time.Hour
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)

// GitHubConfig holds GitHub GraphQL credentials.
type GitHubConfig struct {
	Token string
}

// ScrapinConfig holds Scrapin credentials.
type ScrapinConfig struct {
	APIKey string
}

// SocialDataConfig holds SocialData credentials.
type SocialDataConfig struct {
	APIKey string
}

// WhopConfig holds Whop credentials. Both values are sent on every request.
type WhopConfig struct {
	APIKey string
	Cookie string
}

// StoreConfig selects the person and company store.
type StoreConfig struct {
	// Backend is BackendBadger or BackendPostgres.
	Backend     string
	BadgerPath  string
	DatabaseURL string
	AutoMigrate bool
}

// VectorConfig selects the vector store.
type VectorConfig struct {
	// Backend is BackendBadger, BackendPgvector or BackendPinecone.
	Backend           string
	PineconeAPIKey    string
	PineconeIndexHost string
	PineconeIndexName string
}

// RedisConfig enables the provider response cache when URL is set.
type RedisConfig struct {
	URL string
	TTL time.Duration
}

// RateLimitConfig controls the shared cooldown.
type RateLimitConfig struct {
	Cooldown time.Duration
}

// Config is the complete process configuration.
type Config struct {
	AI         ai.Config
	GitHub     GitHubConfig
	Scrapin    ScrapinConfig
	SocialData SocialDataConfig
	Whop       WhopConfig
	Store      StoreConfig
	Vector     VectorConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithStoreBackend selects the person and company store.
func WithStoreBackend(backend string) Option {
	return func(c *Config) {
		c.Store.Backend = backend
	}
}

// WithVectorBackend selects the vector store.
func WithVectorBackend(backend string) Option {
	return func(c *Config) {
		c.Vector.Backend = backend
	}
}

// WithBadgerPath sets the badger database directory.
func WithBadgerPath(path string) Option {
	return func(c *Config) {
		c.Store.BadgerPath = path
	}
}

// WithDatabaseURL sets the postgres DSN.
func WithDatabaseURL(dsn string) Option {
	return func(c *Config) {
		c.Store.DatabaseURL = dsn
	}
}

// WithRedisURL enables the response cache.
func WithRedisURL(url string) Option {
	return func(c *Config) {
		c.Redis.URL = url
	}
}

// WithCooldown overrides the rate-limit cooldown.
func WithCooldown(d time.Duration) Option {
	return func(c *Config) {
		c.RateLimit.Cooldown = d
	}
}

// DefaultConfig returns a local configuration: badger for every store, no
// cache, and the OpenAI defaults.
func DefaultConfig() *Config {
	return &Config{
		AI: *ai.DefaultConfig(),
		Store: StoreConfig{
			Backend:     BackendBadger,
			BadgerPath:  DefaultBadgerPath,
			AutoMigrate: true,
		},
		Vector:    VectorConfig{Backend: BackendBadger},
		Redis:     RedisConfig{TTL: DefaultCacheTTL},
		RateLimit: RateLimitConfig{Cooldown: ratelimit.DefaultCooldown},
	}
}

// Apply applies opts in order.
func (c *Config) Apply(opts ...Option) *Config {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize trims every value and lowercases the backend names.
func (c *Config) Normalize() {
	c.AI.Normalize()
	c.GitHub.Token = strings.TrimSpace(c.GitHub.Token)
	c.Scrapin.APIKey = strings.TrimSpace(c.Scrapin.APIKey)
	c.SocialData.APIKey = strings.TrimSpace(c.SocialData.APIKey)
	c.Whop.APIKey = strings.TrimSpace(c.Whop.APIKey)
	c.Whop.Cookie = strings.TrimSpace(c.Whop.Cookie)

	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if c.Store.Backend == "" {
		c.Store.Backend = BackendBadger
	}
	c.Store.BadgerPath = strings.TrimSpace(c.Store.BadgerPath)
	c.Store.DatabaseURL = strings.TrimSpace(c.Store.DatabaseURL)

	c.Vector.Backend = strings.ToLower(strings.TrimSpace(c.Vector.Backend))
	if c.Vector.Backend == "" {
		c.Vector.Backend = BackendBadger
	}
	c.Vector.PineconeAPIKey = strings.TrimSpace(c.Vector.PineconeAPIKey)
	c.Vector.PineconeIndexHost = strings.TrimSpace(c.Vector.PineconeIndexHost)
	c.Vector.PineconeIndexName = strings.TrimSpace(c.Vector.PineconeIndexName)

	c.Redis.URL = strings.TrimSpace(c.Redis.URL)
	if c.Redis.TTL <= 0 {
		c.Redis.TTL = DefaultCacheTTL
	}
	if c.RateLimit.Cooldown <= 0 {
		c.RateLimit.Cooldown = ratelimit.DefaultCooldown
	}
}

// Validate checks that the selected backends have what they need. It
// normalizes the configuration first. AI and provider credentials are
// checked when their clients are built, as most jobs use only a few of them.
func (c *Config) Validate() error {
	c.Normalize()

	var errs []error
	switch c.Store.Backend {
	case BackendBadger:
		if c.Store.BadgerPath == "" {
			errs = append(errs, fmt.Errorf("%w: badger path is required", ErrInvalidConfig))
		}
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("%w: DATABASE_URL is required for the postgres store", ErrInvalidConfig))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown store backend %q", ErrInvalidConfig, c.Store.Backend))
	}

	switch c.Vector.Backend {
	case BackendBadger:
		if c.Store.Backend != BackendBadger {
			errs = append(errs, fmt.Errorf("%w: the badger vector store needs the badger store", ErrInvalidConfig))
		}
	case BackendPgvector:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("%w: DATABASE_URL is required for pgvector", ErrInvalidConfig))
		}
	case BackendPinecone:
		if c.Vector.PineconeAPIKey == "" {
			errs = append(errs, fmt.Errorf("%w: PINECONE_API_KEY is required", ErrInvalidConfig))
		}
		if c.Vector.PineconeIndexHost == "" && c.Vector.PineconeIndexName == "" {
			errs = append(errs, fmt.Errorf("%w: PINECONE_INDEX_HOST or PINECONE_INDEX_NAME is required", ErrInvalidConfig))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown vector backend %q", ErrInvalidConfig, c.Vector.Backend))
	}

	return errors.Join(errs...)
}
