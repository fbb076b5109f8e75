package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvOpenAIKey         = "OPENAI_API_KEY"
	EnvOpenAIHost        = "OPENAI_BASE_URL"
	EnvGitHubToken       = "TOKEN_GITHUB"
	EnvGitHubTokenAlt    = "GITHUB_TOKEN"
	EnvScrapinKey        = "SCRAPIN_API_KEY"
	EnvSocialDataKey     = "SOCIAL_DATA_API_KEY"
	EnvWhopKey           = "WHOP_API_KEY"
	EnvWhopCookie        = "WHOP_COOKIE"
	EnvDatabaseURL       = "DATABASE_URL"
	EnvPineconeKey       = "PINECONE_API_KEY"
	EnvPineconeIndexHost = "PINECONE_INDEX_HOST"
	EnvPineconeIndexName = "PINECONE_INDEX_NAME"
	EnvRedisURL          = "REDIS_URL"
	EnvBadgerPath        = "BADGER_PATH"
	EnvStoreBackend      = "STORE_BACKEND"
	EnvVectorBackend     = "VECTOR_BACKEND"
	EnvCacheTTL          = "CACHE_TTL"
	EnvCooldown          = "RATE_LIMIT_COOLDOWN"
)

// DefaultEnvFile is read by Load when no path is given.
const DefaultEnvFile = ".env"

// Load builds a Config from DefaultConfig, the given .env files and the
// process environment, in increasing precedence. Missing files are skipped.
// The result is normalized but not validated.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}

	vars := make(map[string]string)
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		for k, v := range values {
			vars[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	cfg := DefaultConfig()
	if err := cfg.fromEnv(lookup); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

func (c *Config) fromEnv(lookup func(string) (string, bool)) error {
	set := func(dst *string, keys ...string) {
		for _, key := range keys {
			if v, ok := lookup(key); ok && v != "" {
				*dst = v
				return
			}
		}
	}

	set(&c.AI.APIKey, EnvOpenAIKey)
	set(&c.AI.Host, EnvOpenAIHost)
	set(&c.GitHub.Token, EnvGitHubToken, EnvGitHubTokenAlt)
	set(&c.Scrapin.APIKey, EnvScrapinKey)
	set(&c.SocialData.APIKey, EnvSocialDataKey)
	set(&c.Whop.APIKey, EnvWhopKey)
	set(&c.Whop.Cookie, EnvWhopCookie)
	set(&c.Store.Backend, EnvStoreBackend)
	set(&c.Store.BadgerPath, EnvBadgerPath)
	set(&c.Store.DatabaseURL, EnvDatabaseURL)
	set(&c.Vector.Backend, EnvVectorBackend)
	set(&c.Vector.PineconeAPIKey, EnvPineconeKey)
	set(&c.Vector.PineconeIndexHost, EnvPineconeIndexHost)
	set(&c.Vector.PineconeIndexName, EnvPineconeIndexName)
	set(&c.Redis.URL, EnvRedisURL)

	var err error
	if c.Redis.TTL, err = duration(lookup, EnvCacheTTL, c.Redis.TTL); err != nil {
		return err
	}
	if c.RateLimit.Cooldown, err = duration(lookup, EnvCooldown, c.RateLimit.Cooldown); err != nil {
		return err
	}
	return nil
}

// duration accepts Go durations ("90s") or whole seconds ("90").
func duration(lookup func(string) (string, bool), key string, fallback time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return d, nil
}
