package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/prospector/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvOpenAIKey, EnvOpenAIHost, EnvGitHubToken, EnvGitHubTokenAlt, EnvScrapinKey,
		EnvSocialDataKey, EnvWhopKey, EnvWhopCookie, EnvDatabaseURL, EnvPineconeKey,
		EnvPineconeIndexHost, EnvPineconeIndexName, EnvRedisURL, EnvBadgerPath,
		EnvStoreBackend, EnvVectorBackend, EnvCacheTTL, EnvCooldown,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BackendBadger, cfg.Store.Backend)
	assert.Equal(t, BackendBadger, cfg.Vector.Backend)
	assert.Equal(t, DefaultBadgerPath, cfg.Store.BadgerPath)
	assert.Equal(t, ai.DefaultCompletionModel, cfg.AI.CompletionModel)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.Cooldown)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file is skipped", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"))
		require.NoError(t, err)
		assert.Equal(t, BackendBadger, cfg.Store.Backend)
	})

	t.Run("file values", func(t *testing.T) {
		clearEnv(t)
		path := writeEnv(t, "OPENAI_API_KEY= sk-test \nGITHUB_TOKEN=gh\nSTORE_BACKEND=Postgres\n"+
			"DATABASE_URL=postgres://localhost/db\nVECTOR_BACKEND=pinecone\nPINECONE_API_KEY=pc\n"+
			"PINECONE_INDEX_HOST=idx.pinecone.io\nCACHE_TTL=1h\nRATE_LIMIT_COOLDOWN=90\n")
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "sk-test", cfg.AI.APIKey)
		assert.Equal(t, "gh", cfg.GitHub.Token)
		assert.Equal(t, BackendPostgres, cfg.Store.Backend)
		assert.Equal(t, "postgres://localhost/db", cfg.Store.DatabaseURL)
		assert.Equal(t, BackendPinecone, cfg.Vector.Backend)
		assert.Equal(t, "idx.pinecone.io", cfg.Vector.PineconeIndexHost)
		assert.Equal(t, time.Hour, cfg.Redis.TTL)
		assert.Equal(t, 90*time.Second, cfg.RateLimit.Cooldown)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("environment wins over file", func(t *testing.T) {
		clearEnv(t)
		path := writeEnv(t, "TOKEN_GITHUB=from-file\nBADGER_PATH=/tmp/file.db\n")
		t.Setenv(EnvBadgerPath, "/tmp/env.db")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.GitHub.Token)
		assert.Equal(t, "/tmp/env.db", cfg.Store.BadgerPath)
	})

	t.Run("TOKEN_GITHUB takes precedence", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvGitHubToken, "primary")
		t.Setenv(EnvGitHubTokenAlt, "secondary")
		cfg, err := Load(filepath.Join(t.TempDir(), "none"))
		require.NoError(t, err)
		assert.Equal(t, "primary", cfg.GitHub.Token)
	})

	t.Run("bad duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvCooldown, "soon")
		_, err := Load(filepath.Join(t.TempDir(), "none"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		ok   bool
	}{
		{"defaults", nil, true},
		{"postgres without dsn", []Option{WithStoreBackend(BackendPostgres), WithVectorBackend(BackendPgvector)}, false},
		{"postgres and pgvector", []Option{WithStoreBackend(BackendPostgres), WithVectorBackend(BackendPgvector), WithDatabaseURL("postgres://x")}, true},
		{"badger vectors need badger store", []Option{WithStoreBackend(BackendPostgres), WithDatabaseURL("postgres://x")}, false},
		{"pinecone without key", []Option{WithVectorBackend(BackendPinecone)}, false},
		{"unknown store", []Option{WithStoreBackend("sqlite")}, false},
		{"empty badger path", []Option{WithBadgerPath(" ")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultConfig().Apply(tt.opts...).Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
