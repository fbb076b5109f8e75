package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Host)
	assert.Equal(t, "text-embedding-3-large", cfg.EmbeddingModel)
	assert.Equal(t, "gpt-4o-mini", cfg.CompletionModel)
	assert.Empty(t, cfg.APIKey)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, DefaultHost, cfg.Host)
	})

	t.Run("with custom host and key", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/v1"), WithAPIKey("sk-test"))

		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
		assert.Equal(t, "sk-test", cfg.APIKey)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingModel("text-embedding-3-small"),
			WithCompletionModel("gpt-4o"),
		)

		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
		assert.Equal(t, "gpt-4o", cfg.CompletionModel)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"adds v1", "http://localhost:11434", "http://localhost:11434/v1"},
		{"strips trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"keeps v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host, APIKey: "  key  "}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
			assert.Equal(t, "key", cfg.APIKey)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid with key", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("sk-test"))
		require.NoError(t, cfg.Validate())
	})

	t.Run("openai host needs a key", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "APIKey")
	})

	t.Run("local host without key", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "none", cfg.Token())
	})

	t.Run("missing models", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("k"), WithEmbeddingModel(""))
		assert.Error(t, cfg.Validate())

		cfg = NewConfig(WithAPIKey("k"), WithCompletionModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithHost(""))
		assert.Error(t, cfg.Validate())
	})
}

func TestApplyCallOptions(t *testing.T) {
	o := ApplyCallOptions(WithModel("gpt-4o-mini"), WithTemperature(0), WithMaxTokens(256), WithJSONMode())

	assert.Equal(t, "gpt-4o-mini", o.Model)
	assert.True(t, o.HasTemperature)
	assert.Equal(t, 0.0, o.Temperature)
	assert.Equal(t, 256, o.MaxTokens)
	assert.True(t, o.JSON)

	empty := ApplyCallOptions()
	assert.False(t, empty.HasTemperature)
	assert.False(t, empty.JSON)
}
