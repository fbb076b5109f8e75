package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer issues one chat completion made of a system instruction and a
// user message and returns the generated text.
// Implementations must be thread-safe for concurrent use.
type Completer interface {
	// Complete returns the text of the first choice. An empty string is a
	// valid result when the model produced nothing.
	Complete(ctx context.Context, system, user string, opts ...CallOption) (string, error)
}

// CallOptions controls a single completion request.
type CallOptions struct {
	// Model overrides the configured completion model when non-empty.
	Model string
	// Temperature is applied only when HasTemperature is set.
	Temperature    float64
	HasTemperature bool
	// MaxTokens caps the output length when positive.
	MaxTokens int
	// JSON requests a JSON object response.
	JSON bool
}

// CallOption is a functional option for a completion request.
type CallOption func(*CallOptions)

// WithModel selects the completion model for this call.
func WithModel(model string) CallOption {
	return func(o *CallOptions) {
		o.Model = model
	}
}

// WithTemperature sets the sampling temperature. Use 0 for deterministic output.
func WithTemperature(t float64) CallOption {
	return func(o *CallOptions) {
		o.Temperature = t
		o.HasTemperature = true
	}
}

// WithMaxTokens caps the number of generated tokens.
func WithMaxTokens(n int) CallOption {
	return func(o *CallOptions) {
		o.MaxTokens = n
	}
}

// WithJSONMode requests a JSON object response.
func WithJSONMode() CallOption {
	return func(o *CallOptions) {
		o.JSON = true
	}
}

// ApplyCallOptions folds opts into a CallOptions value.
func ApplyCallOptions(opts ...CallOption) CallOptions {
	var o CallOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Completer returns the chat completion service.
	Completer() Completer

	// Close releases resources held by the provider and its services.
	Close() error
}
