// Package mock provides test doubles for the ai service interfaces.
//
// MockEmbedder returns deterministic unit vectors derived from a hash of the
// input text, so equal texts embed equally. MockCompleter answers with a
// canned response or an injected function and records every request with its
// resolved call options.
//
//	completer := mock.NewMockCompleter(`{"condition": true}`)
//	embedder := mock.NewMockEmbedder()
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return []float32{1, 0}, nil
//	}
package mock
