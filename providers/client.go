package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/prospector/cache"
	"github.com/poiesic/prospector/ratelimit"
)

const (
	// DefaultTimeout bounds every provider request.
	DefaultTimeout = 30 * time.Second
	// DefaultCacheTTL is how long cached provider responses stay valid.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

type options struct {
	baseURL  string
	http     *http.Client
	executor *ratelimit.Executor
	logger   *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

// Option configures a provider client.
type Option func(*options)

// WithBaseURL points the client at a different endpoint, such as a test server.
func WithBaseURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.baseURL = url
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.http = c
		}
	}
}

// WithExecutor shares a rate-limit executor across clients.
// Default is a private executor with the standard cooldown.
func WithExecutor(e *ratelimit.Executor) Option {
	return func(o *options) {
		if e != nil {
			o.executor = e
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCache caches successful responses for ttl. A non-positive ttl uses
// DefaultCacheTTL. Only clients that fetch stable profile data consult it.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(o *options) {
		o.cache = c
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		o.cacheTTL = ttl
	}
}

func newOptions(baseURL, component string, opts []Option) options {
	o := options{
		baseURL:  baseURL,
		logger:   slog.Default(),
		cacheTTL: DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.http == nil {
		o.http = &http.Client{Timeout: DefaultTimeout}
	}
	if o.executor == nil {
		o.executor = ratelimit.NewExecutor(ratelimit.WithLogger(o.logger))
	}
	o.logger = o.logger.With("component", component)
	return o
}

// cached looks key up before calling fetch and stores non-nil results.
// Cache failures only cost a network call.
func cached[T any](ctx context.Context, o *options, key string, fetch func() *T) *T {
	if o.cache != nil {
		var hit T
		ok, err := o.cache.GetJSON(ctx, key, &hit)
		if err != nil {
			o.logger.Warn("cache read failed", "key", key, "err", err)
		}
		if ok {
			o.logger.Debug("cache hit", "key", key)
			return &hit
		}
	}

	result := fetch()
	if result != nil && o.cache != nil {
		if err := o.cache.SetJSON(ctx, key, result, o.cacheTTL); err != nil {
			o.logger.Warn("cache write failed", "key", key, "err", err)
		}
	}
	return result
}

// doJSON sends req and returns the raw body of a 2xx response. Other
// statuses become a *StatusError.
func doJSON(c *http.Client, service string, req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s read body: %w", service, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Service: service, Code: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

func newJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
		r = &buf
	}
	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// marshalPlain encodes v without escaping HTML characters, so payloads sent
// to a model read the way the provider returned them.
func marshalPlain(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
