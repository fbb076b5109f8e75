package mock

import (
	"context"
	"sync"

	"github.com/poiesic/prospector/ai"
)

// CompleteCall records the arguments of one Complete invocation.
type CompleteCall struct {
	System  string
	User    string
	Options ai.CallOptions
}

// MockCompleter is a test double for ai.Completer.
type MockCompleter struct {
	// CompleteFunc is called by Complete if set.
	// If nil, Complete returns Response.
	CompleteFunc func(ctx context.Context, system, user string, opts ai.CallOptions) (string, error)

	// Response is the canned answer used when CompleteFunc is nil.
	Response string

	mu    sync.Mutex
	calls []CompleteCall
}

// NewMockCompleter creates a completer that answers every request with response.
func NewMockCompleter(response string) *MockCompleter {
	return &MockCompleter{Response: response}
}

// WithCompleteFunc sets custom behavior and returns the mock for chaining.
func (m *MockCompleter) WithCompleteFunc(fn func(ctx context.Context, system, user string, opts ai.CallOptions) (string, error)) *MockCompleter {
	m.CompleteFunc = fn
	return m
}

// Complete records the call and returns the injected or canned response.
func (m *MockCompleter) Complete(ctx context.Context, system, user string, opts ...ai.CallOption) (string, error) {
	o := ai.ApplyCallOptions(opts...)

	m.mu.Lock()
	m.calls = append(m.calls, CompleteCall{System: system, User: user, Options: o})
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, user, o)
	}
	return m.Response, nil
}

// CallCount returns the number of Complete calls.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of every recorded call.
func (m *MockCompleter) Calls() []CompleteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CompleteCall(nil), m.calls...)
}

// Reset clears recorded calls and injected behavior.
func (m *MockCompleter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.CompleteFunc = nil
}
