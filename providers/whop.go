package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/poiesic/prospector/ratelimit"
)

// DefaultWhopURL is the Whop email check endpoint.
const DefaultWhopURL = "https://api.whop.com/api/v3/sales/check_email"

// WhopStatus tells whether an email belongs to a Whop user or creator.
type WhopStatus struct {
	IsUser    bool `json:"is_user"`
	IsCreator bool `json:"is_creator"`
}

// Whop checks email addresses against Whop's sales API.
type Whop struct {
	apiKey string
	cookie string
	opts   options
}

// NewWhop creates a Whop client. cookie may be empty.
func NewWhop(apiKey, cookie string, opts ...Option) (*Whop, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("whop: %w", ErrMissingCredentials)
	}
	return &Whop{
		apiKey: strings.TrimSpace(apiKey),
		cookie: cookie,
		opts:   newOptions(DefaultWhopURL, "whop", opts),
	}, nil
}

// Check returns the status for email. It never fails: any error is logged
// and reported as neither user nor creator.
func (w *Whop) Check(ctx context.Context, email string) WhopStatus {
	status, ok := ratelimit.Execute(ctx, w.opts.executor, "whop.check_email", func(ctx context.Context) (WhopStatus, error) {
		return w.check(ctx, email)
	})
	if !ok {
		return WhopStatus{}
	}
	return status
}

func (w *Whop) check(ctx context.Context, email string) (WhopStatus, error) {
	q := url.Values{}
	q.Set("email", email)
	req, err := newJSONRequest(ctx, http.MethodGet, w.opts.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return WhopStatus{}, err
	}
	req.Header.Set("Authorization", "Bearer "+w.apiKey)
	if w.cookie != "" {
		req.Header.Set("Cookie", w.cookie)
	}

	raw, err := doJSON(w.opts.http, "whop", req)
	if err != nil {
		return WhopStatus{}, err
	}
	var status WhopStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return WhopStatus{}, fmt.Errorf("whop decode: %w", err)
	}
	return status, nil
}
