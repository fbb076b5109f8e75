package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/poiesic/prospector/cache"
	"github.com/poiesic/prospector/ratelimit"
)

// DefaultScrapinURL is the Scrapin profile enrichment endpoint.
const DefaultScrapinURL = "https://api.scrapin.io/enrichment/profile"

// Position is one entry of a LinkedIn work history.
type Position struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CompanyName string `json:"companyName"`
	// LinkedInURL is the company's LinkedIn page.
	LinkedInURL string `json:"linkedInUrl"`
}

// LinkedInProfile is the typed view of a Scrapin person.
type LinkedInProfile struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Headline    string   `json:"headline"`
	Location    string   `json:"location"`
	Summary     string   `json:"summary"`
	LinkedInURL string   `json:"linkedInUrl"`
	PhotoURL    string   `json:"photoUrl"`
	Skills      []string `json:"skills"`
	Positions   struct {
		PositionHistory []Position `json:"positionHistory"`
	} `json:"positions"`

	Raw json.RawMessage `json:"-"`
}

// Name joins first and last name.
func (p *LinkedInProfile) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// History returns the positions, most recent first.
func (p *LinkedInProfile) History() []Position {
	return p.Positions.PositionHistory
}

// JobTitles returns the title of every position in order.
func (p *LinkedInProfile) JobTitles() []string {
	titles := make([]string, 0, len(p.History()))
	for _, pos := range p.History() {
		titles = append(titles, pos.Title)
	}
	return titles
}

// ParseLinkedInProfile decodes a stored person payload.
func ParseLinkedInProfile(raw json.RawMessage) (*LinkedInProfile, error) {
	var p LinkedInProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	p.Raw = raw
	return &p, nil
}

// MarshalJSON marshals the verbatim payload when there is one so that
// cached and stored copies keep fields the typed view does not model.
func (p LinkedInProfile) MarshalJSON() ([]byte, error) {
	if len(p.Raw) > 0 {
		return p.Raw, nil
	}
	type plain LinkedInProfile
	return marshalPlain(plain(p))
}

// UnmarshalJSON keeps the input as Raw.
func (p *LinkedInProfile) UnmarshalJSON(b []byte) error {
	type plain LinkedInProfile
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = LinkedInProfile(v)
	p.Raw = append(json.RawMessage(nil), b...)
	return nil
}

type scrapinResponse struct {
	Success bool             `json:"success"`
	Person  *LinkedInProfile `json:"person"`
}

// Scrapin fetches LinkedIn profiles through the Scrapin API.
type Scrapin struct {
	apiKey string
	opts   options
}

// NewScrapin creates a Scrapin client.
func NewScrapin(apiKey string, opts ...Option) (*Scrapin, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("scrapin: %w", ErrMissingCredentials)
	}
	return &Scrapin{
		apiKey: strings.TrimSpace(apiKey),
		opts:   newOptions(DefaultScrapinURL, "scrapin", opts),
	}, nil
}

// Fetch scrapes the profile at linkedInURL. It returns nil when the profile
// is unknown, the API reports failure, or the request fails.
func (s *Scrapin) Fetch(ctx context.Context, linkedInURL string) *LinkedInProfile {
	return cached(ctx, &s.opts, cache.Key("scrapin", linkedInURL), func() *LinkedInProfile {
		profile, ok := ratelimit.Execute(ctx, s.opts.executor, "scrapin.profile", func(ctx context.Context) (*LinkedInProfile, error) {
			return s.fetch(ctx, linkedInURL)
		})
		if !ok {
			return nil
		}
		return profile
	})
}

func (s *Scrapin) fetch(ctx context.Context, linkedInURL string) (*LinkedInProfile, error) {
	q := url.Values{}
	q.Set("apikey", s.apiKey)
	q.Set("linkedInUrl", linkedInURL)

	req, err := newJSONRequest(ctx, http.MethodGet, s.opts.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	s.opts.logger.Debug("scraping linkedin profile", "url", linkedInURL)
	raw, err := doJSON(s.opts.http, "scrapin", req)
	if err != nil {
		if IsNotFound(err) {
			s.opts.logger.Info("linkedin profile not found", "url", linkedInURL)
			return nil, nil
		}
		return nil, err
	}

	var resp scrapinResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("scrapin decode: %w", err)
	}
	if !resp.Success || resp.Person == nil {
		s.opts.logger.Info("scrapin returned no person", "url", linkedInURL)
		return nil, nil
	}
	return resp.Person, nil
}
