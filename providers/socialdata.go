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

// DefaultSocialDataURL is the SocialData X/Twitter API root.
const DefaultSocialDataURL = "https://api.socialdata.tools"

// Tweet is the slice of a tweet used for engagement statistics.
type Tweet struct {
	IDStr         string `json:"id_str"`
	FullText      string `json:"full_text"`
	FavoriteCount int    `json:"favorite_count"`
}

// TwitterUser is the typed view of a SocialData user.
type TwitterUser struct {
	IDStr          string `json:"id_str"`
	Name           string `json:"name"`
	ScreenName     string `json:"screen_name"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	FollowersCount int    `json:"followers_count"`
	FriendsCount   int    `json:"friends_count"`

	Raw json.RawMessage `json:"-"`
}

// MarshalJSON marshals the verbatim payload when there is one.
func (u TwitterUser) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	type plain TwitterUser
	return marshalPlain(plain(u))
}

// UnmarshalJSON keeps the input as Raw.
func (u *TwitterUser) UnmarshalJSON(b []byte) error {
	type plain TwitterUser
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*u = TwitterUser(v)
	u.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// ParseTwitterUser decodes a stored user payload.
func ParseTwitterUser(raw json.RawMessage) (*TwitterUser, error) {
	var u TwitterUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SocialData looks up X/Twitter profiles.
type SocialData struct {
	apiKey string
	opts   options
}

// NewSocialData creates a SocialData client.
func NewSocialData(apiKey string, opts ...Option) (*SocialData, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("socialdata: %w", ErrMissingCredentials)
	}
	return &SocialData{
		apiKey: strings.TrimSpace(apiKey),
		opts:   newOptions(DefaultSocialDataURL, "socialdata", opts),
	}, nil
}

// Fetch returns the profile for handle, or nil when the handle is unknown
// or the request failed.
func (s *SocialData) Fetch(ctx context.Context, handle string) *TwitterUser {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return nil
	}
	return cached(ctx, &s.opts, cache.Key("socialdata", strings.ToLower(handle)), func() *TwitterUser {
		user, ok := ratelimit.Execute(ctx, s.opts.executor, "socialdata.user", func(ctx context.Context) (*TwitterUser, error) {
			return s.fetch(ctx, handle)
		})
		if !ok {
			return nil
		}
		return user
	})
}

func (s *SocialData) fetch(ctx context.Context, handle string) (*TwitterUser, error) {
	u := strings.TrimRight(s.opts.baseURL, "/") + "/twitter/user/" + url.PathEscape(handle)
	req, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	raw, err := doJSON(s.opts.http, "socialdata", req)
	if err != nil {
		if IsNotFound(err) {
			s.opts.logger.Info("twitter handle invalid", "handle", handle)
			return nil, nil
		}
		return nil, err
	}
	if string(raw) == "null" || len(raw) == 0 {
		return nil, nil
	}
	return ParseTwitterUser(raw)
}

type tweetsResponse struct {
	NextCursor string  `json:"next_cursor"`
	Tweets     []Tweet `json:"tweets"`
}

// FetchTweets returns the most recent page of tweets for a numeric user id,
// or nil when the lookup failed.
func (s *SocialData) FetchTweets(ctx context.Context, userID string) []Tweet {
	if userID == "" {
		return nil
	}
	tweets, ok := ratelimit.Execute(ctx, s.opts.executor, "socialdata.tweets", func(ctx context.Context) ([]Tweet, error) {
		u := strings.TrimRight(s.opts.baseURL, "/") + "/twitter/user/" + url.PathEscape(userID) + "/tweets"
		req, err := newJSONRequest(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+s.apiKey)

		raw, err := doJSON(s.opts.http, "socialdata", req)
		if err != nil {
			if IsNotFound(err) {
				return nil, nil
			}
			return nil, err
		}
		var resp tweetsResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, fmt.Errorf("socialdata decode tweets: %w", err)
		}
		return resp.Tweets, nil
	})
	if !ok {
		return nil
	}
	return tweets
}
