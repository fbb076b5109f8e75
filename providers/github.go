package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/poiesic/prospector/ratelimit"
)

// DefaultGitHubURL is the GitHub GraphQL endpoint.
const DefaultGitHubURL = "https://api.github.com/graphql"

const githubUserQuery = `
query($login: String!) {
  user(login: $login) {
    login
    name
    bio
    location
    company
    websiteUrl
    twitterUsername
    email
    avatarUrl
    followers { totalCount }
    following { totalCount }
    repositories(first: 100, isFork: false, ownerAffiliations: OWNER) {
      totalCount
      nodes {
        name
        stargazerCount
        forkCount
        primaryLanguage { name }
        repositoryTopics(first: 10) { nodes { topic { name } } }
      }
    }
    contributionsCollection {
      contributionYears
      totalCommitContributions
      restrictedContributionsCount
    }
    organizations(first: 100) {
      nodes {
        login
        name
        description
        membersWithRole { totalCount }
      }
    }
    sponsors(first: 100) {
      totalCount
      nodes {
        __typename
        ... on User { login name }
        ... on Organization { login name }
      }
    }
    socialAccounts(first: 10) { nodes { provider url } }
  }
}`

const githubCompanyQuery = `
query($login: String!) {
  user(login: $login) {
    company
  }
}`

// Count is a GraphQL connection total.
type Count struct {
	TotalCount int `json:"totalCount"`
}

// Repository is one owned, non-fork repository.
type Repository struct {
	Name            string `json:"name"`
	StargazerCount  int    `json:"stargazerCount"`
	ForkCount       int    `json:"forkCount"`
	PrimaryLanguage *struct {
		Name string `json:"name"`
	} `json:"primaryLanguage"`
	RepositoryTopics struct {
		Nodes []struct {
			Topic struct {
				Name string `json:"name"`
			} `json:"topic"`
		} `json:"nodes"`
	} `json:"repositoryTopics"`
}

// Language returns the primary language name, or "" when GitHub has none.
func (r Repository) Language() string {
	if r.PrimaryLanguage == nil {
		return ""
	}
	return r.PrimaryLanguage.Name
}

// Topics returns the repository's topic names.
func (r Repository) Topics() []string {
	out := make([]string, 0, len(r.RepositoryTopics.Nodes))
	for _, n := range r.RepositoryTopics.Nodes {
		out = append(out, n.Topic.Name)
	}
	return out
}

// GitHubOrganization is an organization the user belongs to.
type GitHubOrganization struct {
	Login           string `json:"login"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	MembersWithRole Count  `json:"membersWithRole"`
}

// Sponsor is a user or organization sponsoring the account.
type Sponsor struct {
	Typename string `json:"__typename"`
	Login    string `json:"login"`
	Name     string `json:"name"`
}

// SocialAccount is a profile link shown on the GitHub page.
type SocialAccount struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

// GitHubUser is the typed view of the user query. Raw keeps the exact
// payload for storage.
type GitHubUser struct {
	Login           string `json:"login"`
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	Location        string `json:"location"`
	Company         string `json:"company"`
	WebsiteURL      string `json:"websiteUrl"`
	TwitterUsername string `json:"twitterUsername"`
	Email           string `json:"email"`
	AvatarURL       string `json:"avatarUrl"`
	Followers       Count  `json:"followers"`
	Following       Count  `json:"following"`
	Repositories    struct {
		TotalCount int          `json:"totalCount"`
		Nodes      []Repository `json:"nodes"`
	} `json:"repositories"`
	ContributionsCollection struct {
		ContributionYears            []int `json:"contributionYears"`
		TotalCommitContributions     int   `json:"totalCommitContributions"`
		RestrictedContributionsCount int   `json:"restrictedContributionsCount"`
	} `json:"contributionsCollection"`
	Organizations struct {
		Nodes []GitHubOrganization `json:"nodes"`
	} `json:"organizations"`
	Sponsors struct {
		TotalCount int       `json:"totalCount"`
		Nodes      []Sponsor `json:"nodes"`
	} `json:"sponsors"`
	SocialAccounts struct {
		Nodes []SocialAccount `json:"nodes"`
	} `json:"socialAccounts"`

	Raw json.RawMessage `json:"-"`
}

// LinkedInURL returns the first social account whose provider is LinkedIn.
func (u *GitHubUser) LinkedInURL() (string, bool) {
	return LinkedInFromSocialAccounts(u.SocialAccounts.Nodes)
}

// LinkedInFromSocialAccounts picks the LinkedIn entry from a list of social
// accounts, matching the provider name case-insensitively.
func LinkedInFromSocialAccounts(accounts []SocialAccount) (string, bool) {
	for _, a := range accounts {
		if strings.EqualFold(a.Provider, "linkedin") && a.URL != "" {
			return a.URL, true
		}
	}
	return "", false
}

// ParseGitHubUser decodes a stored user payload.
func ParseGitHubUser(raw json.RawMessage) (*GitHubUser, error) {
	var u GitHubUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	u.Raw = raw
	return &u, nil
}

type graphqlError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data struct {
		User json.RawMessage `json:"user"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// GitHub queries the GitHub GraphQL API.
type GitHub struct {
	token string
	opts  options
}

// NewGitHub creates a GitHub client authenticating with a bearer token.
func NewGitHub(token string, opts ...Option) (*GitHub, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("github: %w", ErrMissingCredentials)
	}
	return &GitHub{
		token: strings.TrimSpace(token),
		opts:  newOptions(DefaultGitHubURL, "github", opts),
	}, nil
}

// Fetch returns the full profile for login, or nil when the user does not
// exist or the request failed for a reason other than rate limiting.
func (g *GitHub) Fetch(ctx context.Context, login string) *GitHubUser {
	user, ok := ratelimit.Execute(ctx, g.opts.executor, "github.user", func(ctx context.Context) (*GitHubUser, error) {
		raw, err := g.query(ctx, githubUserQuery, login)
		if err != nil || raw == nil {
			return nil, err
		}
		return ParseGitHubUser(raw)
	})
	if !ok || user == nil {
		g.opts.logger.Debug("no github profile", "login", login)
		return nil
	}
	return user
}

// FetchCompany returns the company field of login's profile. ok is false
// when the lookup failed; an empty company with ok true means the profile
// has none.
func (g *GitHub) FetchCompany(ctx context.Context, login string) (string, bool) {
	company, ok := ratelimit.Execute(ctx, g.opts.executor, "github.company", func(ctx context.Context) (string, error) {
		raw, err := g.query(ctx, githubCompanyQuery, login)
		if err != nil || raw == nil {
			return "", err
		}
		var u struct {
			Company string `json:"company"`
		}
		if err := json.Unmarshal(raw, &u); err != nil {
			return "", err
		}
		return u.Company, nil
	})
	return strings.TrimSpace(company), ok
}

// query runs q and returns the raw user object. A null user yields (nil, nil).
func (g *GitHub) query(ctx context.Context, q, login string) (json.RawMessage, error) {
	body := map[string]any{
		"query":     q,
		"variables": map[string]any{"login": login},
	}
	req, err := newJSONRequest(ctx, http.MethodPost, g.opts.baseURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.token)

	raw, err := doJSON(g.opts.http, "github", req)
	if err != nil {
		if isGitHubSecondaryLimit(err) {
			return nil, fmt.Errorf("github: %w: %v", ratelimit.ErrRateLimited, err)
		}
		return nil, err
	}

	var resp graphqlResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("github decode: %w", err)
	}
	if len(resp.Errors) > 0 {
		if err := graphqlErrors(resp.Errors); err != nil {
			return nil, err
		}
	}
	if len(resp.Data.User) == 0 || string(resp.Data.User) == "null" {
		return nil, nil
	}
	return resp.Data.User, nil
}

// graphqlErrors converts GraphQL errors into a Go error. NOT_FOUND on its
// own is not an error: the user field is simply null.
func graphqlErrors(errs []graphqlError) error {
	var out []error
	for _, e := range errs {
		switch strings.ToUpper(e.Type) {
		case "NOT_FOUND":
			continue
		case "RATE_LIMITED":
			out = append(out, fmt.Errorf("github: %w: %s", ratelimit.ErrRateLimited, e.Message))
		default:
			out = append(out, fmt.Errorf("github: %s", e.Message))
		}
	}
	return errors.Join(out...)
}

// GitHub reports secondary rate limits as 403 with a descriptive body.
func isGitHubSecondaryLimit(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusForbidden {
		return false
	}
	return strings.Contains(strings.ToLower(se.Body), "rate limit")
}
