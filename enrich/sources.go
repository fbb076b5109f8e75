package enrich

import (
	"context"

	"github.com/poiesic/prospector/providers"
)

// ProfileSource scrapes LinkedIn profiles.
type ProfileSource interface {
	Fetch(ctx context.Context, linkedInURL string) *providers.LinkedInProfile
}

// GitHubSource fetches GitHub users.
type GitHubSource interface {
	Fetch(ctx context.Context, login string) *providers.GitHubUser
}

// TwitterSource fetches X/Twitter users and their recent tweets.
type TwitterSource interface {
	Fetch(ctx context.Context, handle string) *providers.TwitterUser
	FetchTweets(ctx context.Context, userID string) []providers.Tweet
}

// WhopSource checks whether an email belongs to a Whop account.
type WhopSource interface {
	Check(ctx context.Context, email string) providers.WhopStatus
}

var (
	_ ProfileSource = (*providers.Scrapin)(nil)
	_ GitHubSource  = (*providers.GitHub)(nil)
	_ TwitterSource = (*providers.SocialData)(nil)
	_ WhopSource    = (*providers.Whop)(nil)
)
