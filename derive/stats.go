package derive

import (
	"math"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/providers"
)

// Ratio divides a by b. A zero denominator returns a unchanged.
func Ratio(a, b float64) float64 {
	if b == 0 {
		return a
	}
	return a / b
}

// Dampen compresses a count onto a log scale: log10(x+1).
func Dampen(x float64) float64 {
	return math.Log10(x + 1)
}

// GitHubAggregates computes the numeric profile of a GitHub user.
func GitHubAggregates(u *providers.GitHubUser) *core.GitHubStats {
	if u == nil {
		return nil
	}

	stats := &core.GitHubStats{
		Followers:               u.Followers.TotalCount,
		Following:               u.Following.TotalCount,
		FollowerToFollowing:     Ratio(float64(u.Followers.TotalCount), float64(u.Following.TotalCount)),
		ContributionYears:       u.ContributionsCollection.ContributionYears,
		RestrictedContributions: u.ContributionsCollection.RestrictedContributionsCount,
		TotalCommits: u.ContributionsCollection.TotalCommitContributions +
			u.ContributionsCollection.RestrictedContributionsCount,
		TotalRepositories: u.Repositories.TotalCount,
		SponsorsCount:     u.Sponsors.TotalCount,
		Languages:         make(map[string]core.LanguageStats),
	}

	seen := make(map[string]struct{})
	for _, repo := range u.Repositories.Nodes {
		stats.TotalStars += repo.StargazerCount
		stats.TotalForks += repo.ForkCount

		if lang := repo.Language(); lang != "" {
			ls := stats.Languages[lang]
			ls.RepoCount++
			ls.Stars += repo.StargazerCount
			stats.Languages[lang] = ls
		}

		for _, topic := range repo.Topics() {
			if _, dup := seen[topic]; dup {
				continue
			}
			seen[topic] = struct{}{}
			stats.UniqueTopics = append(stats.UniqueTopics, topic)
		}
	}

	for _, s := range u.Sponsors.Nodes {
		stats.SponsoredProjects = append(stats.SponsoredProjects, s.Login)
	}
	for _, o := range u.Organizations.Nodes {
		stats.Organizations = append(stats.Organizations, core.Organization{
			Name:         o.Name,
			Login:        o.Login,
			Description:  o.Description,
			MembersCount: o.MembersWithRole.TotalCount,
		})
	}
	return stats
}

// AverageLikes is the mean favorite count over tweets, 0 for none.
func AverageLikes(tweets []providers.Tweet) float64 {
	if len(tweets) == 0 {
		return 0
	}
	var total int
	for _, t := range tweets {
		total += t.FavoriteCount
	}
	return float64(total) / float64(len(tweets))
}

// TwitterAggregates computes the numeric profile of an X user.
func TwitterAggregates(u *providers.TwitterUser, tweets []providers.Tweet) *core.TwitterStats {
	if u == nil {
		return nil
	}
	return &core.TwitterStats{
		FollowerCount:       u.FollowersCount,
		FollowingCount:      u.FriendsCount,
		FollowerToFollowing: Ratio(float64(u.FollowersCount), float64(u.FriendsCount)),
		AverageLikes:        AverageLikes(tweets),
	}
}
