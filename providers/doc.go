// Package providers wraps the third-party APIs a person record is enriched
// from: GitHub GraphQL, Scrapin for LinkedIn profiles, SocialData for X
// profiles, and Whop's email check.
//
// Every call runs through a shared ratelimit.Executor. A rate-limit
// response (HTTP 429 or a "rate limit" message) parks all callers in one
// cooldown window and is retried. Any other failure is logged and surfaces
// as a nil result, so one missing source never blocks a merge.
package providers
